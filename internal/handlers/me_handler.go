package handlers

import (
	"github.com/gin-gonic/gin"

	userdomain "github.com/BruksfildServices01/land-broker/internal/domain/user"
	"github.com/BruksfildServices01/land-broker/internal/httperr"
	"github.com/BruksfildServices01/land-broker/internal/httpresp"
)

type MeHandler struct {
	users userdomain.Repository
}

func NewMeHandler(users userdomain.Repository) *MeHandler {
	return &MeHandler{users: users}
}

// GetMe returns the stored profile of the session user. A token for a user
// that no longer exists is treated as unauthenticated.
func (h *MeHandler) GetMe(c *gin.Context) {
	id, ok := currentIdentity(c)
	if !ok {
		return
	}

	user, err := h.users.GetUserByID(c.Request.Context(), id.UserID)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			httperr.Respond(c, httperr.ErrBusiness(httperr.CodeUnauthorized))
			return
		}
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": user})
}
