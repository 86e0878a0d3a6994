package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/land-broker/internal/dto"
	"github.com/BruksfildServices01/land-broker/internal/httperr"
	"github.com/BruksfildServices01/land-broker/internal/httpresp"
	authuc "github.com/BruksfildServices01/land-broker/internal/usecase/auth"
)

type AuthHandler struct {
	login *authuc.Login
}

func NewAuthHandler(login *authuc.Login) *AuthHandler {
	return &AuthHandler{login: login}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.RespondWithMessage(c, httperr.ErrBusiness(httperr.CodeValidation), "Email and password are required")
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeValidation) {
			httperr.RespondWithMessage(c, err, "Email and password are required")
			return
		}
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.LoginDTO{User: res.User, Token: res.Token})
}

// Verify runs behind AuthMiddleware, so reaching it means the token is good.
func (h *AuthHandler) Verify(c *gin.Context) {
	id, ok := currentIdentity(c)
	if !ok {
		return
	}

	httpresp.OK(c, dto.VerifyDTO{
		Success: true,
		User:    id,
		Message: "Token is valid",
	})
}
