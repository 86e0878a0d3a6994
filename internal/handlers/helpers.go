package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/land-broker/internal/auth"
	"github.com/BruksfildServices01/land-broker/internal/httperr"
	"github.com/BruksfildServices01/land-broker/internal/middleware"
)

// currentIdentity writes a 401 when the request carries no live session.
func currentIdentity(c *gin.Context) (auth.Identity, bool) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		httperr.Respond(c, httperr.ErrBusiness(httperr.CodeUnauthorized))
		return auth.Identity{}, false
	}
	return id, true
}

// queryInt returns 0 for a missing or malformed value.
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}
