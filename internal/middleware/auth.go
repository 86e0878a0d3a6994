package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/land-broker/internal/auth"
	"github.com/BruksfildServices01/land-broker/internal/httperr"
)

const ContextSession = "session"

// Authenticate extracts and verifies the bearer token of r. It never fails
// loudly: any problem with the header or the token yields false.
func Authenticate(r *http.Request, tokens *auth.TokenService) (auth.Session, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return auth.Session{}, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return auth.Session{}, false
	}

	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return auth.Session{}, false
	}

	sess, err := tokens.VerifySession(tokenString)
	if err != nil {
		return auth.Session{}, false
	}
	return sess, true
}

func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := Authenticate(c.Request, tokens)
		if !ok {
			c.Abort()
			httperr.Respond(c, httperr.ErrBusiness(httperr.CodeUnauthorized))
			return
		}

		c.Set(ContextSession, sess)
		c.Request = c.Request.WithContext(auth.WithSession(c.Request.Context(), sess))

		c.Next()
	}
}

// CurrentIdentity returns the caller identity for a request that went
// through AuthMiddleware.
func CurrentIdentity(c *gin.Context) (auth.Identity, bool) {
	sess, ok := auth.SessionFrom(c.Request.Context(), time.Now())
	if !ok {
		return auth.Identity{}, false
	}
	return sess.Identity, true
}
