package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/land-broker/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var identity = auth.Identity{UserID: "u-1", Email: "admin@x.com", Role: auth.RoleAdmin}

func issue(t *testing.T, svc *auth.TokenService) string {
	t.Helper()
	tok, err := svc.Issue(identity)
	require.NoError(t, err)
	return tok
}

func TestAuthenticate(t *testing.T) {
	svc := auth.NewTokenService("k", time.Hour)
	tok := issue(t, svc)
	expired := issue(t, svc.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }))

	cases := []struct {
		name   string
		header string
		ok     bool
	}{
		{"valid", "Bearer " + tok, true},
		{"scheme is case-insensitive", "bearer " + tok, true},
		{"missing header", "", false},
		{"no scheme", tok, false},
		{"wrong scheme", "Basic " + tok, false},
		{"empty token", "Bearer ", false},
		{"blank token", "Bearer    ", false},
		{"garbage token", "Bearer abc.def.ghi", false},
		{"expired token", "Bearer " + expired, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			sess, ok := Authenticate(req, svc)

			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, identity, sess.Identity)
			} else {
				assert.Equal(t, auth.Session{}, sess)
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	svc := auth.NewTokenService("k", time.Hour)

	r := gin.New()
	r.GET("/me", AuthMiddleware(svc), func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, id)
	})

	t.Run("authorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, svc))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":"u-1"`)
	})

	t.Run("unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", issue(t, svc))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"error":"unauthorized"`)
	})
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
