package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

type mapping struct {
	status  int
	message string
}

var byCode = map[string]mapping{
	CodeValidation:         {http.StatusBadRequest, "All fields are required"},
	CodeUnauthorized:       {http.StatusUnauthorized, "Authentication required. Please login again."},
	CodeInvalidCredentials: {http.StatusUnauthorized, "Invalid email or password"},
	CodeNotFound:           {http.StatusNotFound, "Resource not found"},
	CodeConflict:           {http.StatusConflict, "Resource already exists"},
	CodeTooManyAttempts:    {http.StatusTooManyRequests, "Too many attempts. Please try again later."},
	CodeUnavailable:        {http.StatusServiceUnavailable, "Database connection error. Please try again later."},
}

// Status reports the HTTP status for err.
func Status(err error) int {
	if m, ok := byCode[CodeOf(err)]; ok {
		return m.status
	}
	return http.StatusInternalServerError
}

// Respond writes err as a JSON error. Unclassified errors become a generic
// 500 and the cause is attached to the gin context for the request logger.
// The text of err never reaches the client.
func Respond(c *gin.Context, err error) {
	code := CodeOf(err)
	m, ok := byCode[code]
	if !ok {
		_ = c.Error(err)
		Internal(c, "internal_error", "Internal server error")
		return
	}
	if m.status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	Write(c, m.status, code, m.message)
}

// RespondWithMessage is Respond with a caller supplied message for the
// classified case.
func RespondWithMessage(c *gin.Context, err error, message string) {
	code := CodeOf(err)
	m, ok := byCode[code]
	if !ok || m.status >= http.StatusInternalServerError {
		Respond(c, err)
		return
	}
	Write(c, m.status, code, message)
}
