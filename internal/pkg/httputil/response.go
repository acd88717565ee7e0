package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/bucket-manager/internal/pkg/apperror"
	"github.com/marcos-nsantos/bucket-manager/internal/usecase/session"
)

const (
	SessionKey   = "session"
	RequestIDKey = "request_id"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func ErrorWithCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: GetRequestID(c),
	})
}

func ValidationError(c *gin.Context, err error) {
	ErrorWithCode(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
}

func InternalError(c *gin.Context) {
	ErrorWithCode(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// HandleError writes the response for a use case error. Internal errors are
// recorded on the context for the request logger but not echoed to clients.
func HandleError(c *gin.Context, err error) {
	appErr := apperror.FromError(err)
	if appErr.StatusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	if appErr.StatusCode == http.StatusInternalServerError {
		InternalError(c)
		return
	}
	ErrorWithCode(c, appErr.StatusCode, appErr.Code, appErr.Message)
}

func GetSession(c *gin.Context) *session.Session {
	if v, exists := c.Get(SessionKey); exists {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return nil
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
