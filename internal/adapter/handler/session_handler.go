package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/bucket-manager/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/bucket-manager/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/bucket-manager/internal/domain"
	"github.com/marcos-nsantos/bucket-manager/internal/pkg/httputil"
	"github.com/marcos-nsantos/bucket-manager/internal/usecase/session"
)

type SessionHandler struct {
	sessionSvc SessionService
}

func NewSessionHandler(sessionSvc SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// Connect opens a session. An empty body connects with the server's
// configured credentials.
func (h *SessionHandler) Connect(c *gin.Context) {
	var req request.ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httputil.ValidationError(c, err)
		return
	}

	result, err := h.sessionSvc.Connect(c.Request.Context(), session.Credentials{
		AccessKeyID:     req.AccessKeyID,
		SecretAccessKey: req.SecretAccessKey,
		Region:          req.Region,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAuthentication) {
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "AUTHENTICATION_FAILED", "failed to connect to storage, check your credentials")
			return
		}
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, response.SessionFromResult(result))
}

func (h *SessionHandler) Disconnect(c *gin.Context) {
	sess := httputil.GetSession(c)
	if sess == nil {
		httputil.ErrorWithCode(c, http.StatusUnauthorized, "NOT_CONNECTED", "session is not connected")
		return
	}

	if err := h.sessionSvc.Close(sess.ID); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}
