package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/bucket-manager/internal/domain"
	"github.com/marcos-nsantos/bucket-manager/internal/pkg/httputil"
	"github.com/marcos-nsantos/bucket-manager/internal/usecase/session"
)

const BearerPrefix = "Bearer "

type SessionResolver interface {
	Get(token string) (*session.Session, error)
}

type SessionMiddleware struct {
	sessions SessionResolver
}

func NewSessionMiddleware(sessions SessionResolver) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RequireSession resolves the bearer token to a connected session and stores
// it on the gin context under httputil.SessionKey.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "authorization header required")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			httputil.ErrorWithCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid authorization format")
			c.Abort()
			return
		}

		sess, err := m.sessions.Get(strings.TrimPrefix(authHeader, BearerPrefix))
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotConnected), errors.Is(err, domain.ErrSessionNotFound):
				httputil.ErrorWithCode(c, http.StatusUnauthorized, "NOT_CONNECTED", "session is not connected, connect again")
			default:
				httputil.ErrorWithCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired session token")
			}
			c.Abort()
			return
		}

		c.Set(httputil.SessionKey, sess)
		c.Next()
	}
}
