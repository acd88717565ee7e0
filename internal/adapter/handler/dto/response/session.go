package response

import (
	"time"

	"github.com/marcos-nsantos/bucket-manager/internal/usecase/session"
)

const stateConnected = "connected"

type SessionResponse struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Region    string    `json:"region"`
	State     string    `json:"state"`
}

func SessionFromResult(r *session.ConnectResult) SessionResponse {
	return SessionResponse{
		ID:        r.Session.ID.String(),
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
		Region:    r.Session.Region,
		State:     stateConnected,
	}
}
