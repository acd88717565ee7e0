package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/bucket-manager/internal/adapter/storage"
	"github.com/marcos-nsantos/bucket-manager/internal/domain"
)

//go:generate mockgen -source=service.go -destination=../../mocks/session_mocks.go -package=mocks

// Session holds the authenticated gateway for one client. It is never
// mutated after Connect, so handlers may read it without locking; closing a
// session only removes it from the registry.
type Session struct {
	ID        uuid.UUID
	Region    string
	Gateway   storage.ObjectGateway
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s *Session) Connected() bool {
	return s != nil && s.Gateway != nil
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

type Connector interface {
	Connect(ctx context.Context, creds Credentials) (storage.ObjectGateway, error)
}

type ConnectorFunc func(ctx context.Context, creds Credentials) (storage.ObjectGateway, error)

func (f ConnectorFunc) Connect(ctx context.Context, creds Credentials) (storage.ObjectGateway, error) {
	return f(ctx, creds)
}

type TokenIssuer interface {
	GenerateSessionToken(sessionID uuid.UUID) (string, time.Time, error)
	ValidateSessionToken(token string) (uuid.UUID, error)
}

type Service struct {
	connector Connector
	tokens    TokenIssuer
	defaults  Credentials

	now       func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewService creates a session registry. defaults fill in any credential
// field the client leaves empty.
func NewService(connector Connector, tokens TokenIssuer, defaults Credentials) *Service {
	return &Service{
		connector: connector,
		tokens:    tokens,
		defaults:  defaults,
		now:       time.Now,
		sessions:  make(map[uuid.UUID]*Session),
	}
}

type ConnectResult struct {
	Session   *Session
	Token     string
	ExpiresAt time.Time
}

// WithClock replaces the time source used for expiry checks.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Connect authenticates once. On failure nothing is registered and the
// caller stays disconnected until it connects again. Sessions whose token
// has expired are dropped from the registry on every Connect.
func (s *Service) Connect(ctx context.Context, creds Credentials) (*ConnectResult, error) {
	creds = s.withDefaults(creds)

	gw, err := s.connector.Connect(ctx, creds)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	token, expiresAt, err := s.tokens.GenerateSessionToken(id)
	if err != nil {
		return nil, fmt.Errorf("issuing session token: %w", err)
	}

	sess := &Session{
		ID:        id,
		Region:    creds.Region,
		Gateway:   gw,
		CreatedAt: s.now().UTC(),
		ExpiresAt: expiresAt,
	}

	s.mu.Lock()
	s.pruneLocked(s.now())
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return &ConnectResult{Session: sess, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *Service) Get(token string) (*Session, error) {
	id, err := s.tokens.ValidateSessionToken(token)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if sess.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, domain.ErrTokenExpired
	}
	if !sess.Connected() {
		return nil, domain.ErrNotConnected
	}
	return sess, nil
}

// Close forgets the session. Requests already holding it finish on its
// gateway; later lookups fail with ErrSessionNotFound.
func (s *Service) Close(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Active counts registered sessions, expired ones included until pruned.
func (s *Service) Active() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Service) pruneLocked(now time.Time) {
	for id, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, id)
		}
	}
}

func (s *Service) withDefaults(c Credentials) Credentials {
	if c.AccessKeyID == "" && c.SecretAccessKey == "" {
		c.AccessKeyID = s.defaults.AccessKeyID
		c.SecretAccessKey = s.defaults.SecretAccessKey
	}
	if c.Region == "" {
		c.Region = s.defaults.Region
	}
	return c
}
