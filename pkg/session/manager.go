package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const CookieName = "feedbacker_session"

var ErrSessionRevoked error = errors.New("session revoked")

//counterfeiter:generate -o fake -fake-name Registry . Registry

// Registry tracks live session ids so a session can be revoked before its
// cookie expires.
type Registry interface {
	Register(ctx context.Context, id, username string, ttl time.Duration) error
	Active(ctx context.Context, id string) (bool, error)
	Revoke(ctx context.Context, id string) error
}

type Manager struct {
	tokens   *JWTService
	ttl      time.Duration
	secure   bool
	registry Registry
}

// NewManager creates a cookie session manager. registry may be nil, in which
// case sessions live until their cookie expires.
func NewManager(secret []byte, ttl time.Duration, secure bool, registry Registry) *Manager {
	return &Manager{
		tokens:   NewJWTService(secret),
		ttl:      ttl,
		secure:   secure,
		registry: registry,
	}
}

// New returns a fresh anonymous session.
func (m *Manager) New() *Session {
	return &Session{
		ID:        uuid.NewString(),
		CSRFToken: uuid.NewString(),
	}
}

// Load reads the session cookie. It always returns a usable session: when the
// cookie is missing a fresh one is returned with a nil error, when it is
// invalid, expired or revoked a fresh one is returned together with the reason.
func (m *Manager) Load(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return m.New(), nil
	}

	s, err := m.tokens.Validate(cookie.Value)
	if err != nil {
		return m.New(), fmt.Errorf("validate session cookie: %w", err)
	}

	if s.Authenticated() && m.registry != nil {
		active, err := m.registry.Active(r.Context(), s.ID)
		if err != nil {
			return m.New(), fmt.Errorf("check session registry: %w", err)
		}
		if !active {
			return m.New(), ErrSessionRevoked
		}
	}

	return &s, nil
}

// Save writes the session into the response cookie. It must run before the
// response header is written.
func (m *Manager) Save(w http.ResponseWriter, s *Session) error {
	token, err := m.tokens.Sign(m.tokens.Generate(*s, m.ttl))
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Login binds the session to username under a new session id.
func (m *Manager) Login(ctx context.Context, s *Session, username string) error {
	if s.Authenticated() && m.registry != nil {
		if err := m.registry.Revoke(ctx, s.ID); err != nil {
			return fmt.Errorf("revoke previous session: %w", err)
		}
	}

	s.ID = uuid.NewString()
	s.CSRFToken = uuid.NewString()
	s.Username = username

	if m.registry != nil {
		if err := m.registry.Register(ctx, s.ID, username, m.ttl); err != nil {
			return fmt.Errorf("register session: %w", err)
		}
	}

	return nil
}

// Logout clears the username binding and revokes the session id. Pending
// flashes survive.
func (m *Manager) Logout(ctx context.Context, s *Session) error {
	if s.Authenticated() && m.registry != nil {
		if err := m.registry.Revoke(ctx, s.ID); err != nil {
			return fmt.Errorf("revoke session: %w", err)
		}
	}

	s.ID = uuid.NewString()
	s.CSRFToken = uuid.NewString()
	s.Username = ""

	return nil
}
