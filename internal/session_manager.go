package internal

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/hofware/pkg/cookie"
	"github.com/dmitrymomot/hofware/pkg/logger"
	"github.com/dmitrymomot/hofware/pkg/session"
)

// Default session configuration.
const (
	defaultSessionCookieName = "__sid"
	defaultSessionTTL        = 30 * time.Minute
)

// SessionManager ties stored sessions to the cookie that carries their token.
// Tokens are signed when the app's cookie manager has a secret.
type SessionManager struct {
	store      session.Store
	cookies    *cookie.Manager
	logger     *slog.Logger
	cookieName string
	ttl        time.Duration
}

// SessionOption configures the SessionManager.
type SessionOption func(*SessionManager)

// NewSessionManager creates a SessionManager over store.
func NewSessionManager(store session.Store, opts ...SessionOption) *SessionManager {
	sm := &SessionManager{
		store:      store,
		cookies:    cookie.New(),
		logger:     logger.NewNope(),
		cookieName: defaultSessionCookieName,
		ttl:        defaultSessionTTL,
	}
	for _, opt := range opts {
		opt(sm)
	}
	return sm
}

// WithSessionCookieName sets the session cookie name.
func WithSessionCookieName(name string) SessionOption {
	return func(sm *SessionManager) {
		if name != "" {
			sm.cookieName = name
		}
	}
}

// WithSessionTTL sets how long a session lives. Form journeys time out
// after this much time; the next request reports SESSION_TIMEOUT.
func WithSessionTTL(d time.Duration) SessionOption {
	return func(sm *SessionManager) {
		if d > 0 {
			sm.ttl = d
		}
	}
}

// bind attaches app-wide dependencies. Called by App during setup.
func (sm *SessionManager) bind(cookies *cookie.Manager, l *slog.Logger) {
	if cookies != nil {
		sm.cookies = cookies
	}
	if l != nil {
		sm.logger = l
	}
}

// LoadSession loads the session named by the request cookie.
// Returns nil, nil when there is no usable cookie or the session is gone.
// Returns session.ErrExpired when the session timed out.
func (sm *SessionManager) LoadSession(ctx context.Context, r *http.Request) (*session.Session, error) {
	token, err := sm.readToken(r)
	if err != nil {
		if !errors.Is(err, cookie.ErrNotFound) {
			sm.logger.WarnContext(ctx, "rejected session cookie", slog.String("error", err.Error()))
		}
		return nil, nil
	}

	sess, err := sm.store.Get(ctx, token)
	switch {
	case errors.Is(err, session.ErrNotFound):
		return nil, nil
	case err != nil:
		return nil, err
	}
	return sess, nil
}

// CreateSession creates and stores a new session.
func (sm *SessionManager) CreateSession(ctx context.Context) (*session.Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	sess := session.New(uuid.NewString(), token, time.Now().Add(sm.ttl))
	if err := sm.store.Create(ctx, sess); err != nil {
		return nil, err
	}

	sess.ClearNew()
	sess.ClearDirty()
	return sess, nil
}

// SaveSession writes the session cookie to the response.
func (sm *SessionManager) SaveSession(w http.ResponseWriter, sess *session.Session) error {
	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	if sm.cookies.CanSign() {
		return sm.cookies.SetSigned(w, sm.cookieName, sess.Token, maxAge)
	}
	sm.cookies.Set(w, sm.cookieName, sess.Token, maxAge)
	return nil
}

// DeleteSession clears the session cookie.
func (sm *SessionManager) DeleteSession(w http.ResponseWriter) {
	sm.cookies.Delete(w, sm.cookieName)
}

// Store returns the underlying session store.
func (sm *SessionManager) Store() session.Store {
	return sm.store
}

func (sm *SessionManager) readToken(r *http.Request) (string, error) {
	var (
		token string
		err   error
	)
	if sm.cookies.CanSign() {
		token, err = sm.cookies.GetSigned(r, sm.cookieName)
	} else {
		token, err = sm.cookies.Get(r, sm.cookieName)
	}
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", cookie.ErrNotFound
	}
	return token, nil
}

// generateToken creates a cryptographically secure random token.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
