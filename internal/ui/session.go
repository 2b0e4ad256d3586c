package ui

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/examdesk/examdesk/internal/auth"
	"github.com/examdesk/examdesk/internal/examapi"
	"github.com/examdesk/examdesk/internal/store"
	"github.com/examdesk/examdesk/pkg/model"
)

const (
	// TokenCookieName is the cookie carrying the exam service's bearer
	// token. Name and 7-day lifetime match the platform's contract.
	TokenCookieName = "token"

	// sessionCacheTTL bounds how long a verified token is trusted
	// before the profile endpoint is consulted again.
	sessionCacheTTL = 15 * time.Minute
)

var errMalformedProfile = errors.New("malformed user in profile response")

// SetTokenCookie persists the token with the standard 7-day expiry.
func SetTokenCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(auth.TokenTTL),
	})
}

// ClearTokenCookie removes the token cookie. Clearing an absent cookie
// is harmless.
func ClearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// TokenFromRequest returns the stored token, or "" when absent. The
// browser drops the cookie at expiry, so presence implies validity of
// the storage layer, not of the token itself.
func TokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(TokenCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// cookieTokenStore adapts one request/response pair to auth.TokenStore,
// so the auth controller can drive the cookie the same way the CLI
// drives its credentials file.
type cookieTokenStore struct {
	w      http.ResponseWriter
	r      *http.Request
	secure bool
	// tok shadows the cookie within the request that set it, since the
	// Set-Cookie header is not readable back.
	tok     string
	cleared bool
}

func (c *cookieTokenStore) Token() string {
	if c.cleared {
		return ""
	}
	if c.tok != "" {
		return c.tok
	}
	return TokenFromRequest(c.r)
}

func (c *cookieTokenStore) SetToken(tok string, _ time.Duration) {
	c.tok = tok
	c.cleared = false
	SetTokenCookie(c.w, tok, c.secure)
}

func (c *cookieTokenStore) Clear() {
	c.tok = ""
	c.cleared = true
	ClearTokenCookie(c.w)
}

// hashToken derives the cache key for a token. The raw token never
// touches the database.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// SessionManager resolves a request's session: read the token cookie,
// reuse a cached verification when fresh, otherwise verify the token
// against the profile endpoint. This is the per-request equivalent of
// the startup initialize flow, and like it, a failed verification is
// never retried; the token is simply cleared.
type SessionManager struct {
	api   *examapi.Client
	store store.Store
}

// NewSessionManager creates a session manager backed by the given API
// client and cache store.
func NewSessionManager(api *examapi.Client, st store.Store) *SessionManager {
	return &SessionManager{api: api, store: st}
}

// Resolve returns the request's session. It always returns a non-nil
// session; verification failures come back as an Unauthenticated
// session plus the error for logging.
func (sm *SessionManager) Resolve(w http.ResponseWriter, r *http.Request) (*model.Session, error) {
	tok := TokenFromRequest(r)
	if tok == "" {
		return &model.Session{State: model.SessionUnauthenticated}, nil
	}

	hash := hashToken(tok)
	if cached, err := sm.store.GetSession(r.Context(), hash); err == nil && cached != nil && !cached.IsExpired() {
		user := cached.User
		return &model.Session{Token: tok, User: &user, State: model.SessionAuthenticated}, nil
	}

	c := sm.api.WithToken(tok)
	c.OnUnauthorized = func() { ClearTokenCookie(w) }
	user, err := c.Profile(r.Context())
	if err == nil && !user.Valid() {
		err = errMalformedProfile
	}
	if err != nil {
		ClearTokenCookie(w)
		_ = sm.store.DeleteSession(r.Context(), hash)
		return &model.Session{State: model.SessionUnauthenticated}, err
	}

	sm.Cache(r, tok, user)
	return &model.Session{Token: tok, User: user, State: model.SessionAuthenticated}, nil
}

// Cache records a verified (token, user) pair so subsequent requests
// skip the profile call until the cache entry lapses.
func (sm *SessionManager) Cache(r *http.Request, token string, user *model.User) {
	now := time.Now()
	_ = sm.store.PutSession(r.Context(), &model.CachedSession{
		TokenHash: hashToken(token),
		User:      *user,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionCacheTTL),
	})
}

// Forget drops the cached verification for a token.
func (sm *SessionManager) Forget(r *http.Request, token string) {
	_ = sm.store.DeleteSession(r.Context(), hashToken(token))
}
