package model

import "time"

// SessionState tracks the authentication lifecycle of the client.
//
//	Unauthenticated → Verifying → Authenticated → Unauthenticated
//
// Verifying exists only while a previously stored token is being
// validated against the exam service.
type SessionState int

const (
	// SessionUnauthenticated is the initial state and the state after
	// logout or any verification failure.
	SessionUnauthenticated SessionState = iota
	// SessionVerifying means a stored token was found and its
	// validation call is pending.
	SessionVerifying
	// SessionAuthenticated means the token was validated and the user
	// profile is loaded.
	SessionAuthenticated
)

// String returns a human-readable state name for logs.
func (s SessionState) String() string {
	switch s {
	case SessionVerifying:
		return "verifying"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Session is the client-side view of the current principal.
// User is non-nil only when State is SessionAuthenticated, i.e. only
// after the token has been validated.
type Session struct {
	Token string
	User  *User
	State SessionState
}

// IsAuthenticated reports whether the session holds a validated user.
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.State == SessionAuthenticated && s.User != nil
}

// IsAdmin reports whether the session is authenticated as an admin.
func (s *Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.User.IsAdmin()
}

// IsStudent reports whether the session is authenticated as a student.
func (s *Session) IsStudent() bool {
	return s.IsAuthenticated() && s.User.IsStudent()
}

// CachedSession is a validated session snapshot the web frontend
// persists so the remote token is not re-verified on every request.
// The token itself is never stored, only its hash.
type CachedSession struct {
	TokenHash string    `json:"token_hash"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the cached verification has lapsed.
func (c *CachedSession) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
