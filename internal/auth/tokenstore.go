package auth

import "time"

// TokenTTL is how long a persisted token stays usable client-side.
// Matches the 7-day cookie expiry of the exam platform.
const TokenTTL = 7 * 24 * time.Hour

// TokenStore persists the session token between requests or program
// runs. Implementations: the web frontend's token cookie, the CLI's
// credentials file, and an in-memory store for tests. Storage is
// assumed to always succeed; there is no retry path.
type TokenStore interface {
	// Token returns the stored token, or "" when absent or expired.
	Token() string
	// SetToken persists tok for ttl from now.
	SetToken(tok string, ttl time.Duration)
	// Clear removes the token. Clearing an absent token is a no-op.
	Clear()
}

// MemoryTokenStore keeps the token in process memory. The zero value
// is ready to use.
type MemoryTokenStore struct {
	tok string
	exp time.Time
}

func (m *MemoryTokenStore) Token() string {
	if m.tok == "" {
		return ""
	}
	if !m.exp.IsZero() && time.Now().After(m.exp) {
		return ""
	}
	return m.tok
}

func (m *MemoryTokenStore) SetToken(tok string, ttl time.Duration) {
	m.tok = tok
	m.exp = time.Now().Add(ttl)
}

func (m *MemoryTokenStore) Clear() {
	m.tok = ""
	m.exp = time.Time{}
}
