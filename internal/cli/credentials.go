package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const credentialsFileName = "credentials.json"

type credentials struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// fileTokenStore persists the exam service token in
// ~/.examdesk/credentials.json. It satisfies auth.TokenStore, so the
// CLI shares the session lifecycle with the web frontend.
type fileTokenStore struct {
	path string
}

func newFileTokenStore() (*fileTokenStore, error) {
	p, err := credentialsPath()
	if err != nil {
		return nil, err
	}
	return &fileTokenStore{path: p}, nil
}

// Token returns the stored token, or "" when absent or expired.
func (s *fileTokenStore) Token() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return ""
	}
	if !creds.ExpiresAt.IsZero() && time.Now().After(creds.ExpiresAt) {
		return ""
	}
	return creds.Token
}

// SetToken writes the token with its expiry. Errors are swallowed; a
// failed write just means logging in again next time.
func (s *fileTokenStore) SetToken(tok string, ttl time.Duration) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return
	}
	creds := credentials{Token: tok, ExpiresAt: time.Now().Add(ttl)}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0600)
}

// Clear removes the credentials file. Clearing twice is a no-op.
func (s *fileTokenStore) Clear() {
	_ = os.Remove(s.path)
}

// credentialsPath returns the path to the credentials file
// (~/.examdesk/credentials.json).
func credentialsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".examdesk", credentialsFileName), nil
}
