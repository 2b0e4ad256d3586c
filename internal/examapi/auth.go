package examapi

import (
	"context"
	"fmt"

	"github.com/examdesk/examdesk/pkg/model"
)

// AuthResponse is the success shape of the login and register endpoints.
type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login authenticates with email and password. The exam service exposes
// a single login route for both roles; the role hint chosen on the
// login form does not select a different endpoint.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResponse
	if err := c.post(ctx, "/api/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterStudent creates a student account and logs it in.
func (c *Client) RegisterStudent(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	return c.register(ctx, "/api/auth/register", name, email, password)
}

// RegisterAdmin creates an admin account and logs it in.
func (c *Client) RegisterAdmin(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	return c.register(ctx, "/api/auth/admin/register", name, email, password)
}

func (c *Client) register(ctx context.Context, path, name, email, password string) (*AuthResponse, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var out AuthResponse
	if err := c.post(ctx, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the user owning the attached token ("whoami"). It is
// the session verification call made for a stored token at startup.
func (c *Client) Profile(ctx context.Context) (*model.User, error) {
	var u model.User
	if err := c.get(ctx, "/api/admin/profile", &u); err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	return &u, nil
}
