package examapi

import (
	"context"
	"fmt"

	"github.com/examdesk/examdesk/pkg/model"
)

// UserRequest is the create/update payload for a user account. Password
// is empty on updates that keep the existing one.
type UserRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password,omitempty"`
	Role     model.Role `json:"role"`
}

// ListUsers returns all user accounts (admin view).
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var out []model.User
	if err := c.get(ctx, "/api/admin/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser creates a user account.
func (c *Client) CreateUser(ctx context.Context, req *UserRequest) (*model.User, error) {
	var out model.User
	if err := c.post(ctx, "/api/admin/users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser updates an existing user account.
func (c *Client) UpdateUser(ctx context.Context, id int64, req *UserRequest) (*model.User, error) {
	var out model.User
	if err := c.put(ctx, fmt.Sprintf("/api/admin/users/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/users/%d", id))
}

// ToggleUserStatus flips a user's enabled flag.
func (c *Client) ToggleUserStatus(ctx context.Context, id int64) (*model.User, error) {
	var out model.User
	if err := c.put(ctx, fmt.Sprintf("/api/admin/users/%d/toggle-status", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
