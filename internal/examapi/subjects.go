package examapi

import (
	"context"
	"fmt"

	"github.com/examdesk/examdesk/pkg/model"
)

// SubjectRequest is the create/update payload for a subject.
type SubjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListSubjects returns all subjects (admin view).
func (c *Client) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	var out []model.Subject
	if err := c.get(ctx, "/api/admin/subjects", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSubject creates a subject.
func (c *Client) CreateSubject(ctx context.Context, req *SubjectRequest) (*model.Subject, error) {
	var out model.Subject
	if err := c.post(ctx, "/api/admin/subjects", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSubject updates an existing subject.
func (c *Client) UpdateSubject(ctx context.Context, id int64, req *SubjectRequest) (*model.Subject, error) {
	var out model.Subject
	if err := c.put(ctx, fmt.Sprintf("/api/admin/subjects/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSubject removes a subject.
func (c *Client) DeleteSubject(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/subjects/%d", id))
}
