package examapi

import (
	"context"

	"github.com/examdesk/examdesk/pkg/model"
)

// AdminResults returns all graded submissions across exams.
func (c *Client) AdminResults(ctx context.Context) ([]model.Result, error) {
	var out []model.Result
	if err := c.get(ctx, "/api/admin/results", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ResultStatistics returns aggregate pass/fail statistics.
func (c *Client) ResultStatistics(ctx context.Context) (*model.ResultStatistics, error) {
	var out model.ResultStatistics
	if err := c.get(ctx, "/api/admin/results/statistics", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StudentResults returns the current student's own results.
func (c *Client) StudentResults(ctx context.Context) ([]model.Result, error) {
	var out []model.Result
	if err := c.get(ctx, "/api/student/results", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Dashboard returns the admin landing page summary.
func (c *Client) Dashboard(ctx context.Context) (*model.DashboardSummary, error) {
	var out model.DashboardSummary
	if err := c.get(ctx, "/api/admin/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
