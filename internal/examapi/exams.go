package examapi

import (
	"context"
	"fmt"

	"github.com/examdesk/examdesk/pkg/model"
)

// ExamRequest is the create/update payload for an exam. Times are sent
// as the datetime-local strings the admin form produces; the service
// owns parsing and validation.
type ExamRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	SubjectID       int64  `json:"subjectId"`
	DurationMinutes int    `json:"durationMinutes"`
	TotalMarks      int    `json:"totalMarks"`
	PassMarks       int    `json:"passMarks"`
	TotalQuestions  int    `json:"totalQuestions"`
	Level           string `json:"level"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
}

// ListExams returns all exams (admin view).
func (c *Client) ListExams(ctx context.Context) ([]model.Exam, error) {
	var out []model.Exam
	if err := c.get(ctx, "/api/admin/exams", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateExam creates a new exam.
func (c *Client) CreateExam(ctx context.Context, req *ExamRequest) (*model.Exam, error) {
	var out model.Exam
	if err := c.post(ctx, "/api/admin/exams", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateExam updates an existing exam.
func (c *Client) UpdateExam(ctx context.Context, id int64, req *ExamRequest) (*model.Exam, error) {
	var out model.Exam
	if err := c.put(ctx, fmt.Sprintf("/api/admin/exams/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteExam removes an exam.
func (c *Client) DeleteExam(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/exams/%d", id))
}

// ExamResults returns all results for one exam (admin view).
func (c *Client) ExamResults(ctx context.Context, id int64) ([]model.Result, error) {
	var out []model.Result
	if err := c.get(ctx, fmt.Sprintf("/api/admin/exams/%d/results", id), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AvailableExams returns the exams visible to the current student.
func (c *Client) AvailableExams(ctx context.Context) ([]model.Exam, error) {
	var out []model.Exam
	if err := c.get(ctx, "/api/student/exams/available", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitExam submits a student's answers, keyed by question ID, along
// with the minutes the attempt took. The service grades it and returns
// the result.
func (c *Client) SubmitExam(ctx context.Context, examID int64, answers map[string]string, timeTakenMinutes int) (*model.Result, error) {
	body := map[string]any{
		"answers":          answers,
		"timeTakenMinutes": timeTakenMinutes,
	}
	var out model.Result
	if err := c.post(ctx, fmt.Sprintf("/api/student/exams/%d/submit", examID), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
