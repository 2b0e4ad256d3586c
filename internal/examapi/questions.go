package examapi

import (
	"context"
	"fmt"

	"github.com/examdesk/examdesk/pkg/model"
)

// QuestionRequest is the create/update payload for a question.
type QuestionRequest struct {
	QuestionText  string `json:"questionText"`
	OptionOne     string `json:"optionOne"`
	OptionTwo     string `json:"optionTwo"`
	OptionThree   string `json:"optionThree"`
	OptionFour    string `json:"optionFour"`
	CorrectAnswer string `json:"correctAnswer"`
	Marks         int    `json:"marks"`
	ExamID        int64  `json:"examId"`
	SubjectID     int64  `json:"subjectId"`
}

// ListQuestions returns all questions (admin view).
func (c *Client) ListQuestions(ctx context.Context) ([]model.Question, error) {
	var out []model.Question
	if err := c.get(ctx, "/api/admin/questions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateQuestion adds a question to an exam.
func (c *Client) CreateQuestion(ctx context.Context, req *QuestionRequest) (*model.Question, error) {
	var out model.Question
	if err := c.post(ctx, "/api/admin/questions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateQuestion updates an existing question.
func (c *Client) UpdateQuestion(ctx context.Context, id int64, req *QuestionRequest) (*model.Question, error) {
	var out model.Question
	if err := c.put(ctx, fmt.Sprintf("/api/admin/questions/%d", id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteQuestion removes a question.
func (c *Client) DeleteQuestion(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/questions/%d", id))
}
