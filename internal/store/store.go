package store

import (
	"context"

	"github.com/examdesk/examdesk/pkg/model"
)

// Store is the frontend's local persistence: validated session
// snapshots and in-progress exam drafts. Exam-domain records are owned
// by the remote exam service and are never stored here.
type Store interface {
	// Session cache, keyed by token hash.
	PutSession(ctx context.Context, sess *model.CachedSession) error
	GetSession(ctx context.Context, tokenHash string) (*model.CachedSession, error)
	DeleteSession(ctx context.Context, tokenHash string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	// Exam drafts, keyed by (user, exam).
	PutDraft(ctx context.Context, draft *model.ExamDraft) error
	GetDraft(ctx context.Context, userID, examID int64) (*model.ExamDraft, error)
	DeleteDraft(ctx context.Context, userID, examID int64) error

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
