package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/examdesk/examdesk/pkg/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath.
// Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables and indexes.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

// --- Session cache ---

func (s *SQLiteStore) PutSession(ctx context.Context, sess *model.CachedSession) error {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (token_hash, user_json, created_at, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(token_hash) DO UPDATE SET
			user_json = excluded.user_json,
			created_at = excluded.created_at,
			expires_at = excluded.expires_at`,
		sess.TokenHash, string(userJSON), sess.CreatedAt, sess.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// GetSession returns the cached session for a token hash, or nil when
// absent. Expiry is the caller's concern; expired rows are still
// returned until purged.
func (s *SQLiteStore) GetSession(ctx context.Context, tokenHash string) (*model.CachedSession, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT token_hash, user_json, created_at, expires_at
		FROM sessions WHERE token_hash = ?`, tokenHash)

	var sess model.CachedSession
	var userJSON string
	err := row.Scan(&sess.TokenHash, &userJSON, &sess.CreatedAt, &sess.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if err := json.Unmarshal([]byte(userJSON), &sess.User); err != nil {
		return nil, fmt.Errorf("unmarshal session user: %w", err)
	}
	return &sess, nil
}

func (s *SQLiteStore) DeleteSession(ctx context.Context, tokenHash string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token_hash = ?`, tokenHash); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions purges lapsed rows and returns how many were
// removed.
func (s *SQLiteStore) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, time.Now())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}

// --- Exam drafts ---

func (s *SQLiteStore) PutDraft(ctx context.Context, draft *model.ExamDraft) error {
	answersJSON, err := json.Marshal(draft.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO exam_drafts (user_id, exam_id, answers_json, started_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, exam_id) DO UPDATE SET
			answers_json = excluded.answers_json,
			updated_at = excluded.updated_at`,
		draft.UserID, draft.ExamID, string(answersJSON), draft.StartedAt, draft.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("put draft: %w", err)
	}
	return nil
}

// GetDraft returns the in-progress answers for one attempt, or nil when
// none exist. On conflict the original started_at is kept, so reloads
// never reset the clock on a timed attempt.
func (s *SQLiteStore) GetDraft(ctx context.Context, userID, examID int64) (*model.ExamDraft, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, exam_id, answers_json, started_at, updated_at
		FROM exam_drafts WHERE user_id = ? AND exam_id = ?`, userID, examID)

	var draft model.ExamDraft
	var answersJSON string
	err := row.Scan(&draft.UserID, &draft.ExamID, &answersJSON, &draft.StartedAt, &draft.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	if err := json.Unmarshal([]byte(answersJSON), &draft.Answers); err != nil {
		return nil, fmt.Errorf("unmarshal draft answers: %w", err)
	}
	return &draft, nil
}

func (s *SQLiteStore) DeleteDraft(ctx context.Context, userID, examID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM exam_drafts WHERE user_id = ? AND exam_id = ?`, userID, examID); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
