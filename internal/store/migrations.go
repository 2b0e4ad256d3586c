package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema statements, applied in order. Statements must be idempotent
// (CREATE ... IF NOT EXISTS) so migration can run on every startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		token_hash  TEXT PRIMARY KEY,
		user_json   TEXT NOT NULL,
		created_at  TIMESTAMP NOT NULL,
		expires_at  TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at)`,

	`CREATE TABLE IF NOT EXISTS exam_drafts (
		user_id      INTEGER NOT NULL,
		exam_id      INTEGER NOT NULL,
		answers_json TEXT NOT NULL,
		started_at   TIMESTAMP NOT NULL,
		updated_at   TIMESTAMP NOT NULL,
		PRIMARY KEY (user_id, exam_id)
	)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
