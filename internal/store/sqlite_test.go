package store

import (
	"context"
	"testing"
	"time"

	"github.com/examdesk/examdesk/internal/logging"
	"github.com/examdesk/examdesk/pkg/model"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLiteStore(":memory:", logging.Discard())
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSessionCache_PutGetDelete(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	sess := &model.CachedSession{
		TokenHash: "abc123",
		User:      model.User{ID: 1, Name: "A", Email: "a@x.com", Role: model.RoleAdmin, Enabled: true},
		CreatedAt: now,
		ExpiresAt: now.Add(15 * time.Minute),
	}
	if err := st.PutSession(ctx, sess); err != nil {
		t.Fatalf("PutSession failed: %v", err)
	}

	got, err := st.GetSession(ctx, "abc123")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected cached session")
	}
	if got.User.Email != "a@x.com" || got.User.Role != model.RoleAdmin {
		t.Errorf("user snapshot = %+v", got.User)
	}

	if err := st.DeleteSession(ctx, "abc123"); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	got, err = st.GetSession(ctx, "abc123")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got != nil {
		t.Error("expected nil after delete")
	}
}

func TestSessionCache_GetMissing(t *testing.T) {
	st := setupTestStore(t)

	got, err := st.GetSession(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got != nil {
		t.Error("expected nil for unknown hash")
	}
}

func TestSessionCache_PutOverwrites(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()
	now := time.Now()

	first := &model.CachedSession{
		TokenHash: "h1",
		User:      model.User{ID: 1, Name: "Old", Role: model.RoleStudent},
		CreatedAt: now,
		ExpiresAt: now.Add(time.Minute),
	}
	if err := st.PutSession(ctx, first); err != nil {
		t.Fatal(err)
	}

	second := *first
	second.User.Name = "New"
	second.ExpiresAt = now.Add(time.Hour)
	if err := st.PutSession(ctx, &second); err != nil {
		t.Fatal(err)
	}

	got, err := st.GetSession(ctx, "h1")
	if err != nil || got == nil {
		t.Fatalf("GetSession = %v, %v", got, err)
	}
	if got.User.Name != "New" {
		t.Errorf("user name = %q, want overwritten value", got.User.Name)
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()
	now := time.Now()

	fresh := &model.CachedSession{
		TokenHash: "fresh",
		User:      model.User{ID: 1, Role: model.RoleStudent},
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	stale := &model.CachedSession{
		TokenHash: "stale",
		User:      model.User{ID: 2, Role: model.RoleStudent},
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}
	for _, s := range []*model.CachedSession{fresh, stale} {
		if err := st.PutSession(ctx, s); err != nil {
			t.Fatal(err)
		}
	}

	n, err := st.DeleteExpiredSessions(ctx)
	if err != nil {
		t.Fatalf("DeleteExpiredSessions failed: %v", err)
	}
	if n != 1 {
		t.Errorf("purged %d sessions, want 1", n)
	}

	if got, _ := st.GetSession(ctx, "fresh"); got == nil {
		t.Error("fresh session should survive the purge")
	}
	if got, _ := st.GetSession(ctx, "stale"); got != nil {
		t.Error("stale session should be purged")
	}
}

func TestDrafts(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()
	started := time.Now().Add(-10 * time.Minute)

	draft := &model.ExamDraft{
		UserID:    7,
		ExamID:    3,
		Answers:   map[string]string{"11": "optionTwo"},
		StartedAt: started,
		UpdatedAt: time.Now(),
	}
	if err := st.PutDraft(ctx, draft); err != nil {
		t.Fatalf("PutDraft failed: %v", err)
	}

	got, err := st.GetDraft(ctx, 7, 3)
	if err != nil {
		t.Fatalf("GetDraft failed: %v", err)
	}
	if got == nil || got.Answers["11"] != "optionTwo" {
		t.Fatalf("draft = %+v", got)
	}

	// Updating answers must not reset the attempt clock.
	update := *draft
	update.Answers = map[string]string{"11": "optionTwo", "12": "optionOne"}
	update.UpdatedAt = time.Now()
	if err := st.PutDraft(ctx, &update); err != nil {
		t.Fatal(err)
	}
	got, err = st.GetDraft(ctx, 7, 3)
	if err != nil || got == nil {
		t.Fatalf("GetDraft = %v, %v", got, err)
	}
	if len(got.Answers) != 2 {
		t.Errorf("answers = %v", got.Answers)
	}
	if got.StartedAt.Sub(draft.StartedAt).Abs() > time.Second {
		t.Errorf("started_at drifted: %v vs %v", got.StartedAt, draft.StartedAt)
	}

	if err := st.DeleteDraft(ctx, 7, 3); err != nil {
		t.Fatalf("DeleteDraft failed: %v", err)
	}
	if got, _ := st.GetDraft(ctx, 7, 3); got != nil {
		t.Error("expected nil after delete")
	}

	// Unknown attempt yields nil, not an error.
	if got, err := st.GetDraft(ctx, 99, 99); err != nil || got != nil {
		t.Errorf("GetDraft(99,99) = %v, %v", got, err)
	}
}
