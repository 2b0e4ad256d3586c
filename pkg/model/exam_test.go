package model

import (
	"testing"
	"time"
)

func TestExam_StatusAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	exam := &Exam{StartTime: start, EndTime: end}

	tests := []struct {
		name string
		now  time.Time
		want ExamStatus
	}{
		{"before window", start.Add(-time.Minute), ExamUpcoming},
		{"at start", start, ExamActive},
		{"inside window", start.Add(time.Hour), ExamActive},
		{"at end", end, ExamActive},
		{"after window", end.Add(time.Minute), ExamCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exam.StatusAt(tt.now); got != tt.want {
				t.Errorf("StatusAt(%v) = %q, want %q", tt.now, got, tt.want)
			}
		})
	}
}

func TestUser_Valid(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want bool
	}{
		{"nil", nil, false},
		{"student", &User{ID: 1, Role: RoleStudent}, true},
		{"admin", &User{ID: 2, Role: RoleAdmin}, true},
		{"missing role", &User{ID: 3}, false},
		{"unknown role", &User{ID: 4, Role: "SUPERUSER"}, false},
		{"missing id", &User{Role: RoleAdmin}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExamDraft_TimeTakenMinutes(t *testing.T) {
	now := time.Now()

	d := &ExamDraft{StartedAt: now.Add(-31 * time.Minute)}
	if got := d.TimeTakenMinutes(now); got != 31 {
		t.Errorf("TimeTakenMinutes = %d, want 31", got)
	}

	d = &ExamDraft{}
	if got := d.TimeTakenMinutes(now); got != 0 {
		t.Errorf("TimeTakenMinutes with zero StartedAt = %d, want 0", got)
	}
}

func TestSession_RoleFlags(t *testing.T) {
	admin := &Session{
		Token: "T1",
		User:  &User{ID: 1, Role: RoleAdmin},
		State: SessionAuthenticated,
	}
	if !admin.IsAuthenticated() || !admin.IsAdmin() || admin.IsStudent() {
		t.Errorf("admin session flags wrong: auth=%v admin=%v student=%v",
			admin.IsAuthenticated(), admin.IsAdmin(), admin.IsStudent())
	}

	// Role flags must be false while not authenticated, even with a user
	// attached mid-verification.
	pending := &Session{User: &User{ID: 1, Role: RoleAdmin}, State: SessionVerifying}
	if pending.IsAdmin() || pending.IsStudent() {
		t.Error("role flags must be false outside the authenticated state")
	}
}
