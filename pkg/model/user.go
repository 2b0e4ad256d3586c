package model

// Role is the access class of a user, gating which routes are reachable.
type Role string

const (
	// RoleStudent can browse available exams, take them, and view own results.
	RoleStudent Role = "STUDENT"
	// RoleAdmin manages exams, questions, subjects, users, and results.
	RoleAdmin Role = "ADMIN"
)

// User is an account as returned by the exam service. The service owns
// the record; this client holds a read-only copy for the session's
// duration.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	Enabled bool   `json:"enabled"`
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsStudent reports whether the user has the student role.
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// Valid reports whether the user carries the fields the client relies
// on. A role-less or id-less profile response is treated as malformed
// and fails session verification rather than crashing.
func (u *User) Valid() bool {
	if u == nil || u.ID == 0 {
		return false
	}
	return u.Role == RoleStudent || u.Role == RoleAdmin
}

// Credentials carry a login or registration request body. They are
// transient and never persisted.
type Credentials struct {
	Name     string
	Email    string
	Password string
	RoleHint Role
}
