package auth

import (
	"testing"

	"github.com/examdesk/examdesk/pkg/model"
)

func TestEvaluate(t *testing.T) {
	admin := &model.User{ID: 1, Role: model.RoleAdmin}
	student := &model.User{ID: 2, Role: model.RoleStudent}

	adminOnly := AllowRoles(model.RoleAdmin)
	studentRoutes := AllowRoles(model.RoleStudent, model.RoleAdmin)

	tests := []struct {
		name   string
		state  model.SessionState
		user   *model.User
		policy Policy
		want   Decision
	}{
		{"verifying defers", model.SessionVerifying, nil, adminOnly, DecisionLoading},
		{"verifying defers even with user", model.SessionVerifying, admin, adminOnly, DecisionLoading},
		{"unauthenticated redirects", model.SessionUnauthenticated, nil, studentRoutes, DecisionRedirect},
		{"admin on admin route", model.SessionAuthenticated, admin, adminOnly, DecisionAllow},
		{"student on admin route redirects", model.SessionAuthenticated, student, adminOnly, DecisionRedirect},
		{"student on student route", model.SessionAuthenticated, student, studentRoutes, DecisionAllow},
		{"admin on student route", model.SessionAuthenticated, admin, studentRoutes, DecisionAllow},
		{"authenticated nil user redirects", model.SessionAuthenticated, nil, studentRoutes, DecisionRedirect},
		{"empty policy redirects everyone", model.SessionAuthenticated, admin, Policy{}, DecisionRedirect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.state, tt.user, tt.policy); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Identical inputs always yield the identical decision: the guard is
// stateless and side-effect-free.
func TestEvaluate_Idempotent(t *testing.T) {
	student := &model.User{ID: 2, Role: model.RoleStudent}
	policy := AllowRoles(model.RoleAdmin)

	first := Evaluate(model.SessionAuthenticated, student, policy)
	for i := 0; i < 100; i++ {
		if got := Evaluate(model.SessionAuthenticated, student, policy); got != first {
			t.Fatalf("evaluation %d = %v, first = %v", i, got, first)
		}
	}
	if first != DecisionRedirect {
		t.Errorf("student on admin-only route = %v, want redirect", first)
	}
}

func TestLandingFor(t *testing.T) {
	if got := LandingFor(model.RoleAdmin); got != AdminLanding {
		t.Errorf("LandingFor(ADMIN) = %q, want %q", got, AdminLanding)
	}
	if got := LandingFor(model.RoleStudent); got != StudentLanding {
		t.Errorf("LandingFor(STUDENT) = %q, want %q", got, StudentLanding)
	}
	// Unknown roles land on the student route rather than admin.
	if got := LandingFor("OTHER"); got != StudentLanding {
		t.Errorf("LandingFor(OTHER) = %q, want %q", got, StudentLanding)
	}
}
