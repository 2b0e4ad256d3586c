package ui

import (
	"context"
	"net/http"

	"github.com/examdesk/examdesk/internal/auth"
	"github.com/examdesk/examdesk/pkg/model"
)

type contextKey string

const sessionContextKey contextKey = "examdesk-session"

// SessionFromContext returns the session attached by a guard
// middleware, or nil when the route is unguarded.
func SessionFromContext(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(sessionContextKey).(*model.Session)
	return sess
}

func withSession(ctx context.Context, sess *model.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// RequireRoles guards a route group. The session is resolved once,
// then the pure guard decision applies: unauthenticated visitors are
// sent to the public entry page, authenticated users of the wrong role
// likewise. Allowed requests carry the session in their context.
func (u *UI) RequireRoles(roles ...model.Role) func(http.Handler) http.Handler {
	policy := auth.AllowRoles(roles...)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := u.sessions.Resolve(w, r)
			if err != nil {
				u.logger.Warn("session verification failed", "path", r.URL.Path, "error", err)
			}
			switch auth.Evaluate(sess.State, sess.User, policy) {
			case auth.DecisionAllow:
				next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess)))
			case auth.DecisionLoading:
				// Server-side resolution always settles, so a pending
				// state here means Resolve misbehaved.
				u.renderError(w, http.StatusServiceUnavailable, "Session could not be established")
			default:
				http.Redirect(w, r, auth.PublicEntry, http.StatusSeeOther)
			}
		})
	}
}
