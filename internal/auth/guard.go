package auth

import "github.com/examdesk/examdesk/pkg/model"

// Decision is the route guard's verdict for one navigation.
type Decision int

const (
	// DecisionLoading defers rendering while token verification is
	// pending, so protected content never flashes before a redirect.
	DecisionLoading Decision = iota
	// DecisionRedirect sends the caller to the public entry point.
	// Used both for unauthenticated sessions and for authenticated
	// users whose role is outside the allowed set; there is no
	// distinct forbidden page.
	DecisionRedirect
	// DecisionAllow renders the protected content.
	DecisionAllow
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionRedirect:
		return "redirect"
	default:
		return "loading"
	}
}

// Policy names the roles allowed to view a protected route. It is
// evaluated per navigation and never persisted.
type Policy struct {
	AllowedRoles []model.Role
}

// AllowRoles builds a policy from the given roles.
func AllowRoles(roles ...model.Role) Policy {
	return Policy{AllowedRoles: roles}
}

// Allows reports whether role is in the allowed set.
func (p Policy) Allows(role model.Role) bool {
	for _, r := range p.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Evaluate decides whether to render protected content given the
// session state. It holds no state of its own: identical inputs always
// produce the identical decision, with no side effects.
func Evaluate(state model.SessionState, user *model.User, policy Policy) Decision {
	switch state {
	case model.SessionVerifying:
		return DecisionLoading
	case model.SessionAuthenticated:
		if user != nil && policy.Allows(user.Role) {
			return DecisionAllow
		}
		return DecisionRedirect
	default:
		return DecisionRedirect
	}
}
