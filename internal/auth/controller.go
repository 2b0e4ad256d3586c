package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/examdesk/examdesk/internal/examapi"
	"github.com/examdesk/examdesk/pkg/model"
)

// Post-auth navigation targets. The public entry point doubles as the
// destination for logout and for every unauthorized redirect.
const (
	AdminLanding   = "/admin"
	StudentLanding = "/student"
	PublicEntry    = "/"
)

// Fallback messages used when a failure carries no server-provided one.
const (
	loginFallback    = "Login failed"
	registerFallback = "Registration failed"
)

var errMalformedProfile = errors.New("malformed user in profile response")

// Result reports a successful login or registration. Navigation is the
// caller's responsibility: Redirect names the landing route for the
// authenticated role, the controller itself never navigates.
type Result struct {
	User     *model.User
	Redirect string
}

// Controller owns the session lifecycle: token persistence, startup
// verification, login, registration, logout, and the derived role
// flags. A mutex serializes its operations, so at most one login,
// register, or verify is in flight per session: a second submit blocks
// behind the first instead of racing it.
type Controller struct {
	mu     sync.Mutex
	api    *examapi.Client
	tokens TokenStore
	state  model.SessionState
	user   *model.User
}

// NewController wires a controller to the API client and token store.
// The client's token source is pointed at the store, and its 401 hook
// at the store's teardown, so every authenticated call site inherits
// both without duplicating the logic.
func NewController(api *examapi.Client, tokens TokenStore) *Controller {
	c := &Controller{
		api:    api,
		tokens: tokens,
		state:  model.SessionUnauthenticated,
	}
	api.Tokens = tokens.Token
	api.OnUnauthorized = tokens.Clear
	return c
}

// Initialize runs once at startup. With no stored token it settles in
// Unauthenticated. With one, it verifies the token against the profile
// endpoint and either hydrates the user or performs the same cleanup as
// Logout. The verification call is never retried.
func (c *Controller) Initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tokens.Token() == "" {
		c.state = model.SessionUnauthenticated
		return nil
	}

	c.state = model.SessionVerifying
	user, err := c.api.Profile(ctx)
	if err != nil {
		c.logoutLocked()
		return fmt.Errorf("verify session: %w", err)
	}
	if !user.Valid() {
		c.logoutLocked()
		return fmt.Errorf("verify session: %w", errMalformedProfile)
	}

	c.user = user
	c.state = model.SessionAuthenticated
	return nil
}

// Login authenticates with the exam service. On success the token is
// persisted for TokenTTL and the session becomes Authenticated. On
// failure the session state is untouched and the returned error carries
// the server's message verbatim, or the generic fallback.
//
// The role hint mirrors which login form was used; the service has a
// single login endpoint for both roles.
func (c *Controller) Login(ctx context.Context, email, password string, roleHint model.Role) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = roleHint
	resp, err := c.api.Login(ctx, email, password)
	if err != nil {
		return nil, fallbackError(err, loginFallback)
	}
	return c.establishLocked(resp), nil
}

// Register creates an account via the endpoint selected by the role
// hint, then follows the same persist sequence as Login.
func (c *Controller) Register(ctx context.Context, name, email, password string, roleHint model.Role) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var resp *examapi.AuthResponse
	var err error
	if roleHint == model.RoleAdmin {
		resp, err = c.api.RegisterAdmin(ctx, name, email, password)
	} else {
		resp, err = c.api.RegisterStudent(ctx, name, email, password)
	}
	if err != nil {
		return nil, fallbackError(err, registerFallback)
	}
	return c.establishLocked(resp), nil
}

// Logout clears the stored token and the in-memory user. It always
// succeeds and makes no network call.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logoutLocked()
}

// Session returns a snapshot of the current session.
func (c *Controller) Session() model.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return model.Session{Token: c.tokens.Token(), User: c.user, State: c.state}
}

// State returns the current lifecycle state.
func (c *Controller) State() model.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// User returns the validated user, or nil while not authenticated.
func (c *Controller) User() *model.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// IsAuthenticated reports whether the session holds a validated user.
func (c *Controller) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == model.SessionAuthenticated && c.user != nil
}

// IsAdmin is false while not authenticated.
func (c *Controller) IsAdmin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == model.SessionAuthenticated && c.user != nil && c.user.IsAdmin()
}

// IsStudent is false while not authenticated.
func (c *Controller) IsStudent() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == model.SessionAuthenticated && c.user != nil && c.user.IsStudent()
}

// establishLocked persists the token and moves the session to
// Authenticated. Caller holds the mutex.
func (c *Controller) establishLocked(resp *examapi.AuthResponse) *Result {
	c.tokens.SetToken(resp.Token, TokenTTL)
	user := resp.User
	c.user = &user
	c.state = model.SessionAuthenticated
	return &Result{User: c.user, Redirect: LandingFor(user.Role)}
}

func (c *Controller) logoutLocked() {
	c.tokens.Clear()
	c.user = nil
	c.state = model.SessionUnauthenticated
}

// LandingFor returns the post-login landing route for a role.
func LandingFor(role model.Role) string {
	if role == model.RoleAdmin {
		return AdminLanding
	}
	return StudentLanding
}

// fallbackError surfaces a service-provided message verbatim, or wraps
// the failure in the generic fallback.
func fallbackError(err error, fallback string) error {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr
	}
	return fmt.Errorf("%s: %w", fallback, err)
}
