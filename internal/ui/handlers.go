package ui

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/examdesk/examdesk/internal/auth"
	"github.com/examdesk/examdesk/internal/examapi"
	"github.com/examdesk/examdesk/pkg/model"
)

// HandleHome renders the landing page with the role-specific entry
// points. A visitor holding a valid token is sent straight to their
// dashboard.
func (u *UI) HandleHome(w http.ResponseWriter, r *http.Request) {
	if sess, _ := u.sessions.Resolve(w, r); sess.IsAuthenticated() {
		http.Redirect(w, r, auth.LandingFor(sess.User.Role), http.StatusSeeOther)
		return
	}

	data := map[string]any{
		"Title": "ExamDesk",
	}
	u.render(w, "home", data)
}

// HandleStudentLogin renders the student login form.
func (u *UI) HandleStudentLogin(w http.ResponseWriter, r *http.Request) {
	u.renderLogin(w, r, model.RoleStudent)
}

// HandleAdminLogin renders the admin login form.
func (u *UI) HandleAdminLogin(w http.ResponseWriter, r *http.Request) {
	u.renderLogin(w, r, model.RoleAdmin)
}

func (u *UI) renderLogin(w http.ResponseWriter, r *http.Request, role model.Role) {
	if sess, _ := u.sessions.Resolve(w, r); sess.IsAuthenticated() {
		http.Redirect(w, r, auth.LandingFor(sess.User.Role), http.StatusSeeOther)
		return
	}

	data := map[string]any{
		"Title": "Login - ExamDesk",
		"Role":  role,
		"Error": r.URL.Query().Get("error"),
	}
	u.render(w, "login", data)
}

// HandleStudentLoginPost processes the student login form.
func (u *UI) HandleStudentLoginPost(w http.ResponseWriter, r *http.Request) {
	u.loginPost(w, r, model.RoleStudent, "/student/login")
}

// HandleAdminLoginPost processes the admin login form.
func (u *UI) HandleAdminLoginPost(w http.ResponseWriter, r *http.Request) {
	u.loginPost(w, r, model.RoleAdmin, "/admin/login")
}

func (u *UI) loginPost(w http.ResponseWriter, r *http.Request, role model.Role, formPath string) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, formPath, "Invalid request")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	if email == "" || password == "" {
		redirectWithError(w, r, formPath, "Email and password required")
		return
	}

	tokens := &cookieTokenStore{w: w, r: r, secure: u.secure}
	ctrl := auth.NewController(u.api.WithToken(""), tokens)
	res, err := ctrl.Login(r.Context(), email, password, role)
	if err != nil {
		u.logger.Warn("login failed", "email", email, "error", err)
		redirectWithError(w, r, formPath, userMessageOr(err, "Login failed"))
		return
	}

	u.sessions.Cache(r, tokens.Token(), res.User)
	u.logger.Info("user logged in", "email", email, "role", res.User.Role)
	http.Redirect(w, r, res.Redirect, http.StatusSeeOther)
}

// HandleStudentSignup renders the student registration form.
func (u *UI) HandleStudentSignup(w http.ResponseWriter, r *http.Request) {
	if sess, _ := u.sessions.Resolve(w, r); sess.IsAuthenticated() {
		http.Redirect(w, r, auth.LandingFor(sess.User.Role), http.StatusSeeOther)
		return
	}

	data := map[string]any{
		"Title": "Sign Up - ExamDesk",
		"Error": r.URL.Query().Get("error"),
	}
	u.render(w, "signup", data)
}

// HandleStudentSignupPost processes the registration form. A successful
// registration logs the new student in directly.
func (u *UI) HandleStudentSignupPost(w http.ResponseWriter, r *http.Request) {
	const formPath = "/student/signup"

	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, formPath, "Invalid request")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	if name == "" || email == "" || password == "" {
		redirectWithError(w, r, formPath, "All fields are required")
		return
	}

	tokens := &cookieTokenStore{w: w, r: r, secure: u.secure}
	ctrl := auth.NewController(u.api.WithToken(""), tokens)
	res, err := ctrl.Register(r.Context(), name, email, password, model.RoleStudent)
	if err != nil {
		u.logger.Warn("registration failed", "email", email, "error", err)
		redirectWithError(w, r, formPath, userMessageOr(err, "Registration failed"))
		return
	}

	u.sessions.Cache(r, tokens.Token(), res.User)
	u.logger.Info("user registered", "email", email, "role", res.User.Role)
	http.Redirect(w, r, res.Redirect, http.StatusSeeOther)
}

// HandleLogout drops the cookie and cached verification. No call is
// made to the exam service; the token simply stops being presented.
func (u *UI) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if tok := TokenFromRequest(r); tok != "" {
		u.sessions.Forget(r, tok)
	}
	ClearTokenCookie(w)
	http.Redirect(w, r, auth.PublicEntry, http.StatusSeeOther)
}

// relayError handles a failed exam-service call made on behalf of a
// page. A 401 means the session was already torn down by the client
// hook, so the visitor goes back to the entry page; anything else
// returns to the originating page with the message.
func (u *UI) relayError(w http.ResponseWriter, r *http.Request, backTo string, err error) {
	if errors.Is(err, examapi.ErrUnauthenticated) {
		http.Redirect(w, r, auth.PublicEntry, http.StatusSeeOther)
		return
	}
	u.logger.Error("exam service call failed", "path", r.URL.Path, "error", err)
	redirectWithError(w, r, backTo, userMessageOr(err, "The exam service is unavailable"))
}

// userMessageOr extracts the service's own message when one exists.
func userMessageOr(err error, fallback string) string {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func redirectWithError(w http.ResponseWriter, r *http.Request, path, message string) {
	http.Redirect(w, r, path+"?error="+url.QueryEscape(message), http.StatusSeeOther)
}
