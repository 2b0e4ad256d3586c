package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/examdesk/examdesk/internal/examapi"
	"github.com/examdesk/examdesk/internal/logging"
	"github.com/examdesk/examdesk/internal/store"
	"github.com/examdesk/examdesk/pkg/model"
)

// stubExamService fakes the remote exam service. Tokens issued by
// login are accepted on the profile route until revoked.
type stubExamService struct {
	server      *httptest.Server
	validTokens map[string]model.User
}

func newStubExamService(t *testing.T) *stubExamService {
	t.Helper()
	s := &stubExamService{validTokens: map[string]model.User{}}

	mux := http.NewServeMux()
	handleMethod(mux, "POST", "/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "secret" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
			return
		}
		user := model.User{ID: 1, Name: "Ada", Email: creds.Email, Role: model.RoleStudent, Enabled: true}
		if strings.HasPrefix(creds.Email, "admin") {
			user.Role = model.RoleAdmin
		}
		token := "tok-" + creds.Email
		s.validTokens[token] = user
		json.NewEncoder(w).Encode(map[string]any{"token": token, "user": user})
	})
	handleMethod(mux, "GET", "/api/admin/profile", func(w http.ResponseWriter, r *http.Request) {
		user, ok := s.validTokens[bearer(r)]
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}
		json.NewEncoder(w).Encode(user)
	})
	handleMethod(mux, "GET", "/api/student/exams/available", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.validTokens[bearer(r)]; !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}
		json.NewEncoder(w).Encode([]model.Exam{})
	})

	s.server = httptest.NewServer(mux)
	t.Cleanup(s.server.Close)
	return s
}

func bearer(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func newTestUI(t *testing.T, svc *stubExamService) (*UI, chi.Router) {
	t.Helper()

	st, err := store.NewSQLiteStore(":memory:", logging.Discard())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	api := examapi.New(svc.server.URL, logging.Discard())
	ui := New(api, st, logging.Discard(), Config{})
	r := chi.NewRouter()
	ui.RegisterRoutes(r)
	return ui, r
}

func tokenCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == TokenCookieName {
			return c
		}
	}
	return nil
}

func TestLoginSetsCookieAndRedirects(t *testing.T) {
	svc := newStubExamService(t)
	_, router := newTestUI(t, svc)

	form := "email=admin%40exam.test&password=secret"
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Errorf("expected redirect to /admin, got %q", loc)
	}
	c := tokenCookie(t, rec.Result())
	if c == nil || c.Value == "" {
		t.Fatal("expected token cookie to be set")
	}
	if !c.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
}

func TestLoginFailureRedirectsBackWithMessage(t *testing.T) {
	svc := newStubExamService(t)
	_, router := newTestUI(t, svc)

	form := "email=ada%40exam.test&password=wrong"
	req := httptest.NewRequest(http.MethodPost, "/student/login", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.Contains(loc, "/student/login?error=") {
		t.Errorf("expected redirect back to login with error, got %q", loc)
	}
	if !strings.Contains(loc, "Invalid+credentials") {
		t.Errorf("expected the server message to survive verbatim, got %q", loc)
	}
	if tokenCookie(t, rec.Result()) != nil {
		t.Error("expected no token cookie on failed login")
	}
}

func TestGuardRedirectsAnonymousVisitor(t *testing.T) {
	svc := newStubExamService(t)
	_, router := newTestUI(t, svc)

	for _, path := range []string{"/student", "/student/results", "/admin", "/admin/users"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusSeeOther {
			t.Errorf("%s: expected 303, got %d", path, rec.Code)
			continue
		}
		if loc := rec.Header().Get("Location"); loc != "/" {
			t.Errorf("%s: expected redirect to /, got %q", path, loc)
		}
	}
}

func TestGuardRejectsStudentOnAdminRoutes(t *testing.T) {
	svc := newStubExamService(t)
	_, router := newTestUI(t, svc)

	svc.validTokens["student-token"] = model.User{ID: 2, Name: "Bob", Email: "bob@exam.test", Role: model.RoleStudent, Enabled: true}

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "student-token"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
}

func TestGuardAdmitsAdminToStudentRoutes(t *testing.T) {
	svc := newStubExamService(t)
	_, router := newTestUI(t, svc)

	svc.validTokens["admin-token"] = model.User{ID: 3, Name: "Eve", Email: "eve@exam.test", Role: model.RoleAdmin, Enabled: true}

	req := httptest.NewRequest(http.MethodGet, "/student", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "admin-token"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRejectedTokenIsCleared(t *testing.T) {
	svc := newStubExamService(t)
	_, router := newTestUI(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/student", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "revoked-token"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	c := tokenCookie(t, rec.Result())
	if c == nil {
		t.Fatal("expected a clearing Set-Cookie for the rejected token")
	}
	if c.Value != "" || c.MaxAge >= 0 {
		t.Errorf("expected cleared cookie, got value=%q maxage=%d", c.Value, c.MaxAge)
	}
}

func TestUnknownPathRedirectsToEntry(t *testing.T) {
	svc := newStubExamService(t)
	_, router := newTestUI(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/no/such/page", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	svc := newStubExamService(t)
	_, router := newTestUI(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "whatever"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
	c := tokenCookie(t, rec.Result())
	if c == nil || c.MaxAge >= 0 {
		t.Fatal("expected clearing Set-Cookie on logout")
	}
}
