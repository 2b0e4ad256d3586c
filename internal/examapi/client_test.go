package examapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/examdesk/examdesk/internal/logging"
	"github.com/examdesk/examdesk/pkg/model"
)

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(model.User{ID: 1, Role: model.RoleStudent})
	}))
	defer ts.Close()

	c := New(ts.URL, logging.Discard()).WithToken("T1")
	if _, err := c.Profile(context.Background()); err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if gotAuth != "Bearer T1" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer T1")
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	var hasHeader bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth, hasHeader = r.Header.Get("Authorization"), len(r.Header.Values("Authorization")) > 0
		json.NewEncoder(w).Encode([]model.Exam{})
	}))
	defer ts.Close()

	c := New(ts.URL, logging.Discard())
	if _, err := c.ListExams(context.Background()); err != nil {
		t.Fatalf("ListExams failed: %v", err)
	}
	if hasHeader {
		t.Errorf("Authorization header %q sent without a token", gotAuth)
	}
}

func TestClient_Unauthorized_RunsHookAndPropagates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	hookRuns := 0
	c := New(ts.URL, logging.Discard()).WithToken("stale")
	c.OnUnauthorized = func() { hookRuns++ }

	_, err := c.Profile(context.Background())
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("error = %v, want ErrUnauthenticated", err)
	}
	if hookRuns != 1 {
		t.Errorf("OnUnauthorized ran %d times, want 1", hookRuns)
	}
}

// A 401 triggers the teardown hook no matter which endpoint produced it.
func TestClient_Unauthorized_AnyEndpoint(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	calls := []func(c *Client) error{
		func(c *Client) error { _, err := c.ListExams(context.Background()); return err },
		func(c *Client) error { _, err := c.AvailableExams(context.Background()); return err },
		func(c *Client) error { _, err := c.ListUsers(context.Background()); return err },
		func(c *Client) error { err := c.DeleteSubject(context.Background(), 7); return err },
		func(c *Client) error { _, err := c.SubmitExam(context.Background(), 3, nil, 10); return err },
	}

	for i, call := range calls {
		hookRan := false
		c := New(ts.URL, logging.Discard()).WithToken("stale")
		c.OnUnauthorized = func() { hookRan = true }

		if err := call(c); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("call %d: error = %v, want ErrUnauthenticated", i, err)
		}
		if !hookRan {
			t.Errorf("call %d: OnUnauthorized not invoked", i)
		}
	}
}

func TestClient_ServerErrorMessageVerbatim(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Email already registered"})
	}))
	defer ts.Close()

	c := New(ts.URL, logging.Discard())
	_, err := c.RegisterStudent(context.Background(), "A", "a@x.com", "pw")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %T, want *model.APIError", err)
	}
	if apiErr.Message != "Email already registered" {
		t.Errorf("message = %q, want server message verbatim", apiErr.Message)
	}
}

func TestClient_ErrorWithoutPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := New(ts.URL, logging.Discard())
	_, err := c.ListSubjects(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		t.Error("payload-less failure should not decode into APIError")
	}
}

func TestClient_MalformedSuccessPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer ts.Close()

	c := New(ts.URL, logging.Discard()).WithToken("T1")
	if _, err := c.Profile(context.Background()); err == nil {
		t.Fatal("expected decode error for malformed payload")
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(ts.URL, logging.Discard())
	_, err := c.ListExams(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestClient_LoginDecodesTokenAndUser(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@x.com" || body["password"] != "pw" {
			t.Errorf("unexpected body: %v", body)
		}
		json.NewEncoder(w).Encode(AuthResponse{
			Token: "T1",
			User:  model.User{ID: 1, Name: "A", Email: "a@x.com", Role: model.RoleAdmin, Enabled: true},
		})
	}))
	defer ts.Close()

	c := New(ts.URL, logging.Discard())
	resp, err := c.Login(context.Background(), "a@x.com", "pw")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Token != "T1" || resp.User.Role != model.RoleAdmin {
		t.Errorf("unexpected response: %+v", resp)
	}
}
