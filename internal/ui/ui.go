package ui

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/examdesk/examdesk/internal/examapi"
	"github.com/examdesk/examdesk/internal/store"
)

// UI handles the web user interface. Every view is a thin relay: it
// reads the session, forwards the operation to the exam service with
// the caller's token, and renders the result.
type UI struct {
	api       *examapi.Client
	sessions  *SessionManager
	store     store.Store
	logger    *slog.Logger
	startTime time.Time
	secure    bool // Use secure cookies (HTTPS)
}

// Config holds UI configuration.
type Config struct {
	Secure bool // Use secure cookies for HTTPS
}

// New creates a new UI handler.
func New(api *examapi.Client, st store.Store, logger *slog.Logger, cfg Config) *UI {
	return &UI{
		api:       api,
		sessions:  NewSessionManager(api, st),
		store:     st,
		logger:    logger.With("component", "ui"),
		startTime: time.Now(),
		secure:    cfg.Secure,
	}
}

// apiFor returns a client bound to the request's session token. A 401
// from any call through it tears the session down: cookie cleared,
// cached verification dropped.
func (u *UI) apiFor(w http.ResponseWriter, r *http.Request, token string) *examapi.Client {
	c := u.api.WithToken(token)
	c.OnUnauthorized = func() {
		ClearTokenCookie(w)
		u.sessions.Forget(r, token)
	}
	return c
}

func (u *UI) pathParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

func (u *UI) render(w http.ResponseWriter, template string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := renderTemplate(&buf, template, data); err != nil {
		u.logger.Error("template render failed", "template", template, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	buf.WriteTo(w)
}

func (u *UI) renderError(w http.ResponseWriter, status int, message string) {
	data := map[string]any{
		"Title":   "Error - ExamDesk",
		"Message": message,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	var buf bytes.Buffer
	if err := renderTemplate(&buf, "error", data); err != nil {
		u.logger.Error("template render failed", "template", "error", "error", err)
		return
	}
	buf.WriteTo(w)
}
