package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/examdesk/examdesk/internal/auth"
	"github.com/examdesk/examdesk/pkg/model"
)

// RegisterRoutes registers all UI routes on the given router.
func (u *UI) RegisterRoutes(r chi.Router) {
	// Public routes (no auth required).
	r.Get("/", u.HandleHome)
	r.Get("/logout", u.HandleLogout)

	r.Route("/student", func(r chi.Router) {
		r.Get("/login", u.HandleStudentLogin)
		r.Post("/login", u.HandleStudentLoginPost)
		r.Get("/signup", u.HandleStudentSignup)
		r.Post("/signup", u.HandleStudentSignupPost)

		// Admins are allowed through so they can preview the
		// student-facing pages.
		r.Group(func(r chi.Router) {
			r.Use(u.RequireRoles(model.RoleStudent, model.RoleAdmin))
			r.Get("/", u.HandleStudentDashboard)
			r.Route("/exams/{examID}", func(r chi.Router) {
				r.Get("/", u.HandleExamTake)
				r.Post("/answers", u.HandleExamAnswers)
				r.Post("/submit", u.HandleExamSubmit)
			})
			r.Get("/results", u.HandleStudentResults)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/login", u.HandleAdminLogin)
		r.Post("/login", u.HandleAdminLoginPost)

		r.Group(func(r chi.Router) {
			r.Use(u.RequireRoles(model.RoleAdmin))
			r.Get("/", u.HandleAdminDashboard)

			r.Route("/exams", func(r chi.Router) {
				r.Get("/", u.HandleAdminExams)
				r.Post("/", u.HandleAdminExamSave)
				r.Post("/{id}/delete", u.HandleAdminExamDelete)
				r.Get("/{id}/results", u.HandleAdminExamResults)
			})
			r.Route("/questions", func(r chi.Router) {
				r.Get("/", u.HandleAdminQuestions)
				r.Post("/", u.HandleAdminQuestionSave)
				r.Post("/{id}/delete", u.HandleAdminQuestionDelete)
			})
			r.Route("/subjects", func(r chi.Router) {
				r.Get("/", u.HandleAdminSubjects)
				r.Post("/", u.HandleAdminSubjectSave)
				r.Post("/{id}/delete", u.HandleAdminSubjectDelete)
			})
			r.Route("/users", func(r chi.Router) {
				r.Get("/", u.HandleAdminUsers)
				r.Post("/", u.HandleAdminUserSave)
				r.Post("/{id}/delete", u.HandleAdminUserDelete)
				r.Post("/{id}/toggle-status", u.HandleAdminUserToggle)
			})
			r.Get("/results", u.HandleAdminResults)
		})
	})

	// Unknown paths fall back to the public entry page.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, auth.PublicEntry, http.StatusSeeOther)
	})
}
