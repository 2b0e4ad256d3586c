package ui

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/examdesk/examdesk/internal/auth"
	"github.com/examdesk/examdesk/internal/examapi"
	"github.com/examdesk/examdesk/pkg/model"
)

// HandleAdminDashboard renders the admin landing page with platform
// totals and recent results.
func (u *UI) HandleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	api := u.apiFor(w, r, sess.Token)

	summary, err := api.Dashboard(r.Context())
	if err != nil {
		u.relayError(w, r, auth.AdminLanding, err)
		return
	}

	data := map[string]any{
		"Title":   "Dashboard - ExamDesk",
		"Session": sess,
		"Summary": summary,
		"Error":   r.URL.Query().Get("error"),
	}
	u.render(w, "admin/dashboard", data)
}

// --- Exams ---

// HandleAdminExams lists exams with the create/edit form. The edit
// query parameter prefills the form from an existing exam.
func (u *UI) HandleAdminExams(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	api := u.apiFor(w, r, sess.Token)

	exams, err := api.ListExams(r.Context())
	if err != nil {
		u.relayError(w, r, auth.AdminLanding, err)
		return
	}
	subjects, err := api.ListSubjects(r.Context())
	if err != nil {
		u.relayError(w, r, auth.AdminLanding, err)
		return
	}

	data := map[string]any{
		"Title":    "Exams - ExamDesk",
		"Session":  sess,
		"Exams":    exams,
		"Subjects": subjects,
		"EditID":   r.URL.Query().Get("edit"),
		"Error":    r.URL.Query().Get("error"),
	}
	u.render(w, "admin/exams", data)
}

// HandleAdminExamSave creates or updates an exam depending on whether
// the form carries an id.
func (u *UI) HandleAdminExamSave(w http.ResponseWriter, r *http.Request) {
	const backTo = "/admin/exams"
	sess := SessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, backTo, "Invalid request")
		return
	}

	req := &examapi.ExamRequest{
		Title:           strings.TrimSpace(r.FormValue("title")),
		Description:     strings.TrimSpace(r.FormValue("description")),
		SubjectID:       formInt64(r, "subjectId"),
		DurationMinutes: formInt(r, "durationMinutes"),
		TotalMarks:      formInt(r, "totalMarks"),
		PassMarks:       formInt(r, "passMarks"),
		TotalQuestions:  formInt(r, "totalQuestions"),
		Level:           r.FormValue("level"),
		StartTime:       r.FormValue("startTime"),
		EndTime:         r.FormValue("endTime"),
	}
	if req.Title == "" {
		redirectWithError(w, r, backTo, "Title is required")
		return
	}

	api := u.apiFor(w, r, sess.Token)
	var err error
	if id := formInt64(r, "id"); id != 0 {
		_, err = api.UpdateExam(r.Context(), id, req)
	} else {
		_, err = api.CreateExam(r.Context(), req)
	}
	if err != nil {
		u.relayError(w, r, backTo, err)
		return
	}
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}

// HandleAdminExamDelete removes an exam.
func (u *UI) HandleAdminExamDelete(w http.ResponseWriter, r *http.Request) {
	const backTo = "/admin/exams"
	sess := SessionFromContext(r.Context())

	id, ok := u.idParam(w, r)
	if !ok {
		return
	}
	if err := u.apiFor(w, r, sess.Token).DeleteExam(r.Context(), id); err != nil {
		u.relayError(w, r, backTo, err)
		return
	}
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}

// HandleAdminExamResults lists the graded submissions for one exam.
func (u *UI) HandleAdminExamResults(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	id, ok := u.idParam(w, r)
	if !ok {
		return
	}
	results, err := u.apiFor(w, r, sess.Token).ExamResults(r.Context(), id)
	if err != nil {
		u.relayError(w, r, "/admin/exams", err)
		return
	}

	data := map[string]any{
		"Title":   "Exam Results - ExamDesk",
		"Session": sess,
		"Results": results,
		"ExamID":  id,
	}
	u.render(w, "admin/exam_results", data)
}

// --- Questions ---

// HandleAdminQuestions lists questions with the create/edit form.
func (u *UI) HandleAdminQuestions(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	api := u.apiFor(w, r, sess.Token)

	questions, err := api.ListQuestions(r.Context())
	if err != nil {
		u.relayError(w, r, auth.AdminLanding, err)
		return
	}
	exams, err := api.ListExams(r.Context())
	if err != nil {
		u.relayError(w, r, auth.AdminLanding, err)
		return
	}
	subjects, err := api.ListSubjects(r.Context())
	if err != nil {
		u.relayError(w, r, auth.AdminLanding, err)
		return
	}

	data := map[string]any{
		"Title":     "Questions - ExamDesk",
		"Session":   sess,
		"Questions": questions,
		"Exams":     exams,
		"Subjects":  subjects,
		"EditID":    r.URL.Query().Get("edit"),
		"Error":     r.URL.Query().Get("error"),
	}
	u.render(w, "admin/questions", data)
}

// HandleAdminQuestionSave creates or updates a question.
func (u *UI) HandleAdminQuestionSave(w http.ResponseWriter, r *http.Request) {
	const backTo = "/admin/questions"
	sess := SessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, backTo, "Invalid request")
		return
	}

	req := &examapi.QuestionRequest{
		QuestionText:  strings.TrimSpace(r.FormValue("questionText")),
		OptionOne:     r.FormValue("optionOne"),
		OptionTwo:     r.FormValue("optionTwo"),
		OptionThree:   r.FormValue("optionThree"),
		OptionFour:    r.FormValue("optionFour"),
		CorrectAnswer: r.FormValue("correctAnswer"),
		Marks:         formInt(r, "marks"),
		ExamID:        formInt64(r, "examId"),
		SubjectID:     formInt64(r, "subjectId"),
	}
	if req.QuestionText == "" {
		redirectWithError(w, r, backTo, "Question text is required")
		return
	}

	api := u.apiFor(w, r, sess.Token)
	var err error
	if id := formInt64(r, "id"); id != 0 {
		_, err = api.UpdateQuestion(r.Context(), id, req)
	} else {
		_, err = api.CreateQuestion(r.Context(), req)
	}
	if err != nil {
		u.relayError(w, r, backTo, err)
		return
	}
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}

// HandleAdminQuestionDelete removes a question.
func (u *UI) HandleAdminQuestionDelete(w http.ResponseWriter, r *http.Request) {
	const backTo = "/admin/questions"
	sess := SessionFromContext(r.Context())

	id, ok := u.idParam(w, r)
	if !ok {
		return
	}
	if err := u.apiFor(w, r, sess.Token).DeleteQuestion(r.Context(), id); err != nil {
		u.relayError(w, r, backTo, err)
		return
	}
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}

// --- Subjects ---

// HandleAdminSubjects lists subjects with the create/edit form.
func (u *UI) HandleAdminSubjects(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	subjects, err := u.apiFor(w, r, sess.Token).ListSubjects(r.Context())
	if err != nil {
		u.relayError(w, r, auth.AdminLanding, err)
		return
	}

	data := map[string]any{
		"Title":    "Subjects - ExamDesk",
		"Session":  sess,
		"Subjects": subjects,
		"EditID":   r.URL.Query().Get("edit"),
		"Error":    r.URL.Query().Get("error"),
	}
	u.render(w, "admin/subjects", data)
}

// HandleAdminSubjectSave creates or updates a subject.
func (u *UI) HandleAdminSubjectSave(w http.ResponseWriter, r *http.Request) {
	const backTo = "/admin/subjects"
	sess := SessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, backTo, "Invalid request")
		return
	}

	req := &examapi.SubjectRequest{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
	}
	if req.Name == "" {
		redirectWithError(w, r, backTo, "Name is required")
		return
	}

	api := u.apiFor(w, r, sess.Token)
	var err error
	if id := formInt64(r, "id"); id != 0 {
		_, err = api.UpdateSubject(r.Context(), id, req)
	} else {
		_, err = api.CreateSubject(r.Context(), req)
	}
	if err != nil {
		u.relayError(w, r, backTo, err)
		return
	}
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}

// HandleAdminSubjectDelete removes a subject.
func (u *UI) HandleAdminSubjectDelete(w http.ResponseWriter, r *http.Request) {
	const backTo = "/admin/subjects"
	sess := SessionFromContext(r.Context())

	id, ok := u.idParam(w, r)
	if !ok {
		return
	}
	if err := u.apiFor(w, r, sess.Token).DeleteSubject(r.Context(), id); err != nil {
		u.relayError(w, r, backTo, err)
		return
	}
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}

// --- Users ---

// HandleAdminUsers lists user accounts with the create/edit form.
func (u *UI) HandleAdminUsers(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	users, err := u.apiFor(w, r, sess.Token).ListUsers(r.Context())
	if err != nil {
		u.relayError(w, r, auth.AdminLanding, err)
		return
	}

	data := map[string]any{
		"Title":   "Users - ExamDesk",
		"Session": sess,
		"Users":   users,
		"EditID":  r.URL.Query().Get("edit"),
		"Error":   r.URL.Query().Get("error"),
	}
	u.render(w, "admin/users", data)
}

// HandleAdminUserSave creates or updates a user account. An empty
// password on update keeps the existing one.
func (u *UI) HandleAdminUserSave(w http.ResponseWriter, r *http.Request) {
	const backTo = "/admin/users"
	sess := SessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, backTo, "Invalid request")
		return
	}

	req := &examapi.UserRequest{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
		Role:     parseRole(r.FormValue("role")),
	}
	if req.Name == "" || req.Email == "" {
		redirectWithError(w, r, backTo, "Name and email are required")
		return
	}

	api := u.apiFor(w, r, sess.Token)
	var err error
	if id := formInt64(r, "id"); id != 0 {
		_, err = api.UpdateUser(r.Context(), id, req)
	} else {
		if req.Password == "" {
			redirectWithError(w, r, backTo, "Password is required")
			return
		}
		_, err = api.CreateUser(r.Context(), req)
	}
	if err != nil {
		u.relayError(w, r, backTo, err)
		return
	}
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}

// HandleAdminUserDelete removes a user account.
func (u *UI) HandleAdminUserDelete(w http.ResponseWriter, r *http.Request) {
	const backTo = "/admin/users"
	sess := SessionFromContext(r.Context())

	id, ok := u.idParam(w, r)
	if !ok {
		return
	}
	if err := u.apiFor(w, r, sess.Token).DeleteUser(r.Context(), id); err != nil {
		u.relayError(w, r, backTo, err)
		return
	}
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}

// HandleAdminUserToggle flips a user's enabled flag.
func (u *UI) HandleAdminUserToggle(w http.ResponseWriter, r *http.Request) {
	const backTo = "/admin/users"
	sess := SessionFromContext(r.Context())

	id, ok := u.idParam(w, r)
	if !ok {
		return
	}
	if _, err := u.apiFor(w, r, sess.Token).ToggleUserStatus(r.Context(), id); err != nil {
		u.relayError(w, r, backTo, err)
		return
	}
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}

// --- Results ---

// HandleAdminResults lists every graded submission with aggregate
// statistics.
func (u *UI) HandleAdminResults(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	api := u.apiFor(w, r, sess.Token)

	results, err := api.AdminResults(r.Context())
	if err != nil {
		u.relayError(w, r, auth.AdminLanding, err)
		return
	}
	stats, err := api.ResultStatistics(r.Context())
	if err != nil {
		u.relayError(w, r, auth.AdminLanding, err)
		return
	}

	data := map[string]any{
		"Title":   "Results - ExamDesk",
		"Session": sess,
		"Results": results,
		"Stats":   stats,
	}
	u.render(w, "admin/results", data)
}

// --- Helpers ---

func (u *UI) idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(u.pathParam(r, "id"), 10, 64)
	if err != nil {
		u.renderError(w, http.StatusNotFound, "Not found")
		return 0, false
	}
	return id, true
}

func parseRole(s string) model.Role {
	if strings.EqualFold(strings.TrimSpace(s), string(model.RoleAdmin)) {
		return model.RoleAdmin
	}
	return model.RoleStudent
}

func formInt(r *http.Request, name string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(r.FormValue(name)))
	return n
}

func formInt64(r *http.Request, name string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(r.FormValue(name)), 10, 64)
	return n
}
