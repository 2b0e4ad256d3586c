package ui

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/examdesk/examdesk/internal/auth"
	"github.com/examdesk/examdesk/pkg/model"
)

// HandleStudentDashboard lists the exams visible to the student,
// grouped by schedule status.
func (u *UI) HandleStudentDashboard(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	api := u.apiFor(w, r, sess.Token)

	exams, err := api.AvailableExams(r.Context())
	if err != nil {
		u.relayError(w, r, auth.StudentLanding, err)
		return
	}

	now := time.Now()
	stats := map[string]int{}
	for _, e := range exams {
		switch e.StatusAt(now) {
		case model.ExamUpcoming:
			stats["Upcoming"]++
		case model.ExamActive:
			stats["Active"]++
		case model.ExamCompleted:
			stats["Completed"]++
		}
	}

	data := map[string]any{
		"Title":   "My Exams - ExamDesk",
		"Session": sess,
		"Exams":   exams,
		"Stats":   stats,
		"Now":     now,
		"Error":   r.URL.Query().Get("error"),
	}
	u.render(w, "student/dashboard", data)
}

// HandleExamTake renders the exam attempt page. The first visit starts
// the attempt clock; revisits restore previously saved answers without
// resetting it.
func (u *UI) HandleExamTake(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	examID, ok := u.examIDParam(w, r)
	if !ok {
		return
	}

	exam, err := u.findAvailableExam(w, r, sess.Token, examID)
	if err != nil {
		u.relayError(w, r, auth.StudentLanding, err)
		return
	}
	if exam == nil {
		u.renderError(w, http.StatusNotFound, "Exam not found")
		return
	}

	draft, err := u.store.GetDraft(r.Context(), sess.User.ID, examID)
	if err != nil {
		u.logger.Error("load draft failed", "exam", examID, "error", err)
	}
	if draft == nil {
		draft = &model.ExamDraft{
			UserID:    sess.User.ID,
			ExamID:    examID,
			Answers:   map[string]string{},
			StartedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := u.store.PutDraft(r.Context(), draft); err != nil {
			u.logger.Error("start draft failed", "exam", examID, "error", err)
		}
	}

	elapsed := time.Since(draft.StartedAt)
	remaining := time.Duration(exam.DurationMinutes)*time.Minute - elapsed
	if remaining < 0 {
		remaining = 0
	}

	data := map[string]any{
		"Title":            exam.Title + " - ExamDesk",
		"Session":          sess,
		"Exam":             exam,
		"Answers":          draft.Answers,
		"RemainingMinutes": int(remaining / time.Minute),
		"Error":            r.URL.Query().Get("error"),
	}
	u.render(w, "student/exam", data)
}

// HandleExamAnswers saves the attempt's current answers without
// submitting. The attempt clock is untouched.
func (u *UI) HandleExamAnswers(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	examID, ok := u.examIDParam(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, examPath(examID), http.StatusSeeOther)
		return
	}

	draft, _ := u.store.GetDraft(r.Context(), sess.User.ID, examID)
	if draft == nil {
		draft = &model.ExamDraft{
			UserID:    sess.User.ID,
			ExamID:    examID,
			Answers:   map[string]string{},
			StartedAt: time.Now(),
		}
	}
	mergeAnswers(draft.Answers, r.Form)
	draft.UpdatedAt = time.Now()

	if err := u.store.PutDraft(r.Context(), draft); err != nil {
		u.logger.Error("save draft failed", "exam", examID, "error", err)
	}
	http.Redirect(w, r, examPath(examID), http.StatusSeeOther)
}

// HandleExamSubmit sends the attempt for grading. Time taken comes from
// the draft's start, the draft is discarded once the service accepts
// the submission, and the graded result is shown immediately.
func (u *UI) HandleExamSubmit(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	examID, ok := u.examIDParam(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, examPath(examID), "Invalid request")
		return
	}

	now := time.Now()
	answers := map[string]string{}
	timeTaken := 0
	if draft, _ := u.store.GetDraft(r.Context(), sess.User.ID, examID); draft != nil {
		answers = draft.Answers
		timeTaken = draft.TimeTakenMinutes(now)
	}
	mergeAnswers(answers, r.Form)

	api := u.apiFor(w, r, sess.Token)
	result, err := api.SubmitExam(r.Context(), examID, answers, timeTaken)
	if err != nil {
		u.relayError(w, r, examPath(examID), err)
		return
	}

	if err := u.store.DeleteDraft(r.Context(), sess.User.ID, examID); err != nil {
		u.logger.Error("discard draft failed", "exam", examID, "error", err)
	}
	u.logger.Info("exam submitted", "exam", examID, "user", sess.User.ID, "status", result.Status)

	data := map[string]any{
		"Title":   "Result - ExamDesk",
		"Session": sess,
		"Result":  result,
	}
	u.render(w, "student/result", data)
}

// HandleStudentResults lists the student's own graded submissions.
func (u *UI) HandleStudentResults(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	api := u.apiFor(w, r, sess.Token)

	results, err := api.StudentResults(r.Context())
	if err != nil {
		u.relayError(w, r, auth.StudentLanding, err)
		return
	}

	data := map[string]any{
		"Title":   "My Results - ExamDesk",
		"Session": sess,
		"Results": results,
	}
	u.render(w, "student/results", data)
}

// findAvailableExam locates one exam in the student's available list.
// The exam service has no single-exam route for students.
func (u *UI) findAvailableExam(w http.ResponseWriter, r *http.Request, token string, examID int64) (*model.Exam, error) {
	api := u.apiFor(w, r, token)
	exams, err := api.AvailableExams(r.Context())
	if err != nil {
		return nil, err
	}
	for i := range exams {
		if exams[i].ID == examID {
			return &exams[i], nil
		}
	}
	return nil, nil
}

func (u *UI) examIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(u.pathParam(r, "examID"), 10, 64)
	if err != nil {
		u.renderError(w, http.StatusNotFound, "Exam not found")
		return 0, false
	}
	return id, true
}

func examPath(examID int64) string {
	return "/student/exams/" + strconv.FormatInt(examID, 10)
}

// mergeAnswers folds form fields named q_<questionID> into the answer
// map, keyed by question ID.
func mergeAnswers(answers map[string]string, form map[string][]string) {
	for field, values := range form {
		qid, found := strings.CutPrefix(field, "q_")
		if !found || qid == "" || len(values) == 0 {
			continue
		}
		answers[qid] = values[0]
	}
}
