package model

import "time"

// ExamStatus is derived from the exam's scheduled window; it is never
// stored.
type ExamStatus string

const (
	ExamUpcoming  ExamStatus = "upcoming"
	ExamActive    ExamStatus = "active"
	ExamCompleted ExamStatus = "completed"
)

// Exam is a scheduled examination. The exam service owns the record and
// all scoring logic; this client only displays it and relays edits.
type Exam struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Subject         *Subject   `json:"subject,omitempty"`
	DurationMinutes int        `json:"durationMinutes"`
	TotalMarks      int        `json:"totalMarks"`
	PassMarks       int        `json:"passMarks"`
	TotalQuestions  int        `json:"totalQuestions"`
	Level           string     `json:"level"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         time.Time  `json:"endTime"`
	Questions       []Question `json:"questions,omitempty"`
}

// StatusAt returns the exam's window status at the given instant.
func (e Exam) StatusAt(now time.Time) ExamStatus {
	switch {
	case now.Before(e.StartTime):
		return ExamUpcoming
	case now.After(e.EndTime):
		return ExamCompleted
	default:
		return ExamActive
	}
}

// Status returns the exam's window status now.
func (e Exam) Status() ExamStatus {
	return e.StatusAt(time.Now())
}

// SubjectName returns the subject name, or "" when the service omitted
// the nested subject.
func (e Exam) SubjectName() string {
	if e.Subject == nil {
		return ""
	}
	return e.Subject.Name
}

// ExamDraft holds a student's in-progress answers for one attempt, so a
// page reload does not lose a timed exam. StartedAt anchors the
// time-taken computed at submission.
type ExamDraft struct {
	UserID    int64             `json:"user_id"`
	ExamID    int64             `json:"exam_id"`
	Answers   map[string]string `json:"answers"`
	StartedAt time.Time         `json:"started_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// TimeTakenMinutes returns whole minutes elapsed since the attempt
// started, at least 0.
func (d *ExamDraft) TimeTakenMinutes(now time.Time) int {
	if d.StartedAt.IsZero() || now.Before(d.StartedAt) {
		return 0
	}
	return int(now.Sub(d.StartedAt) / time.Minute)
}
