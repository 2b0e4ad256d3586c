package model

import "time"

// ResultStatus is the pass/fail verdict computed by the exam service.
type ResultStatus string

const (
	ResultPass ResultStatus = "PASS"
	ResultFail ResultStatus = "FAIL"
)

// Result is a graded exam submission. Scoring belongs to the exam
// service; the client renders what it is given.
type Result struct {
	ID               int64        `json:"id"`
	User             *User        `json:"user,omitempty"`
	Exam             *Exam        `json:"exam,omitempty"`
	Score            int          `json:"score"`
	TotalMarks       int          `json:"totalMarks"`
	Percentage       float64      `json:"percentage"`
	Status           ResultStatus `json:"status"`
	TimeTakenMinutes int          `json:"timeTakenMinutes"`
	SubmittedAt      time.Time    `json:"submittedAt"`
}

// Passed reports whether the submission met the pass marks.
func (r *Result) Passed() bool {
	return r.Status == ResultPass
}

// ScorePercent returns the score as a percentage of total marks.
// Falls back to the service-provided percentage when marks are missing.
func (r *Result) ScorePercent() float64 {
	if r.TotalMarks <= 0 {
		return r.Percentage
	}
	return float64(r.Score) / float64(r.TotalMarks) * 100
}

// ResultStatistics summarizes all results for the admin view.
type ResultStatistics struct {
	TotalResults int     `json:"totalResults"`
	PassCount    int     `json:"passCount"`
	FailCount    int     `json:"failCount"`
	AverageScore float64 `json:"averageScore"`
}

// DashboardSummary is the admin landing page payload.
type DashboardSummary struct {
	TotalUsers     int      `json:"totalUsers"`
	TotalExams     int      `json:"totalExams"`
	TotalQuestions int      `json:"totalQuestions"`
	TotalSubjects  int      `json:"totalSubjects"`
	RecentResults  []Result `json:"recentResults"`
}
