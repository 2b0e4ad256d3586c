package model

// Question is a multiple-choice question with four options. The correct
// answer is only present in admin responses; student-facing payloads
// omit it.
type Question struct {
	ID            int64  `json:"id"`
	QuestionText  string `json:"questionText"`
	OptionOne     string `json:"optionOne"`
	OptionTwo     string `json:"optionTwo"`
	OptionThree   string `json:"optionThree"`
	OptionFour    string `json:"optionFour"`
	CorrectAnswer string `json:"correctAnswer,omitempty"`
	Marks         int    `json:"marks"`
	ExamID        int64  `json:"examId,omitempty"`
	SubjectID     int64  `json:"subjectId,omitempty"`
}

// Options returns the four choices in display order.
func (q Question) Options() []string {
	return []string{q.OptionOne, q.OptionTwo, q.OptionThree, q.OptionFour}
}

// Subject groups exams and questions by discipline.
type Subject struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
