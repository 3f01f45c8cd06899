package model

import "time"

// QuizAttempt is one row of the append-only attempt ledger. AttemptNo is the
// prior maximum for (userID, courseID, quizID) plus one; the unique index
// turns a concurrent duplicate into a constraint error instead of a silent
// double entry. Rows are never updated after creation.
type QuizAttempt struct {
	BaseModel
	UserID         uint         `gorm:"uniqueIndex:idx_quiz_attempt_no;index;not null" json:"userId"`
	CourseID       string       `gorm:"size:20;uniqueIndex:idx_quiz_attempt_no;index;not null" json:"courseId"`
	QuizID         string       `gorm:"size:40;uniqueIndex:idx_quiz_attempt_no;not null" json:"quizId"`
	AttemptNo      int          `gorm:"uniqueIndex:idx_quiz_attempt_no;not null" json:"attemptNo"`
	StartedAt      time.Time    `json:"startedAt"`
	SubmittedAt    *time.Time   `json:"submittedAt,omitempty"`
	Score          float64      `json:"score"`
	TotalQuestions int          `json:"totalQuestions"`
	Correct        int          `json:"correct"`
	TimeMs         int64        `gorm:"default:0" json:"timeMs"`
	Passed         bool         `json:"passed"`
	Answers        []QuizAnswer `gorm:"serializer:json" json:"answers,omitempty"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
