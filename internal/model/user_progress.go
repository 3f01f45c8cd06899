package model

import (
	"time"
)

type ProgressStatus string

const (
	ProgressNotStarted ProgressStatus = "not_started"
	ProgressInProgress ProgressStatus = "in_progress"
	ProgressCompleted  ProgressStatus = "completed"
	ProgressPaused     ProgressStatus = "paused"
)

// DefaultPassingScore is the rollup-side quiz pass threshold, used when a
// caller does not supply one. The attempt ledger has its own fixed threshold
// in QuizService; the two are deliberately independent.
const DefaultPassingScore = 70.0

type QuizAnswer struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer string `json:"selectedAnswer,omitempty"`
	IsCorrect      bool   `json:"isCorrect"`
	TimeSpent      int    `json:"timeSpent,omitempty"`
}

// QuizResultEntry is the summarized quiz outcome embedded on a progress
// record. AttemptNumber is assigned by AddQuizResult and is independent of
// the ledger's attemptNo.
type QuizResultEntry struct {
	AttemptNumber  int          `json:"attemptNumber"`
	Score          float64      `json:"score"`
	TotalQuestions int          `json:"totalQuestions"`
	CorrectAnswers int          `json:"correctAnswers"`
	TimeSpent      int          `json:"timeSpent"` // minutes
	Passed         bool         `json:"passed"`
	CompletedAt    time.Time    `json:"completedAt"`
	Answers        []QuizAnswer `json:"answers,omitempty"`
}

type ProgressNote struct {
	Content   string    `json:"content"`
	Timestamp float64   `json:"timestamp"` // video position in seconds
	CreatedAt time.Time `json:"createdAt"`
}

type ProgressBookmark struct {
	Title     string    `json:"title"`
	Timestamp float64   `json:"timestamp"`
	CreatedAt time.Time `json:"createdAt"`
}

type CourseRating struct {
	Stars   int       `json:"stars"`
	Review  string    `json:"review,omitempty"`
	RatedAt time.Time `json:"ratedAt"`
}

// UserProgress is the rollup record for one (user, course) pair, enforced
// unique by the compound index. Status moves through a small state machine:
// not_started -> in_progress, in_progress <-> paused, and either of those ->
// completed. completed is terminal.
type UserProgress struct {
	BaseModel
	UserID             uint               `gorm:"uniqueIndex:idx_user_course;index:idx_user_status;not null" json:"userId"`
	CourseID           string             `gorm:"size:20;uniqueIndex:idx_user_course;not null" json:"courseId"`
	Status             ProgressStatus     `gorm:"size:20;default:'not_started';index:idx_user_status" json:"status"`
	ProgressPercentage float64            `gorm:"default:0" json:"progressPercentage"`
	TimeSpent          int                `gorm:"default:0" json:"timeSpent"` // cumulative minutes
	StartedAt          *time.Time         `json:"startedAt,omitempty"`
	LastAccessedAt     time.Time          `json:"lastAccessedAt"`
	CompletedAt        *time.Time         `json:"completedAt,omitempty"`
	QuizResults        []QuizResultEntry  `gorm:"serializer:json" json:"quizResults,omitempty"`
	Notes              []ProgressNote     `gorm:"serializer:json" json:"notes,omitempty"`
	Bookmarks          []ProgressBookmark `gorm:"serializer:json" json:"bookmarks,omitempty"`
	Achievements       []AchievementEntry `gorm:"serializer:json" json:"achievements,omitempty"`
	Rating             *CourseRating      `gorm:"serializer:json" json:"rating,omitempty"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// Start moves a fresh record into in_progress. No-op from any other state.
func (p *UserProgress) Start(now time.Time) {
	if p.Status != ProgressNotStarted {
		return
	}
	p.Status = ProgressInProgress
	p.StartedAt = &now
	p.LastAccessedAt = now
}

// UpdateProgress applies one rollup step: clamp the percentage to [0,100],
// accumulate time (negative deltas are treated as 0), and run the status
// transitions. Reaching 100 completes the course.
func (p *UserProgress) UpdateProgress(percentage float64, deltaMinutes int, now time.Time) {
	if deltaMinutes < 0 {
		deltaMinutes = 0
	}

	p.ProgressPercentage = clampPercent(percentage)
	p.TimeSpent += deltaMinutes
	p.LastAccessedAt = now

	if p.Status == ProgressNotStarted && percentage > 0 {
		p.Status = ProgressInProgress
		p.StartedAt = &now
	}

	if percentage >= 100 {
		p.Complete(now)
	}
}

// Complete forces the terminal state. Idempotent: a record that is already
// completed keeps its original completedAt.
func (p *UserProgress) Complete(now time.Time) {
	p.ProgressPercentage = 100
	p.LastAccessedAt = now
	if p.Status == ProgressCompleted {
		return
	}
	p.Status = ProgressCompleted
	p.CompletedAt = &now
}

// Pause is only effective from in_progress.
func (p *UserProgress) Pause(now time.Time) {
	if p.Status != ProgressInProgress {
		return
	}
	p.Status = ProgressPaused
	p.LastAccessedAt = now
}

// Resume is only effective from paused.
func (p *UserProgress) Resume(now time.Time) {
	if p.Status != ProgressPaused {
		return
	}
	p.Status = ProgressInProgress
	p.LastAccessedAt = now
}

// AddQuizResult appends a summarized quiz outcome, numbering it sequentially
// within this record. passingScore <= 0 selects the default threshold. A
// passing result completes the course regardless of watch percentage.
func (p *UserProgress) AddQuizResult(r QuizResultEntry, passingScore float64, now time.Time) QuizResultEntry {
	if passingScore <= 0 {
		passingScore = DefaultPassingScore
	}

	r.AttemptNumber = len(p.QuizResults) + 1
	r.Passed = r.Score >= passingScore
	r.CompletedAt = now

	p.QuizResults = append(p.QuizResults, r)
	p.LastAccessedAt = now

	if r.Passed && p.Status != ProgressCompleted {
		p.Complete(now)
	}

	return r
}

func (p *UserProgress) AddNote(content string, timestamp float64, now time.Time) {
	p.Notes = append(p.Notes, ProgressNote{Content: content, Timestamp: timestamp, CreatedAt: now})
	p.LastAccessedAt = now
}

func (p *UserProgress) AddBookmark(title string, timestamp float64, now time.Time) {
	p.Bookmarks = append(p.Bookmarks, ProgressBookmark{Title: title, Timestamp: timestamp, CreatedAt: now})
	p.LastAccessedAt = now
}

func (p *UserProgress) Rate(stars int, review string, now time.Time) {
	p.Rating = &CourseRating{Stars: stars, Review: review, RatedAt: now}
}

// BestQuizScore returns the highest embedded quiz score, or -1 when none.
func (p *UserProgress) BestQuizScore() float64 {
	best := -1.0
	for _, r := range p.QuizResults {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
