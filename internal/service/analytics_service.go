package service

import (
	"math"
	"time"

	"signlearn_backend/internal/model"
	"signlearn_backend/internal/repository"
)

type AnalyticsService struct {
	EventRepo    *repository.LearningEventRepository
	ProgressRepo *repository.ProgressRepository
	AttemptRepo  *repository.QuizAttemptRepository
	UserRepo     *repository.UserRepository
}

func NewAnalyticsService(
	eventRepo *repository.LearningEventRepository,
	progressRepo *repository.ProgressRepository,
	attemptRepo *repository.QuizAttemptRepository,
	userRepo *repository.UserRepository,
) *AnalyticsService {
	return &AnalyticsService{
		EventRepo:    eventRepo,
		ProgressRepo: progressRepo,
		AttemptRepo:  attemptRepo,
		UserRepo:     userRepo,
	}
}

// UserSummary is the per-user analytics rollup. Every field is 0 for a user
// with no recorded activity.
type UserSummary struct {
	WeeklyMinutes     int `json:"weeklyMinutes"`
	CompletionPct     int `json:"completionPct"`
	TotalCompleted    int `json:"totalCompleted"`
	CoursesInProgress int `json:"coursesInProgress"`
	AvgQuiz           int `json:"avgQuiz"`
	QuizAttempts      int `json:"quizAttempts"`
	QuizPassRate      int `json:"quizPassRate"`
	CurrentStreak     int `json:"currentStreak"`
}

// Summary computes the dashboard numbers for one user. weeklyMinutes floors
// the trailing-7-day activeMs sum; the percentage fields round to the nearest
// whole number.
func (s *AnalyticsService) Summary(userID uint) (*UserSummary, error) {
	summary := &UserSummary{}
	now := time.Now()

	weekMs, err := s.EventRepo.SumActiveMsSince(userID, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	summary.WeeklyMinutes = int(weekMs / 60000)

	records, err := s.ProgressRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	completed := 0
	inProgress := 0
	for _, p := range records {
		switch p.Status {
		case model.ProgressCompleted:
			completed++
		case model.ProgressInProgress:
			inProgress++
		}
	}
	summary.TotalCompleted = completed
	summary.CoursesInProgress = inProgress
	if len(records) > 0 {
		summary.CompletionPct = roundPct(float64(completed) * 100 / float64(len(records)))
	}

	attempts, avgScore, passed, err := s.AttemptRepo.UserStats(userID)
	if err != nil {
		return nil, err
	}
	summary.QuizAttempts = int(attempts)
	if attempts > 0 {
		summary.AvgQuiz = roundPct(avgScore)
		summary.QuizPassRate = roundPct(float64(passed) * 100 / float64(attempts))
	}

	// Streak is read back, never recomputed here; only the profile-load
	// path advances it.
	if user, err := s.UserRepo.FindByID(userID); err == nil {
		summary.CurrentStreak = user.Progress.CurrentStreak
	}

	return summary, nil
}

func roundPct(v float64) int {
	return int(math.Round(v))
}
