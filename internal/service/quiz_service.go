package service

import (
	"errors"
	"time"

	"signlearn_backend/internal/model"
	"signlearn_backend/internal/repository"
	"signlearn_backend/internal/util"
	"signlearn_backend/pkg/logger"
	"signlearn_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LedgerPassScore is the fixed pass threshold for the attempt ledger. The
// embedded progress results use their own configurable threshold.
const LedgerPassScore = 70.0

type QuizService struct {
	AttemptRepo  *repository.QuizAttemptRepository
	ProgressRepo *repository.ProgressRepository
	UserRepo     *repository.UserRepository
	CourseRepo   *repository.CourseRepository
}

func NewQuizService(
	attemptRepo *repository.QuizAttemptRepository,
	progressRepo *repository.ProgressRepository,
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
) *QuizService {
	return &QuizService{
		AttemptRepo:  attemptRepo,
		ProgressRepo: progressRepo,
		UserRepo:     userRepo,
		CourseRepo:   courseRepo,
	}
}

type QuizAttemptInput struct {
	UserID         uint               `json:"userId" binding:"required"`
	Score          float64            `json:"score"`
	TotalQuestions int                `json:"totalQuestions"`
	CorrectAnswers int                `json:"correctAnswers"`
	TimeMs         int64              `json:"timeMs"`
	StartedAt      *time.Time         `json:"startedAt"`
	Answers        []model.QuizAnswer `json:"answers"`
	PassingScore   float64            `json:"passingScore"`
}

type QuizAttemptResult struct {
	Attempt     *model.QuizAttempt    `json:"attempt"`
	QuizResult  model.QuizResultEntry `json:"quizResult"`
	ProgressNow model.ProgressStatus  `json:"progressStatus"`
}

// SubmitAttempt appends one row to the attempt ledger and mirrors the outcome
// into the progress record. The attempt number is the prior maximum plus one;
// the unique ledger index turns a concurrent duplicate into a conflict error
// instead of a silent double entry.
func (s *QuizService) SubmitAttempt(courseID, quizID string, input QuizAttemptInput) (*QuizAttemptResult, error) {
	score := clampPercentValue(input.Score)
	now := time.Now()

	max, err := s.AttemptRepo.MaxAttemptNo(input.UserID, courseID, quizID)
	if err != nil {
		return nil, err
	}

	startedAt := now
	if input.StartedAt != nil {
		startedAt = *input.StartedAt
	}

	attempt := &model.QuizAttempt{
		UserID:         input.UserID,
		CourseID:       courseID,
		QuizID:         quizID,
		AttemptNo:      max + 1,
		StartedAt:      startedAt,
		SubmittedAt:    &now,
		Score:          score,
		TotalQuestions: input.TotalQuestions,
		Correct:        input.CorrectAnswers,
		TimeMs:         input.TimeMs,
		Passed:         score >= LedgerPassScore,
		Answers:        input.Answers,
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAttemptConflict
		}
		return nil, err
	}

	outcome := "failed"
	if attempt.Passed {
		outcome = "passed"
	}
	monitoring.QuizAttemptCounter.WithLabelValues(outcome).Inc()

	progress, err := s.ProgressRepo.FindOrCreate(input.UserID, courseID, true)
	if err != nil {
		logger.Log.Error("progress rollup failed after attempt append",
			zap.Uint("userId", input.UserID),
			zap.String("courseId", courseID),
			zap.String("quizId", quizID),
			zap.Error(err))
		return nil, err
	}

	wasCompleted := progress.Status == model.ProgressCompleted
	entry := progress.AddQuizResult(model.QuizResultEntry{
		Score:          score,
		TotalQuestions: input.TotalQuestions,
		CorrectAnswers: input.CorrectAnswers,
		TimeSpent:      util.MsToMinutes(input.TimeMs),
		Answers:        input.Answers,
	}, input.PassingScore, now)

	if err := s.ProgressRepo.Save(progress); err != nil {
		return nil, err
	}

	if !wasCompleted && progress.Status == model.ProgressCompleted {
		if err := s.CourseRepo.IncrementCompletions(courseID); err != nil {
			logger.Log.Warn("course completion counter update failed",
				zap.String("courseId", courseID), zap.Error(err))
		}
		if user, err := s.UserRepo.FindByID(input.UserID); err == nil {
			user.Progress.TotalCoursesCompleted++
			user.Progress.LastActivityDate = now
			if err := s.UserRepo.UpdateStats(user.ID, user.Progress); err != nil {
				logger.Log.Warn("user stats update failed", zap.Uint("userId", user.ID), zap.Error(err))
			}
		}
	}

	return &QuizAttemptResult{
		Attempt:     attempt,
		QuizResult:  entry,
		ProgressNow: progress.Status,
	}, nil
}

func (s *QuizService) ListAttempts(userID uint, courseID, quizID string) ([]model.QuizAttempt, error) {
	return s.AttemptRepo.ListByKey(userID, courseID, quizID)
}

func clampPercentValue(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
