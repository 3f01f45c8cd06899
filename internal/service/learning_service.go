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

// LearningService owns the telemetry ingestion path and the progress rollup.
type LearningService struct {
	EventRepo    *repository.LearningEventRepository
	ProgressRepo *repository.ProgressRepository
	UserRepo     *repository.UserRepository
	CourseRepo   *repository.CourseRepository
}

func NewLearningService(
	eventRepo *repository.LearningEventRepository,
	progressRepo *repository.ProgressRepository,
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
) *LearningService {
	return &LearningService{
		EventRepo:    eventRepo,
		ProgressRepo: progressRepo,
		UserRepo:     userRepo,
		CourseRepo:   courseRepo,
	}
}

type LearningEventInput struct {
	UserID             uint              `json:"userId" binding:"required"`
	CourseID           string            `json:"courseId" binding:"required"`
	Type               model.EventType   `json:"type" binding:"required"`
	SessionID          string            `json:"sessionId"`
	ActiveMs           int64             `json:"activeMs"`
	ProgressPercentage *float64          `json:"progressPercentage"`
	Ts                 *time.Time        `json:"ts"`
	Source             string            `json:"source"`
	UserAgent          string            `json:"userAgent"`
	Meta               map[string]string `json:"meta"`
}

// RecordEvent appends a telemetry event and folds it into the (user, course)
// progress record. The append is the source of truth: if it fails the whole
// request fails. A rollup failure after a successful append is logged and
// surfaced, leaving the event in place for later reconciliation.
func (s *LearningService) RecordEvent(input LearningEventInput) (*model.LearningEvent, error) {
	if !model.ValidEventType(input.Type) {
		return nil, util.ErrInvalidEventType
	}

	now := time.Now()
	ts := now
	if input.Ts != nil {
		ts = *input.Ts
	}
	source := input.Source
	if source == "" {
		source = "web"
	}
	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = model.GenerateSessionID()
	}

	event := &model.LearningEvent{
		UserID:             input.UserID,
		CourseID:           input.CourseID,
		Type:               input.Type,
		SessionID:          sessionID,
		ActiveMs:           input.ActiveMs,
		ProgressPercentage: input.ProgressPercentage,
		Ts:                 ts,
		Source:             source,
		UserAgent:          input.UserAgent,
		Meta:               input.Meta,
	}
	if err := s.EventRepo.Create(event); err != nil {
		return nil, err
	}
	monitoring.LearningEventCounter.WithLabelValues(string(input.Type)).Inc()

	progress, err := s.ProgressRepo.FindOrCreate(input.UserID, input.CourseID, true)
	if err != nil {
		logger.Log.Error("progress rollup failed after event append",
			zap.Uint("userId", input.UserID),
			zap.String("courseId", input.CourseID),
			zap.Uint("eventId", event.ID),
			zap.Error(err))
		return nil, err
	}

	pct := progress.ProgressPercentage
	if input.ProgressPercentage != nil {
		pct = *input.ProgressPercentage
	}
	if err := s.applyRollup(progress, pct, util.MsToMinutes(input.ActiveMs), now); err != nil {
		logger.Log.Error("progress rollup failed after event append",
			zap.Uint("userId", input.UserID),
			zap.String("courseId", input.CourseID),
			zap.Uint("eventId", event.ID),
			zap.Error(err))
		return nil, err
	}

	return event, nil
}

type ProgressUpdateInput struct {
	ProgressPercentage float64 `json:"progressPercentage"`
	TimeSpent          int     `json:"timeSpent"` // delta minutes
}

// UpdateProgress is the manual rollup path. Unlike the event path, a record
// created here starts in not_started until the percentage moves.
func (s *LearningService) UpdateProgress(userID uint, courseID string, input ProgressUpdateInput) (*model.UserProgress, error) {
	progress, err := s.ProgressRepo.FindOrCreate(userID, courseID, false)
	if err != nil {
		return nil, err
	}
	if err := s.applyRollup(progress, input.ProgressPercentage, input.TimeSpent, time.Now()); err != nil {
		return nil, err
	}
	return progress, nil
}

// applyRollup runs the state machine, persists the record, and applies the
// side effects a transition demands: started bumps totalCoursesStarted,
// completion bumps totalCoursesCompleted and the course completion counter,
// and any activity stamps lastActivityDate. Streaks are left alone; they only
// advance on the profile-load path.
func (s *LearningService) applyRollup(progress *model.UserProgress, percentage float64, deltaMinutes int, now time.Time) error {
	wasStarted := progress.Status != model.ProgressNotStarted
	wasCompleted := progress.Status == model.ProgressCompleted

	progress.UpdateProgress(percentage, deltaMinutes, now)

	if err := s.ProgressRepo.Save(progress); err != nil {
		return err
	}

	user, err := s.UserRepo.FindByID(progress.UserID)
	if err != nil {
		return err
	}
	if !wasStarted && progress.Status != model.ProgressNotStarted {
		user.Progress.TotalCoursesStarted++
	}
	if !wasCompleted && progress.Status == model.ProgressCompleted {
		user.Progress.TotalCoursesCompleted++
		if err := s.CourseRepo.IncrementCompletions(progress.CourseID); err != nil {
			logger.Log.Warn("course completion counter update failed",
				zap.String("courseId", progress.CourseID), zap.Error(err))
		}
	}
	if deltaMinutes > 0 {
		user.Progress.TotalLearningTime += deltaMinutes
	}
	user.Progress.LastActivityDate = now

	return s.UserRepo.UpdateStats(user.ID, user.Progress)
}

func (s *LearningService) GetProgress(userID uint, courseID string) (*model.UserProgress, error) {
	progress, err := s.ProgressRepo.FindByUserAndCourse(userID, courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProgressNotFound
	}
	return progress, err
}

func (s *LearningService) ListProgress(userID uint) ([]model.UserProgress, error) {
	return s.ProgressRepo.ListByUser(userID)
}

func (s *LearningService) PauseCourse(userID uint, courseID string) (*model.UserProgress, error) {
	return s.transition(userID, courseID, (*model.UserProgress).Pause)
}

func (s *LearningService) ResumeCourse(userID uint, courseID string) (*model.UserProgress, error) {
	return s.transition(userID, courseID, (*model.UserProgress).Resume)
}

func (s *LearningService) transition(userID uint, courseID string, apply func(*model.UserProgress, time.Time)) (*model.UserProgress, error) {
	progress, err := s.GetProgress(userID, courseID)
	if err != nil {
		return nil, err
	}
	apply(progress, time.Now())
	if err := s.ProgressRepo.Save(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *LearningService) AddNote(userID uint, courseID, content string, timestamp float64) (*model.UserProgress, error) {
	if content == "" {
		return nil, util.ErrMissingField
	}
	progress, err := s.GetProgress(userID, courseID)
	if err != nil {
		return nil, err
	}
	progress.AddNote(content, timestamp, time.Now())
	if err := s.ProgressRepo.Save(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *LearningService) AddBookmark(userID uint, courseID, title string, timestamp float64) (*model.UserProgress, error) {
	if title == "" {
		return nil, util.ErrMissingField
	}
	progress, err := s.GetProgress(userID, courseID)
	if err != nil {
		return nil, err
	}
	progress.AddBookmark(title, timestamp, time.Now())
	if err := s.ProgressRepo.Save(progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// RateCourse stores the rating on the progress record and folds the stars
// into the course's running average.
func (s *LearningService) RateCourse(userID uint, courseID string, stars int, review string) (*model.UserProgress, error) {
	if stars < 1 || stars > 5 {
		return nil, util.ErrMissingField
	}
	progress, err := s.GetProgress(userID, courseID)
	if err != nil {
		return nil, err
	}

	firstRating := progress.Rating == nil
	progress.Rate(stars, review, time.Now())
	if err := s.ProgressRepo.Save(progress); err != nil {
		return nil, err
	}

	if firstRating {
		if err := s.CourseRepo.AddRating(courseID, stars); err != nil {
			logger.Log.Warn("course rating rollup failed",
				zap.String("courseId", courseID), zap.Error(err))
		}
	}
	return progress, nil
}

// RecentEvents backs the admin telemetry probe.
func (s *LearningService) RecentEvents(userID uint, limit int) ([]model.LearningEvent, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.EventRepo.RecentByUser(userID, limit)
}
