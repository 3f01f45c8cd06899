package repository

import (
	"time"

	"signlearn_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByUserAndCourse(userID uint, courseID string) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// FindOrCreate resolves the one progress record for a (user, course) pair,
// creating it atomically against the compound unique index when absent.
// started controls whether a fresh record begins in in_progress (the event
// ingestion path) or not_started (the manual progress-update path).
func (r *ProgressRepository) FindOrCreate(userID uint, courseID string, started bool) (*model.UserProgress, error) {
	now := time.Now()
	attrs := model.UserProgress{
		Status:         model.ProgressNotStarted,
		LastAccessedAt: now,
	}
	if started {
		attrs.Status = model.ProgressInProgress
		attrs.StartedAt = &now
	}

	var progress model.UserProgress
	err := r.DB.
		Where(model.UserProgress{UserID: userID, CourseID: courseID}).
		Attrs(attrs).
		FirstOrCreate(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) Save(progress *model.UserProgress) error {
	return r.DB.Save(progress).Error
}

func (r *ProgressRepository) ListByUser(userID uint) ([]model.UserProgress, error) {
	var records []model.UserProgress
	err := r.DB.Where("user_id = ?", userID).Find(&records).Error
	return records, err
}

func (r *ProgressRepository) CountByUserAndStatus(userID uint, status model.ProgressStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserProgress{}).
		Where("user_id = ? AND status = ?", userID, status).Count(&count).Error
	return count, err
}
