package repository

import (
	"time"

	"signlearn_backend/internal/model"

	"gorm.io/gorm"
)

type LearningEventRepository struct {
	DB *gorm.DB
}

func NewLearningEventRepository(db *gorm.DB) *LearningEventRepository {
	return &LearningEventRepository{DB: db}
}

func (r *LearningEventRepository) Create(event *model.LearningEvent) error {
	return r.DB.Create(event).Error
}

// SumActiveMsSince totals active milliseconds for a user from `since` to now.
func (r *LearningEventRepository) SumActiveMsSince(userID uint, since time.Time) (int64, error) {
	var total int64
	err := r.DB.Model(&model.LearningEvent{}).
		Where("user_id = ? AND ts >= ?", userID, since).
		Select("COALESCE(SUM(active_ms), 0)").
		Scan(&total).Error
	return total, err
}

// RecentByUser returns the newest events first, with id as a deterministic
// secondary order for events sharing a timestamp.
func (r *LearningEventRepository) RecentByUser(userID uint, limit int) ([]model.LearningEvent, error) {
	var events []model.LearningEvent
	err := r.DB.Where("user_id = ?", userID).
		Order("ts DESC, id DESC").
		Limit(limit).Find(&events).Error
	return events, err
}
