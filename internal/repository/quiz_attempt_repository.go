package repository

import (
	"signlearn_backend/internal/model"

	"gorm.io/gorm"
)

type QuizAttemptRepository struct {
	DB *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{DB: db}
}

func (r *QuizAttemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

// MaxAttemptNo returns the highest attempt number recorded for the ledger
// key, or 0 when the user has never attempted this quiz.
func (r *QuizAttemptRepository) MaxAttemptNo(userID uint, courseID, quizID string) (int, error) {
	var max int
	err := r.DB.Model(&model.QuizAttempt{}).
		Where("user_id = ? AND course_id = ? AND quiz_id = ?", userID, courseID, quizID).
		Select("COALESCE(MAX(attempt_no), 0)").
		Scan(&max).Error
	return max, err
}

func (r *QuizAttemptRepository) ListByKey(userID uint, courseID, quizID string) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.
		Where("user_id = ? AND course_id = ? AND quiz_id = ?", userID, courseID, quizID).
		Order("attempt_no ASC").Find(&attempts).Error
	return attempts, err
}

// UserStats aggregates a user's whole attempt history in one query.
func (r *QuizAttemptRepository) UserStats(userID uint) (attempts int64, avgScore float64, passed int64, err error) {
	row := struct {
		Attempts int64
		AvgScore float64
		Passed   int64
	}{}

	err = r.DB.Model(&model.QuizAttempt{}).
		Where("user_id = ?", userID).
		Select("COUNT(*) AS attempts, COALESCE(AVG(score), 0) AS avg_score, COALESCE(SUM(CASE WHEN passed THEN 1 ELSE 0 END), 0) AS passed").
		Scan(&row).Error

	return row.Attempts, row.AvgScore, row.Passed, err
}
