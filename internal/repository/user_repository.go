package repository

import (
	"time"

	"signlearn_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// UpdateStats rewrites only the embedded stats column.
func (r *UserRepository) UpdateStats(userID uint, stats model.LearningStats) error {
	return r.DB.Model(&model.User{}).Where("id = ?", userID).
		Update("progress", stats).Error
}

// TouchLastActivity stamps the user's last activity without recomputing the
// streak; streaks are only advanced on the profile-load path.
func (r *UserRepository) TouchLastActivity(userID uint, at time.Time) error {
	user, err := r.FindByID(userID)
	if err != nil {
		return err
	}
	user.Progress.LastActivityDate = at
	return r.UpdateStats(userID, user.Progress)
}

func (r *UserRepository) CountActive() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
