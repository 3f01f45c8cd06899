package repository

import (
	"strings"

	"signlearn_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

// CourseFilter narrows catalog listings.
type CourseFilter struct {
	AgeGroup   string
	Category   string
	Difficulty string
	Search     string
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) FindByCourseID(courseID string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("course_id = ?", courseID).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) List(filter CourseFilter, page, limit int) ([]model.Course, int64, error) {
	query := r.DB.Model(&model.Course{}).Where("is_published = ?", true)

	if filter.AgeGroup != "" {
		query = query.Where("age_group = ?", filter.AgeGroup)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []model.Course
	offset := (page - 1) * limit
	err := query.Order("analytics_enrollments DESC, created_at DESC").
		Offset(offset).Limit(limit).Find(&courses).Error

	return courses, total, err
}

func (r *CourseRepository) FindByAgeGroup(ageGroup string) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("age_group = ? AND is_published = ?", ageGroup, true).
		Order("course_id ASC").Find(&courses).Error
	return courses, err
}

// Popular orders by enrollments with the catalog code as a deterministic
// tie-break.
func (r *CourseRepository) Popular(limit int) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("is_published = ?", true).
		Order("analytics_enrollments DESC, course_id ASC").
		Limit(limit).Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) CountPublished() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Where("is_published = ?", true).Count(&count).Error
	return count, err
}

func (r *CourseRepository) CountPublishedByAgeGroup(ageGroup string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).
		Where("age_group = ? AND is_published = ?", ageGroup, true).Count(&count).Error
	return count, err
}

// Counter updates go through SQL-level increments so concurrent requests
// never lose updates to a read-modify-write cycle.

func (r *CourseRepository) IncrementViews(courseID string) error {
	return r.DB.Model(&model.Course{}).Where("course_id = ?", courseID).
		UpdateColumn("analytics_views", gorm.Expr("analytics_views + 1")).Error
}

func (r *CourseRepository) IncrementEnrollments(courseID string) error {
	return r.DB.Model(&model.Course{}).Where("course_id = ?", courseID).
		UpdateColumn("analytics_enrollments", gorm.Expr("analytics_enrollments + 1")).Error
}

func (r *CourseRepository) IncrementCompletions(courseID string) error {
	return r.DB.Model(&model.Course{}).Where("course_id = ?", courseID).
		UpdateColumn("analytics_completions", gorm.Expr("analytics_completions + 1")).Error
}

// AddRating folds one star rating into the running average. The average
// assignment comes first so it reads the pre-increment total.
func (r *CourseRepository) AddRating(courseID string, stars int) error {
	return r.DB.Exec(
		`UPDATE courses SET
			analytics_average_rating = (analytics_average_rating * analytics_total_ratings + ?) / (analytics_total_ratings + 1),
			analytics_total_ratings = analytics_total_ratings + 1
		WHERE course_id = ?`, stars, courseID).Error
}
