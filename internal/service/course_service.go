package service

import (
	"errors"

	"signlearn_backend/internal/model"
	"signlearn_backend/internal/repository"
	"signlearn_backend/internal/util"
	"signlearn_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{CourseRepo: courseRepo}
}

func (s *CourseService) List(filter repository.CourseFilter, page, limit int) ([]model.Course, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.CourseRepo.List(filter, page, limit)
}

func (s *CourseService) Popular(limit int) ([]model.Course, error) {
	if limit <= 0 || limit > 20 {
		limit = 5
	}
	return s.CourseRepo.Popular(limit)
}

// Get returns one catalog entry and counts the view.
func (s *CourseService) Get(courseID string) (*model.Course, error) {
	course, err := s.CourseRepo.FindByCourseID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.CourseRepo.IncrementViews(courseID); err != nil {
		logger.Log.Warn("course view counter update failed",
			zap.String("courseId", courseID), zap.Error(err))
	} else {
		course.Analytics.Views++
	}
	return course, nil
}

// CategoryCard is one age-group tile with its published course count.
type CategoryCard struct {
	AgeGroup    string `json:"ageGroup"`
	Title       string `json:"title"`
	CourseCount int64  `json:"courseCount"`
}

var categoryTitles = map[string]string{
	model.AgeGroupEarly:    "Early Learners",
	model.AgeGroupYoung:    "Young Signers",
	model.AgeGroupAdvanced: "Advanced Signers",
}

func (s *CourseService) Categories() ([]CategoryCard, error) {
	groups := []string{model.AgeGroupEarly, model.AgeGroupYoung, model.AgeGroupAdvanced}
	cards := make([]CategoryCard, 0, len(groups))
	for _, g := range groups {
		count, err := s.CourseRepo.CountPublishedByAgeGroup(g)
		if err != nil {
			return nil, err
		}
		cards = append(cards, CategoryCard{AgeGroup: g, Title: categoryTitles[g], CourseCount: count})
	}
	return cards, nil
}
