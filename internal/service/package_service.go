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

type PackageService struct {
	PackageRepo *repository.PackageRepository
	CourseRepo  *repository.CourseRepository
}

func NewPackageService(packageRepo *repository.PackageRepository, courseRepo *repository.CourseRepository) *PackageService {
	return &PackageService{PackageRepo: packageRepo, CourseRepo: courseRepo}
}

func (s *PackageService) List(filter repository.PackageFilter, limit int) ([]model.Package, error) {
	if limit < 0 || limit > 100 {
		limit = 0
	}
	return s.PackageRepo.List(filter, limit)
}

func (s *PackageService) Popular(limit int) ([]model.Package, error) {
	if limit <= 0 || limit > 20 {
		limit = 3
	}
	return s.PackageRepo.Popular(limit)
}

// PackageDetail is a package joined with its resolved course list.
type PackageDetail struct {
	model.Package
	Courses []model.Course `json:"courses"`
}

// Get returns one package with its courses resolved and counts the view.
func (s *PackageService) Get(packageID string) (*PackageDetail, error) {
	pkg, err := s.PackageRepo.FindByPackageID(packageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPackageNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.PackageRepo.IncrementViews(packageID); err != nil {
		logger.Log.Warn("package view counter update failed",
			zap.String("packageId", packageID), zap.Error(err))
	} else {
		pkg.Analytics.Views++
	}

	detail := &PackageDetail{Package: *pkg}
	for _, courseID := range pkg.CourseIDs {
		course, err := s.CourseRepo.FindByCourseID(courseID)
		if err != nil {
			continue
		}
		detail.Courses = append(detail.Courses, *course)
	}
	return detail, nil
}
