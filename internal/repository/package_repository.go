package repository

import (
	"strings"

	"signlearn_backend/internal/model"

	"gorm.io/gorm"
)

type PackageRepository struct {
	DB *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{DB: db}
}

type PackageFilter struct {
	AgeGroup string
	Popular  bool
	Search   string
}

func (r *PackageRepository) Create(pkg *model.Package) error {
	return r.DB.Create(pkg).Error
}

func (r *PackageRepository) FindByPackageID(packageID string) (*model.Package, error) {
	var pkg model.Package
	err := r.DB.Where("package_id = ? AND is_active = ?", packageID, true).First(&pkg).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepository) List(filter PackageFilter, limit int) ([]model.Package, error) {
	query := r.DB.Model(&model.Package{}).Where("is_active = ?", true)

	if filter.Popular {
		query = query.Where("popular = ?", true)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	query = query.Order("popular DESC, analytics_enrollments DESC, package_id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var packages []model.Package
	err := query.Find(&packages).Error
	if err != nil {
		return nil, err
	}

	// AgeGroups lives in a JSON column, so that filter is applied in memory.
	if filter.AgeGroup == "" {
		return packages, nil
	}
	filtered := packages[:0]
	for _, p := range packages {
		for _, g := range p.AgeGroups {
			if g == filter.AgeGroup {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered, nil
}

func (r *PackageRepository) Popular(limit int) ([]model.Package, error) {
	return r.List(PackageFilter{}, limit)
}

func (r *PackageRepository) CountActive() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Package{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *PackageRepository) IncrementViews(packageID string) error {
	return r.DB.Model(&model.Package{}).Where("package_id = ?", packageID).
		UpdateColumn("analytics_views", gorm.Expr("analytics_views + 1")).Error
}

// AddEnrollment bumps the enrollment counter and refreshes the derived
// view-to-enrollment conversion rate in the same statement.
func (r *PackageRepository) AddEnrollment(packageID string) error {
	return r.DB.Exec(
		`UPDATE packages SET
			analytics_conversion_rate = CASE WHEN analytics_views = 0 THEN 0
				ELSE (analytics_enrollments + 1) * 100.0 / analytics_views END,
			analytics_enrollments = analytics_enrollments + 1
		WHERE package_id = ?`, packageID).Error
}

func (r *PackageRepository) IncrementCompletions(packageID string) error {
	return r.DB.Model(&model.Package{}).Where("package_id = ?", packageID).
		UpdateColumn("analytics_completions", gorm.Expr("analytics_completions + 1")).Error
}
