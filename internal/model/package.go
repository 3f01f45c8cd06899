package model

// PackageAnalytics mirrors CourseAnalytics for bundles; counters are updated
// through atomic increments in PackageRepository.
type PackageAnalytics struct {
	Views          int     `gorm:"default:0" json:"views"`
	Enrollments    int     `gorm:"default:0" json:"enrollments"`
	Completions    int     `gorm:"default:0" json:"completions"`
	ConversionRate float64 `gorm:"default:0" json:"conversionRate"`
}

// Package is a named bundle of courses sold as a subscription plan.
type Package struct {
	BaseModel
	PackageID   string           `gorm:"column:package_id;size:40;unique;not null" json:"packageId"`
	Name        string           `gorm:"size:200;not null" json:"name"`
	Description string           `gorm:"size:1000" json:"description"`
	CourseIDs   []string         `gorm:"serializer:json" json:"courseIds,omitempty"`
	AgeGroups   []string         `gorm:"serializer:json" json:"ageGroups,omitempty"`
	Features    []string         `gorm:"serializer:json" json:"features,omitempty"`
	Price       string           `gorm:"size:20;default:'FREE'" json:"price"`
	Popular     bool             `gorm:"default:false;index" json:"popular"`
	IsActive    bool             `gorm:"default:true;index" json:"isActive"`
	Analytics   PackageAnalytics `gorm:"embedded;embeddedPrefix:analytics_" json:"analytics"`
}

func (Package) TableName() string {
	return "packages"
}
