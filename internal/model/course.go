package model

import "time"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Age groups the catalog is organized around.
const (
	AgeGroupEarly    = "1-4"
	AgeGroupYoung    = "5-10"
	AgeGroupAdvanced = "15+"
)

// CourseAnalytics holds the per-course counters. They are only ever changed
// through atomic increment expressions in CourseRepository, never by
// read-modify-write in application code.
type CourseAnalytics struct {
	Views         int     `gorm:"default:0" json:"views"`
	Enrollments   int     `gorm:"default:0" json:"enrollments"`
	Completions   int     `gorm:"default:0" json:"completions"`
	TotalRatings  int     `gorm:"default:0" json:"totalRatings"`
	AverageRating float64 `gorm:"default:0" json:"averageRating"`
}

// Course is a single video lesson in the catalog. CourseID is the
// human-assigned catalog code (e.g. "101"), distinct from the row key.
type Course struct {
	BaseModel
	CourseID        string          `gorm:"column:course_id;size:20;unique;not null" json:"courseId"`
	Title           string          `gorm:"size:200;not null" json:"title"`
	Description     string          `gorm:"size:1000" json:"description"`
	Video           string          `gorm:"size:500" json:"video"`
	Thumbnail       string          `gorm:"size:500" json:"thumbnail,omitempty"`
	AgeGroup        string          `gorm:"size:10;index;not null" json:"ageGroup"`
	Category        string          `gorm:"size:30;index;not null" json:"category"`
	Difficulty      Difficulty      `gorm:"size:20;index;not null" json:"difficulty"`
	Duration        string          `gorm:"size:20" json:"duration"`
	DurationMinutes int             `gorm:"default:0" json:"durationMinutes"`
	Skills          []string        `gorm:"serializer:json" json:"skills,omitempty"`
	Tags            []string        `gorm:"serializer:json" json:"tags,omitempty"`
	Price           string          `gorm:"size:10;default:'FREE'" json:"price"`
	IsPublished     bool            `gorm:"default:true;index" json:"isPublished"`
	PublishedAt     *time.Time      `json:"publishedAt,omitempty"`
	Analytics       CourseAnalytics `gorm:"embedded;embeddedPrefix:analytics_" json:"analytics"`
}

func (Course) TableName() string {
	return "courses"
}

// CompletionRate derives the completion percentage from the counters.
func (c *Course) CompletionRate() int {
	if c.Analytics.Enrollments == 0 {
		return 0
	}
	return int(float64(c.Analytics.Completions)/float64(c.Analytics.Enrollments)*100 + 0.5)
}
