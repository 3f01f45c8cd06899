// Seeds the course and package catalog with the starter content set.
// Safe to re-run: existing catalog codes are left untouched.
//
// Usage: go run scripts/seed_catalog.go
package main

import (
	"errors"
	"log"

	"signlearn_backend/internal/config"
	"signlearn_backend/internal/model"
	"signlearn_backend/internal/repository"
	"signlearn_backend/pkg/database"
	"signlearn_backend/pkg/logger"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	courses := repository.NewCourseRepository(db)
	packages := repository.NewPackageRepository(db)

	for _, course := range seedCourses() {
		if _, err := courses.FindByCourseID(course.CourseID); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Lookup failed for course %s: %v", course.CourseID, err)
		}
		if err := courses.Create(&course); err != nil {
			log.Fatalf("Failed to seed course %s: %v", course.CourseID, err)
		}
		log.Printf("Seeded course %s (%s)", course.CourseID, course.Title)
	}

	for _, pkg := range seedPackages() {
		if _, err := packages.FindByPackageID(pkg.PackageID); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Lookup failed for package %s: %v", pkg.PackageID, err)
		}
		if err := packages.Create(&pkg); err != nil {
			log.Fatalf("Failed to seed package %s: %v", pkg.PackageID, err)
		}
		log.Printf("Seeded package %s (%s)", pkg.PackageID, pkg.Name)
	}

	log.Println("Catalog seed complete")
}

func seedCourses() []model.Course {
	return []model.Course{
		{
			CourseID: "101", Title: "First Signs", AgeGroup: model.AgeGroupEarly,
			Category: "basics", Difficulty: model.DifficultyBeginner,
			Description:     "Everyday first signs for toddlers: mom, dad, milk, more, all done.",
			Duration:        "15 min", DurationMinutes: 15,
			Skills: []string{"basic-vocabulary"}, Tags: []string{"starter"},
			Price: "FREE", IsPublished: true,
		},
		{
			CourseID: "102", Title: "Feelings and Needs", AgeGroup: model.AgeGroupEarly,
			Category: "vocabulary", Difficulty: model.DifficultyBeginner,
			Description:     "Signs for hungry, tired, happy, sad and hurt.",
			Duration:        "20 min", DurationMinutes: 20,
			Skills: []string{"emotions"}, Price: "FREE", IsPublished: true,
		},
		{
			CourseID: "201", Title: "The Alphabet", AgeGroup: model.AgeGroupYoung,
			Category: "fingerspelling", Difficulty: model.DifficultyBeginner,
			Description:     "Fingerspelling A through Z with practice drills.",
			Duration:        "30 min", DurationMinutes: 30,
			Skills: []string{"fingerspelling"}, Price: "FREE", IsPublished: true,
		},
		{
			CourseID: "202", Title: "School Day Signs", AgeGroup: model.AgeGroupYoung,
			Category: "vocabulary", Difficulty: model.DifficultyIntermediate,
			Description:     "Classroom vocabulary: teacher, book, homework, friend, play.",
			Duration:        "25 min", DurationMinutes: 25,
			Skills: []string{"school-vocabulary"}, Price: "PREMIUM", IsPublished: true,
		},
		{
			CourseID: "301", Title: "Conversational Grammar", AgeGroup: model.AgeGroupAdvanced,
			Category: "grammar", Difficulty: model.DifficultyAdvanced,
			Description:     "Sentence structure, questions, and non-manual markers.",
			Duration:        "1 hrs", DurationMinutes: 60,
			Skills: []string{"grammar", "conversation"}, Price: "PREMIUM", IsPublished: true,
		},
	}
}

func seedPackages() []model.Package {
	return []model.Package{
		{
			PackageID: "starter", Name: "Starter",
			Description: "Free introduction for the whole family.",
			CourseIDs:   []string{"101", "102"},
			AgeGroups:   []string{model.AgeGroupEarly},
			Features:    []string{"2 courses", "progress tracking"},
			Price:       "FREE", IsActive: true,
		},
		{
			PackageID: "family", Name: "Family",
			Description: "Everything for early learners and school-age signers.",
			CourseIDs:   []string{"101", "102", "201", "202"},
			AgeGroups:   []string{model.AgeGroupEarly, model.AgeGroupYoung},
			Features:    []string{"4 courses", "quizzes", "offline access"},
			Price:       "PREMIUM", Popular: true, IsActive: true,
		},
		{
			PackageID: "complete", Name: "Complete",
			Description: "The full catalog including advanced grammar.",
			CourseIDs:   []string{"101", "102", "201", "202", "301"},
			AgeGroups:   []string{model.AgeGroupEarly, model.AgeGroupYoung, model.AgeGroupAdvanced},
			Features:    []string{"all courses", "quizzes", "offline access", "certificates"},
			Price:       "PREMIUM", IsActive: true,
		},
	}
}
