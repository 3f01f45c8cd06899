package service

import (
	"testing"
	"time"

	"signlearn_backend/internal/config"
	"signlearn_backend/internal/model"
	"signlearn_backend/internal/repository"
	"signlearn_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type testEnv struct {
	db        *gorm.DB
	users     *repository.UserRepository
	courses   *repository.CourseRepository
	packages  *repository.PackageRepository
	progress  *repository.ProgressRepository
	events    *repository.LearningEventRepository
	attempts  *repository.QuizAttemptRepository
	learning  *LearningService
	quiz      *QuizService
	analytics *AnalyticsService
	dashboard *DashboardService
	user      *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	env := &testEnv{
		db:       db,
		users:    repository.NewUserRepository(db),
		courses:  repository.NewCourseRepository(db),
		packages: repository.NewPackageRepository(db),
		progress: repository.NewProgressRepository(db),
		events:   repository.NewLearningEventRepository(db),
		attempts: repository.NewQuizAttemptRepository(db),
	}
	env.learning = NewLearningService(env.events, env.progress, env.users, env.courses)
	env.quiz = NewQuizService(env.attempts, env.progress, env.users, env.courses)
	env.analytics = NewAnalyticsService(env.events, env.progress, env.attempts, env.users)
	env.dashboard = NewDashboardService(env.courses, env.packages, env.users, nil)
	env.user = NewUserService(env.users, env.packages, env.courses, testConfig())
	return env
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret-test-secret-test-secret!",
			ExpireTime: time.Hour,
		},
	}
}

func (e *testEnv) createUser(t *testing.T, email string) *model.User {
	t.Helper()

	user := &model.User{
		Name:     "Test User",
		Email:    email,
		Password: "irrelevant",
		UserType: model.UserParent,
		IsActive: true,
	}
	require.NoError(t, e.users.Create(user))
	return user
}

func (e *testEnv) createCourse(t *testing.T, courseID string) *model.Course {
	t.Helper()

	course := &model.Course{
		CourseID:    courseID,
		Title:       "Course " + courseID,
		AgeGroup:    model.AgeGroupYoung,
		Category:    "basics",
		Difficulty:  model.DifficultyBeginner,
		IsPublished: true,
	}
	require.NoError(t, e.courses.Create(course))
	return course
}

func (e *testEnv) createPackage(t *testing.T, packageID string, courseIDs ...string) *model.Package {
	t.Helper()

	pkg := &model.Package{
		PackageID: packageID,
		Name:      "Package " + packageID,
		CourseIDs: courseIDs,
		AgeGroups: []string{model.AgeGroupYoung},
		Price:     "FREE",
		IsActive:  true,
	}
	require.NoError(t, e.packages.Create(pkg))
	return pkg
}

func floatPtr(v float64) *float64 {
	return &v
}
