package repository

import (
	"testing"
	"time"

	"signlearn_backend/internal/model"
	"signlearn_backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestProgressFindOrCreateIsSingleRow(t *testing.T) {
	db := setupDB(t)
	repo := NewProgressRepository(db)

	first, err := repo.FindOrCreate(1, "101", true)
	require.NoError(t, err)
	assert.Equal(t, model.ProgressInProgress, first.Status)
	require.NotNil(t, first.StartedAt)

	// A second resolve returns the same row, keeping its state.
	second, err := repo.FindOrCreate(1, "101", false)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, model.ProgressInProgress, second.Status)

	var count int64
	require.NoError(t, db.Model(&model.UserProgress{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProgressCompoundKeyRejectsDuplicates(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, db.Create(&model.UserProgress{UserID: 1, CourseID: "101"}).Error)
	err := db.Create(&model.UserProgress{UserID: 1, CourseID: "101"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Same course for another user is fine.
	require.NoError(t, db.Create(&model.UserProgress{UserID: 2, CourseID: "101"}).Error)
}

func TestQuizAttemptLedgerIndexRejectsDuplicateAttemptNo(t *testing.T) {
	db := setupDB(t)
	repo := NewQuizAttemptRepository(db)

	attempt := &model.QuizAttempt{UserID: 1, CourseID: "101", QuizID: "q1", AttemptNo: 1, Score: 50}
	require.NoError(t, repo.Create(attempt))

	dup := &model.QuizAttempt{UserID: 1, CourseID: "101", QuizID: "q1", AttemptNo: 1, Score: 80}
	assert.ErrorIs(t, repo.Create(dup), gorm.ErrDuplicatedKey)

	no, err := repo.MaxAttemptNo(1, "101", "q1")
	require.NoError(t, err)
	assert.Equal(t, 1, no)

	no, err = repo.MaxAttemptNo(1, "101", "other")
	require.NoError(t, err)
	assert.Equal(t, 0, no)
}

func TestCourseAddRatingRunningAverage(t *testing.T) {
	db := setupDB(t)
	repo := NewCourseRepository(db)

	course := &model.Course{CourseID: "101", Title: "t", AgeGroup: model.AgeGroupYoung,
		Category: "basics", Difficulty: model.DifficultyBeginner, IsPublished: true}
	require.NoError(t, repo.Create(course))

	for _, stars := range []int{5, 3, 4} {
		require.NoError(t, repo.AddRating("101", stars))
	}

	reloaded, err := repo.FindByCourseID("101")
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.Analytics.TotalRatings)
	assert.InDelta(t, 4.0, reloaded.Analytics.AverageRating, 0.001)
}

func TestPackageAddEnrollmentConversionRate(t *testing.T) {
	db := setupDB(t)
	repo := NewPackageRepository(db)

	pkg := &model.Package{PackageID: "starter", Name: "Starter", IsActive: true}
	require.NoError(t, repo.Create(pkg))

	// Four views, then one enrollment: 25% conversion.
	for i := 0; i < 4; i++ {
		require.NoError(t, repo.IncrementViews("starter"))
	}
	require.NoError(t, repo.AddEnrollment("starter"))

	reloaded, err := repo.FindByPackageID("starter")
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Analytics.Enrollments)
	assert.InDelta(t, 25.0, reloaded.Analytics.ConversionRate, 0.001)

	// No views means the rate stays at zero instead of dividing by zero.
	zero := &model.Package{PackageID: "fresh", Name: "Fresh", IsActive: true}
	require.NoError(t, repo.Create(zero))
	require.NoError(t, repo.AddEnrollment("fresh"))
	reloaded, err = repo.FindByPackageID("fresh")
	require.NoError(t, err)
	assert.Equal(t, 0.0, reloaded.Analytics.ConversionRate)
}

func TestEventSumActiveMsSince(t *testing.T) {
	db := setupDB(t)
	repo := NewLearningEventRepository(db)

	now := time.Now()
	require.NoError(t, repo.Create(&model.LearningEvent{UserID: 1, CourseID: "101",
		Type: model.EventHeartbeat, ActiveMs: 60000, Ts: now.AddDate(0, 0, -10)}))
	require.NoError(t, repo.Create(&model.LearningEvent{UserID: 1, CourseID: "101",
		Type: model.EventHeartbeat, ActiveMs: 120000, Ts: now.Add(-time.Hour)}))
	require.NoError(t, repo.Create(&model.LearningEvent{UserID: 2, CourseID: "101",
		Type: model.EventHeartbeat, ActiveMs: 999999, Ts: now}))

	total, err := repo.SumActiveMsSince(1, now.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, int64(120000), total)
}
