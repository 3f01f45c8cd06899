package service

import (
	"context"
	"testing"

	"signlearn_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardCountsAndOrdering(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "a@example.com")

	courseIDs := []string{"101", "102", "103", "104", "105", "106"}
	for _, id := range courseIDs {
		env.createCourse(t, id)
	}
	// Unpublished courses stay out of the counts.
	hidden := &model.Course{CourseID: "999", Title: "draft", AgeGroup: model.AgeGroupYoung,
		Category: "basics", Difficulty: model.DifficultyBeginner, IsPublished: false}
	require.NoError(t, env.courses.Create(hidden))

	// Give 103 the most enrollments, 101 second.
	for i := 0; i < 3; i++ {
		require.NoError(t, env.courses.IncrementEnrollments("103"))
	}
	require.NoError(t, env.courses.IncrementEnrollments("101"))

	env.createPackage(t, "starter", "101")
	env.createPackage(t, "family", "101", "102")

	stats, err := env.dashboard.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(6), stats.TotalCourses)
	assert.Equal(t, int64(2), stats.TotalPackages)
	assert.Equal(t, int64(1), stats.ActiveUsers)

	require.Len(t, stats.PopularCourses, 5)
	assert.Equal(t, "103", stats.PopularCourses[0].CourseID)
	assert.Equal(t, "101", stats.PopularCourses[1].CourseID)
	// Zero-enrollment courses tie-break on catalog code.
	assert.Equal(t, "102", stats.PopularCourses[2].CourseID)
	assert.Equal(t, "104", stats.PopularCourses[3].CourseID)
}

func TestDashboardDeterministicWithoutRedis(t *testing.T) {
	env := newTestEnv(t)
	for _, id := range []string{"201", "202", "203"} {
		env.createCourse(t, id)
	}

	first, err := env.dashboard.Stats(context.Background())
	require.NoError(t, err)
	second, err := env.dashboard.Stats(context.Background())
	require.NoError(t, err)

	require.Equal(t, len(first.PopularCourses), len(second.PopularCourses))
	for i := range first.PopularCourses {
		assert.Equal(t, first.PopularCourses[i].CourseID, second.PopularCourses[i].CourseID)
	}
}
