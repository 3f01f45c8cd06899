package service

import (
	"testing"
	"time"

	"signlearn_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryEmptyUserIsAllZeros(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")

	summary, err := env.analytics.Summary(user.ID)
	require.NoError(t, err)
	assert.Equal(t, &UserSummary{}, summary)
}

func TestSummaryAggregates(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")
	env.createCourse(t, "101")
	env.createCourse(t, "102")
	env.createCourse(t, "103")

	// 101 completed, 102 in progress, 103 barely started.
	_, err := env.learning.UpdateProgress(user.ID, "101", ProgressUpdateInput{ProgressPercentage: 100, TimeSpent: 30})
	require.NoError(t, err)
	_, err = env.learning.UpdateProgress(user.ID, "102", ProgressUpdateInput{ProgressPercentage: 50, TimeSpent: 10})
	require.NoError(t, err)
	_, err = env.learning.UpdateProgress(user.ID, "103", ProgressUpdateInput{ProgressPercentage: 5})
	require.NoError(t, err)

	// 150s in the window floors to 2 minutes.
	_, err = env.learning.RecordEvent(LearningEventInput{
		UserID:   user.ID,
		CourseID: "102",
		Type:     model.EventHeartbeat,
		ActiveMs: 150000,
	})
	require.NoError(t, err)

	// Attempts: one pass, two fails.
	for _, score := range []float64{80, 50, 50} {
		_, err = env.quiz.SubmitAttempt("102", "quiz-1", QuizAttemptInput{UserID: user.ID, Score: score, PassingScore: 101})
		require.NoError(t, err)
	}

	summary, err := env.analytics.Summary(user.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.WeeklyMinutes)
	assert.Equal(t, 1, summary.TotalCompleted)
	assert.Equal(t, 2, summary.CoursesInProgress)
	assert.Equal(t, 33, summary.CompletionPct, "1 of 3 rounds to 33")
	assert.Equal(t, 3, summary.QuizAttempts)
	assert.Equal(t, 60, summary.AvgQuiz)
	assert.Equal(t, 33, summary.QuizPassRate)
}

func TestSummaryWeeklyWindowExcludesOldEvents(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")
	env.createCourse(t, "101")

	old := time.Now().AddDate(0, 0, -10)
	_, err := env.learning.RecordEvent(LearningEventInput{
		UserID:   user.ID,
		CourseID: "101",
		Type:     model.EventHeartbeat,
		ActiveMs: 600000,
		Ts:       &old,
	})
	require.NoError(t, err)

	_, err = env.learning.RecordEvent(LearningEventInput{
		UserID:   user.ID,
		CourseID: "101",
		Type:     model.EventHeartbeat,
		ActiveMs: 120000,
	})
	require.NoError(t, err)

	summary, err := env.analytics.Summary(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.WeeklyMinutes)
}

func TestSummaryReadsStreakFromStats(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")

	user.Progress.CurrentStreak = 4
	require.NoError(t, env.users.UpdateStats(user.ID, user.Progress))

	summary, err := env.analytics.Summary(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.CurrentStreak)
}
