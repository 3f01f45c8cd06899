package service

import (
	"testing"

	"signlearn_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAttemptNumbersAreGapFree(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")
	env.createCourse(t, "101")

	for i := 1; i <= 3; i++ {
		result, err := env.quiz.SubmitAttempt("101", "quiz-1", QuizAttemptInput{
			UserID: user.ID,
			Score:  40,
		})
		require.NoError(t, err)
		assert.Equal(t, i, result.Attempt.AttemptNo)
	}

	// A different quiz starts its own sequence.
	result, err := env.quiz.SubmitAttempt("101", "quiz-2", QuizAttemptInput{
		UserID: user.ID,
		Score:  40,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Attempt.AttemptNo)
}

func TestSubmitAttemptLedgerThreshold(t *testing.T) {
	cases := []struct {
		score  float64
		passed bool
	}{
		{69.99, false},
		{70, true},
		{70.01, true},
	}
	for _, tc := range cases {
		env := newTestEnv(t)
		user := env.createUser(t, "a@example.com")
		env.createCourse(t, "101")

		result, err := env.quiz.SubmitAttempt("101", "quiz-1", QuizAttemptInput{
			UserID: user.ID,
			Score:  tc.score,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.passed, result.Attempt.Passed, "score %v", tc.score)
	}
}

func TestSubmitAttemptClampsScore(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")
	env.createCourse(t, "101")

	result, err := env.quiz.SubmitAttempt("101", "quiz-1", QuizAttemptInput{
		UserID: user.ID,
		Score:  130,
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Attempt.Score)
	assert.True(t, result.Attempt.Passed)
}

func TestSubmitAttemptMirrorsIntoProgress(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")
	env.createCourse(t, "101")

	result, err := env.quiz.SubmitAttempt("101", "quiz-1", QuizAttemptInput{
		UserID:         user.ID,
		Score:          85,
		TotalQuestions: 10,
		CorrectAnswers: 8,
		TimeMs:         120000,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.QuizResult.AttemptNumber)
	assert.Equal(t, 2, result.QuizResult.TimeSpent)
	assert.True(t, result.QuizResult.Passed)
	assert.Equal(t, model.ProgressCompleted, result.ProgressNow)

	progress, err := env.progress.FindByUserAndCourse(user.ID, "101")
	require.NoError(t, err)
	require.Len(t, progress.QuizResults, 1)
	assert.Equal(t, model.ProgressCompleted, progress.Status)

	reloaded, err := env.users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Progress.TotalCoursesCompleted)

	course, err := env.courses.FindByCourseID("101")
	require.NoError(t, err)
	assert.Equal(t, 1, course.Analytics.Completions)
}

func TestSubmitAttemptFailDoesNotComplete(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")
	env.createCourse(t, "101")

	result, err := env.quiz.SubmitAttempt("101", "quiz-1", QuizAttemptInput{
		UserID: user.ID,
		Score:  50,
	})
	require.NoError(t, err)
	assert.False(t, result.Attempt.Passed)
	assert.Equal(t, model.ProgressInProgress, result.ProgressNow)
}

func TestSubmitAttemptLedgerAndRollupThresholdsAreIndependent(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")
	env.createCourse(t, "101")

	// A lower rollup passing score completes the course while the ledger
	// still records a fail.
	result, err := env.quiz.SubmitAttempt("101", "quiz-1", QuizAttemptInput{
		UserID:       user.ID,
		Score:        60,
		PassingScore: 50,
	})
	require.NoError(t, err)
	assert.False(t, result.Attempt.Passed)
	assert.True(t, result.QuizResult.Passed)
	assert.Equal(t, model.ProgressCompleted, result.ProgressNow)
}

func TestSubmitAttemptProgressNumberingSurvivesLedgerGaps(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")
	env.createCourse(t, "101")

	// Two quizzes in the same course share one progress record, so the
	// embedded numbering keeps counting while each ledger restarts at 1.
	first, err := env.quiz.SubmitAttempt("101", "quiz-1", QuizAttemptInput{UserID: user.ID, Score: 10})
	require.NoError(t, err)
	second, err := env.quiz.SubmitAttempt("101", "quiz-2", QuizAttemptInput{UserID: user.ID, Score: 20})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Attempt.AttemptNo)
	assert.Equal(t, 1, second.Attempt.AttemptNo)
	assert.Equal(t, 1, first.QuizResult.AttemptNumber)
	assert.Equal(t, 2, second.QuizResult.AttemptNumber)
}

func TestListAttemptsOrderedByAttemptNo(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")
	env.createCourse(t, "101")

	for i := 0; i < 3; i++ {
		_, err := env.quiz.SubmitAttempt("101", "quiz-1", QuizAttemptInput{UserID: user.ID, Score: float64(30 + i)})
		require.NoError(t, err)
	}

	attempts, err := env.quiz.ListAttempts(user.ID, "101", "quiz-1")
	require.NoError(t, err)
	require.Len(t, attempts, 3)
	for i, a := range attempts {
		assert.Equal(t, i+1, a.AttemptNo)
	}
}
