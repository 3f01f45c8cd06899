package service

import (
	"testing"
	"time"

	"signlearn_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.user.Register(RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.NotEqual(t, "s3cret-pass", result.User.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(result.User.Password), []byte("s3cret-pass")))
	assert.Equal(t, "free", result.User.Subscription.Plan)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	input := RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "s3cret-pass"}
	_, err := env.user.Register(input)
	require.NoError(t, err)

	_, err = env.user.Register(input)
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.user.Register(RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	result, err := env.user.Login(LoginInput{Email: "ada@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	_, err = env.user.Login(LoginInput{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, util.ErrInvalidLogin)

	_, err = env.user.Login(LoginInput{Email: "ghost@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, util.ErrInvalidLogin)
}

func TestGetProfileAdvancesStreak(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")

	user.Progress.CurrentStreak = 2
	user.Progress.LongestStreak = 2
	user.Progress.LastActivityDate = time.Now().AddDate(0, 0, -1)
	require.NoError(t, env.users.UpdateStats(user.ID, user.Progress))

	loaded, err := env.user.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Progress.CurrentStreak)
	assert.Equal(t, 3, loaded.Progress.LongestStreak)

	// A second load the same day must not advance it again.
	loaded, err = env.user.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Progress.CurrentStreak)
}

func TestGetProfileUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.user.GetProfile(12345)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestEnrollInPackage(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "a@example.com")
	env.createCourse(t, "101")
	env.createCourse(t, "102")
	pkg := env.createPackage(t, "family", "101", "102")
	pkg.Features = []string{"offline", "printables"}
	require.NoError(t, env.db.Save(pkg).Error)

	enrolled, err := env.user.EnrollInPackage(user.ID, "family")
	require.NoError(t, err)
	assert.Equal(t, "free", enrolled.Subscription.Plan)
	assert.Equal(t, []string{"offline", "printables"}, enrolled.Subscription.Features)

	reloaded, err := env.packages.FindByPackageID("family")
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Analytics.Enrollments)

	for _, id := range []string{"101", "102"} {
		course, err := env.courses.FindByCourseID(id)
		require.NoError(t, err)
		assert.Equal(t, 1, course.Analytics.Enrollments)
	}

	_, err = env.user.EnrollInPackage(user.ID, "ghost")
	assert.ErrorIs(t, err, util.ErrPackageNotFound)
}
