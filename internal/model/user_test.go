package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUpdateStreakSameDay(t *testing.T) {
	morning := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)

	u := &User{Progress: LearningStats{CurrentStreak: 4, LongestStreak: 6, LastActivityDate: morning}}
	u.UpdateStreak(evening)

	assert.Equal(t, 4, u.Progress.CurrentStreak)
	assert.Equal(t, 6, u.Progress.LongestStreak)
	assert.Equal(t, evening, u.Progress.LastActivityDate)
}

func TestUpdateStreakNextDay(t *testing.T) {
	yesterday := time.Date(2026, 3, 10, 23, 50, 0, 0, time.UTC)
	today := time.Date(2026, 3, 11, 0, 10, 0, 0, time.UTC)

	u := &User{Progress: LearningStats{CurrentStreak: 6, LongestStreak: 6, LastActivityDate: yesterday}}
	u.UpdateStreak(today)

	assert.Equal(t, 7, u.Progress.CurrentStreak)
	assert.Equal(t, 7, u.Progress.LongestStreak, "longest follows current past the previous record")
}

func TestUpdateStreakGapResets(t *testing.T) {
	lastWeek := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	u := &User{Progress: LearningStats{CurrentStreak: 9, LongestStreak: 9, LastActivityDate: lastWeek}}
	u.UpdateStreak(today)

	assert.Equal(t, 1, u.Progress.CurrentStreak)
	assert.Equal(t, 9, u.Progress.LongestStreak)
}

func TestAddAchievementDeduplicates(t *testing.T) {
	u := &User{}
	a := AchievementEntry{ID: "first-course", Name: "First Course", EarnedAt: time.Now()}

	assert.True(t, u.AddAchievement(a))
	assert.False(t, u.AddAchievement(a))
	assert.Len(t, u.Progress.Achievements, 1)
}
