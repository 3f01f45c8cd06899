package model

import (
	"time"
)

type UserType string

const (
	UserParent   UserType = "parent"
	UserEducator UserType = "educator"
	UserStudent  UserType = "student"
	UserOther    UserType = "other"
)

// AchievementEntry is an earned badge, embedded on users and progress records.
type AchievementEntry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon,omitempty"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// LearningStats is the aggregate learning summary embedded on a user.
// The rollup pipeline writes lastActivityDate and totalCoursesCompleted;
// streak fields are maintained by UserService.UpdateStreak on profile load.
type LearningStats struct {
	TotalCoursesStarted   int                `json:"totalCoursesStarted"`
	TotalCoursesCompleted int                `json:"totalCoursesCompleted"`
	TotalLearningTime     int                `json:"totalLearningTime"` // minutes
	CurrentStreak         int                `json:"currentStreak"`
	LongestStreak         int                `json:"longestStreak"`
	LastActivityDate      time.Time          `json:"lastActivityDate"`
	Achievements          []AchievementEntry `json:"achievements,omitempty"`
}

type Subscription struct {
	Plan      string    `json:"plan"`
	StartDate time.Time `json:"startDate"`
	Features  []string  `json:"features,omitempty"`
}

type User struct {
	BaseModel
	Name         string        `gorm:"size:100;not null" json:"name"`
	Email        string        `gorm:"size:100;unique;not null" json:"email"`
	Password     string        `gorm:"size:100;not null" json:"-"`
	Phone        string        `gorm:"size:20" json:"phone,omitempty"`
	UserType     UserType      `gorm:"size:20;default:'parent'" json:"userType"`
	AgeGroup     string        `gorm:"size:10" json:"ageGroup,omitempty"`
	Language     string        `gorm:"size:10;default:'en'" json:"language"`
	Subscription Subscription  `gorm:"serializer:json" json:"subscription"`
	Progress     LearningStats `gorm:"serializer:json" json:"progress"`
	IsActive     bool          `gorm:"default:true" json:"isActive"`
	LastLogin    time.Time     `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}

// UpdateStreak advances the daily activity streak. Same calendar day is a
// no-op, the next day extends the streak, a longer gap resets it to 1.
func (u *User) UpdateStreak(now time.Time) {
	last := u.Progress.LastActivityDate
	days := daysBetween(last, now)

	switch {
	case days == 1:
		u.Progress.CurrentStreak++
		if u.Progress.CurrentStreak > u.Progress.LongestStreak {
			u.Progress.LongestStreak = u.Progress.CurrentStreak
		}
	case days > 1:
		u.Progress.CurrentStreak = 1
	}

	u.Progress.LastActivityDate = now
}

// AddAchievement appends a badge unless one with the same id already exists.
func (u *User) AddAchievement(a AchievementEntry) bool {
	for _, existing := range u.Progress.Achievements {
		if existing.ID == a.ID {
			return false
		}
	}
	u.Progress.Achievements = append(u.Progress.Achievements, a)
	return true
}

func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	return int(toDay.Sub(fromDay).Hours() / 24)
}
