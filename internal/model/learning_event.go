package model

import "time"

type EventType string

const (
	EventStart     EventType = "start"
	EventPause     EventType = "pause"
	EventResume    EventType = "resume"
	EventHeartbeat EventType = "heartbeat"
	EventEnd       EventType = "end"
)

// ValidEventType reports whether t is one of the five accepted event kinds.
func ValidEventType(t EventType) bool {
	switch t {
	case EventStart, EventPause, EventResume, EventHeartbeat, EventEnd:
		return true
	}
	return false
}

// LearningEvent is raw telemetry, written once on ingestion and only read
// afterwards (recent-activity views, weekly-minutes aggregation).
type LearningEvent struct {
	BaseModel
	UserID             uint              `gorm:"index:idx_event_user_ts;not null" json:"userId"`
	CourseID           string            `gorm:"size:20;index;not null" json:"courseId"`
	Type               EventType         `gorm:"size:20;not null" json:"type"`
	SessionID          string            `gorm:"size:40;index" json:"sessionId,omitempty"`
	ActiveMs           int64             `gorm:"default:0" json:"activeMs"`
	ProgressPercentage *float64          `json:"progressPercentage,omitempty"`
	Ts                 time.Time         `gorm:"index:idx_event_user_ts;not null" json:"ts"`
	Source             string            `gorm:"size:20;default:'web'" json:"source"`
	UserAgent          string            `gorm:"size:255" json:"userAgent,omitempty"`
	Meta               map[string]string `gorm:"serializer:json" json:"meta,omitempty"`
}

func (LearningEvent) TableName() string {
	return "learning_events"
}
