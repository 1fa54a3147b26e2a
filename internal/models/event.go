package models

import "time"

// Interaction event actions accepted by the tracking endpoint.
const (
	EventActionView  = "view"
	EventActionClick = "click"
	EventActionSave  = "save"
	EventActionApply = "apply"
)

// ValidEventAction reports whether action is one of the four accepted values.
func ValidEventAction(action string) bool {
	switch action {
	case EventActionView, EventActionClick, EventActionSave, EventActionApply:
		return true
	}
	return false
}

type InteractionEvent struct {
	ID            string `gorm:"primaryKey"`
	StudentID     string `gorm:"index"`
	InstitutionID string `gorm:"index"`
	Action        string
	Score         *float64
	Rank          *int
	SessionID     string
	CreatedAt     time.Time
}
