package dto

// TrackEventRequest records one student interaction with an institution.
type TrackEventRequest struct {
	UserID    string         `json:"userId" validate:"required"`
	CollegeID string         `json:"collegeId" validate:"required"`
	Action    string         `json:"action" validate:"required,oneof=view click save apply"`
	Metadata  *EventMetadata `json:"metadata,omitempty"`
}

// EventMetadata is optional context captured at interaction time.
type EventMetadata struct {
	Score     *float64 `json:"score,omitempty"`
	Rank      *int     `json:"rank,omitempty"`
	SessionID string   `json:"sessionId,omitempty"`
}

type TrackEventResponse struct {
	Success bool   `json:"success"`
	EventID string `json:"eventId"`
}
