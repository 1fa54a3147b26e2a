package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edurec_backend/internal/logger"
	"edurec_backend/internal/models"
	"edurec_backend/internal/repositories"
	"edurec_backend/internal/services/dto"
	"edurec_backend/pkg/apperrors"
)

type EventService interface {
	Track(ctx context.Context, db *gorm.DB, req *dto.TrackEventRequest) (*dto.TrackEventResponse, error)
}

type eventService struct {
	eventRepo repositories.EventRepository
}

func NewEventService(eventRepo repositories.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

// Track validates and persists one interaction event. Malformed events are
// rejected synchronously; they are never silently dropped.
func (s *eventService) Track(ctx context.Context, db *gorm.DB, req *dto.TrackEventRequest) (*dto.TrackEventResponse, error) {
	if err := validateEvent(req); err != nil {
		return nil, err
	}

	event := &models.InteractionEvent{
		ID:            uuid.NewString(),
		StudentID:     req.UserID,
		InstitutionID: req.CollegeID,
		Action:        req.Action,
		SessionID:     uuid.NewString(),
	}
	if req.Metadata != nil {
		event.Score = req.Metadata.Score
		event.Rank = req.Metadata.Rank
		if req.Metadata.SessionID != "" {
			event.SessionID = req.Metadata.SessionID
		}
	}

	if err := s.eventRepo.Create(db, event); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxDebug(ctx, "interaction event recorded",
		"event_id", event.ID,
		"student_id", event.StudentID,
		"institution_id", event.InstitutionID,
		"action", event.Action,
	)

	return &dto.TrackEventResponse{Success: true, EventID: event.ID}, nil
}

// validateEvent re-checks required fields and the action enumeration so
// callers that bypass HTTP binding get the same contract.
func validateEvent(req *dto.TrackEventRequest) error {
	if req.UserID == "" {
		return apperrors.NewBadRequestError("userId is required")
	}
	if req.CollegeID == "" {
		return apperrors.NewBadRequestError("collegeId is required")
	}
	if !models.ValidEventAction(req.Action) {
		return apperrors.NewBadRequestError(fmt.Sprintf("action must be one of view, click, save, apply; got %q", req.Action))
	}
	return nil
}
