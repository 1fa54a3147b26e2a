package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"edurec_backend/internal/services"
	"edurec_backend/internal/services/dto"
)

type EventHandler struct {
	*BaseHandler
	eventService services.EventService
}

func NewEventHandler(base *BaseHandler, eventService services.EventService) *EventHandler {
	return &EventHandler{
		BaseHandler:  base,
		eventService: eventService,
	}
}

func (h *EventHandler) RegisterRoutes(r *gin.RouterGroup) {
	events := r.Group("/events")
	{
		events.POST("", h.TrackEvent)
	}
}

// TrackEvent records a view/click/save/apply interaction. Validation
// failures answer 400 naming the offending field; persistence failures
// never corrupt previously recorded events.
func (h *EventHandler) TrackEvent(c *gin.Context) {
	var req dto.TrackEventRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.eventService.Track(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
