package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"edurec_backend/internal/services"
	"edurec_backend/pkg/apperrors"
)

type RecommendationHandler struct {
	*BaseHandler
	recommendationService services.RecommendationService
}

func NewRecommendationHandler(base *BaseHandler, recommendationService services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		BaseHandler:           base,
		recommendationService: recommendationService,
	}
}

func (h *RecommendationHandler) RegisterRoutes(r *gin.RouterGroup) {
	recs := r.Group("/recommendations")
	{
		recs.GET("/weights", h.GetWeights)
		recs.GET("/:studentId", h.GetRecommendations)
	}
}

// GetRecommendations runs the ranking pipeline for one student and returns
// the bounded top-N list with per-candidate features and reasons.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	studentID := c.Param("studentId")
	if studentID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("studentId is required"))
		return
	}

	response, err := h.recommendationService.Recommend(c.Request.Context(), h.GetDB(c), studentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetWeights exposes the weight configuration in effect, for auditability.
func (h *RecommendationHandler) GetWeights(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"weights": h.recommendationService.WeightsInUse()})
}
