package dto

import "edurec_backend/internal/algorithms"

// RecommendedInstitution is one ranked entry in the response. It is built
// fresh per request and has no persisted identity.
type RecommendedInstitution struct {
	InstitutionID string                   `json:"institutionId"`
	Name          string                   `json:"name"`
	City          string                   `json:"city"`
	State         string                   `json:"state"`
	Score         float64                  `json:"score"`
	Rank          int                      `json:"rank"`
	Features      algorithms.FeatureVector `json:"features"`
	Reasons       []string                 `json:"reasons"`
}

type RecommendationResponse struct {
	Recommended   []RecommendedInstitution `json:"recommended"`
	TotalEligible int                      `json:"totalEligible"`
	WeightsUsed   map[string]float64       `json:"weightsUsed"`
	Summary       string                   `json:"summary,omitempty"`
	// Message is set only for the empty-but-successful case, so callers can
	// distinguish "nothing matched" from "nothing existed".
	Message string `json:"message,omitempty"`
}
