package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"edurec_backend/internal/algorithms"
	"edurec_backend/internal/logger"
	"edurec_backend/internal/models"
	"edurec_backend/internal/narrative"
	"edurec_backend/internal/ontology"
	"edurec_backend/internal/repositories"
	"edurec_backend/internal/services/dto"
	"edurec_backend/pkg/apperrors"
)

// maxRecommendations bounds the ranked result list.
const maxRecommendations = 10

// narrativeTimeout caps how long the ranking response waits on the
// optional enrichment call.
const narrativeTimeout = 2 * time.Second

type RecommendationService interface {
	Recommend(ctx context.Context, db *gorm.DB, studentID string) (*dto.RecommendationResponse, error)
	WeightsInUse() map[string]float64
}

type recommendationService struct {
	studentRepo     repositories.StudentRepository
	institutionRepo repositories.InstitutionRepository
	narrative       narrative.Provider
	weights         map[string]float64
}

// NewRecommendationService builds the ranking orchestrator. Weights are
// read-only for the lifetime of the process; concurrent requests share
// them without synchronization.
func NewRecommendationService(
	studentRepo repositories.StudentRepository,
	institutionRepo repositories.InstitutionRepository,
	narrativeProvider narrative.Provider,
	weights map[string]float64,
) RecommendationService {
	if narrativeProvider == nil {
		narrativeProvider = narrative.NoopProvider{}
	}
	return &recommendationService{
		studentRepo:     studentRepo,
		institutionRepo: institutionRepo,
		narrative:       narrativeProvider,
		weights:         weights,
	}
}

func (s *recommendationService) WeightsInUse() map[string]float64 {
	return s.weights
}

// Recommend runs the full pipeline for one student: precondition checks,
// eligibility gating, feature scoring, stable ranking, reasons, and the
// optional narrative enrichment.
func (s *recommendationService) Recommend(ctx context.Context, db *gorm.DB, studentID string) (*dto.RecommendationResponse, error) {
	student, err := s.studentRepo.FindByID(db, studentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.NewNotFoundError("student", "Student profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if len(student.GetEmbedding()) == 0 {
		return nil, apperrors.NewBadRequestError("Student profile has no embedding vector; recommendations cannot be scored")
	}

	catalog, err := s.institutionRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	recommended, totalEligible := rankInstitutions(student, catalog, s.weights)

	if totalEligible == 0 {
		streams := ontology.ResolveStreams(student.Stream)
		if !streams.Recognized {
			logger.CtxDebug(ctx, "no eligible institutions; declared stream was not recognized",
				"student_id", student.ID, "stream", student.Stream)
		}
		return &dto.RecommendationResponse{
			Recommended: []dto.RecommendedInstitution{},
			WeightsUsed: s.weights,
			Message:     "No eligible institutions found for your profile",
		}, nil
	}

	return &dto.RecommendationResponse{
		Recommended:   recommended,
		TotalEligible: totalEligible,
		WeightsUsed:   s.weights,
		Summary:       s.summarize(ctx, student, recommended),
	}, nil
}

// rankInstitutions is the pure core of the pipeline: gate, score, stable
// sort, truncate, assign 1-based ranks. Equal scores keep catalog order.
func rankInstitutions(student *models.StudentProfile, catalog []models.Institution, weights map[string]float64) ([]dto.RecommendedInstitution, int) {
	var scored []dto.RecommendedInstitution
	for i := range catalog {
		inst := &catalog[i]
		if !algorithms.InstitutionEligible(student, inst) {
			continue
		}
		features := algorithms.BuildFeatureVector(student, inst)
		scored = append(scored, dto.RecommendedInstitution{
			InstitutionID: inst.ID,
			Name:          inst.Name,
			City:          inst.City,
			State:         inst.State,
			Score:         algorithms.Score(features, weights),
			Features:      features,
			Reasons:       algorithms.Reasons(features, student, inst),
		})
	}

	totalEligible := len(scored)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxRecommendations {
		scored = scored[:maxRecommendations]
	}
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored, totalEligible
}

// summarize asks the narrative provider for an enriched summary and falls
// back to a generic one on any failure. Enrichment only replaces the
// summary text; scores and reasons are never affected.
func (s *recommendationService) summarize(ctx context.Context, student *models.StudentProfile, recommended []dto.RecommendedInstitution) string {
	fallback := fmt.Sprintf("Found %d institutions matching your profile, led by %s.",
		len(recommended), recommended[0].Name)

	items := make([]narrative.SummaryItem, 0, len(recommended))
	for _, rec := range recommended {
		items = append(items, narrative.SummaryItem{Institution: rec.Name, Reasons: rec.Reasons})
	}

	nctx, cancel := context.WithTimeout(ctx, narrativeTimeout)
	defer cancel()

	summary, err := s.narrative.Summarize(nctx, student.Name, items)
	if err != nil {
		if !apperrors.Is(err, narrative.ErrDisabled) {
			logger.CtxWarn(ctx, "narrative enrichment failed, using fallback summary", "error", err.Error())
		}
		return fallback
	}
	return summary
}
