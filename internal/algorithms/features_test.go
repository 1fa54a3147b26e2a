package algorithms

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"edurec_backend/internal/models"
)

func jsonList(t *testing.T, v interface{}) datatypes.JSON {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal test data: %v", err)
	}
	return datatypes.JSON(data)
}

func TestCosineSimilarity(t *testing.T) {
	a := []float64{0.2, 0.5, -0.3, 0.7}
	b := []float64{0.1, -0.4, 0.9, 0.2}

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, CosineSimilarity(a, b), CosineSimilarity(b, a))
	})

	t.Run("identical non-zero vectors score 1", func(t *testing.T) {
		assert.InDelta(t, 1.0, CosineSimilarity(a, a), 1e-9)
	})

	t.Run("empty vector scores 0", func(t *testing.T) {
		assert.Zero(t, CosineSimilarity(nil, b))
		assert.Zero(t, CosineSimilarity(a, []float64{}))
	})

	t.Run("length mismatch scores 0", func(t *testing.T) {
		assert.Zero(t, CosineSimilarity(a, []float64{1, 2}))
	})

	t.Run("zero magnitude scores 0", func(t *testing.T) {
		assert.Zero(t, CosineSimilarity([]float64{0, 0, 0, 0}, a))
	})

	t.Run("opposed vectors score negative", func(t *testing.T) {
		assert.InDelta(t, -1.0, CosineSimilarity([]float64{1, 2}, []float64{-1, -2}), 1e-9)
	})
}

func TestBudgetFit(t *testing.T) {
	student := &models.StudentProfile{BudgetRange: "Under 50000"}

	t.Run("average fee inside band scores 1", func(t *testing.T) {
		inst := &models.Institution{Courses: []models.Course{{TuitionPerYear: 45000}}}
		assert.Equal(t, 1.0, budgetFit(student, inst))
	})

	t.Run("average fee above band decays linearly", func(t *testing.T) {
		inst := &models.Institution{Courses: []models.Course{{TuitionPerYear: 80000}}}
		got := budgetFit(student, inst)
		// 1 - (80000/50000 - 1) * 0.5
		assert.InDelta(t, 0.7, got, 1e-9)
		assert.Greater(t, got, 0.0)
		assert.Less(t, got, 1.0)
	})

	t.Run("cheaper than the band scores 0.8", func(t *testing.T) {
		richer := &models.StudentProfile{BudgetRange: "100000-200000"}
		inst := &models.Institution{Courses: []models.Course{{TuitionPerYear: 40000}}}
		assert.Equal(t, 0.8, budgetFit(richer, inst))
	})

	t.Run("no fee data is neutral", func(t *testing.T) {
		inst := &models.Institution{Courses: []models.Course{{TuitionPerYear: 0}}}
		assert.Equal(t, 0.5, budgetFit(student, inst))
	})

	t.Run("far above band floors at 0", func(t *testing.T) {
		inst := &models.Institution{Courses: []models.Course{{TuitionPerYear: 500000}}}
		assert.Equal(t, 0.0, budgetFit(student, inst))
	})

	t.Run("unrecognized label uses default band", func(t *testing.T) {
		odd := &models.StudentProfile{BudgetRange: "whatever"}
		inst := &models.Institution{Courses: []models.Course{{TuitionPerYear: 90000}}}
		assert.Equal(t, 1.0, budgetFit(odd, inst)) // inside 0-100000
	})
}

func TestLookupBudgetBand(t *testing.T) {
	band := lookupBudgetBand("Under 50000")
	assert.True(t, band.Recognized)
	assert.Equal(t, 0.0, band.Min)
	assert.Equal(t, 50000.0, band.Max)

	band = lookupBudgetBand("gibberish")
	assert.False(t, band.Recognized)
	assert.Equal(t, 0.0, band.Min)
	assert.Equal(t, 100000.0, band.Max)
}

func TestLocationMatch(t *testing.T) {
	inst := &models.Institution{City: "Pune", State: "Maharashtra"}

	tests := []struct {
		name    string
		student *models.StudentProfile
		want    float64
	}{
		{"no preference", &models.StudentProfile{}, 1.0},
		{"preference Any", &models.StudentProfile{PreferredLocation: "Any"}, 1.0},
		{"exact city via preference", &models.StudentProfile{PreferredLocation: "Pune"}, 1.0},
		{"exact city via stated location", &models.StudentProfile{PreferredLocation: "Nagpur", Location: "pune"}, 1.0},
		{"state match", &models.StudentProfile{PreferredLocation: "Maharashtra"}, 0.8},
		{"state substring", &models.StudentProfile{PreferredLocation: "Maharashtra region"}, 0.6},
		{"no relation floors at 0.3", &models.StudentProfile{PreferredLocation: "Delhi"}, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locationMatch(tt.student, inst))
		})
	}
}

func TestPlacementScore(t *testing.T) {
	t.Run("no data is neutral", func(t *testing.T) {
		assert.Equal(t, 0.5, placementScore(&models.Institution{}))
	})

	t.Run("weighted blend", func(t *testing.T) {
		inst := &models.Institution{PlacementPercent: 90, AvgPackageLPA: 12, HighestPackageLPA: 40}
		// 0.5*0.9 + 0.35*0.8 + 0.15*0.8
		assert.InDelta(t, 0.85, placementScore(inst), 1e-9)
	})

	t.Run("components cap at saturation", func(t *testing.T) {
		inst := &models.Institution{PlacementPercent: 120, AvgPackageLPA: 40, HighestPackageLPA: 100}
		assert.InDelta(t, 1.0, placementScore(inst), 1e-9)
	})
}

func TestScholarshipMatch(t *testing.T) {
	needy := &models.StudentProfile{NeedsScholarship: "Yes"}
	comfortable := &models.StudentProfile{NeedsScholarship: "No"}

	both := &models.Institution{Courses: []models.Course{{ScholarshipAvailable: true, LoanAvailable: true}}}
	oneOnly := &models.Institution{Courses: []models.Course{{ScholarshipAvailable: true}}}
	neither := &models.Institution{Courses: []models.Course{{}}}

	assert.Equal(t, 1.0, scholarshipMatch(comfortable, neither))
	assert.Equal(t, 1.0, scholarshipMatch(needy, both))
	assert.Equal(t, 0.7, scholarshipMatch(needy, oneOnly))
	assert.Equal(t, 0.3, scholarshipMatch(needy, neither))
}

func TestStudyModeMatch(t *testing.T) {
	online := func(modes ...string) *models.Institution {
		t.Helper()
		data, _ := json.Marshal(modes)
		return &models.Institution{Courses: []models.Course{{StudyModes: datatypes.JSON(data)}}}
	}

	assert.Equal(t, 1.0, studyModeMatch(&models.StudentProfile{}, online("Online")))
	assert.Equal(t, 1.0, studyModeMatch(&models.StudentProfile{PreferredStudyMode: "online"}, online("Online", "Offline")))
	assert.Equal(t, 0.8, studyModeMatch(&models.StudentProfile{PreferredStudyMode: "Online"}, online("Hybrid")))
	assert.Equal(t, 0.4, studyModeMatch(&models.StudentProfile{PreferredStudyMode: "Online"}, online("Offline")))
}

func TestInterestOverlap(t *testing.T) {
	inst := &models.Institution{
		Tags: jsonList(t, []string{"Technology", "Research"}),
		Courses: []models.Course{
			{Name: "B.Tech Computer Science", Tags: jsonList(t, []string{"coding", "ai"})},
		},
	}

	t.Run("no interests scores 0", func(t *testing.T) {
		assert.Zero(t, interestOverlap(&models.StudentProfile{}, inst))
	})

	t.Run("fraction of matched interests", func(t *testing.T) {
		student := &models.StudentProfile{
			Interests: jsonList(t, []string{"Coding", "Painting"}),
		}
		assert.InDelta(t, 0.5, interestOverlap(student, inst), 1e-9)
	})

	t.Run("bidirectional substring match", func(t *testing.T) {
		// "Tech" appears inside the "Technology" tag; the "coding" tag
		// appears inside "advanced coding bootcamp". Both directions count.
		student := &models.StudentProfile{
			Interests: jsonList(t, []string{"Tech", "advanced coding bootcamp"}),
		}
		assert.InDelta(t, 1.0, interestOverlap(student, inst), 1e-9)
	})

	t.Run("empty catalog matches nothing", func(t *testing.T) {
		student := &models.StudentProfile{Interests: jsonList(t, []string{"coding"})}
		assert.Zero(t, interestOverlap(student, &models.Institution{}))
	})
}

func TestBuildFeatureVector_Deterministic(t *testing.T) {
	student := &models.StudentProfile{
		Stream:      "engineering",
		BudgetRange: "Under 50000",
		Interests:   jsonList(t, []string{"coding"}),
		Embedding:   jsonList(t, []float64{0.1, 0.2, 0.3}),
	}
	inst := &models.Institution{
		Name:      "Test Institute",
		City:      "Pune",
		Embedding: jsonList(t, []float64{0.3, 0.1, 0.2}),
		Courses:   []models.Course{{Name: "B.Tech", TuitionPerYear: 45000}},
	}

	weights := map[string]float64{
		FeatureSimilarity: 0.5, FeatureBudgetFit: 0.3, FeatureInterestOverlap: 0.2,
	}

	first := Score(BuildFeatureVector(student, inst), weights)
	second := Score(BuildFeatureVector(student, inst), weights)
	assert.Equal(t, first, second)
}
