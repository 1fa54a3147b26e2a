package algorithms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edurec_backend/internal/models"
)

func TestReasons_NeverEmptyNeverMoreThanFive(t *testing.T) {
	student := &models.StudentProfile{}
	inst := &models.Institution{Name: "Somewhere"}

	t.Run("nothing fires yields exactly the fallback", func(t *testing.T) {
		reasons := Reasons(FeatureVector{}, student, inst)
		require.Len(t, reasons, 1)
		assert.Equal(t, "Matches your overall profile criteria", reasons[0])
	})

	t.Run("everything fires truncates to five", func(t *testing.T) {
		rich := &models.StudentProfile{
			NeedsScholarship:   "Yes",
			PreferredStudyMode: "Online",
			Interests:          jsonList(t, []string{"coding", "robotics", "ai"}),
			Hobbies:            jsonList(t, []string{"cricket"}),
		}
		sporty := &models.Institution{
			City:          "Pune",
			State:         "Maharashtra",
			AvgPackageLPA: 12,
			Tags:          jsonList(t, []string{"sports complex"}),
		}
		features := FeatureVector{
			Similarity:       0.9,
			InterestOverlap:  0.9,
			BudgetFit:        0.9,
			LocationMatch:    0.9,
			PlacementScore:   0.9,
			ScholarshipMatch: 1.0,
			StudyModeMatch:   1.0,
		}
		reasons := Reasons(features, rich, sporty)
		assert.Len(t, reasons, 5)
	})
}

func TestReasons_CategoryOrderAndThresholds(t *testing.T) {
	student := &models.StudentProfile{}
	inst := &models.Institution{City: "Pune", State: "Maharashtra", AvgPackageLPA: 14}

	t.Run("strong similarity phrase above 0.7", func(t *testing.T) {
		reasons := Reasons(FeatureVector{Similarity: 0.75}, student, inst)
		assert.Contains(t, reasons[0], "Strong overall match")
	})

	t.Run("good alignment phrase between 0.5 and 0.7", func(t *testing.T) {
		reasons := Reasons(FeatureVector{Similarity: 0.6}, student, inst)
		assert.Contains(t, reasons[0], "Good alignment")
	})

	t.Run("similarity at threshold does not fire", func(t *testing.T) {
		reasons := Reasons(FeatureVector{Similarity: 0.5}, student, inst)
		assert.Equal(t, "Matches your overall profile criteria", reasons[0])
	})

	t.Run("similarity precedes budget in generation order", func(t *testing.T) {
		reasons := Reasons(FeatureVector{Similarity: 0.8, BudgetFit: 0.9}, student, inst)
		require.Len(t, reasons, 2)
		assert.Contains(t, reasons[0], "Strong overall match")
		assert.Contains(t, reasons[1], "budget")
	})

	t.Run("placement phrase includes average package when known", func(t *testing.T) {
		reasons := Reasons(FeatureVector{PlacementScore: 0.8}, student, inst)
		require.Len(t, reasons, 1)
		assert.Contains(t, reasons[0], "14.0 LPA")
	})

	t.Run("location phrase names the city", func(t *testing.T) {
		reasons := Reasons(FeatureVector{LocationMatch: 0.9}, student, inst)
		require.Len(t, reasons, 1)
		assert.Contains(t, reasons[0], "Pune")
	})
}

func TestReasons_InterestPhraseQuotesAtMostTwoInterests(t *testing.T) {
	student := &models.StudentProfile{
		Interests: jsonList(t, []string{"coding", "robotics", "astronomy"}),
	}
	reasons := Reasons(FeatureVector{InterestOverlap: 0.7}, student, &models.Institution{})
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "coding")
	assert.Contains(t, reasons[0], "robotics")
	assert.NotContains(t, reasons[0], "astronomy")
}

func TestReasons_ScholarshipRequiresDeclaredNeed(t *testing.T) {
	features := FeatureVector{ScholarshipMatch: 1.0}

	noNeed := Reasons(features, &models.StudentProfile{}, &models.Institution{})
	assert.Equal(t, "Matches your overall profile criteria", noNeed[0])

	needy := Reasons(features, &models.StudentProfile{NeedsScholarship: "Yes"}, &models.Institution{})
	assert.Contains(t, strings.ToLower(needy[0]), "scholarship")
}

func TestReasons_SportsFacilities(t *testing.T) {
	student := &models.StudentProfile{Hobbies: jsonList(t, []string{"playing cricket"})}
	inst := &models.Institution{Tags: jsonList(t, []string{"Sports Complex"})}

	reasons := Reasons(FeatureVector{}, student, inst)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "sports facilities")

	// No sporty hobbies: the facility alone does not fire the category.
	bookish := &models.StudentProfile{Hobbies: jsonList(t, []string{"reading"})}
	reasons = Reasons(FeatureVector{}, bookish, inst)
	assert.Equal(t, "Matches your overall profile criteria", reasons[0])
}
