package algorithms

import (
	"math"
	"strings"

	"edurec_backend/internal/models"
)

// Feature names as they appear in weight configuration and API responses.
const (
	FeatureSimilarity       = "similarity"
	FeatureInterestOverlap  = "interestOverlap"
	FeatureBudgetFit        = "budgetFit"
	FeatureLocationMatch    = "locationMatch"
	FeaturePlacementScore   = "placementScore"
	FeatureScholarshipMatch = "scholarshipMatch"
	FeatureStudyModeMatch   = "studyModeMatch"
)

// FeatureVector is the fixed set of per-(student, institution) signals.
// Every field is a pure function of its inputs; identical inputs always
// produce identical values. All signals live in [0,1] except Similarity,
// which is a raw cosine and may be negative for opposed vectors.
type FeatureVector struct {
	Similarity       float64 `json:"similarity"`
	InterestOverlap  float64 `json:"interestOverlap"`
	BudgetFit        float64 `json:"budgetFit"`
	LocationMatch    float64 `json:"locationMatch"`
	PlacementScore   float64 `json:"placementScore"`
	ScholarshipMatch float64 `json:"scholarshipMatch"`
	StudyModeMatch   float64 `json:"studyModeMatch"`
}

// Value returns the named feature, or 0 for an unknown name. The feature
// set is closed; string dispatch exists only for weight-keyed scoring.
func (f FeatureVector) Value(name string) float64 {
	switch name {
	case FeatureSimilarity:
		return f.Similarity
	case FeatureInterestOverlap:
		return f.InterestOverlap
	case FeatureBudgetFit:
		return f.BudgetFit
	case FeatureLocationMatch:
		return f.LocationMatch
	case FeaturePlacementScore:
		return f.PlacementScore
	case FeatureScholarshipMatch:
		return f.ScholarshipMatch
	case FeatureStudyModeMatch:
		return f.StudyModeMatch
	}
	return 0
}

// BuildFeatureVector computes all seven signals for one candidate.
func BuildFeatureVector(student *models.StudentProfile, inst *models.Institution) FeatureVector {
	return FeatureVector{
		Similarity:       CosineSimilarity(student.GetEmbedding(), inst.GetEmbedding()),
		InterestOverlap:  interestOverlap(student, inst),
		BudgetFit:        budgetFit(student, inst),
		LocationMatch:    locationMatch(student, inst),
		PlacementScore:   placementScore(inst),
		ScholarshipMatch: scholarshipMatch(student, inst),
		StudyModeMatch:   studyModeMatch(student, inst),
	}
}

// CosineSimilarity returns dot(a,b)/(|a|*|b|). Empty or length-mismatched
// vectors score 0, as does a zero-magnitude vector. The value is not
// clamped: genuinely opposed vectors legitimately score negative.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// interestOverlap is the fraction of the student's interests that
// fuzzy-match (case-insensitive, bidirectional substring) the union of
// institution tags, course names and course tags.
func interestOverlap(student *models.StudentProfile, inst *models.Institution) float64 {
	interests := student.GetInterests()
	if len(interests) == 0 {
		return 0
	}

	corpus := inst.GetTags()
	for i := range inst.Courses {
		corpus = append(corpus, inst.Courses[i].Name)
		corpus = append(corpus, inst.Courses[i].GetTags()...)
	}

	matched := 0
	for _, interest := range interests {
		needle := strings.ToLower(interest)
		for _, term := range corpus {
			hay := strings.ToLower(term)
			if strings.Contains(hay, needle) || strings.Contains(needle, hay) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(interests))
}

// budgetBand is a tuition range resolved from a budget-range label.
// Recognized is false when the label fell back to the default band; the
// score is the same either way.
type budgetBand struct {
	Min        float64
	Max        float64
	Recognized bool
}

func lookupBudgetBand(label string) budgetBand {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "under 50000":
		return budgetBand{Min: 0, Max: 50000, Recognized: true}
	case "50000-100000":
		return budgetBand{Min: 50000, Max: 100000, Recognized: true}
	case "100000-200000":
		return budgetBand{Min: 100000, Max: 200000, Recognized: true}
	case "200000-500000":
		return budgetBand{Min: 200000, Max: 500000, Recognized: true}
	case "above 500000":
		return budgetBand{Min: 500000, Max: math.Inf(1), Recognized: true}
	}
	return budgetBand{Min: 0, Max: 100000, Recognized: false}
}

// budgetFit compares average tuition across the institution's priced
// courses with the student's budget band. Cheaper than needed stays
// favorable at 0.8; above-band fees decay linearly with the overshoot.
func budgetFit(student *models.StudentProfile, inst *models.Institution) float64 {
	band := lookupBudgetBand(student.BudgetRange)

	var total float64
	count := 0
	for i := range inst.Courses {
		if inst.Courses[i].TuitionPerYear > 0 {
			total += inst.Courses[i].TuitionPerYear
			count++
		}
	}
	if count == 0 {
		return 0.5 // no fee data, neutral
	}
	avg := total / float64(count)

	switch {
	case avg >= band.Min && avg <= band.Max:
		return 1.0
	case avg < band.Min:
		return 0.8
	default:
		return math.Max(0, 1-(avg/band.Max-1)*0.5)
	}
}

// locationMatch is a soft geographic signal: never zero, floored at 0.3.
func locationMatch(student *models.StudentProfile, inst *models.Institution) float64 {
	pref := strings.TrimSpace(student.PreferredLocation)
	if pref == "" || strings.EqualFold(pref, "Any") {
		return 1.0
	}
	if strings.EqualFold(inst.City, pref) || strings.EqualFold(inst.City, student.Location) {
		return 1.0
	}
	if strings.EqualFold(inst.State, pref) || strings.EqualFold(inst.State, student.Location) {
		return 0.8
	}
	state := strings.ToLower(inst.State)
	prefLower := strings.ToLower(pref)
	if state != "" && (strings.Contains(state, prefLower) || strings.Contains(prefLower, state)) {
		return 0.6
	}
	return 0.3
}

// placementScore blends placement %, average package and highest package,
// each capped at its saturation point. Institutions without any placement
// data score a neutral 0.5.
func placementScore(inst *models.Institution) float64 {
	if !inst.HasPlacementData() {
		return 0.5
	}
	return 0.5*math.Min(inst.PlacementPercent/100, 1) +
		0.35*math.Min(inst.AvgPackageLPA/15, 1) +
		0.15*math.Min(inst.HighestPackageLPA/50, 1)
}

func scholarshipMatch(student *models.StudentProfile, inst *models.Institution) float64 {
	if !student.NeedsFinancialAid() {
		return 1.0
	}
	var scholarship, loan bool
	for i := range inst.Courses {
		if inst.Courses[i].ScholarshipAvailable {
			scholarship = true
		}
		if inst.Courses[i].LoanAvailable {
			loan = true
		}
	}
	switch {
	case scholarship && loan:
		return 1.0
	case scholarship || loan:
		return 0.7
	default:
		return 0.3
	}
}

func studyModeMatch(student *models.StudentProfile, inst *models.Institution) float64 {
	pref := strings.TrimSpace(student.PreferredStudyMode)
	if pref == "" {
		return 1.0
	}
	hybrid := false
	for i := range inst.Courses {
		for _, mode := range inst.Courses[i].GetStudyModes() {
			if strings.EqualFold(mode, pref) {
				return 1.0
			}
			lower := strings.ToLower(mode)
			if strings.Contains(lower, "hybrid") || strings.Contains(lower, "both") {
				hybrid = true
			}
		}
	}
	if hybrid {
		return 0.8
	}
	return 0.4
}
