package algorithms

import (
	"fmt"
	"strings"

	"edurec_backend/internal/models"
)

const maxReasons = 5

var sportsKeywords = []string{
	"sports", "cricket", "football", "basketball", "athletics",
	"swimming", "badminton", "tennis",
}

// Reasons derives the human-readable justification list from the same
// feature vector used for scoring. Categories are evaluated in a fixed
// order and each appends independently when its threshold fires; the list
// is truncated to five in generation order and is never empty.
func Reasons(features FeatureVector, student *models.StudentProfile, inst *models.Institution) []string {
	var reasons []string

	if features.Similarity > 0.7 {
		reasons = append(reasons, "Strong overall match with your academic profile")
	} else if features.Similarity > 0.5 {
		reasons = append(reasons, "Good alignment with your academic profile")
	}

	if features.InterestOverlap > 0.6 {
		interests := student.GetInterests()
		if len(interests) > 2 {
			interests = interests[:2]
		}
		reasons = append(reasons, fmt.Sprintf("Offers programs matching your interests in %s", strings.Join(interests, ", ")))
	}

	if features.BudgetFit > 0.8 {
		reasons = append(reasons, "Fits well within your budget")
	} else if features.BudgetFit > 0.5 {
		reasons = append(reasons, "Reasonably priced for your budget range")
	}

	if features.LocationMatch > 0.8 {
		place := inst.City
		if place == "" {
			place = inst.State
		}
		reasons = append(reasons, fmt.Sprintf("Located in %s, matching your location preference", place))
	}

	if features.PlacementScore > 0.7 {
		if inst.AvgPackageLPA > 0 {
			reasons = append(reasons, fmt.Sprintf("Excellent placement record with %.1f LPA average package", inst.AvgPackageLPA))
		} else {
			reasons = append(reasons, "Excellent placement record")
		}
	} else if features.PlacementScore > 0.5 {
		reasons = append(reasons, "Good placement opportunities")
	}

	if features.ScholarshipMatch == 1 && student.NeedsFinancialAid() {
		reasons = append(reasons, "Offers scholarships and loan support you are looking for")
	}

	if features.StudyModeMatch == 1 && student.PreferredStudyMode != "" {
		reasons = append(reasons, fmt.Sprintf("Offers your preferred %s study mode", student.PreferredStudyMode))
	}

	if hasSportsFacilities(inst) && hobbiesIncludeSports(student) {
		reasons = append(reasons, "Great sports facilities matching your hobbies")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Matches your overall profile criteria")
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

func hasSportsFacilities(inst *models.Institution) bool {
	for _, tag := range inst.GetTags() {
		lower := strings.ToLower(tag)
		for _, kw := range sportsKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

func hobbiesIncludeSports(student *models.StudentProfile) bool {
	for _, hobby := range student.GetHobbies() {
		lower := strings.ToLower(hobby)
		for _, kw := range sportsKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
