package algorithms

import (
	"strings"

	"edurec_backend/internal/models"
	"edurec_backend/internal/ontology"
)

// IsEligible decides whether a course is a candidate for the student at
// all. Checks short-circuit in a fixed order: program recognition, stream
// overlap, entrance-exam requirement, then academic-score thresholds.
// Courses the ontology cannot recognize are never eligible; that is
// deliberate conservatism, not an error.
func IsEligible(student *models.StudentProfile, course *models.Course) bool {
	program := ontology.ResolveProgram(course.Name)
	if program == nil {
		return false
	}

	streams := ontology.ResolveStreams(student.Stream)
	streamOK := false
	for _, required := range program.RequiredStreams {
		if streams.Contains(required) {
			streamOK = true
			break
		}
	}
	if !streamOK {
		return false
	}

	// Exam requirement applies only when the program declares one; a match
	// is a required code appearing inside a student exam name, so "JEE Main"
	// satisfies "jee".
	if len(program.RequiredExams) > 0 {
		examOK := false
		for _, exam := range student.GetCompetitiveExams() {
			examLower := strings.ToLower(exam)
			for _, code := range program.RequiredExams {
				if strings.Contains(examLower, strings.ToLower(code)) {
					examOK = true
					break
				}
			}
			if examOK {
				break
			}
		}
		if !examOK {
			return false
		}
	}

	return student.TenthPercent >= course.MinTenthPercent &&
		student.TwelfthPercent >= course.MinTwelfthPercent
}

// InstitutionEligible reports whether at least one of the institution's
// courses survives the gate.
func InstitutionEligible(student *models.StudentProfile, inst *models.Institution) bool {
	for i := range inst.Courses {
		if IsEligible(student, &inst.Courses[i]) {
			return true
		}
	}
	return false
}
