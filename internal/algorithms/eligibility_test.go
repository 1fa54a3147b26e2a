package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"edurec_backend/internal/models"
)

func engineeringStudent(t *testing.T) *models.StudentProfile {
	t.Helper()
	return &models.StudentProfile{
		Stream:           "engineering",
		TenthPercent:     90,
		TwelfthPercent:   88,
		CompetitiveExams: jsonList(t, []string{"JEE Main"}),
	}
}

func btechCourse() *models.Course {
	return &models.Course{
		Name:              "B.Tech Computer Science",
		MinTenthPercent:   60,
		MinTwelfthPercent: 60,
	}
}

func TestIsEligible_EngineeringStudentForBTech(t *testing.T) {
	assert.True(t, IsEligible(engineeringStudent(t), btechCourse()))
}

func TestIsEligible_StreamMismatch(t *testing.T) {
	// engineering resolves only to pcm; nursing requires pcb or science.
	course := &models.Course{Name: "B.Sc Nursing"}
	assert.False(t, IsEligible(engineeringStudent(t), course))
}

func TestIsEligible_UnrecognizedCourse(t *testing.T) {
	course := &models.Course{Name: "Certificate in Pottery"}
	assert.False(t, IsEligible(engineeringStudent(t), course))
}

func TestIsEligible_ExamRequirement(t *testing.T) {
	t.Run("missing required exam fails", func(t *testing.T) {
		student := engineeringStudent(t)
		student.CompetitiveExams = jsonList(t, []string{"NEET"})
		assert.False(t, IsEligible(student, btechCourse()))
	})

	t.Run("exam name matched by substring, case-insensitive", func(t *testing.T) {
		student := engineeringStudent(t)
		student.CompetitiveExams = jsonList(t, []string{"jee advanced"})
		assert.True(t, IsEligible(student, btechCourse()))
	})

	t.Run("no declared exams skips the check", func(t *testing.T) {
		student := engineeringStudent(t)
		student.CompetitiveExams = nil
		course := &models.Course{Name: "BCA"} // bca declares no exams
		assert.True(t, IsEligible(student, course))
	})
}

func TestIsEligible_AcademicThresholds(t *testing.T) {
	student := engineeringStudent(t)
	course := btechCourse()
	course.MinTwelfthPercent = 90

	assert.False(t, IsEligible(student, course))

	// Raising twelfth% above the threshold can only flip false -> true.
	student.TwelfthPercent = 91
	assert.True(t, IsEligible(student, course))

	student.TwelfthPercent = 99
	assert.True(t, IsEligible(student, course))
}

func TestIsEligible_MonotonicInTwelfthPercent(t *testing.T) {
	student := engineeringStudent(t)
	course := btechCourse()
	course.MinTwelfthPercent = 75

	previous := false
	for pct := 60.0; pct <= 95; pct += 5 {
		student.TwelfthPercent = pct
		eligible := IsEligible(student, course)
		if previous {
			assert.True(t, eligible, "eligibility regressed at twelfth%%=%v", pct)
		}
		previous = eligible
	}
	assert.True(t, previous)
}

func TestInstitutionEligible(t *testing.T) {
	student := engineeringStudent(t)

	t.Run("one surviving course is enough", func(t *testing.T) {
		inst := &models.Institution{Courses: []models.Course{
			{Name: "B.Sc Nursing"},
			*btechCourse(),
		}}
		assert.True(t, InstitutionEligible(student, inst))
	})

	t.Run("no surviving course", func(t *testing.T) {
		inst := &models.Institution{Courses: []models.Course{
			{Name: "B.Sc Nursing"},
			{Name: "MBBS"},
		}}
		assert.False(t, InstitutionEligible(student, inst))
	})

	t.Run("no courses at all", func(t *testing.T) {
		assert.False(t, InstitutionEligible(student, &models.Institution{}))
	})
}
