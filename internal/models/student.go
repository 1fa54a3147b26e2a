package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type StudentProfile struct {
	ID                 string `gorm:"primaryKey"`
	Name               string
	Stream             string
	Interests          datatypes.JSON `gorm:"type:jsonb"`
	Hobbies            datatypes.JSON `gorm:"type:jsonb"`
	StrongSubjects     datatypes.JSON `gorm:"type:jsonb"`
	CompetitiveExams   datatypes.JSON `gorm:"type:jsonb"`
	TenthPercent       float64
	TwelfthPercent     float64
	CareerGoal         string
	Location           string
	PreferredLocation  string
	BudgetRange        string
	NeedsScholarship   string // "Yes" means the student needs aid
	PreferredStudyMode string
	Embedding          datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (s *StudentProfile) GetInterests() []string {
	return unmarshalStringList(s.Interests)
}

func (s *StudentProfile) GetHobbies() []string {
	return unmarshalStringList(s.Hobbies)
}

func (s *StudentProfile) GetStrongSubjects() []string {
	return unmarshalStringList(s.StrongSubjects)
}

func (s *StudentProfile) GetCompetitiveExams() []string {
	return unmarshalStringList(s.CompetitiveExams)
}

func (s *StudentProfile) GetEmbedding() []float64 {
	return unmarshalFloatList(s.Embedding)
}

// NeedsFinancialAid reports whether the profile declared a scholarship/loan need.
func (s *StudentProfile) NeedsFinancialAid() bool {
	return s.NeedsScholarship == "Yes"
}

func unmarshalStringList(data datatypes.JSON) []string {
	var list []string
	if len(data) > 0 {
		json.Unmarshal(data, &list)
	}
	return list
}

func unmarshalFloatList(data datatypes.JSON) []float64 {
	var list []float64
	if len(data) > 0 {
		json.Unmarshal(data, &list)
	}
	return list
}
