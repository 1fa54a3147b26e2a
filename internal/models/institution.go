package models

import (
	"time"

	"gorm.io/datatypes"
)

type Institution struct {
	ID                string `gorm:"primaryKey"`
	Name              string
	City              string
	State             string
	Tags              datatypes.JSON `gorm:"type:jsonb"`
	Courses           []Course       `gorm:"foreignKey:InstitutionID"`
	PlacementPercent  float64
	AvgPackageLPA     float64
	HighestPackageLPA float64
	Embedding         datatypes.JSON `gorm:"type:jsonb"` // may be empty; scored as zero similarity
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (i *Institution) GetTags() []string {
	return unmarshalStringList(i.Tags)
}

func (i *Institution) GetEmbedding() []float64 {
	return unmarshalFloatList(i.Embedding)
}

// HasPlacementData reports whether any placement statistic is recorded.
func (i *Institution) HasPlacementData() bool {
	return i.PlacementPercent > 0 || i.AvgPackageLPA > 0 || i.HighestPackageLPA > 0
}

type Course struct {
	ID                   string `gorm:"primaryKey"`
	InstitutionID        string `gorm:"index"`
	Name                 string
	Stream               string
	TuitionPerYear       float64
	MinTenthPercent      float64
	MinTwelfthPercent    float64
	RequiredStreams      datatypes.JSON `gorm:"type:jsonb"`
	RequiredExams        datatypes.JSON `gorm:"type:jsonb"`
	StudyModes           datatypes.JSON `gorm:"type:jsonb"`
	ScholarshipAvailable bool
	LoanAvailable        bool
	Tags                 datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (c *Course) GetRequiredStreams() []string {
	return unmarshalStringList(c.RequiredStreams)
}

func (c *Course) GetRequiredExams() []string {
	return unmarshalStringList(c.RequiredExams)
}

func (c *Course) GetStudyModes() []string {
	return unmarshalStringList(c.StudyModes)
}

func (c *Course) GetTags() []string {
	return unmarshalStringList(c.Tags)
}
