package repositories

import (
	"errors"

	"gorm.io/gorm"

	"edurec_backend/internal/models"
)

var ErrStudentNotFound = errors.New("student profile not found")

type StudentRepository interface {
	FindByID(db *gorm.DB, id string) (*models.StudentProfile, error)
	Create(db *gorm.DB, profile *models.StudentProfile) error
}

type StudentRepositoryImpl struct{}

func NewStudentRepository() StudentRepository {
	return &StudentRepositoryImpl{}
}

func (r *StudentRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := db.Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *StudentRepositoryImpl) Create(db *gorm.DB, profile *models.StudentProfile) error {
	return db.Create(profile).Error
}
