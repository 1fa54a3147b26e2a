package repositories

import (
	"errors"

	"gorm.io/gorm"

	"edurec_backend/internal/models"
)

var ErrInstitutionNotFound = errors.New("institution not found")

type InstitutionRepository interface {
	// FindAll returns the full catalog with courses preloaded, in a stable
	// order. Ranking tie-breaks depend on this iteration order.
	FindAll(db *gorm.DB) ([]models.Institution, error)
	FindByID(db *gorm.DB, id string) (*models.Institution, error)
	Create(db *gorm.DB, inst *models.Institution) error
}

type InstitutionRepositoryImpl struct{}

func NewInstitutionRepository() InstitutionRepository {
	return &InstitutionRepositoryImpl{}
}

func (r *InstitutionRepositoryImpl) FindAll(db *gorm.DB) ([]models.Institution, error) {
	var institutions []models.Institution
	err := db.Preload("Courses").Order("created_at ASC, id ASC").Find(&institutions).Error
	if err != nil {
		return nil, err
	}
	return institutions, nil
}

func (r *InstitutionRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Institution, error) {
	var inst models.Institution
	err := db.Preload("Courses").Where("id = ?", id).First(&inst).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstitutionNotFound
		}
		return nil, err
	}
	return &inst, nil
}

func (r *InstitutionRepositoryImpl) Create(db *gorm.DB, inst *models.Institution) error {
	return db.Create(inst).Error
}
