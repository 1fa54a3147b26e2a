package repositories

import (
	"gorm.io/gorm"

	"edurec_backend/internal/models"
)

type EventRepository interface {
	Create(db *gorm.DB, event *models.InteractionEvent) error
	FindByStudent(db *gorm.DB, studentID string, limit int) ([]models.InteractionEvent, error)
}

type EventRepositoryImpl struct{}

func NewEventRepository() EventRepository {
	return &EventRepositoryImpl{}
}

func (r *EventRepositoryImpl) Create(db *gorm.DB, event *models.InteractionEvent) error {
	return db.Create(event).Error
}

func (r *EventRepositoryImpl) FindByStudent(db *gorm.DB, studentID string, limit int) ([]models.InteractionEvent, error) {
	var events []models.InteractionEvent
	q := db.Where("student_id = ?", studentID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&events).Error
	return events, err
}
