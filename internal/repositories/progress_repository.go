package repositories

import (
	"fitness_backend/internal/models"

	"gorm.io/gorm"
)

type ProgressRepository interface {
	Create(db *gorm.DB, log *models.ProgressLog) error
	FindByUser(db *gorm.DB, userID string) ([]models.ProgressLog, error)
}

type ProgressRepositoryImpl struct{}

func NewProgressRepository() ProgressRepository {
	return &ProgressRepositoryImpl{}
}

func (r *ProgressRepositoryImpl) Create(db *gorm.DB, log *models.ProgressLog) error {
	return db.Create(log).Error
}

func (r *ProgressRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.ProgressLog, error) {
	var logs []models.ProgressLog
	err := db.Where("user_id = ?", userID).
		Order("log_date DESC").
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}
