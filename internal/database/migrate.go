package database

import (
	"fmt"

	"fitness_backend/internal/logger"
	"fitness_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate создает/обновляет таблицы всех моделей
func AutoMigrate(db *gorm.DB) error {
	logger.Debug("Running database migrations...")

	for _, model := range models.AllModels() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	logger.Debug("Database migrations completed")
	return nil
}
