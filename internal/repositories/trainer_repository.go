package repositories

import (
	"errors"

	"fitness_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTrainerNotFound      = errors.New("trainer not found")
	ErrTrainerAlreadyExists = errors.New("trainer profile already exists")
)

type TrainerRepository interface {
	Create(db *gorm.DB, trainer *models.Trainer) error
	FindByID(db *gorm.DB, id string) (*models.Trainer, error)
	FindByUserID(db *gorm.DB, userID string) (*models.Trainer, error)
	FindActive(db *gorm.DB) ([]models.Trainer, error)
	CountActive(db *gorm.DB) (int64, error)
}

type TrainerRepositoryImpl struct{}

func NewTrainerRepository() TrainerRepository {
	return &TrainerRepositoryImpl{}
}

func (r *TrainerRepositoryImpl) Create(db *gorm.DB, trainer *models.Trainer) error {
	if err := db.Create(trainer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrTrainerAlreadyExists
		}
		return err
	}
	return nil
}

func (r *TrainerRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Trainer, error) {
	var trainer models.Trainer
	if err := db.Preload("User").First(&trainer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *TrainerRepositoryImpl) FindByUserID(db *gorm.DB, userID string) (*models.Trainer, error) {
	var trainer models.Trainer
	if err := db.Preload("User").First(&trainer, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *TrainerRepositoryImpl) FindActive(db *gorm.DB) ([]models.Trainer, error) {
	var trainers []models.Trainer
	err := db.Preload("User").Where("is_active = ?", true).Order("created_at ASC").Find(&trainers).Error
	return trainers, err
}

func (r *TrainerRepositoryImpl) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Trainer{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
