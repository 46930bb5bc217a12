package repositories

import (
	"errors"

	"fitness_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("contact message not found")

type ContactRepository interface {
	Create(db *gorm.DB, msg *models.ContactMessage) error
	FindByID(db *gorm.DB, id string) (*models.ContactMessage, error)
	FindAll(db *gorm.DB) ([]models.ContactMessage, error)
	MarkRead(db *gorm.DB, id string) error
	CountUnread(db *gorm.DB) (int64, error)
}

type ContactRepositoryImpl struct{}

func NewContactRepository() ContactRepository {
	return &ContactRepositoryImpl{}
}

func (r *ContactRepositoryImpl) Create(db *gorm.DB, msg *models.ContactMessage) error {
	return db.Create(msg).Error
}

func (r *ContactRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := db.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &msg, nil
}

func (r *ContactRepositoryImpl) FindAll(db *gorm.DB) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// MarkRead идемпотентен: повторная пометка не ошибка
func (r *ContactRepositoryImpl) MarkRead(db *gorm.DB, id string) error {
	if _, err := r.FindByID(db, id); err != nil {
		return err
	}
	return db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", true).Error
}

func (r *ContactRepositoryImpl) CountUnread(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}
