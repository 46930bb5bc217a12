package repositories

import (
	"errors"
	"time"

	"fitness_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingNotConfirmed = errors.New("booking is not confirmed")
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *models.Booking) error
	FindByID(db *gorm.DB, id string) (*models.Booking, error)
	FindByUser(db *gorm.DB, userID string) ([]models.Booking, error)
	HasConfirmed(db *gorm.DB, userID, classID string) (bool, error)
	Cancel(db *gorm.DB, bookingID string, at time.Time) error

	// Admin operations
	CountConfirmed(db *gorm.DB) (int64, error)
	FindRecent(db *gorm.DB, limit int) ([]models.Booking, error)
}

type BookingRepositoryImpl struct{}

func NewBookingRepository() BookingRepository {
	return &BookingRepositoryImpl{}
}

func withBookingRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Class").
		Preload("Class.Program").
		Preload("Class.Trainer").
		Preload("Class.Trainer.User")
}

func (r *BookingRepositoryImpl) Create(db *gorm.DB, booking *models.Booking) error {
	return db.Omit("User", "Class").Create(booking).Error
}

func (r *BookingRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := withBookingRelations(db).First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := withBookingRelations(db).
		Where("user_id = ?", userID).
		Order("booked_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) HasConfirmed(db *gorm.DB, userID, classID string) (bool, error) {
	var count int64
	err := db.Model(&models.Booking{}).
		Where("user_id = ? AND class_id = ? AND status = ?", userID, classID, models.BookingStatusConfirmed).
		Count(&count).Error
	return count > 0, err
}

// Cancel - условный переход confirmed -> cancelled. Повторная отмена
// не обновит ни одной строки и вернет ErrBookingNotConfirmed.
func (r *BookingRepositoryImpl) Cancel(db *gorm.DB, bookingID string, at time.Time) error {
	result := db.Model(&models.Booking{}).
		Where("id = ? AND status = ?", bookingID, models.BookingStatusConfirmed).
		Updates(map[string]interface{}{
			"status":       models.BookingStatusCancelled,
			"cancelled_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotConfirmed
	}
	return nil
}

func (r *BookingRepositoryImpl) CountConfirmed(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Booking{}).Where("status = ?", models.BookingStatusConfirmed).Count(&count).Error
	return count, err
}

func (r *BookingRepositoryImpl) FindRecent(db *gorm.DB, limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := withBookingRelations(db).Order("booked_at DESC").Limit(limit).Find(&bookings).Error
	return bookings, err
}
