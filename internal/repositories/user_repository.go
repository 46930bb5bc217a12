package repositories

import (
	"errors"

	"fitness_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	ExistsByEmail(db *gorm.DB, email string) (bool, error)
	UpdateFields(db *gorm.DB, userID string, fields map[string]interface{}) error
	UpdatePassword(db *gorm.DB, userID, passwordHash string) error
	Deactivate(db *gorm.DB, userID string) error

	// Admin operations
	FindAll(db *gorm.DB, limit, offset int) ([]models.User, int64, error)
	CountAll(db *gorm.DB) (int64, error)
	CountActive(db *gorm.DB) (int64, error)

	// Абонементы
	ClearExpiredMemberships(db *gorm.DB, today datatypes.Date) (int64, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail - точное совпадение, без приведения регистра
func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// UpdateFields - частичное обновление; map позволяет записывать нулевые значения
func (r *UserRepositoryImpl) UpdateFields(db *gorm.DB, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdatePassword(db *gorm.DB, userID, passwordHash string) error {
	return r.UpdateFields(db, userID, map[string]interface{}{"password": passwordHash})
}

func (r *UserRepositoryImpl) Deactivate(db *gorm.DB, userID string) error {
	return r.UpdateFields(db, userID, map[string]interface{}{"is_active": false})
}

func (r *UserRepositoryImpl) FindAll(db *gorm.DB, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at ASC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

func (r *UserRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// ClearExpiredMemberships снимает абонемент у тех, у кого membership_end < today
func (r *UserRepositoryImpl) ClearExpiredMemberships(db *gorm.DB, today datatypes.Date) (int64, error) {
	result := db.Model(&models.User{}).
		Where("membership_id IS NOT NULL AND membership_end IS NOT NULL AND membership_end < ?", today).
		Update("membership_id", nil)
	return result.RowsAffected, result.Error
}
