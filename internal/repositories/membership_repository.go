package repositories

import (
	"errors"

	"fitness_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMembershipNotFound = errors.New("membership not found")

type MembershipRepository interface {
	Create(db *gorm.DB, membership *models.Membership) error
	FindByID(db *gorm.DB, id string) (*models.Membership, error)
	FindActive(db *gorm.DB) ([]models.Membership, error)
	Update(db *gorm.DB, membership *models.Membership) error
	Count(db *gorm.DB) (int64, error)
}

type MembershipRepositoryImpl struct{}

func NewMembershipRepository() MembershipRepository {
	return &MembershipRepositoryImpl{}
}

func (r *MembershipRepositoryImpl) Create(db *gorm.DB, membership *models.Membership) error {
	return db.Create(membership).Error
}

func (r *MembershipRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Membership, error) {
	var membership models.Membership
	if err := db.First(&membership, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}
	return &membership, nil
}

func (r *MembershipRepositoryImpl) FindActive(db *gorm.DB) ([]models.Membership, error) {
	var memberships []models.Membership
	err := db.Where("is_active = ?", true).Order("price_monthly ASC").Find(&memberships).Error
	return memberships, err
}

// Update сохраняет все поля, включая нулевые (is_active=false)
func (r *MembershipRepositoryImpl) Update(db *gorm.DB, membership *models.Membership) error {
	return db.Save(membership).Error
}

func (r *MembershipRepositoryImpl) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Membership{}).Count(&count).Error
	return count, err
}
