package repositories

import (
	"errors"

	"fitness_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMealPlanNotFound = errors.New("meal plan not found")

type MealPlanRepository interface {
	Create(db *gorm.DB, plan *models.MealPlan) error
	FindByID(db *gorm.DB, id string) (*models.MealPlan, error)
	FindActive(db *gorm.DB, category string) ([]models.MealPlan, error)
}

type MealPlanRepositoryImpl struct{}

func NewMealPlanRepository() MealPlanRepository {
	return &MealPlanRepositoryImpl{}
}

func (r *MealPlanRepositoryImpl) Create(db *gorm.DB, plan *models.MealPlan) error {
	return db.Create(plan).Error
}

func (r *MealPlanRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.MealPlan, error) {
	var plan models.MealPlan
	if err := db.First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// FindActive - пустая категория означает "все"
func (r *MealPlanRepositoryImpl) FindActive(db *gorm.DB, category string) ([]models.MealPlan, error) {
	query := db.Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var plans []models.MealPlan
	err := query.Order("created_at ASC").Find(&plans).Error
	return plans, err
}
