package services

import (
	"context"

	"fitness_backend/internal/models"
	"fitness_backend/internal/repositories"
	"fitness_backend/internal/services/dto"
	"fitness_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MealPlanService interface {
	ListMealPlans(ctx context.Context, db *gorm.DB, category string) ([]dto.MealPlanResponse, error)
	GetMealPlan(ctx context.Context, db *gorm.DB, id string) (*dto.MealPlanResponse, error)
	CreateMealPlan(ctx context.Context, db *gorm.DB, req *dto.CreateMealPlanRequest) (*dto.MealPlanResponse, error)
}

type mealPlanService struct {
	mealPlanRepo repositories.MealPlanRepository
}

func NewMealPlanService(mealPlanRepo repositories.MealPlanRepository) MealPlanService {
	return &mealPlanService{mealPlanRepo: mealPlanRepo}
}

func (s *mealPlanService) ListMealPlans(ctx context.Context, db *gorm.DB, category string) ([]dto.MealPlanResponse, error) {
	plans, err := s.mealPlanRepo.FindActive(db, category)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewMealPlanList(plans), nil
}

func (s *mealPlanService) GetMealPlan(ctx context.Context, db *gorm.DB, id string) (*dto.MealPlanResponse, error) {
	plan, err := s.mealPlanRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	resp := dto.NewMealPlanResponse(plan)
	return &resp, nil
}

func (s *mealPlanService) CreateMealPlan(ctx context.Context, db *gorm.DB, req *dto.CreateMealPlanRequest) (*dto.MealPlanResponse, error) {
	meals := req.Meals
	if meals == nil {
		meals = []models.Meal{}
	}

	plan := &models.MealPlan{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		Calories:       req.Calories,
		ProteinPercent: req.ProteinPercent,
		CarbsPercent:   req.CarbsPercent,
		FatPercent:     req.FatPercent,
		Meals:          datatypes.NewJSONSlice(meals),
		IsActive:       true,
	}

	if err := s.mealPlanRepo.Create(db, plan); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewMealPlanResponse(plan)
	return &resp, nil
}
