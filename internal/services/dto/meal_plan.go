package dto

import "fitness_backend/internal/models"

type CreateMealPlanRequest struct {
	Title          string        `json:"title" validate:"required,max=100"`
	Description    string        `json:"description"`
	Category       string        `json:"category" validate:"omitempty,max=50"`
	ImageURL       string        `json:"image_url" validate:"omitempty,max=255"`
	Calories       *int          `json:"calories" validate:"omitempty,gte=0"`
	ProteinPercent *int          `json:"protein_percent" validate:"omitempty,gte=0,lte=100"`
	CarbsPercent   *int          `json:"carbs_percent" validate:"omitempty,gte=0,lte=100"`
	FatPercent     *int          `json:"fat_percent" validate:"omitempty,gte=0,lte=100"`
	Meals          []models.Meal `json:"meals"`
}

// MealPlanResponse - проценты БЖУ отдаются под ключами protein/carbs/fat
type MealPlanResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	ImageURL    string        `json:"image_url"`
	Calories    *int          `json:"calories"`
	Protein     *int          `json:"protein"`
	Carbs       *int          `json:"carbs"`
	Fat         *int          `json:"fat"`
	Meals       []models.Meal `json:"meals"`
	IsActive    bool          `json:"is_active"`
}

func NewMealPlanResponse(m *models.MealPlan) MealPlanResponse {
	return MealPlanResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		Calories:    m.Calories,
		Protein:     m.ProteinPercent,
		Carbs:       m.CarbsPercent,
		Fat:         m.FatPercent,
		Meals:       orEmpty(m.Meals),
		IsActive:    m.IsActive,
	}
}

func NewMealPlanList(items []models.MealPlan) []MealPlanResponse {
	out := make([]MealPlanResponse, 0, len(items))
	for i := range items {
		out = append(out, NewMealPlanResponse(&items[i]))
	}
	return out
}
