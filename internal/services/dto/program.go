package dto

import "fitness_backend/internal/models"

type CreateProgramRequest struct {
	Title           string `json:"title" validate:"required,max=100"`
	Description     string `json:"description"`
	Category        string `json:"category" validate:"omitempty,max=50"`
	ImageURL        string `json:"image_url" validate:"omitempty,max=255"`
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0"`
	CaloriesBurned  string `json:"calories_burned" validate:"omitempty,max=20"`
	Level           string `json:"level" validate:"omitempty,max=20"`
	MaxParticipants *int   `json:"max_participants" validate:"omitempty,gt=0"`
}

type UpdateProgramRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=1,max=100"`
	Description     *string `json:"description"`
	Category        *string `json:"category" validate:"omitempty,max=50"`
	ImageURL        *string `json:"image_url" validate:"omitempty,max=255"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gte=0"`
	CaloriesBurned  *string `json:"calories_burned" validate:"omitempty,max=20"`
	Level           *string `json:"level" validate:"omitempty,max=20"`
	MaxParticipants *int    `json:"max_participants" validate:"omitempty,gt=0"`
	IsActive        *bool   `json:"is_active"`
}

type ProgramResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	ImageURL        string `json:"image_url"`
	DurationMinutes int    `json:"duration_minutes"`
	CaloriesBurned  string `json:"calories_burned"`
	Level           string `json:"level"`
	MaxParticipants int    `json:"max_participants"`
	IsActive        bool   `json:"is_active"`
}

func NewProgramResponse(p *models.Program) ProgramResponse {
	return ProgramResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Category:        p.Category,
		ImageURL:        p.ImageURL,
		DurationMinutes: p.DurationMinutes,
		CaloriesBurned:  p.CaloriesBurned,
		Level:           p.Level,
		MaxParticipants: p.MaxParticipants,
		IsActive:        p.IsActive,
	}
}

func NewProgramList(items []models.Program) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(items))
	for i := range items {
		out = append(out, NewProgramResponse(&items[i]))
	}
	return out
}
