package dto

import "fitness_backend/internal/models"

type CreateProgressRequest struct {
	Weight            *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height            *float64 `json:"height" validate:"omitempty,gt=0"`
	BodyFatPercent    *float64 `json:"body_fat_percent" validate:"omitempty,gte=0,lte=100"`
	MuscleMass        *float64 `json:"muscle_mass" validate:"omitempty,gte=0"`
	WorkoutsCompleted *int     `json:"workouts_completed" validate:"omitempty,gte=0"`
	CaloriesBurned    *int     `json:"calories_burned" validate:"omitempty,gte=0"`
	Notes             string   `json:"notes"`
	LogDate           string   `json:"log_date" validate:"omitempty,datetime=2006-01-02"`
}

type ProgressLogResponse struct {
	ID                string   `json:"id"`
	UserID            string   `json:"user_id"`
	Weight            *float64 `json:"weight"`
	Height            *float64 `json:"height"`
	BodyFatPercent    *float64 `json:"body_fat_percent"`
	MuscleMass        *float64 `json:"muscle_mass"`
	BMI               *float64 `json:"bmi"`
	WorkoutsCompleted *int     `json:"workouts_completed"`
	CaloriesBurned    *int     `json:"calories_burned"`
	Notes             string   `json:"notes"`
	LogDate           string   `json:"log_date"`
}

func NewProgressLogResponse(l *models.ProgressLog) ProgressLogResponse {
	return ProgressLogResponse{
		ID:                l.ID,
		UserID:            l.UserID,
		Weight:            l.Weight,
		Height:            l.Height,
		BodyFatPercent:    l.BodyFatPercent,
		MuscleMass:        l.MuscleMass,
		BMI:               l.BMI,
		WorkoutsCompleted: l.WorkoutsCompleted,
		CaloriesBurned:    l.CaloriesBurned,
		Notes:             l.Notes,
		LogDate:           models.FormatDate(l.LogDate),
	}
}

func NewProgressLogList(items []models.ProgressLog) []ProgressLogResponse {
	out := make([]ProgressLogResponse, 0, len(items))
	for i := range items {
		out = append(out, NewProgressLogResponse(&items[i]))
	}
	return out
}
