package dto

import "fitness_backend/internal/models"

type CreateTrainerRequest struct {
	UserID          string   `json:"user_id" validate:"required"`
	Specialization  []string `json:"specialization"`
	ExperienceYears int      `json:"experience_years" validate:"gte=0"`
	Certifications  []string `json:"certifications"`
	Bio             string   `json:"bio"`
	AvailableDays   []string `json:"available_days"`
}

// TrainerResponse - name/email/profile_image берутся из связанного пользователя
type TrainerResponse struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id"`
	Name            *string  `json:"name"`
	Email           *string  `json:"email"`
	ProfileImage    *string  `json:"profile_image"`
	Specialization  []string `json:"specialization"`
	ExperienceYears int      `json:"experience_years"`
	Certifications  []string `json:"certifications"`
	Bio             string   `json:"bio"`
	AvailableDays   []string `json:"available_days"`
	Rating          float64  `json:"rating"`
	TotalReviews    int      `json:"total_reviews"`
	IsActive        bool     `json:"is_active"`
}

func NewTrainerResponse(t *models.Trainer) TrainerResponse {
	resp := TrainerResponse{
		ID:              t.ID,
		UserID:          t.UserID,
		Specialization:  orEmpty(t.Specialization),
		ExperienceYears: t.ExperienceYears,
		Certifications:  orEmpty(t.Certifications),
		Bio:             t.Bio,
		AvailableDays:   orEmpty(t.AvailableDays),
		Rating:          t.Rating,
		TotalReviews:    t.TotalReviews,
		IsActive:        t.IsActive,
	}
	if t.User != nil {
		name := t.User.FullName()
		email := t.User.Email
		image := t.User.ProfileImage
		resp.Name = &name
		resp.Email = &email
		resp.ProfileImage = &image
	}
	return resp
}

func NewTrainerList(items []models.Trainer) []TrainerResponse {
	out := make([]TrainerResponse, 0, len(items))
	for i := range items {
		out = append(out, NewTrainerResponse(&items[i]))
	}
	return out
}
