package dto

import "fitness_backend/internal/models"

type CreateClassRequest struct {
	ProgramID       string `json:"program_id" validate:"required"`
	TrainerID       string `json:"trainer_id" validate:"required"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string `json:"start_time" validate:"required,clock"`
	EndTime         string `json:"end_time" validate:"required,clock"`
	Location        string `json:"location" validate:"omitempty,max=100"`
	IsVirtual       bool   `json:"is_virtual"`
	MeetingLink     string `json:"meeting_link" validate:"omitempty,max=255"`
	MaxParticipants *int   `json:"max_participants" validate:"omitempty,gt=0"`
}

// ClassQuery - фильтры GET /classes
type ClassQuery struct {
	Date      string `form:"date" validate:"omitempty,datetime=2006-01-02"`
	TrainerID string `form:"trainer_id"`
	ProgramID string `form:"program_id"`
}

// ClassResponse встраивает программу и тренера
type ClassResponse struct {
	ID              string           `json:"id"`
	Program         *ProgramResponse `json:"program"`
	Trainer         *TrainerResponse `json:"trainer"`
	Date            string           `json:"date"`
	StartTime       string           `json:"start_time"`
	EndTime         string           `json:"end_time"`
	Location        string           `json:"location"`
	IsVirtual       bool             `json:"is_virtual"`
	MeetingLink     string           `json:"meeting_link"`
	MaxParticipants int              `json:"max_participants"`
	EnrolledCount   int              `json:"enrolled_count"`
	AvailableSpots  int              `json:"available_spots"`
	IsActive        bool             `json:"is_active"`
}

func NewClassResponse(c *models.Class) ClassResponse {
	resp := ClassResponse{
		ID:              c.ID,
		Date:            models.FormatDate(c.Date),
		StartTime:       c.StartTime.String(),
		EndTime:         c.EndTime.String(),
		Location:        c.Location,
		IsVirtual:       c.IsVirtual,
		MeetingLink:     c.MeetingLink,
		MaxParticipants: c.MaxParticipants,
		EnrolledCount:   c.EnrolledCount,
		AvailableSpots:  c.AvailableSpots(),
		IsActive:        c.IsActive,
	}
	if c.Program != nil {
		p := NewProgramResponse(c.Program)
		resp.Program = &p
	}
	if c.Trainer != nil {
		t := NewTrainerResponse(c.Trainer)
		resp.Trainer = &t
	}
	return resp
}

func NewClassList(items []models.Class) []ClassResponse {
	out := make([]ClassResponse, 0, len(items))
	for i := range items {
		out = append(out, NewClassResponse(&items[i]))
	}
	return out
}
