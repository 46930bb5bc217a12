package dto

import (
	"time"

	"fitness_backend/internal/models"
)

type CreateBookingRequest struct {
	ClassID string `json:"class_id" validate:"required"`
}

type BookingResponse struct {
	ID           string               `json:"id"`
	UserID       string               `json:"user_id"`
	ClassID      string               `json:"class_id"`
	ClassDetails *ClassResponse       `json:"class_details"`
	Status       models.BookingStatus `json:"status"`
	BookedAt     time.Time            `json:"booked_at"`
	CancelledAt  *time.Time           `json:"cancelled_at,omitempty"`
	Attended     bool                 `json:"attended"`
}

func NewBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		ClassID:     b.ClassID,
		Status:      b.Status,
		BookedAt:    b.BookedAt,
		CancelledAt: b.CancelledAt,
		Attended:    b.Attended,
	}
	if b.Class != nil {
		c := NewClassResponse(b.Class)
		resp.ClassDetails = &c
	}
	return resp
}

func NewBookingList(items []models.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(items))
	for i := range items {
		out = append(out, NewBookingResponse(&items[i]))
	}
	return out
}
