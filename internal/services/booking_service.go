package services

import (
	"context"
	"time"

	"fitness_backend/internal/logger"
	"fitness_backend/internal/models"
	"fitness_backend/internal/repositories"
	"fitness_backend/internal/services/dto"
	"fitness_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type BookingService interface {
	ListUserBookings(ctx context.Context, db *gorm.DB, userID string) ([]dto.BookingResponse, error)
	CreateBooking(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	CancelBooking(ctx context.Context, db *gorm.DB, current *models.User, bookingID string) error
}

type bookingService struct {
	bookingRepo repositories.BookingRepository
	classRepo   repositories.ClassRepository
	now         func() time.Time
}

func NewBookingService(bookingRepo repositories.BookingRepository, classRepo repositories.ClassRepository) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		classRepo:   classRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *bookingService) ListUserBookings(ctx context.Context, db *gorm.DB, userID string) ([]dto.BookingResponse, error) {
	bookings, err := s.bookingRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewBookingList(bookings), nil
}

// CreateBooking - запись и занятие места происходят в одной транзакции.
// Условный инкремент не даст превысить вместимость при параллельных запросах.
func (s *bookingService) CreateBooking(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	var bookingID string

	err := db.Transaction(func(tx *gorm.DB) error {
		class, err := s.classRepo.FindByID(tx, req.ClassID)
		if err != nil {
			return err
		}
		if class.IsFull() {
			return repositories.ErrClassFull
		}

		booked, err := s.bookingRepo.HasConfirmed(tx, userID, class.ID)
		if err != nil {
			return err
		}
		if booked {
			return apperrors.ErrAlreadyBooked
		}

		if err := s.classRepo.IncrementEnrolled(tx, class.ID); err != nil {
			return err
		}

		booking := &models.Booking{
			UserID:   userID,
			ClassID:  class.ID,
			Status:   models.BookingStatusConfirmed,
			BookedAt: s.now(),
		}
		if err := s.bookingRepo.Create(tx, booking); err != nil {
			return err
		}

		bookingID = booking.ID
		return nil
	})
	if err != nil {
		return nil, handleRepoError(err)
	}

	booking, err := s.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		return nil, handleRepoError(err)
	}

	logger.CtxInfo(ctx, "Class booked", "booking_id", booking.ID, "class_id", booking.ClassID, "user_id", userID)

	resp := dto.NewBookingResponse(booking)
	return &resp, nil
}

// CancelBooking - только владелец. Переход confirmed -> cancelled условный,
// поэтому повторная отмена не уменьшит счетчик второй раз.
func (s *bookingService) CancelBooking(ctx context.Context, db *gorm.DB, current *models.User, bookingID string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByID(tx, bookingID)
		if err != nil {
			return err
		}
		if current == nil || booking.UserID != current.ID {
			return apperrors.ErrForbidden
		}

		if err := s.bookingRepo.Cancel(tx, booking.ID, s.now()); err != nil {
			return err
		}
		return s.classRepo.DecrementEnrolled(tx, booking.ClassID)
	})
	if err != nil {
		return handleRepoError(err)
	}

	logger.CtxInfo(ctx, "Booking cancelled", "booking_id", bookingID, "user_id", current.ID)
	return nil
}
