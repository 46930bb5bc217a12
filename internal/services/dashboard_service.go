package services

import (
	"context"

	"fitness_backend/internal/repositories"
	"fitness_backend/internal/services/dto"
	"fitness_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const recentBookingsLimit = 10

type DashboardService interface {
	GetDashboard(ctx context.Context, db *gorm.DB) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	userRepo    repositories.UserRepository
	trainerRepo repositories.TrainerRepository
	bookingRepo repositories.BookingRepository
	contactRepo repositories.ContactRepository
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	trainerRepo repositories.TrainerRepository,
	bookingRepo repositories.BookingRepository,
	contactRepo repositories.ContactRepository,
) DashboardService {
	return &dashboardService{
		userRepo:    userRepo,
		trainerRepo: trainerRepo,
		bookingRepo: bookingRepo,
		contactRepo: contactRepo,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, db *gorm.DB) (*dto.DashboardResponse, error) {
	var (
		stats dto.DashboardStats
		err   error
	)

	if stats.TotalUsers, err = s.userRepo.CountAll(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ActiveMembers, err = s.userRepo.CountActive(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalTrainers, err = s.trainerRepo.CountActive(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalBookings, err = s.bookingRepo.CountConfirmed(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.UnreadMessages, err = s.contactRepo.CountUnread(db); err != nil {
		return nil, apperrors.InternalError(err)
	}

	recent, err := s.bookingRepo.FindRecent(db, recentBookingsLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardResponse{
		Stats:          stats,
		RecentBookings: dto.NewBookingList(recent),
	}, nil
}
