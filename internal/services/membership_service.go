package services

import (
	"context"

	"fitness_backend/internal/logger"
	"fitness_backend/internal/models"
	"fitness_backend/internal/repositories"
	"fitness_backend/internal/services/dto"
	"fitness_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultMembershipDays = 30
	yearlyMembershipDays  = 365
)

type MembershipService interface {
	ListMemberships(ctx context.Context, db *gorm.DB) ([]dto.MembershipResponse, error)
	GetMembership(ctx context.Context, db *gorm.DB, id string) (*dto.MembershipResponse, error)
	CreateMembership(ctx context.Context, db *gorm.DB, req *dto.CreateMembershipRequest) (*dto.MembershipResponse, error)
	UpdateMembership(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateMembershipRequest) (*dto.MembershipResponse, error)
	Subscribe(ctx context.Context, db *gorm.DB, userID, membershipID string, req *dto.SubscribeRequest) (*dto.SubscriptionResponse, error)
}

type membershipService struct {
	membershipRepo repositories.MembershipRepository
	userRepo       repositories.UserRepository
}

func NewMembershipService(membershipRepo repositories.MembershipRepository, userRepo repositories.UserRepository) MembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
	}
}

func (s *membershipService) ListMemberships(ctx context.Context, db *gorm.DB) ([]dto.MembershipResponse, error) {
	items, err := s.membershipRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewMembershipList(items), nil
}

func (s *membershipService) GetMembership(ctx context.Context, db *gorm.DB, id string) (*dto.MembershipResponse, error) {
	m, err := s.membershipRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	resp := dto.NewMembershipResponse(m)
	return &resp, nil
}

func (s *membershipService) CreateMembership(ctx context.Context, db *gorm.DB, req *dto.CreateMembershipRequest) (*dto.MembershipResponse, error) {
	m := &models.Membership{
		Name:         req.Name,
		Description:  req.Description,
		PriceMonthly: *req.PriceMonthly,
		PriceYearly:  *req.PriceYearly,
		DurationDays: defaultMembershipDays,
		Features:     datatypes.NewJSONSlice(orEmptyStrings(req.Features)),
		NotIncluded:  datatypes.NewJSONSlice(orEmptyStrings(req.NotIncluded)),
		IsPopular:    req.IsPopular,
		IsActive:     true,
	}
	if req.DurationDays != nil {
		m.DurationDays = *req.DurationDays
	}

	if err := s.membershipRepo.Create(db, m); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Membership created", "membership_id", m.ID, "name", m.Name)

	resp := dto.NewMembershipResponse(m)
	return &resp, nil
}

func (s *membershipService) UpdateMembership(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateMembershipRequest) (*dto.MembershipResponse, error) {
	m, err := s.membershipRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.PriceMonthly != nil {
		m.PriceMonthly = *req.PriceMonthly
	}
	if req.PriceYearly != nil {
		m.PriceYearly = *req.PriceYearly
	}
	if req.DurationDays != nil {
		m.DurationDays = *req.DurationDays
	}
	if req.Features != nil {
		m.Features = datatypes.NewJSONSlice(orEmptyStrings(*req.Features))
	}
	if req.NotIncluded != nil {
		m.NotIncluded = datatypes.NewJSONSlice(orEmptyStrings(*req.NotIncluded))
	}
	if req.IsPopular != nil {
		m.IsPopular = *req.IsPopular
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}

	if err := s.membershipRepo.Update(db, m); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewMembershipResponse(m)
	return &resp, nil
}

// Subscribe привязывает абонемент к пользователю. Оплата не проводится,
// фиксируются только план и даты.
func (s *membershipService) Subscribe(ctx context.Context, db *gorm.DB, userID, membershipID string, req *dto.SubscribeRequest) (*dto.SubscriptionResponse, error) {
	m, err := s.membershipRepo.FindByID(db, membershipID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if !m.IsActive {
		return nil, apperrors.ErrMembershipNotFound
	}

	cycle := req.BillingCycle
	if cycle == "" {
		cycle = models.BillingCycleMonthly
	}

	days := m.DurationDays
	if days <= 0 {
		days = defaultMembershipDays
	}
	if cycle == models.BillingCycleYearly {
		days = yearlyMembershipDays
	}

	start := models.Today()
	end := models.AddDays(start, days)

	err = s.userRepo.UpdateFields(db, userID, map[string]interface{}{
		"membership_id":    m.ID,
		"membership_start": start,
		"membership_end":   end,
	})
	if err != nil {
		return nil, handleRepoError(err)
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, handleRepoError(err)
	}

	logger.CtxInfo(ctx, "Membership subscribed",
		"user_id", userID,
		"membership_id", m.ID,
		"billing_cycle", cycle,
		"membership_end", models.FormatDate(end),
	)

	return &dto.SubscriptionResponse{
		Message:       "Subscribed successfully",
		User:          dto.NewUserResponse(user),
		Membership:    dto.NewMembershipResponse(m),
		BillingCycle:  string(cycle),
		MembershipEnd: models.FormatDate(end),
	}, nil
}

func orEmptyStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
