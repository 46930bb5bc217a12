package services

import (
	"context"

	"fitness_backend/internal/auth"
	"fitness_backend/internal/logger"
	"fitness_backend/internal/models"
	"fitness_backend/internal/repositories"
	"fitness_backend/internal/services/dto"
	"fitness_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	ListUsers(ctx context.Context, db *gorm.DB, page, pageSize int) (*dto.UserListResponse, error)
	GetUser(ctx context.Context, db *gorm.DB, current *models.User, userID string) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, db *gorm.DB, current *models.User, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeactivateUser(ctx context.Context, db *gorm.DB, userID string) error
}

type userService struct {
	userRepo       repositories.UserRepository
	membershipRepo repositories.MembershipRepository
}

func NewUserService(userRepo repositories.UserRepository, membershipRepo repositories.MembershipRepository) UserService {
	return &userService{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
	}
}

func (s *userService) ListUsers(ctx context.Context, db *gorm.DB, page, pageSize int) (*dto.UserListResponse, error) {
	users, total, err := s.userRepo.FindAll(db, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}

	return &dto.UserListResponse{
		Users:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetUser - сначала права, потом существование (чужой id -> 403, а не 404)
func (s *userService) GetUser(ctx context.Context, db *gorm.DB, current *models.User, userID string) (*dto.UserResponse, error) {
	if err := auth.RequireSelfOrAdmin(current, userID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, handleRepoError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdateUser(ctx context.Context, db *gorm.DB, current *models.User, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := auth.RequireSelfOrAdmin(current, userID); err != nil {
		return nil, err
	}
	if req.HasAdminFields() {
		if err := auth.RequireAdmin(current); err != nil {
			return nil, err
		}
	}

	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		return nil, handleRepoError(err)
	}

	fields := map[string]interface{}{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Height != nil {
		fields["height"] = *req.Height
	}
	if req.Weight != nil {
		fields["weight"] = *req.Weight
	}
	if req.FitnessGoal != nil {
		fields["fitness_goal"] = *req.FitnessGoal
	}
	if req.ActivityLevel != nil {
		fields["activity_level"] = *req.ActivityLevel
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.MembershipID != nil {
		// пустая строка снимает абонемент
		if *req.MembershipID == "" {
			fields["membership_id"] = nil
		} else {
			if _, err := s.membershipRepo.FindByID(db, *req.MembershipID); err != nil {
				return nil, handleRepoError(err)
			}
			fields["membership_id"] = *req.MembershipID
		}
	}

	if err := s.userRepo.UpdateFields(db, userID, fields); err != nil {
		return nil, handleRepoError(err)
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, handleRepoError(err)
	}

	logger.CtxInfo(ctx, "User updated", "user_id", userID, "by", current.ID, "fields", len(fields))

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userService) DeactivateUser(ctx context.Context, db *gorm.DB, userID string) error {
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		return handleRepoError(err)
	}
	if err := s.userRepo.Deactivate(db, userID); err != nil {
		return handleRepoError(err)
	}

	logger.CtxInfo(ctx, "User deactivated", "user_id", userID)
	return nil
}
