package services

import (
	"context"
	"errors"

	"fitness_backend/internal/auth"
	"fitness_backend/internal/logger"
	"fitness_backend/internal/models"
	"fitness_backend/internal/repositories"
	"fitness_backend/internal/services/dto"
	"fitness_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	ChangePassword(ctx context.Context, db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error

	// Authenticate проверяет токен и загружает пользователя из БД
	Authenticate(ctx context.Context, db *gorm.DB, token string) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = models.UserRoleMember
	}
	if !auth.HasAnyRole(role, auth.SelfRegistrationRoles...) {
		return nil, apperrors.ErrAdminRoleNotAllowed
	}

	exists, err := s.userRepo.ExistsByEmail(db, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Gender:       req.Gender,
		Role:         role,
		IsActive:     true,
	}
	if req.DateOfBirth != "" {
		dob, err := models.ParseDate(req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewBadRequestError("date_of_birth must match format YYYY-MM-DD")
		}
		user.DateOfBirth = &dob
	}

	if err := s.userRepo.Create(db, user); err != nil {
		return nil, handleRepoError(err)
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "User registered", "user_id", user.ID, "role", user.Role)

	return &dto.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    dto.NewUserResponse(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.ErrMissingCredentials
	}

	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.NewUserResponse(user),
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return handleRepoError(err)
	}

	if !auth.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return apperrors.ErrWrongOldPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(db, userID, hash); err != nil {
		return handleRepoError(err)
	}

	logger.CtxInfo(ctx, "Password changed", "user_id", userID)
	return nil
}

func (s *authService) Authenticate(ctx context.Context, db *gorm.DB, token string) (*models.User, error) {
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, claims.UserID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	return user, nil
}
