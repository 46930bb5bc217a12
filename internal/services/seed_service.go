package services

import (
	"context"
	"errors"

	"fitness_backend/internal/auth"
	"fitness_backend/internal/database"
	"fitness_backend/internal/logger"
	"fitness_backend/internal/models"
	"fitness_backend/internal/repositories"
	"fitness_backend/internal/services/dto"
	"fitness_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type SeedService interface {
	// InitDB создает схему и наполняет пустую БД демо-данными.
	// seeded=false, если абонементы уже есть (ничего не записывается).
	InitDB(ctx context.Context, db *gorm.DB) (summary *dto.SeedSummary, seeded bool, err error)

	// EnsureAdmin создает администратора, если такого email еще нет
	EnsureAdmin(ctx context.Context, db *gorm.DB, email, password string) error
}

type seedService struct {
	userRepo       repositories.UserRepository
	membershipRepo repositories.MembershipRepository
	programRepo    repositories.ProgramRepository
	mealPlanRepo   repositories.MealPlanRepository
	trainerRepo    repositories.TrainerRepository
}

func NewSeedService(
	userRepo repositories.UserRepository,
	membershipRepo repositories.MembershipRepository,
	programRepo repositories.ProgramRepository,
	mealPlanRepo repositories.MealPlanRepository,
	trainerRepo repositories.TrainerRepository,
) SeedService {
	return &seedService{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		programRepo:    programRepo,
		mealPlanRepo:   mealPlanRepo,
		trainerRepo:    trainerRepo,
	}
}

func (s *seedService) InitDB(ctx context.Context, db *gorm.DB) (*dto.SeedSummary, bool, error) {
	if err := database.AutoMigrate(db); err != nil {
		return nil, false, apperrors.InternalError(err)
	}

	count, err := s.membershipRepo.Count(db)
	if err != nil {
		return nil, false, apperrors.InternalError(err)
	}
	if count > 0 {
		return nil, false, nil
	}

	// хеши считаем до транзакции, чтобы не держать соединение на bcrypt
	adminHash, err := auth.HashPassword(seedAdminPassword)
	if err != nil {
		return nil, false, apperrors.InternalError(err)
	}
	staffHash, err := auth.HashPassword(seedTrainerPassword)
	if err != nil {
		return nil, false, apperrors.InternalError(err)
	}

	summary := &dto.SeedSummary{
		AdminEmail:    seedAdminEmail,
		AdminPassword: seedAdminPassword,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, m := range seedMemberships() {
			if err := s.membershipRepo.Create(tx, &m); err != nil {
				return err
			}
			summary.Memberships++
		}

		for _, p := range seedPrograms() {
			if err := s.programRepo.Create(tx, &p); err != nil {
				return err
			}
			summary.Programs++
		}

		for _, mp := range seedMealPlans() {
			if err := s.mealPlanRepo.Create(tx, &mp); err != nil {
				return err
			}
			summary.MealPlans++
		}

		// админ мог быть создан при старте (FIRST_ADMIN_EMAIL), его не трогаем
		exists, err := s.userExists(tx, seedAdminEmail)
		if err != nil {
			return err
		}
		if exists {
			summary.AdminPassword = ""
		} else {
			admin := &models.User{
				Email:        seedAdminEmail,
				PasswordHash: adminHash,
				FirstName:    "Admin",
				LastName:     "User",
				Phone:        "+91 80 1234 5678",
				Role:         models.UserRoleAdmin,
				IsActive:     true,
				IsVerified:   true,
			}
			if err := s.userRepo.Create(tx, admin); err != nil {
				return err
			}
		}

		for _, staff := range seedStaffMembers() {
			exists, err := s.userExists(tx, staff.user.Email)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			user := staff.user
			user.PasswordHash = staffHash
			user.IsActive = true
			if err := s.userRepo.Create(tx, &user); err != nil {
				return err
			}

			if staff.trainer == nil {
				continue
			}
			trainer := *staff.trainer
			trainer.UserID = user.ID
			trainer.Rating = defaultTrainerRating
			trainer.IsActive = true
			if err := s.trainerRepo.Create(tx, &trainer); err != nil {
				return err
			}
			summary.Trainers++
		}
		return nil
	})
	if err != nil {
		return nil, false, handleRepoError(err)
	}

	logger.CtxInfo(ctx, "Database seeded",
		"memberships", summary.Memberships,
		"programs", summary.Programs,
		"meal_plans", summary.MealPlans,
		"trainers", summary.Trainers,
	)
	return summary, true, nil
}

func (s *seedService) userExists(db *gorm.DB, email string) (bool, error) {
	_, err := s.userRepo.FindByEmail(db, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repositories.ErrUserNotFound) {
		return false, nil
	}
	return false, err
}

func (s *seedService) EnsureAdmin(ctx context.Context, db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := s.userRepo.FindByEmail(db, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Admin",
		LastName:     "User",
		Role:         models.UserRoleAdmin,
		IsActive:     true,
		IsVerified:   true,
	}
	if err := s.userRepo.Create(db, admin); err != nil {
		return err
	}

	logger.CtxInfo(ctx, "First admin created", "email", email)
	return nil
}
