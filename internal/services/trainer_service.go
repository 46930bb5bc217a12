package services

import (
	"context"
	"errors"

	"fitness_backend/internal/logger"
	"fitness_backend/internal/models"
	"fitness_backend/internal/repositories"
	"fitness_backend/internal/services/dto"
	"fitness_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultTrainerRating = 5.0

type TrainerService interface {
	ListTrainers(ctx context.Context, db *gorm.DB) ([]dto.TrainerResponse, error)
	GetTrainer(ctx context.Context, db *gorm.DB, id string) (*dto.TrainerResponse, error)
	CreateTrainer(ctx context.Context, db *gorm.DB, req *dto.CreateTrainerRequest) (*dto.TrainerResponse, error)
}

type trainerService struct {
	trainerRepo repositories.TrainerRepository
	userRepo    repositories.UserRepository
}

func NewTrainerService(trainerRepo repositories.TrainerRepository, userRepo repositories.UserRepository) TrainerService {
	return &trainerService{
		trainerRepo: trainerRepo,
		userRepo:    userRepo,
	}
}

func (s *trainerService) ListTrainers(ctx context.Context, db *gorm.DB) ([]dto.TrainerResponse, error) {
	trainers, err := s.trainerRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewTrainerList(trainers), nil
}

func (s *trainerService) GetTrainer(ctx context.Context, db *gorm.DB, id string) (*dto.TrainerResponse, error) {
	trainer, err := s.trainerRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	resp := dto.NewTrainerResponse(trainer)
	return &resp, nil
}

// CreateTrainer - у пользователя может быть только один профиль тренера
func (s *trainerService) CreateTrainer(ctx context.Context, db *gorm.DB, req *dto.CreateTrainerRequest) (*dto.TrainerResponse, error) {
	if _, err := s.userRepo.FindByID(db, req.UserID); err != nil {
		return nil, handleRepoError(err)
	}

	_, err := s.trainerRepo.FindByUserID(db, req.UserID)
	switch {
	case err == nil:
		return nil, apperrors.ErrTrainerAlreadyExists
	case !errors.Is(err, repositories.ErrTrainerNotFound):
		return nil, apperrors.InternalError(err)
	}

	trainer := &models.Trainer{
		UserID:          req.UserID,
		Specialization:  datatypes.NewJSONSlice(orEmptyStrings(req.Specialization)),
		ExperienceYears: req.ExperienceYears,
		Certifications:  datatypes.NewJSONSlice(orEmptyStrings(req.Certifications)),
		Bio:             req.Bio,
		AvailableDays:   datatypes.NewJSONSlice(orEmptyStrings(req.AvailableDays)),
		Rating:          defaultTrainerRating,
		IsActive:        true,
	}

	if err := s.trainerRepo.Create(db, trainer); err != nil {
		return nil, handleRepoError(err)
	}

	created, err := s.trainerRepo.FindByID(db, trainer.ID)
	if err != nil {
		return nil, handleRepoError(err)
	}

	logger.CtxInfo(ctx, "Trainer created", "trainer_id", created.ID, "user_id", created.UserID)

	resp := dto.NewTrainerResponse(created)
	return &resp, nil
}
