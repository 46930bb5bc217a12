package services

import (
	"context"

	"fitness_backend/internal/logger"
	"fitness_backend/internal/models"
	"fitness_backend/internal/repositories"
	"fitness_backend/internal/services/dto"
	"fitness_backend/internal/validator"
	"fitness_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ClassService interface {
	ListClasses(ctx context.Context, db *gorm.DB, query *dto.ClassQuery) ([]dto.ClassResponse, error)
	GetClass(ctx context.Context, db *gorm.DB, id string) (*dto.ClassResponse, error)
	CreateClass(ctx context.Context, db *gorm.DB, req *dto.CreateClassRequest) (*dto.ClassResponse, error)
}

type classService struct {
	classRepo   repositories.ClassRepository
	programRepo repositories.ProgramRepository
	trainerRepo repositories.TrainerRepository
}

func NewClassService(
	classRepo repositories.ClassRepository,
	programRepo repositories.ProgramRepository,
	trainerRepo repositories.TrainerRepository,
) ClassService {
	return &classService{
		classRepo:   classRepo,
		programRepo: programRepo,
		trainerRepo: trainerRepo,
	}
}

// ListClasses - без date возвращаются занятия начиная с сегодняшнего дня
func (s *classService) ListClasses(ctx context.Context, db *gorm.DB, query *dto.ClassQuery) ([]dto.ClassResponse, error) {
	filter := repositories.ClassFilter{
		From:      models.Today(),
		TrainerID: query.TrainerID,
		ProgramID: query.ProgramID,
	}
	if query.Date != "" {
		d, err := models.ParseDate(query.Date)
		if err != nil {
			return nil, apperrors.NewBadRequestError("date must match format YYYY-MM-DD")
		}
		filter.Date = &d
	}

	classes, err := s.classRepo.FindActive(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewClassList(classes), nil
}

func (s *classService) GetClass(ctx context.Context, db *gorm.DB, id string) (*dto.ClassResponse, error) {
	class, err := s.classRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	resp := dto.NewClassResponse(class)
	return &resp, nil
}

func (s *classService) CreateClass(ctx context.Context, db *gorm.DB, req *dto.CreateClassRequest) (*dto.ClassResponse, error) {
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("date must match format YYYY-MM-DD")
	}
	start, err := validator.ParseClock(req.StartTime)
	if err != nil {
		return nil, apperrors.NewBadRequestError("start_time must match format HH:MM")
	}
	end, err := validator.ParseClock(req.EndTime)
	if err != nil {
		return nil, apperrors.NewBadRequestError("end_time must match format HH:MM")
	}
	if !end.After(start) {
		return nil, apperrors.ErrInvalidClassTime
	}

	program, err := s.programRepo.FindByID(db, req.ProgramID)
	if err != nil {
		return nil, handleRepoError(err)
	}
	if _, err := s.trainerRepo.FindByID(db, req.TrainerID); err != nil {
		return nil, handleRepoError(err)
	}

	maxParticipants := program.MaxParticipants
	if req.MaxParticipants != nil {
		maxParticipants = *req.MaxParticipants
	}
	if maxParticipants <= 0 {
		maxParticipants = defaultMaxParticipants
	}

	class := &models.Class{
		ProgramID:       req.ProgramID,
		TrainerID:       req.TrainerID,
		Date:            date,
		StartTime:       models.NewClock(start),
		EndTime:         models.NewClock(end),
		Location:        req.Location,
		IsVirtual:       req.IsVirtual,
		MeetingLink:     req.MeetingLink,
		MaxParticipants: maxParticipants,
		IsActive:        true,
	}

	if err := s.classRepo.Create(db, class); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.classRepo.FindByID(db, class.ID)
	if err != nil {
		return nil, handleRepoError(err)
	}

	logger.CtxInfo(ctx, "Class scheduled",
		"class_id", created.ID,
		"program_id", created.ProgramID,
		"trainer_id", created.TrainerID,
		"date", req.Date,
	)

	resp := dto.NewClassResponse(created)
	return &resp, nil
}
