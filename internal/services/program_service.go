package services

import (
	"context"

	"fitness_backend/internal/models"
	"fitness_backend/internal/repositories"
	"fitness_backend/internal/services/dto"
	"fitness_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const defaultMaxParticipants = 20

type ProgramService interface {
	ListPrograms(ctx context.Context, db *gorm.DB) ([]dto.ProgramResponse, error)
	GetProgram(ctx context.Context, db *gorm.DB, id string) (*dto.ProgramResponse, error)
	CreateProgram(ctx context.Context, db *gorm.DB, req *dto.CreateProgramRequest) (*dto.ProgramResponse, error)
	UpdateProgram(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateProgramRequest) (*dto.ProgramResponse, error)
}

type programService struct {
	programRepo repositories.ProgramRepository
}

func NewProgramService(programRepo repositories.ProgramRepository) ProgramService {
	return &programService{programRepo: programRepo}
}

func (s *programService) ListPrograms(ctx context.Context, db *gorm.DB) ([]dto.ProgramResponse, error) {
	programs, err := s.programRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProgramList(programs), nil
}

func (s *programService) GetProgram(ctx context.Context, db *gorm.DB, id string) (*dto.ProgramResponse, error) {
	p, err := s.programRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}
	resp := dto.NewProgramResponse(p)
	return &resp, nil
}

func (s *programService) CreateProgram(ctx context.Context, db *gorm.DB, req *dto.CreateProgramRequest) (*dto.ProgramResponse, error) {
	p := &models.Program{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		ImageURL:        req.ImageURL,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		Level:           req.Level,
		MaxParticipants: defaultMaxParticipants,
		IsActive:        true,
	}
	if req.MaxParticipants != nil {
		p.MaxParticipants = *req.MaxParticipants
	}

	if err := s.programRepo.Create(db, p); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewProgramResponse(p)
	return &resp, nil
}

func (s *programService) UpdateProgram(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateProgramRequest) (*dto.ProgramResponse, error) {
	p, err := s.programRepo.FindByID(db, id)
	if err != nil {
		return nil, handleRepoError(err)
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.DurationMinutes != nil {
		p.DurationMinutes = *req.DurationMinutes
	}
	if req.CaloriesBurned != nil {
		p.CaloriesBurned = *req.CaloriesBurned
	}
	if req.Level != nil {
		p.Level = *req.Level
	}
	if req.MaxParticipants != nil {
		p.MaxParticipants = *req.MaxParticipants
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.programRepo.Update(db, p); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewProgramResponse(p)
	return &resp, nil
}
