package services

import (
	"context"
	"math"

	"fitness_backend/internal/models"
	"fitness_backend/internal/repositories"
	"fitness_backend/internal/services/dto"
	"fitness_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProgressService interface {
	ListProgress(ctx context.Context, db *gorm.DB, userID string) ([]dto.ProgressLogResponse, error)
	CreateProgress(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateProgressRequest) (*dto.ProgressLogResponse, error)
}

type progressService struct {
	progressRepo repositories.ProgressRepository
}

func NewProgressService(progressRepo repositories.ProgressRepository) ProgressService {
	return &progressService{progressRepo: progressRepo}
}

// CalculateBMI = вес / (рост в метрах)^2, округление до двух знаков.
// nil, если рост или вес не заданы или не положительны.
func CalculateBMI(weightKg, heightCm *float64) *float64 {
	if weightKg == nil || heightCm == nil || *weightKg <= 0 || *heightCm <= 0 {
		return nil
	}
	h := *heightCm / 100
	bmi := math.Round(*weightKg/(h*h)*100) / 100
	return &bmi
}

func (s *progressService) ListProgress(ctx context.Context, db *gorm.DB, userID string) ([]dto.ProgressLogResponse, error) {
	logs, err := s.progressRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProgressLogList(logs), nil
}

func (s *progressService) CreateProgress(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateProgressRequest) (*dto.ProgressLogResponse, error) {
	logDate := models.Today()
	if req.LogDate != "" {
		d, err := models.ParseDate(req.LogDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("log_date must match format YYYY-MM-DD")
		}
		logDate = d
	}

	log := &models.ProgressLog{
		UserID:            userID,
		Weight:            req.Weight,
		Height:            req.Height,
		BodyFatPercent:    req.BodyFatPercent,
		MuscleMass:        req.MuscleMass,
		BMI:               CalculateBMI(req.Weight, req.Height),
		WorkoutsCompleted: req.WorkoutsCompleted,
		CaloriesBurned:    req.CaloriesBurned,
		Notes:             req.Notes,
		LogDate:           logDate,
	}

	if err := s.progressRepo.Create(db, log); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewProgressLogResponse(log)
	return &resp, nil
}
