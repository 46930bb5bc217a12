package services

import (
	"errors"

	"fitness_backend/internal/repositories"
	"fitness_backend/pkg/apperrors"
)

// repoErrors - соответствие ошибок репозиториев ошибкам API
var repoErrors = []struct {
	repo error
	app  *apperrors.AppError
}{
	{repositories.ErrUserNotFound, apperrors.ErrUserNotFound},
	{repositories.ErrUserAlreadyExists, apperrors.ErrEmailAlreadyExists},
	{repositories.ErrMembershipNotFound, apperrors.ErrMembershipNotFound},
	{repositories.ErrTrainerNotFound, apperrors.ErrTrainerNotFound},
	{repositories.ErrTrainerAlreadyExists, apperrors.ErrTrainerAlreadyExists},
	{repositories.ErrProgramNotFound, apperrors.ErrProgramNotFound},
	{repositories.ErrClassNotFound, apperrors.ErrClassNotFound},
	{repositories.ErrClassFull, apperrors.ErrClassFull},
	{repositories.ErrBookingNotFound, apperrors.ErrBookingNotFound},
	{repositories.ErrBookingNotConfirmed, apperrors.ErrBookingAlreadyCancelled},
	{repositories.ErrMealPlanNotFound, apperrors.ErrMealPlanNotFound},
	{repositories.ErrMessageNotFound, apperrors.ErrMessageNotFound},
}

// handleRepoError переводит ошибку репозитория в AppError.
// AppError пропускается как есть, все неизвестное становится 500.
func handleRepoError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	for _, m := range repoErrors {
		if errors.Is(err, m.repo) {
			return m.app.WithError(err)
		}
	}

	return apperrors.InternalError(err)
}
