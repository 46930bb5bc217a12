package auth

import (
	"fitness_backend/internal/models"
	"fitness_backend/pkg/apperrors"
)

// Классы доступа для маршрутов
var (
	AdminOnly             = []models.UserRole{models.UserRoleAdmin}
	TrainerOrAdmin        = []models.UserRole{models.UserRoleAdmin, models.UserRoleTrainer}
	NutritionistOrAdmin   = []models.UserRole{models.UserRoleAdmin, models.UserRoleNutritionist}
	SelfRegistrationRoles = []models.UserRole{models.UserRoleMember, models.UserRoleTrainer, models.UserRoleNutritionist}
)

// HasAnyRole проверяет, входит ли роль в список разрешенных
func HasAnyRole(role models.UserRole, allowed ...models.UserRole) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// RequireRoles возвращает ErrForbidden, если роль не в списке
func RequireRoles(user *models.User, allowed ...models.UserRole) error {
	if user == nil || !HasAnyRole(user.Role, allowed...) {
		return apperrors.ErrForbidden
	}
	return nil
}

// RequireAdmin - только администратор
func RequireAdmin(user *models.User) error {
	return RequireRoles(user, AdminOnly...)
}

// RequireSelfOrAdmin - владелец ресурса или администратор
func RequireSelfOrAdmin(user *models.User, targetUserID string) error {
	if user == nil {
		return apperrors.ErrForbidden
	}
	if user.ID == targetUserID || user.Role == models.UserRoleAdmin {
		return nil
	}
	return apperrors.ErrForbidden
}
