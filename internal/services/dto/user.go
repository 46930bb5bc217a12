package dto

import (
	"time"

	"fitness_backend/internal/models"
)

// UserResponse - внешнее представление пользователя (без пароля)
type UserResponse struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Phone        string          `json:"phone"`
	Role         models.UserRole `json:"role"`
	MembershipID *string         `json:"membership_id"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Role:         u.Role,
		MembershipID: u.MembershipID,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
	}
}

// UpdateUserRequest - отсутствующее поле (nil) не меняется.
// Role, IsActive и MembershipID доступны только администратору.
type UpdateUserRequest struct {
	FirstName     *string  `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName      *string  `json:"last_name" validate:"omitempty,min=1,max=50"`
	Phone         *string  `json:"phone" validate:"omitempty,max=20"`
	Height        *float64 `json:"height" validate:"omitempty,gt=0"`
	Weight        *float64 `json:"weight" validate:"omitempty,gt=0"`
	FitnessGoal   *string  `json:"fitness_goal" validate:"omitempty,max=50"`
	ActivityLevel *string  `json:"activity_level" validate:"omitempty,max=20"`

	Role         *models.UserRole `json:"role" validate:"omitempty,is-user-role"`
	IsActive     *bool            `json:"is_active"`
	MembershipID *string          `json:"membership_id"`
}

// HasAdminFields - запрос трогает поля, которые может менять только админ
func (r *UpdateUserRequest) HasAdminFields() bool {
	return r.Role != nil || r.IsActive != nil || r.MembershipID != nil
}

type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}
