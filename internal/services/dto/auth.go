package dto

import "fitness_backend/internal/models"

// RegisterRequest - запрос регистрации. Порядок полей задает порядок
// сообщений об ошибках (первым сообщается первое невалидное поле).
type RegisterRequest struct {
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=6"`
	FirstName   string          `json:"first_name" validate:"required,max=50"`
	LastName    string          `json:"last_name" validate:"required,max=50"`
	Phone       string          `json:"phone" validate:"omitempty,max=20"`
	DateOfBirth string          `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string          `json:"gender" validate:"omitempty,max=10"`
	Role        models.UserRole `json:"role" validate:"omitempty,is-user-role"`
}

// LoginRequest - наличие полей проверяет сервис (свое сообщение об ошибке)
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// AuthResponse - ответ на регистрацию и вход
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
