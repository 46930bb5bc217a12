package apperrors

import (
	"net/http"
)

/*
Предопределенные ошибки домена. Сообщения уходят клиенту как есть,
поэтому менять их можно только вместе с фронтендом.
*/

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrEmailAlreadyExists = New(CodeAlreadyExists, "auth", "Email already registered", http.StatusConflict)

var ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid credentials", http.StatusUnauthorized)

var ErrAccountDisabled = New(CodeAccountDisabled, "auth", "Account is deactivated", http.StatusForbidden)

var ErrMissingCredentials = New(CodeValidationFailed, "auth", "Email and password are required", http.StatusBadRequest)

var ErrWrongOldPassword = New(CodeValidationFailed, "auth", "Current password is incorrect", http.StatusBadRequest)

// ErrAdminRoleNotAllowed - роль admin нельзя выбрать при самостоятельной регистрации
var ErrAdminRoleNotAllowed = New(CodeInvalidOperation, "auth", "Role admin cannot be self-assigned", http.StatusBadRequest)

var ErrMissingAuthHeader = New(CodeUnauthorized, "auth", "Missing Authorization Header", http.StatusUnauthorized)

var ErrTokenExpired = New(CodeTokenExpired, "auth", "Token has expired", http.StatusUnauthorized)

// ErrInvalidToken - 422, как у flask-jwt-extended для битого токена
var ErrInvalidToken = New(CodeInvalidToken, "auth", "Invalid token", http.StatusUnprocessableEntity)

// ErrForbidden - роль или владелец не совпадают
var ErrForbidden = New(CodeForbidden, "auth", "Unauthorized", http.StatusForbidden)

// --- Not found ---

var ErrUserNotFound = NewNotFoundError("user", "User not found")

var ErrMembershipNotFound = NewNotFoundError("membership", "Membership not found")

var ErrTrainerNotFound = NewNotFoundError("trainer", "Trainer not found")

var ErrProgramNotFound = NewNotFoundError("program", "Program not found")

var ErrClassNotFound = NewNotFoundError("class", "Class not found")

var ErrBookingNotFound = NewNotFoundError("booking", "Booking not found")

var ErrMealPlanNotFound = NewNotFoundError("meal_plan", "Meal plan not found")

var ErrMessageNotFound = NewNotFoundError("contact", "Message not found")

var ErrRouteNotFound = NewNotFoundError("routing", "Not found")

// --- Trainers ---

var ErrTrainerAlreadyExists = New(CodeAlreadyExists, "trainer", "Trainer profile already exists", http.StatusConflict)

// --- Bookings ---

var ErrClassFull = New(CodeClassFull, "booking", "Class is full", http.StatusBadRequest)

var ErrAlreadyBooked = New(CodeAlreadyBooked, "booking", "Already booked for this class", http.StatusBadRequest)

var ErrBookingAlreadyCancelled = New(CodeInvalidStatus, "booking", "Booking already cancelled", http.StatusBadRequest)

// --- Classes ---

var ErrInvalidClassTime = New(CodeValidationFailed, "class", "end_time must be after start_time", http.StatusBadRequest)

// --- Contact ---

var ErrTooManyMessages = New(CodeRateLimited, "contact", "Too many messages, please try again later", http.StatusTooManyRequests)
