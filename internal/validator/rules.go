package validator

import (
	"log"
	"time"

	"fitness_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные теги валидации
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// без правила приложение работать не должно
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-booking-status", validateBookingStatus)
	mustRegister("is-billing-cycle", validateBillingCycle)

	// 'clock': время занятия в формате HH:MM (допускаем и HH:MM:SS)
	mustRegister("clock", validateClock)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустое значение проверяет 'required'
	}
	return models.UserRole(value).IsValid()
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.BookingStatus(value).IsValid()
}

func validateBillingCycle(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.BillingCycle(value).IsValid()
}

func validateClock(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := ParseClock(value)
	return err == nil
}

// ParseClock разбирает "HH:MM" или "HH:MM:SS"
func ParseClock(value string) (time.Time, error) {
	t, err := time.Parse("15:04", value)
	if err == nil {
		return t, nil
	}
	return time.Parse("15:04:05", value)
}
