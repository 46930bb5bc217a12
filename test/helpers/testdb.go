package helpers

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"fitness_backend/internal/auth"
	"fitness_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var emailCounter atomic.Int64

// UniqueEmail - уникальный email для теста
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, emailCounter.Add(1))
}

// CreateUser создает пользователя напрямую в БД; password - сырой пароль
func CreateUser(t *testing.T, db *gorm.DB, email, password string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err, "Не удалось хешировать пароль")

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		IsActive:     true,
		IsVerified:   true,
	}
	require.NoError(t, db.Create(user).Error, "Не удалось создать пользователя %s", email)
	return user
}

// CreateAndLoginUser создает пользователя и логинит его через API
func CreateAndLoginUser(t *testing.T, ts *TestServer, role models.UserRole) (string, *models.User) {
	t.Helper()

	email := UniqueEmail(string(role))
	password := "password123"
	user := CreateUser(t, ts.DB, email, password, role)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: %s", body)

	var loginResponse struct {
		Token string `json:"token"`
	}
	DecodeJSON(t, body, &loginResponse)
	require.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	return loginResponse.Token, user
}

// CreateClass создает программу, тренера и занятие на завтра
func CreateClass(t *testing.T, db *gorm.DB, maxParticipants int) *models.Class {
	t.Helper()

	program := &models.Program{Title: "HIIT Training", Category: "HIIT", MaxParticipants: 20, IsActive: true}
	require.NoError(t, db.Create(program).Error)

	trainerUser := CreateUser(t, db, UniqueEmail("coach"), "password123", models.UserRoleTrainer)
	trainer := &models.Trainer{UserID: trainerUser.ID, Rating: 5, IsActive: true}
	require.NoError(t, db.Create(trainer).Error)

	class := &models.Class{
		ProgramID:       program.ID,
		TrainerID:       trainer.ID,
		Date:            models.AddDays(models.Today(), 1),
		StartTime:       models.NewClock(time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC)),
		EndTime:         models.NewClock(time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC)),
		Location:        "Studio A",
		MaxParticipants: maxParticipants,
		IsActive:        true,
	}
	require.NoError(t, db.Omit("Program", "Trainer").Create(class).Error)
	return class
}
