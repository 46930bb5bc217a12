package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"fitness_backend/internal/models"
	"fitness_backend/internal/repositories"
	"fitness_backend/internal/services"
	"fitness_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_Idempotent(t *testing.T) {
	ts := helpers.NewTestServer(t)

	// Act: первый запуск
	res, body := ts.SendRequest(t, http.MethodPost, "/api/init-db", "", nil)
	t.Logf("Response: %s", body)

	require.Equal(t, http.StatusCreated, res.StatusCode)
	var resp struct {
		Message string `json:"message"`
		Data    struct {
			Memberships   int    `json:"memberships"`
			Programs      int    `json:"programs"`
			MealPlans     int    `json:"meal_plans"`
			Trainers      int    `json:"trainers"`
			AdminEmail    string `json:"admin_email"`
			AdminPassword string `json:"admin_password"`
		} `json:"data"`
	}
	helpers.DecodeJSON(t, body, &resp)
	assert.Equal(t, "Database initialized successfully with sample data", resp.Message)
	assert.Equal(t, 3, resp.Data.Memberships)
	assert.Equal(t, 4, resp.Data.Programs)
	assert.Equal(t, 3, resp.Data.MealPlans)
	assert.Equal(t, 3, resp.Data.Trainers)
	assert.Equal(t, "admin@fitnessrevolution.in", resp.Data.AdminEmail)

	// Act: повторный запуск
	res, body = ts.SendRequest(t, http.MethodPost, "/api/init-db", "", nil)

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Database already initialized")

	var memberships, users int64
	require.NoError(t, ts.DB.Model(&models.Membership{}).Count(&memberships).Error)
	require.NoError(t, ts.DB.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(3), memberships)
	assert.Equal(t, int64(5), users)

	// сидированный админ может войти
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@fitnessrevolution.in", "password": "admin123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// публичные списки отдают сидированные данные
	res, body = ts.SendRequest(t, http.MethodGet, "/api/memberships", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list struct {
		Memberships []struct {
			Name        string   `json:"name"`
			IsPopular   bool     `json:"is_popular"`
			Features    []string `json:"features"`
			NotIncluded []string `json:"not_included"`
		} `json:"memberships"`
	}
	helpers.DecodeJSON(t, body, &list)
	require.Len(t, list.Memberships, 3)
	assert.Equal(t, "Basic", list.Memberships[0].Name)
	assert.True(t, list.Memberships[1].IsPopular)
	assert.NotNil(t, list.Memberships[2].NotIncluded)
	assert.Empty(t, list.Memberships[2].NotIncluded)
}

func TestSystemEndpoints(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Welcome to The Fitness Revolution API")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/docs", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "The Fitness Revolution API Documentation")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"database":"up"`)
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
}

func TestUnknownRouteAndMethod(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/nothing-here", "", nil)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	var errResp errorBody
	helpers.DecodeJSON(t, body, &errResp)
	assert.Equal(t, "Not found", errResp.Error)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/memberships", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func TestInitDB_AfterBootstrapAdminWithSeedEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)

	// Arrange: админ из FIRST_ADMIN_EMAIL совпадает с сидированным
	seed := services.NewSeedService(
		repositories.NewUserRepository(),
		repositories.NewMembershipRepository(),
		repositories.NewProgramRepository(),
		repositories.NewMealPlanRepository(),
		repositories.NewTrainerRepository(),
	)
	require.NoError(t, seed.EnsureAdmin(context.Background(), ts.DB, "admin@fitnessrevolution.in", "secret123"))

	// Act
	res, body := ts.SendRequest(t, http.MethodPost, "/api/init-db", "", nil)
	t.Logf("Response: %s", body)

	// Assert
	require.Equal(t, http.StatusCreated, res.StatusCode)
	var resp struct {
		Data struct {
			Memberships   int    `json:"memberships"`
			Trainers      int    `json:"trainers"`
			AdminPassword string `json:"admin_password"`
		} `json:"data"`
	}
	helpers.DecodeJSON(t, body, &resp)
	assert.Equal(t, 3, resp.Data.Memberships)
	assert.Equal(t, 3, resp.Data.Trainers)
	assert.Empty(t, resp.Data.AdminPassword)

	var users int64
	require.NoError(t, ts.DB.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(5), users)

	// пароль существующего админа не перезаписан
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@fitnessrevolution.in", "password": "secret123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/init-db", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Database already initialized")
}
