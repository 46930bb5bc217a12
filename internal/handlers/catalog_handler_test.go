package handlers_test

import (
	"net/http"
	"testing"

	"fitness_backend/internal/models"
	"fitness_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTrainer(t *testing.T) {
	ts := helpers.NewTestServer(t)
	adminToken, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleAdmin)
	coach := helpers.CreateUser(t, ts.DB, "kiran@example.com", "password123", models.UserRoleTrainer)

	req := map[string]interface{}{
		"user_id":          coach.ID,
		"specialization":   []string{"Yoga"},
		"experience_years": 4,
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/api/trainers", adminToken, req)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var resp struct {
		Message string `json:"message"`
		Trainer struct {
			ID     string  `json:"id"`
			Name   *string `json:"name"`
			Email  *string `json:"email"`
			Rating float64 `json:"rating"`
		} `json:"trainer"`
	}
	helpers.DecodeJSON(t, body, &resp)
	assert.Equal(t, "Trainer created successfully", resp.Message)
	require.NotNil(t, resp.Trainer.Name)
	assert.Equal(t, "Test User", *resp.Trainer.Name)
	assert.Equal(t, coach.Email, *resp.Trainer.Email)
	assert.Equal(t, 5.0, resp.Trainer.Rating)

	// второй профиль для того же пользователя
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/trainers", adminToken, req)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	// неизвестный пользователь
	res, body = ts.SendRequest(t, http.MethodPost, "/api/trainers", adminToken, map[string]interface{}{"user_id": "missing"})
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	var errResp errorBody
	helpers.DecodeJSON(t, body, &errResp)
	assert.Equal(t, "User not found", errResp.Error)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/trainers/"+resp.Trainer.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/trainers/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCreateClass(t *testing.T) {
	ts := helpers.NewTestServer(t)
	existing := helpers.CreateClass(t, ts.DB, 10)
	trainerToken, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleTrainer)
	memberToken, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)

	date := models.FormatDate(models.AddDays(models.Today(), 2))
	req := map[string]interface{}{
		"program_id": existing.ProgramID,
		"trainer_id": existing.TrainerID,
		"date":       date,
		"start_time": "18:00",
		"end_time":   "19:00",
		"location":   "Studio B",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/classes", memberToken, req)
	require.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/classes", trainerToken, req)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var resp struct {
		Message string `json:"message"`
		Class   struct {
			Date            string `json:"date"`
			StartTime       string `json:"start_time"`
			MaxParticipants int    `json:"max_participants"`
			AvailableSpots  int    `json:"available_spots"`
			Program         *struct {
				Title string `json:"title"`
			} `json:"program"`
		} `json:"class"`
	}
	helpers.DecodeJSON(t, body, &resp)
	assert.Equal(t, "Class scheduled successfully", resp.Message)
	assert.Equal(t, date, resp.Class.Date)
	assert.Equal(t, "18:00:00", resp.Class.StartTime)
	// берется из программы
	assert.Equal(t, 20, resp.Class.MaxParticipants)
	assert.Equal(t, 20, resp.Class.AvailableSpots)
	require.NotNil(t, resp.Class.Program)
	assert.Equal(t, "HIIT Training", resp.Class.Program.Title)

	bad := map[string]interface{}{}
	for k, v := range req {
		bad[k] = v
	}
	bad["end_time"] = "17:00"
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/classes", trainerToken, bad)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	bad["end_time"] = "19:00"
	bad["program_id"] = "missing"
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/classes", trainerToken, bad)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestListClasses_Filters(t *testing.T) {
	ts := helpers.NewTestServer(t)
	tomorrow := helpers.CreateClass(t, ts.DB, 10)

	past := helpers.CreateClass(t, ts.DB, 10)
	require.NoError(t, ts.DB.Model(past).Update("date", models.AddDays(models.Today(), -3)).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/classes", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list struct {
		Classes []struct {
			ID string `json:"id"`
		} `json:"classes"`
	}
	helpers.DecodeJSON(t, body, &list)
	require.Len(t, list.Classes, 1)
	assert.Equal(t, tomorrow.ID, list.Classes[0].ID)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/classes?date="+models.FormatDate(models.AddDays(models.Today(), -3)), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	helpers.DecodeJSON(t, body, &list)
	require.Len(t, list.Classes, 1)
	assert.Equal(t, past.ID, list.Classes[0].ID)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/classes?trainer_id="+past.TrainerID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	helpers.DecodeJSON(t, body, &list)
	assert.Empty(t, list.Classes)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/classes?date=03-01-2025", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestMealPlans(t *testing.T) {
	ts := helpers.NewTestServer(t)
	nutritionistToken, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleNutritionist)
	memberToken, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)

	req := map[string]interface{}{
		"title":           "Vegetarian Plan",
		"category":        "vegetarian",
		"calories":        2200,
		"protein_percent": 25,
		"carbs_percent":   50,
		"fat_percent":     25,
		"meals": []map[string]interface{}{
			{"name": "Breakfast", "time": "8:00 AM", "description": "Paneer bhurji", "calories": 400},
		},
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/meal-plans", memberToken, req)
	require.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/meal-plans", nutritionistToken, req)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var created struct {
		MealPlan struct {
			ID      string `json:"id"`
			Protein *int   `json:"protein"`
			Meals   []struct {
				Name string `json:"name"`
			} `json:"meals"`
		} `json:"meal_plan"`
	}
	helpers.DecodeJSON(t, body, &created)
	require.NotNil(t, created.MealPlan.Protein)
	assert.Equal(t, 25, *created.MealPlan.Protein)
	require.Len(t, created.MealPlan.Meals, 1)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/meal-plans?category=muscle_gain", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"meal_plans":[]}`, body)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/meal-plans/"+created.MealPlan.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/meal-plans/missing", "", nil)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "Meal plan not found")
}

func TestPrograms(t *testing.T) {
	ts := helpers.NewTestServer(t)
	adminToken, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleAdmin)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/programs", adminToken, map[string]interface{}{
		"title": "Cardio Blast", "category": "Cardio", "duration_minutes": 40,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var created struct {
		Program struct {
			ID              string `json:"id"`
			MaxParticipants int    `json:"max_participants"`
		} `json:"program"`
	}
	helpers.DecodeJSON(t, body, &created)
	assert.Equal(t, 20, created.Program.MaxParticipants)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/programs/"+created.Program.ID, adminToken, map[string]interface{}{
		"is_active": false,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Program updated successfully")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/programs", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"programs":[]}`, body)
}

func TestAdminDashboard(t *testing.T) {
	ts := helpers.NewTestServer(t)
	class := helpers.CreateClass(t, ts.DB, 5)
	adminToken, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleAdmin)
	memberToken, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)

	status, _ := book(t, ts, memberToken, class.ID)
	require.Equal(t, http.StatusCreated, status)
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/contact", "", contactBody())
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/admin/dashboard", memberToken, nil)
	require.Equal(t, http.StatusForbidden, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/admin/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var resp struct {
		Stats struct {
			TotalUsers     int64 `json:"total_users"`
			ActiveMembers  int64 `json:"active_members"`
			TotalTrainers  int64 `json:"total_trainers"`
			TotalBookings  int64 `json:"total_bookings"`
			UnreadMessages int64 `json:"unread_messages"`
		} `json:"stats"`
		RecentBookings []map[string]interface{} `json:"recent_bookings"`
	}
	helpers.DecodeJSON(t, body, &resp)
	// тренер из CreateClass + админ + участник
	assert.Equal(t, int64(3), resp.Stats.TotalUsers)
	assert.Equal(t, int64(1), resp.Stats.TotalTrainers)
	assert.Equal(t, int64(1), resp.Stats.TotalBookings)
	assert.Equal(t, int64(1), resp.Stats.UnreadMessages)
	assert.Len(t, resp.RecentBookings, 1)
}
