package handlers_test

import (
	"net/http"
	"testing"

	"fitness_backend/internal/models"
	"fitness_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type progressBody struct {
	Message     string `json:"message"`
	ProgressLog struct {
		BMI     *float64 `json:"bmi"`
		LogDate string   `json:"log_date"`
	} `json:"progress_log"`
}

func TestCreateProgress_ComputesBMI(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/progress", token, map[string]interface{}{
		"weight": 81,
		"height": 180,
	})
	t.Logf("Response: %s", body)

	require.Equal(t, http.StatusCreated, res.StatusCode)
	var resp progressBody
	helpers.DecodeJSON(t, body, &resp)
	assert.Equal(t, "Progress log created successfully", resp.Message)
	require.NotNil(t, resp.ProgressLog.BMI)
	assert.Equal(t, 25.0, *resp.ProgressLog.BMI)
	assert.Equal(t, models.FormatDate(models.Today()), resp.ProgressLog.LogDate)
}

func TestCreateProgress_NoBMIWithoutHeight(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/progress", token, map[string]interface{}{
		"weight":   70,
		"log_date": "2025-03-01",
	})

	require.Equal(t, http.StatusCreated, res.StatusCode)
	var resp progressBody
	helpers.DecodeJSON(t, body, &resp)
	assert.Nil(t, resp.ProgressLog.BMI)
	assert.Equal(t, "2025-03-01", resp.ProgressLog.LogDate)
}

func TestListProgress_NewestFirst(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)
	otherToken, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)

	for _, d := range []string{"2025-01-01", "2025-02-01"} {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/progress", token, map[string]interface{}{"log_date": d})
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/progress", otherToken, map[string]interface{}{"log_date": "2025-03-01"})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/progress", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var list struct {
		ProgressLogs []struct {
			LogDate string `json:"log_date"`
		} `json:"progress_logs"`
	}
	helpers.DecodeJSON(t, body, &list)
	require.Len(t, list.ProgressLogs, 2)
	assert.Equal(t, "2025-02-01", list.ProgressLogs[0].LogDate)
	assert.Equal(t, "2025-01-01", list.ProgressLogs[1].LogDate)
}
