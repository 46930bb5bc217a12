package handlers_test

import (
	"net/http"
	"testing"

	"fitness_backend/internal/models"
	"fitness_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type membershipBody struct {
	Message    string `json:"message"`
	Membership struct {
		ID           string   `json:"id"`
		Name         string   `json:"name"`
		DurationDays int      `json:"duration_days"`
		Features     []string `json:"features"`
		IsActive     bool     `json:"is_active"`
	} `json:"membership"`
}

func createMembership(t *testing.T, ts *helpers.TestServer, token string) membershipBody {
	t.Helper()
	res, body := ts.SendRequest(t, http.MethodPost, "/api/memberships", token, map[string]interface{}{
		"name":          "Basic",
		"price_monthly": 2499,
		"price_yearly":  24999,
		"features":      []string{"Free WiFi"},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	var resp membershipBody
	helpers.DecodeJSON(t, body, &resp)
	return resp
}

func TestCreateMembership(t *testing.T) {
	ts := helpers.NewTestServer(t)
	adminToken, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleAdmin)
	memberToken, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/memberships", memberToken, map[string]interface{}{
		"name": "Hack", "price_monthly": 1, "price_yearly": 1,
	})
	require.Equal(t, http.StatusForbidden, res.StatusCode)

	created := createMembership(t, ts, adminToken)
	assert.Equal(t, "Membership created successfully", created.Message)
	assert.Equal(t, 30, created.Membership.DurationDays)
	assert.Equal(t, []string{"Free WiFi"}, created.Membership.Features)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/memberships", adminToken, map[string]interface{}{
		"name": "No prices",
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	var errResp errorBody
	helpers.DecodeJSON(t, body, &errResp)
	assert.Equal(t, "price_monthly is required", errResp.Error)
}

func TestUpdateMembership_Deactivate(t *testing.T) {
	ts := helpers.NewTestServer(t)
	adminToken, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleAdmin)
	created := createMembership(t, ts, adminToken)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/memberships/"+created.Membership.ID, adminToken, map[string]interface{}{
		"is_active": false,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var updated membershipBody
	helpers.DecodeJSON(t, body, &updated)
	assert.Equal(t, "Membership updated successfully", updated.Message)
	assert.False(t, updated.Membership.IsActive)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/memberships", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"memberships":[]}`, body)
}

func TestSubscribe(t *testing.T) {
	ts := helpers.NewTestServer(t)
	adminToken, _ := helpers.CreateAndLoginUser(t, ts, models.UserRoleAdmin)
	memberToken, member := helpers.CreateAndLoginUser(t, ts, models.UserRoleMember)
	created := createMembership(t, ts, adminToken)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/memberships/"+created.Membership.ID+"/subscribe", memberToken, map[string]string{
		"billing_cycle": "yearly",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var resp struct {
		Message       string `json:"message"`
		MembershipEnd string `json:"membership_end"`
		User          struct {
			MembershipID *string `json:"membership_id"`
		} `json:"user"`
	}
	helpers.DecodeJSON(t, body, &resp)
	assert.Equal(t, "Subscribed successfully", resp.Message)
	assert.Equal(t, models.FormatDate(models.AddDays(models.Today(), 365)), resp.MembershipEnd)
	require.NotNil(t, resp.User.MembershipID)
	assert.Equal(t, created.Membership.ID, *resp.User.MembershipID)

	var stored models.User
	require.NoError(t, ts.DB.First(&stored, "id = ?", member.ID).Error)
	require.NotNil(t, stored.MembershipID)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/memberships/"+created.Membership.ID+"/subscribe", memberToken, map[string]string{
		"billing_cycle": "weekly",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/memberships/missing/subscribe", memberToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
