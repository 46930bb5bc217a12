package workers_test

import (
	"context"
	"testing"
	"time"

	"fitness_backend/internal/models"
	"fitness_backend/internal/repositories"
	"fitness_backend/internal/workers"
	"fitness_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipWorker_RunOnce(t *testing.T) {
	ts := helpers.NewTestServer(t)

	plan := &models.Membership{Name: "Basic", PriceMonthly: 999, PriceYearly: 9990, DurationDays: 30, IsActive: true}
	require.NoError(t, ts.DB.Create(plan).Error)

	user := helpers.CreateUser(t, ts.DB, helpers.UniqueEmail("expired"), "password123", models.UserRoleMember)
	yesterday := models.AddDays(models.Today(), -1)
	require.NoError(t, ts.DB.Model(user).Updates(map[string]interface{}{
		"membership_id":  plan.ID,
		"membership_end": yesterday,
	}).Error)

	worker := workers.NewMembershipWorker(ts.DB, repositories.NewUserRepository(), time.Hour)
	assert.Equal(t, int64(1), worker.RunOnce(context.Background()))
	assert.Equal(t, int64(0), worker.RunOnce(context.Background()))

	var reloaded models.User
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", user.ID).Error)
	assert.Nil(t, reloaded.MembershipID)
}
