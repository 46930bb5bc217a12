package services

import (
	"testing"

	"fitness_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSeedData(t *testing.T) {
	memberships := seedMemberships()
	assert.Len(t, memberships, 3)
	assert.True(t, memberships[1].IsPopular)
	assert.Len(t, memberships[2].Features, 12)
	assert.NotNil(t, memberships[2].NotIncluded)

	assert.Len(t, seedPrograms(), 4)
	assert.Len(t, seedMealPlans(), 3)

	staff := seedStaffMembers()
	trainers := 0
	for _, s := range staff {
		if s.trainer != nil {
			trainers++
			assert.Equal(t, models.UserRoleTrainer, s.user.Role)
		}
	}
	assert.Equal(t, 3, trainers)
	assert.Equal(t, models.UserRoleNutritionist, staff[len(staff)-1].user.Role)
}
