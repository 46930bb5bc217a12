package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,is-user-role"`
}

type schedule struct {
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Start string `json:"start_time" validate:"required,clock"`
	Cycle string `json:"billing_cycle" validate:"omitempty,is-billing-cycle"`
}

func TestValidate_FirstMessageFollowsFieldOrder(t *testing.T) {
	v := New()

	err := v.Validate(&signup{})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email is required", vErr.First())
	assert.Equal(t, "password is required", vErr.Map()["password"])
}

func TestValidate_Messages(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"bad email", &signup{Email: "nope", Password: "secret1"}, "email must be a valid email address"},
		{"short password", &signup{Email: "a@b.co", Password: "123"}, "password must be at least 6 characters long"},
		{"unknown role", &signup{Email: "a@b.co", Password: "secret1", Role: "owner"}, "role must be one of: member, trainer, admin, nutritionist"},
		{"bad date", &schedule{Date: "01/02/2025", Start: "09:00"}, "date must match format YYYY-MM-DD"},
		{"bad clock", &schedule{Date: "2025-01-02", Start: "9am"}, "start_time must match format HH:MM"},
		{"bad cycle", &schedule{Date: "2025-01-02", Start: "09:00", Cycle: "weekly"}, "billing_cycle must be one of: monthly, yearly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.want, vErr.First())
		})
	}
}

func TestValidate_OK(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signup{Email: "a@b.co", Password: "secret1", Role: "trainer"}))
	assert.NoError(t, v.Validate(&schedule{Date: "2025-01-02", Start: "18:30:00", Cycle: "yearly"}))
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("07:45")
	require.NoError(t, err)
	assert.Equal(t, 7, c.Hour())
	assert.Equal(t, 45, c.Minute())

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}
