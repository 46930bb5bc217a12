package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", 7*24*time.Hour)

	token, err := m.GenerateToken("user-1")
	require.NoError(t, err)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, 7*24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestTokenManager_Expired(t *testing.T) {
	issued := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewTokenManager("secret", time.Hour).WithClock(func() time.Time { return issued })

	token, err := m.GenerateToken("user-1")
	require.NoError(t, err)

	later := m.WithClock(func() time.Time { return issued.Add(2 * time.Hour) })
	_, err = later.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_Invalid(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	other, err := NewTokenManager("other", time.Hour).GenerateToken("user-1")
	require.NoError(t, err)

	// none-алгоритм должен отвергаться
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "user-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong secret": other,
		"garbage":      "abc.def.ghi",
		"none alg":     unsigned,
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.ParseToken(token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, ok := ExtractBearerToken("Bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	token, ok = ExtractBearerToken("bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	for _, header := range []string{"Bearer", "Basic abc", "Bearer a b", "abc"} {
		_, ok := ExtractBearerToken(header)
		assert.False(t, ok, header)
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("secret124", hash))

	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
}
