package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharemitra/sharemitra-backend/internal/config"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600

	token, err := GenerateJWT("client-1", "asha@example.com", "client", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "client-1", claims["sub"])
	assert.Equal(t, "asha@example.com", claims["email"])
	assert.Equal(t, "client", claims["role"])
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = 3600

	token, err := GenerateJWT("client-1", "asha@example.com", "client", cfg)
	require.NoError(t, err)

	other := &config.Config{}
	other.JWT.Secret = "different"
	_, err = ValidateJWT(token, other)
	assert.Error(t, err)
}

func TestGenerateOTPFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, otp, 6)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

func TestGenerateReceipt(t *testing.T) {
	a, err := GenerateReceipt(10)
	require.NoError(t, err)
	assert.Len(t, a, 20) // hex doubles the byte length

	b, err := GenerateReceipt(10)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNormalizePage(t *testing.T) {
	page, limit := NormalizePage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = NormalizePage(-3, -1)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = NormalizePage(4, 25)
	assert.Equal(t, 4, page)
	assert.Equal(t, 25, limit)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(23, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}
