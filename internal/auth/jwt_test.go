package auth

import (
	"testing"
	"time"

	"mentorhub_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(secret string, ttlMinutes int) {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttlMinutes
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig("test-secret", 60)

	token, err := GenerateToken("user-123", "mentor")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "mentor", claims.Role)
}

func TestGenerateToken_NoSecret(t *testing.T) {
	setTestConfig("", 60)

	_, err := GenerateToken("user-123", "student")
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestParseToken_Expired(t *testing.T) {
	setTestConfig("test-secret", 60)

	// Токен, истекший час назад, подписанный тем же секретом
	claims := &Claims{
		UserID: "user-123",
		Role:   "student",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig("test-secret", 60)
	token, err := GenerateToken("user-123", "student")
	require.NoError(t, err)

	setTestConfig("another-secret", 60)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig("test-secret", 60)

	_, err := ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
