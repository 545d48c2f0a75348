package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60,
		Issuer:     "nebengjek-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, "driver", getTestConfig())
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	claims, err := ValidateToken(tokenString, getTestConfig().Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "driver", claims.Role)
	assert.Equal(t, "nebengjek-test", claims.Issuer)
}

func TestValidateToken_Failures(t *testing.T) {
	cfg := getTestConfig()
	valid, _, err := GenerateToken(uuid.New(), "driver", cfg)
	require.NoError(t, err)

	expiredCfg := cfg
	expiredCfg.Expiration = -1
	expired, _, err := GenerateToken(uuid.New(), "driver", expiredCfg)
	require.NoError(t, err)

	badUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:           "not-a-uuid",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "wrong secret", token: valid, secret: "other"},
		{name: "expired", token: expired, secret: cfg.Secret},
		{name: "malformed", token: "not.a.jwt", secret: cfg.Secret},
		{name: "empty", token: "", secret: cfg.Secret},
		{name: "user id not a uuid", token: badUser, secret: cfg.Secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: uuid.NewString()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(token, getTestConfig().Secret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
