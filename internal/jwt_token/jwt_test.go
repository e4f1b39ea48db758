package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "voterguide/pkg/domain-errors"
)

func newTestService() *JWTService {
	return NewJWTService("test-signing-key", "voterguide", "voterguide-api")
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateToken("editor@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "editor@example.com", claims.Subject)
	assert.Equal(t, "voterguide", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateToken("editor@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateTokenWrongKey(t *testing.T) {
	token, err := newTestService().GenerateToken("editor@example.com", time.Hour)
	require.NoError(t, err)

	other := NewJWTService("different-key", "voterguide", "voterguide-api")
	_, err = other.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidateGarbageToken(t *testing.T) {
	_, err := newTestService().ValidateToken("not-a-jwt")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
