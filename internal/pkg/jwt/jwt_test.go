package jwt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	service := NewJWTService("test-secret-key-for-jwt", "1h")

	tokenString, expiresAt, err := service.GenerateAccessToken("emp-1", "manager")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	require.Positive(t, expiresAt)

	token, err := service.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, "manager", claims["role"])
	assert.Equal(t, "access", claims["type"])
	assert.NotEmpty(t, claims["jti"])
}

func TestGenerateAccessToken_UniqueTokenIDs(t *testing.T) {
	service := NewJWTService("test-secret-key-for-jwt", "1h")

	first, _, err := service.GenerateAccessToken("emp-1", "employee")
	require.NoError(t, err)
	second, _, err := service.GenerateAccessToken("emp-1", "employee")
	require.NoError(t, err)

	firstToken, err := service.JWTAuth().Decode(first)
	require.NoError(t, err)
	secondToken, err := service.JWTAuth().Decode(second)
	require.NoError(t, err)

	firstID, _ := firstToken.Get("jti")
	secondID, _ := secondToken.Get("jti")
	assert.NotEqual(t, firstID, secondID)
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	service := NewJWTService("test-secret-key-for-jwt", "not-a-duration")

	_, _, err := service.GenerateAccessToken("emp-1", "employee")
	assert.Error(t, err)
}
