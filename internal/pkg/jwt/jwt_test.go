package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")
	store := "NYC01"

	token, expiresAt, err := svc.GenerateAccessToken("user-1", RoleManager, &store)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Positive(t, expiresAt)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.True(t, claims.IsManager())
	require.NotNil(t, claims.StoreID)
	assert.Equal(t, "NYC01", *claims.StoreID)
}

func TestValidateAccessToken_Rejects(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")
	other := NewJWTService("another-secret", "1h")

	token, _, err := other.GenerateAccessToken("user-1", RoleAssociate, nil)
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)

	expired := NewJWTService(testSecret, "-2h")
	token, _, err = expired.GenerateAccessToken("user-1", RoleAssociate, nil)
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestClaimsFromMap(t *testing.T) {
	_, err := ClaimsFromMap(map[string]interface{}{"user_id": "u", "type": "refresh"})
	assert.ErrorIs(t, err, ErrInvalidToken)

	c, err := ClaimsFromMap(map[string]interface{}{"user_id": "u", "type": "access", "role": "associate"})
	require.NoError(t, err)
	assert.False(t, c.IsManager())
	assert.Nil(t, c.StoreID)
}

func TestClaims_CanAccessStore(t *testing.T) {
	store := "NYC01"
	scoped := Claims{UserID: "u", Role: RoleAssociate, StoreID: &store}
	assert.True(t, scoped.CanAccessStore("NYC01"))
	assert.False(t, scoped.CanAccessStore("BOS02"))

	regional := Claims{UserID: "u", Role: RoleManager}
	assert.True(t, regional.CanAccessStore("BOS02"))
}
