package jwt

import (
	"Foodgram-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *jwtService {
	return &jwtService{secretKey: "test-secret", issuer: "FOODGRAM"}
}

func TestUserTokenRoundTrip(t *testing.T) {
	service := testService()

	token := service.GenerateTokenUser("user-1", domain.RoleUser)
	require.NotEmpty(t, token)

	userID, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, domain.RoleUser, role)
}

func TestUserTokenWrongSecret(t *testing.T) {
	token := testService().GenerateTokenUser("user-1", domain.RoleUser)

	other := &jwtService{secretKey: "other-secret", issuer: "FOODGRAM"}
	_, _, err := other.GetUserIDByToken(token)

	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestUserTokenGarbage(t *testing.T) {
	_, _, err := testService().GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestResetTokenRoundTrip(t *testing.T) {
	service := testService()

	token, err := service.GenerateTokenResetPassword("user@example.com", time.Minute)
	require.NoError(t, err)

	email, err := service.ValidateTokenResetPassword(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestResetTokenExpired(t *testing.T) {
	service := testService()

	token, err := service.GenerateTokenResetPassword("user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateTokenResetPassword(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
