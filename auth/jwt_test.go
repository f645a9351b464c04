package auth

import (
	"testing"
	"time"

	"github.com/OsamaAsender/quantamstore-api/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewService("test-secret")
	user := &models.User{ID: 42, Email: "jane@example.com", Role: models.RoleCustomer}

	token, err := service.IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, models.RoleCustomer, claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	service := NewService("secret-a")
	user := &models.User{ID: 1, Email: "a@example.com", Role: models.RoleCustomer}

	token, err := service.IssueToken(user)
	require.NoError(t, err)

	other := NewService("secret-b")
	_, _, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	service := NewService("test-secret")
	_, _, err := service.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	service := NewService("test-secret")

	claims := Claims{
		Email: "old@example.com",
		Role:  models.RoleCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, _, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenNonNumericSubject(t *testing.T) {
	service := NewService("test-secret")

	claims := jwt.RegisteredClaims{
		Subject:   "not-an-id",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, _, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
