package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyAdminToken(t *testing.T) {
	token, err := SignAdminToken("s3cret", "ops@fitcheck.test", time.Hour)
	require.NoError(t, err)

	claims, err := VerifyAdminToken("s3cret", token)
	require.NoError(t, err)
	require.Equal(t, "ops@fitcheck.test", claims.Subject)
	require.Equal(t, RoleAdmin, claims.Role)
}

func TestVerifyAdminTokenRejectsWrongSecret(t *testing.T) {
	token, err := SignAdminToken("s3cret", "ops", time.Hour)
	require.NoError(t, err)

	_, err = VerifyAdminToken("other", token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAdminTokenRejectsExpired(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	claims := Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ops",
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = VerifyAdminToken("s3cret", raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAdminTokenRequiresAdminRole(t *testing.T) {
	claims := Claims{
		Role: "viewer",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ops",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = VerifyAdminToken("s3cret", raw)
	require.True(t, errors.Is(err, ErrForbidden))
}

func TestMissingSecret(t *testing.T) {
	_, err := SignAdminToken("", "ops", time.Hour)
	require.ErrorIs(t, err, ErrMissingSecret)
	_, err = VerifyAdminToken(" ", "x")
	require.ErrorIs(t, err, ErrMissingSecret)
}
