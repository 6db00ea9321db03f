package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateUserJWT(t *testing.T) {
	key := []byte("super secret key")

	tokenStr, err := GenerateUserJWT(42, time.Hour, key)
	require.NoError(t, err)

	token, err := ValidateUserJWT(tokenStr, key)
	require.NoError(t, err)

	claims, ok := token.Claims.(*UserClaims)
	require.True(t, ok)
	require.Equal(t, int64(42), claims.ID)
	require.Equal(t, Issuer, claims.Issuer)
}

func TestValidateUserJWT_ForeignIssuer(t *testing.T) {
	key := []byte("super secret key")

	// токен подписан тем же ключом, но выпущен не нами.
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		ID: 42,
	})
	tokenStr, signErr := foreign.SignedString(key)
	require.NoError(t, signErr)

	_, err := ValidateUserJWT(tokenStr, key)
	require.Error(t, err)
}

func TestValidateUserJWT_Expired(t *testing.T) {
	key := []byte("super secret key")

	tokenStr, err := GenerateUserJWT(42, -time.Minute, key)
	require.NoError(t, err)

	_, err = ValidateUserJWT(tokenStr, key)
	require.ErrorIs(t, err, ErrTokenExpired)
}
