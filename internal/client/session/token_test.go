package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpiryFromToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u-1",
		"exp": exp.Unix(),
	})
	raw, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	got := ExpiryFromToken(raw)
	assert.True(t, got.Equal(exp), "got %v want %v", got, exp)
}

func TestExpiryFromToken_NoClaim(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u-1"})
	raw, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	assert.True(t, ExpiryFromToken(raw).IsZero())
}

func TestExpiryFromToken_NotAJWT(t *testing.T) {
	assert.True(t, ExpiryFromToken("opaque-token").IsZero())
	assert.True(t, ExpiryFromToken("").IsZero())
}
