package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCodec(secret string, ttl time.Duration, now time.Time) *TokenCodec {
	c := NewTokenCodec([]byte(secret), ttl)
	c.now = func() time.Time { return now }
	return c
}

func TestSignVerify_RoundTrip(t *testing.T) {
	c := NewTokenCodec([]byte("secret"), time.Hour)

	tok, err := c.Sign("u-1")
	require.NoError(t, err)

	id, err := c.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id)
}

func TestVerify_WrongSecret(t *testing.T) {
	tok, err := NewTokenCodec([]byte("a"), time.Hour).Sign("u-1")
	require.NoError(t, err)

	_, err = NewTokenCodec([]byte("b"), time.Hour).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidCredential)
}

func TestVerify_Expired(t *testing.T) {
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tok, err := fixedCodec("s", time.Hour, issued).Sign("u-1")
	require.NoError(t, err)

	_, err = fixedCodec("s", time.Hour, issued.Add(30*time.Minute)).Verify(tok)
	require.NoError(t, err)

	_, err = fixedCodec("s", time.Hour, issued.Add(2*time.Hour)).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidCredential)
}

func TestVerify_IssuedInFuture(t *testing.T) {
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tok, err := fixedCodec("s", time.Hour, issued).Sign("u-1")
	require.NoError(t, err)

	_, err = fixedCodec("s", time.Hour, issued.Add(-10*time.Minute)).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidCredential)
}

func TestVerify_RejectsTokenWithoutExpiry(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "u-1"})
	tok, err := raw.SignedString([]byte("s"))
	require.NoError(t, err)

	_, err = NewTokenCodec([]byte("s"), time.Hour).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidCredential)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	now := time.Now()
	raw := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID: "u-1",
	})
	tok, err := raw.SignedString([]byte("s"))
	require.NoError(t, err)

	_, err = NewTokenCodec([]byte("s"), time.Hour).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidCredential)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := NewTokenCodec([]byte("s"), time.Hour).Verify("not-a-jwt")
	assert.ErrorIs(t, err, common.ErrInvalidCredential)
}
