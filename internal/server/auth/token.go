// Package auth holds the identity side of the server: the signed session
// credential, the per-request identity resolver and the permission guard.
package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed payload of a session credential.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// TokenCodec signs and verifies HS256 session credentials. Issue time and
// expiry are part of the signed payload and are both checked on Verify.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret []byte, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, ttl: ttl, now: time.Now}
}

// Sign issues a credential for userID valid for the codec's TTL.
func (c *TokenCodec) Sign(userID string) (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID: userID,
	})

	s, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// Verify returns the user id carried by credential. Any failure, including a
// bad signature, a foreign algorithm or an expired token, is reported as
// common.ErrInvalidCredential.
func (c *TokenCodec) Verify(credential string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(credential, claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidCredential
	}
	return claims.UserID, nil
}
