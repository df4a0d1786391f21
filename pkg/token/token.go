package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalid is returned when a token is malformed or its signature does
// not verify.
var ErrInvalid = errors.New("invalid token")

// Claims is the identity a session token asserts. No expiry claim is set;
// tokens stay valid until the signing secret rotates.
type Claims struct {
	Username string `json:"username"`
	ID       string `json:"id"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a process-wide secret.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue signs a token asserting the given identity.
func (c *Codec) Issue(username string, id uuid.UUID) (string, error) {
	claims := Claims{
		Username: username,
		ID:       id.String(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and returns the embedded identity claims.
func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
