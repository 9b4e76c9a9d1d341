package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload carried by a session token.
type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ErrInvalidToken is returned when a token fails verification for any reason.
var ErrInvalidToken = errors.New("invalid token")

// signingKey is the HMAC secret all tokens are signed with.
var signingKey []byte

// lifetime is how long an issued token stays valid.
var lifetime time.Duration

// Init sets the signing key and lifetime used for all subsequently issued and
// verified tokens.
func Init(secret string, ttl time.Duration) {
	signingKey = []byte(secret)
	lifetime = ttl
}

// Generate issues a signed token identifying the given user.
func Generate(userID string, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
}

// Parse verifies a raw token string and returns its claims. Expired tokens,
// tampered tokens and tokens signed with a foreign key or algorithm are all
// rejected.
func Parse(raw string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &Claims{}
	parsed, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return signingKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
