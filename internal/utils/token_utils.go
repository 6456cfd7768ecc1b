package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignedToken is a bearer token together with the instant it stops being accepted.
type SignedToken struct {
	Token     string
	ExpiresAt time.Time
}

// GenerateJWT signs an HS256 token whose subject is userID, valid from issuedAt for ttl.
func GenerateJWT(userID, secret, issuer string, issuedAt time.Time, ttl time.Duration) (SignedToken, error) {
	expiresAt := issuedAt.Add(ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return SignedToken{}, err
	}
	return SignedToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// ParseAndValidateJWT checks signature, algorithm and time claims and returns the claims.
// Tokens without an expiry are rejected.
func ParseAndValidateJWT(tokenString, secret string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
