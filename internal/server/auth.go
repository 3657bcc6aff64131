package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionTTL bounds how long a dropped client can resume its table.
const sessionTTL = 2 * time.Hour

// NewSessionToken signs a resume token for the table.
func NewSessionToken(secret []byte, tableID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   tableID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseSessionToken verifies a resume token and returns the table ID.
func ParseSessionToken(secret []byte, token string) (string, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid session token")
	}
	return claims.Subject, nil
}
