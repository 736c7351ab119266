package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by a staff session token.
type SessionClaims struct {
	StaffID uint   `json:"staffId"`
	Login   string `json:"login"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a session token for a staff member.
func GenerateSessionToken(staffID uint, login, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		StaffID: staffID,
		Login:   login,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken verifies signature and expiry.
func ParseSessionToken(tokenStr, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.StaffID == 0 {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
