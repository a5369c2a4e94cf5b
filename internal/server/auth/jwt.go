// Package auth signs and parses member session tokens.
package auth

import (
	"time"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the entity name and the server-side session ID (jti).
// Tokens carry no expiry; a session ends when the server forgets its ID.
type Claims struct {
	jwt.RegisteredClaims
	UserName string `json:"usr"`
}

func GenerateToken(userName, sessionID string, secretKey []byte, issuedAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       sessionID,
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
		UserName: userName,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates the signature and returns the entity name and
// session ID.
func ParseToken(tokenString string, secretKey []byte) (userName, sessionID string, err error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserName == "" || claims.ID == "" {
		return "", "", common.ErrInvalidToken
	}

	return claims.UserName, claims.ID, nil
}
