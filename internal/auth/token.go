package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed session lifetime. The server keeps no session state;
// the token is the only artifact carried between requests.
const TokenTTL = 2 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims is the decoded session payload.
type Claims struct {
	UserID   int64    `json:"uid"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// IssueToken signs a claim set expiring TokenTTL from now.
func IssueToken(userID int64, username string, roles []string, secret string) (string, error) {
	return issueToken(userID, username, roles, secret, TokenTTL)
}

func issueToken(userID int64, username string, roles []string, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:   userID,
		Username: username,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString([]byte(secret))
}

// VerifyToken parses and validates a token. It fails on a bad signature, an
// elapsed expiry, or an unexpected signing method; it never returns a partial
// claim set.
func VerifyToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
