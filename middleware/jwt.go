package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer signs and verifies player tokens. The only claim the server relies on
// is userId, the player id the token was issued for.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed HS256 token for playerID.
func (ti *TokenIssuer) Issue(playerID string) (string, error) {
	now := ti.now()
	claims := jwt.MapClaims{
		"userId": playerID,
		"iat":    now.Unix(),
	}
	if ti.ttl > 0 {
		claims["exp"] = now.Add(ti.ttl).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return signed, nil
}

// Parse verifies the token and returns the player id it carries.
func (ti *TokenIssuer) Parse(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(ti.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	playerID, ok := claims["userId"].(string)
	if !ok || playerID == "" {
		return "", fmt.Errorf("%w: missing userId", ErrInvalidToken)
	}
	return playerID, nil
}
