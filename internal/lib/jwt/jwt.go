package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// NewAdminToken issues the token used by the staff moderation surface.
func NewAdminToken(username, secret string, duration time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = username
	claims["role"] = "admin"
	claims["exp"] = time.Now().Add(duration).Unix()

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
