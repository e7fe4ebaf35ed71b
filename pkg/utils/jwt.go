package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var jwtKey = []byte(os.Getenv("JWT_SECRET"))

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 30 * 24 * time.Hour
)

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	Kind   string `json:"kind"` // "access" or "refresh"
	jwt.RegisteredClaims
}

func CreateAccessToken(userID uint, role string) (string, error) {
	return signToken(userID, role, "access", AccessTokenTTL)
}

// CreateRefreshToken issues the long-lived token exchanged at /api/auth/refresh.
// The random ID makes every issued token distinct so the single-slot store can
// tell a rotated token from a stale one.
func CreateRefreshToken(userID uint) (string, error) {
	return signToken(userID, "", "refresh", RefreshTokenTTL)
}

func signToken(userID uint, role, kind string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		Kind:   kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}
