package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

type Claims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func accessKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func refreshKey() []byte {
	return []byte(os.Getenv("JWT_REFRESH_SECRET"))
}

func signToken(userId uuid.UUID, role string, ttl time.Duration, key []byte) (string, error) {
	claims := &Claims{
		UserID: userId.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

func parseToken(tokenString string, key []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// CreateAccessToken mints a short-lived bearer token carrying the user's
// id and role.
func CreateAccessToken(userId uuid.UUID, role string) (string, error) {
	return signToken(userId, role, AccessTokenTTL, accessKey())
}

// CreateRefreshToken mints the long-lived token used only to obtain new
// access tokens. It is signed with a separate secret so an access token
// can never pass as a refresh token or vice versa.
func CreateRefreshToken(userId uuid.UUID, role string) (string, error) {
	return signToken(userId, role, RefreshTokenTTL, refreshKey())
}

func ValidateAccessToken(tokenString string) (*Claims, error) {
	return parseToken(tokenString, accessKey())
}

func ValidateRefreshToken(tokenString string) (*Claims, error) {
	return parseToken(tokenString, refreshKey())
}
