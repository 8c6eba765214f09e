package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"notebin/errs"
	"notebin/utils"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "notebin"

var (
	jwtSecretKey         []byte
	accessTokenLifetime  time.Duration
	refreshTokenLifetime time.Duration
)

// InitJWT loads the signing key and token lifetimes from the environment.
func InitJWT() {
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		log.Fatal("JWT_SECRET_KEY not set")
	}
	jwtSecretKey = []byte(secret)

	accessTokenLifetime = time.Duration(utils.GetEnvAsInt("JWT_EXPIRATION_TIME", 3600)) * time.Second
	refreshTokenLifetime = time.Duration(utils.GetEnvAsInt("REFRESH_TOKEN_EXPIRATION_TIME", 604800)) * time.Second
}

// GenerateToken issues an access token for the user.
func GenerateToken(userID string) (string, error) {
	return signToken(jwt.MapClaims{
		"user_id": userID,
		"iss":     tokenIssuer,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(accessTokenLifetime).Unix(),
	})
}

// GenerateRefreshToken issues a refresh token for the user.
func GenerateRefreshToken(userID string) (string, error) {
	return signToken(jwt.MapClaims{
		"user_id": userID,
		"type":    "refresh",
		"iss":     tokenIssuer,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(refreshTokenLifetime).Unix(),
	})
}

func signToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecretKey)
}

// ParseToken validates a signed token and returns its claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// ValidateRefreshToken checks a refresh token and returns the user id.
func ValidateRefreshToken(tokenString string) (string, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return "", errs.ErrTokenInvalid
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return "", errs.ErrTokenInvalid
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errs.ErrTokenInvalid
	}
	return userID, nil
}

// GenerateResetToken issues an opaque time-boxed token bound to an email.
// It is the token collaborator for the password recovery flow; the token
// carries a purpose claim so access tokens can never be replayed here.
func GenerateResetToken(email string, maxAge time.Duration) (string, error) {
	return signToken(jwt.MapClaims{
		"email":   email,
		"purpose": "password_reset",
		"iss":     tokenIssuer,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(maxAge).Unix(),
	})
}

// RedeemResetToken validates a reset token and returns the bound email.
// Expired, malformed or wrong-purpose tokens all yield ErrTokenInvalid.
func RedeemResetToken(tokenString string) (string, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return "", errs.ErrTokenInvalid
	}
	if purpose, _ := claims["purpose"].(string); purpose != "password_reset" {
		return "", errs.ErrTokenInvalid
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errs.ErrTokenInvalid
	}
	return email, nil
}
