package services

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService manages JWT token generation and validation for the
// dashboard. When no secret is configured the dashboard runs open and no
// token checks are applied.
type AuthService struct {
	secretKey   string
	tokenExpiry time.Duration
}

// DashboardClaims represents the JWT claims structure
type DashboardClaims struct {
	Client string `json:"client"`
	jwt.RegisteredClaims
}

var authService *AuthService

// InitAuthService initializes the authentication service
func InitAuthService(secretKey string, tokenExpiry time.Duration) *AuthService {
	if tokenExpiry == 0 {
		tokenExpiry = 24 * time.Hour
	}

	authService = &AuthService{
		secretKey:   secretKey,
		tokenExpiry: tokenExpiry,
	}

	return authService
}

// AuthEnabled reports whether a secret is configured.
func AuthEnabled() bool {
	return authService != nil && authService.secretKey != ""
}

// GenerateToken creates a new JWT token for a dashboard client
func GenerateToken(client string) (string, error) {
	if !AuthEnabled() {
		return "", fmt.Errorf("auth service not configured")
	}

	now := time.Now()
	claims := DashboardClaims{
		Client: client,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(authService.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "promptstudio",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(authService.secretKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken verifies and parses a JWT token
func ValidateToken(tokenString string) (*DashboardClaims, error) {
	if !AuthEnabled() {
		return nil, fmt.Errorf("auth service not configured")
	}

	claims := &DashboardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(authService.secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// SharedSecretMatches checks a presented secret against the configured one
func SharedSecretMatches(secret string) bool {
	if !AuthEnabled() {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(authService.secretKey)) == 1
}
