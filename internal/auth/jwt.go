package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/almeidamaycon094-ux/heasystaff/internal/domain"
)

// Claims holds the custom JWT claims. The admin email is the only custom
// claim; together with the registered expiry this matches the token shape
// existing clients already hold.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWTManager handles token generation and validation for admin sessions.
type JWTManager struct {
	secret []byte
	expiry time.Duration
}

// NewJWTManager creates a JWT manager. The secret must come from
// configuration; there is no fallback.
func NewJWTManager(secret string, expiry time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), expiry: expiry}
}

// GenerateToken creates a signed HS256 token embedding the admin email.
func (m *JWTManager) GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateToken parses and validates a token, returning the embedded email.
// Expired tokens and structurally invalid ones map to distinct domain errors.
func (m *JWTManager) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired()
		}
		return "", domain.ErrTokenInvalid()
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return "", domain.ErrTokenInvalid()
	}

	return claims.Email, nil
}
