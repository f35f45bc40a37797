// internal/auth/token.go
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager issues and resolves HS256 session tokens. It resolves the
// token from the Authorization header first and the session cookie second.
type TokenManager struct {
	secret       []byte
	expiryPeriod time.Duration
	cookieName   string
}

var _ SessionResolver = (*TokenManager)(nil)

func NewTokenManager(secret string, expiryPeriod time.Duration, cookieName string) *TokenManager {
	return &TokenManager{
		secret:       []byte(secret),
		expiryPeriod: expiryPeriod,
		cookieName:   cookieName,
	}
}

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

func (tm *TokenManager) Generate(userID, email, name string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.expiryPeriod)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// Resolve never returns an error: a missing, expired or forged token is
// simply no session.
func (tm *TokenManager) Resolve(ctx context.Context, header http.Header) (*Session, error) {
	raw := tm.tokenFromHeader(header)
	if raw == "" {
		return nil, nil
	}

	claims, err := tm.Validate(raw)
	if err != nil {
		return nil, nil
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, nil
	}

	return &Session{UserID: userID, Name: claims.Name, Email: claims.Email}, nil
}

func (tm *TokenManager) tokenFromHeader(header http.Header) string {
	if authHeader := header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if tm.cookieName == "" {
		return ""
	}
	req := http.Request{Header: header}
	cookie, err := req.Cookie(tm.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
