package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"adreward/internal/config/configs"
)

// Claims carried by both access and refresh tokens. The user id travels
// in the registered Subject claim.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies the two token kinds with separate HMAC
// secrets, so a refresh token never validates as an access token.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenManager(cfg configs.Auth) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
	}
}

// NewAccessToken issues a short-lived token used as the Bearer credential.
func (m *TokenManager) NewAccessToken(userID, role string) (string, error) {
	return sign(m.accessSecret, userID, role, m.accessTTL)
}

// NewRefreshToken issues the long-lived token persisted on the user row.
func (m *TokenManager) NewRefreshToken(userID, role string) (string, error) {
	return sign(m.refreshSecret, userID, role, m.refreshTTL)
}

func (m *TokenManager) ParseAccess(token string) (*Claims, error) {
	return parse(m.accessSecret, token)
}

func (m *TokenManager) ParseRefresh(token string) (*Claims, error) {
	return parse(m.refreshSecret, token)
}

func sign(secret []byte, userID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func parse(secret []byte, token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
