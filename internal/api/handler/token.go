package handler

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/artgallery/gallery-service/internal/core/domain"
)

// TokenIssuer mints the demo access token returned by login and register.
// The token mirrors the backend's TokenResponse shape; nothing in this
// service validates it, since session state lives server-side.
type TokenIssuer struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewTokenIssuer(secret string, tokenTTL time.Duration) *TokenIssuer {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), tokenTTL: tokenTTL}
}

// Issue signs an HS256 token carrying the identity's username, role, and id.
func (t *TokenIssuer) Issue(identity domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"username": identity.Username,
		"role":     string(identity.Role),
		"user_id":  identity.ID,
		"exp":      time.Now().Add(t.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}
