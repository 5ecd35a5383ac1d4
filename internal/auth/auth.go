// Package auth is the identity-provider boundary: it trades an email and
// password for a signed identity token and resolves bearer tokens back to an
// Identity. The core services only ever see the resulting Identity.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/tayaudrey222/yumstation/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// HashPassword returns the bcrypt hash stored alongside the admin user.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password failed: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword compares a stored hash against a login attempt.
func CheckPassword(hash, password string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueToken signs an identity. The token carries the role as it was at
// login time; a role change takes effect at the next login.
func (s *Service) IssueToken(identity models.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   identity.UID,
		"email": identity.Email,
		"role":  identity.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("cannot sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses a bearer token back into an Identity.
func (s *Service) VerifyToken(tokenStr string) (models.Identity, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return models.Identity{}, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Identity{}, ErrInvalidCredentials
	}

	identity := models.Identity{}
	if v, ok := claims["sub"].(string); ok {
		identity.UID = v
	}
	if v, ok := claims["email"].(string); ok {
		identity.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		identity.Role = v
	}
	if identity.UID == "" {
		return models.Identity{}, ErrInvalidCredentials
	}
	return identity, nil
}
