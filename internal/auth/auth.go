// Package auth issues and checks the bearer tokens required by the
// destructive endpoints (reset, bulk delete, archive).
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Service validates admin credentials and signs short-lived tokens.
type Service struct {
	secret       []byte
	adminUser    string
	passwordHash string
}

var ErrInvalidCredentials = errors.New("invalid credentials")

func NewService(secret, adminUser, passwordHash string) *Service {
	return &Service{
		secret:       []byte(secret),
		adminUser:    adminUser,
		passwordHash: passwordHash,
	}
}

// Login checks the credentials against the configured admin account and
// returns a signed token.
func (s *Service) Login(username, password string) (string, error) {
	if username != s.adminUser {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateToken(username)
}

func (s *Service) generateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses tokenStr and returns the subject when valid.
func (s *Service) Verify(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	return sub, nil
}
