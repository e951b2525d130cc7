// Package auth issues admin session tokens. Credentials come from the
// environment; a successful login returns a short-lived HMAC-signed JWT
// that the admin middleware validates on every request.
package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredentials is returned when the email/password pair does not
// match the configured admin account.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Service validates admin credentials and signs session tokens.
type Service struct {
	email    string
	password string
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

// NewService creates a new auth service
func NewService(email, password, secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Service{
		email:    email,
		password: password,
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Login checks the credentials and returns a signed token with its expiry.
func (s *Service) Login(email, password string) (token string, expiresAt time.Time, err error) {
	if s.email == "" || s.password == "" || len(s.secret) == 0 {
		return "", time.Time{}, ErrInvalidCredentials
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !emailOK || !passOK {
		return "", time.Time{}, ErrInvalidCredentials
	}

	issuedAt := s.now()
	expiresAt = issuedAt.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   s.email,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
