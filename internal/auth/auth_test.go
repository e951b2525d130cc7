package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesSignedToken(t *testing.T) {
	svc := NewService("karina@clinic.example", "s3cret", "signing-key", time.Hour)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC) }

	token, expiresAt, err := svc.Login("karina@clinic.example", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), expiresAt)

	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (any, error) {
		return []byte("signing-key"), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time {
		return time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)
	}))
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "karina@clinic.example", claims.Subject)
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	svc := NewService("karina@clinic.example", "s3cret", "signing-key", time.Hour)

	_, _, err := svc.Login("karina@clinic.example", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("other@clinic.example", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsWhenUnconfigured(t *testing.T) {
	svc := NewService("", "", "signing-key", time.Hour)
	_, _, err := svc.Login("", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginHandler(t *testing.T) {
	svc := NewService("karina@clinic.example", "s3cret", "signing-key", time.Hour)
	h := NewHandler(svc, nil)

	body, _ := json.Marshal(LoginRequest{Email: "karina@clinic.example", Password: "s3cret"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(time.Now()))
}

func TestLoginHandlerRejectsBadCredentials(t *testing.T) {
	svc := NewService("karina@clinic.example", "s3cret", "signing-key", time.Hour)
	h := NewHandler(svc, nil)

	body, _ := json.Marshal(LoginRequest{Email: "karina@clinic.example", Password: "nope"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte("not json"))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
