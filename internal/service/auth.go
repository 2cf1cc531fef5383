package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"home-services-backend/internal/config"
	apperrors "home-services-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
)

// AuthService authenticates the admin user and issues session tokens
type AuthService struct {
	config    *config.Config
	validator *validator.Validate
	now       func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config, validator *validator.Validate, now func() time.Time) *AuthService {
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		config:    cfg,
		validator: validator,
		now:       now,
	}
}

// LoginRequest represents the admin login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents the login outcome
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

// Login checks the admin credentials and issues a signed session token
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(s.config.AdminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.config.AdminPassword)) == 1
	if !emailOK || !passwordOK {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
	}, nil
}

// ValidateToken parses a session token and returns its subject
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.ErrInvalidCredentials
	}
	subject, err := claims.GetSubject()
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	return subject, nil
}

func (s *AuthService) issueToken(email string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
