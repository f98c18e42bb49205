package auth

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/guidocrm/guido-api/internal/shared/logger"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	repo       Repository
	jwtService *JWTService
}

// NewService creates a new auth service
func NewService(repo Repository, jwtSecret string, tokenExpiry time.Duration) *Service {
	return &Service{
		repo:       repo,
		jwtService: NewJWTService(jwtSecret, tokenExpiry),
	}
}

// Register creates a new user account
func (s *Service) Register(req *RegisterRequest) (*AuthResponse, error) {
	exists, err := s.repo.EmailExists(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("email already registered")
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Email:          req.Email,
		Username:       req.Username,
		HashedPassword: hashed,
		IsActive:       true,
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("user registered", map[string]interface{}{"email": user.Email, "user_id": user.ID})

	return s.authResponse(user)
}

// Login authenticates a user with email and password
func (s *Service) Login(req *LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := VerifyPassword(user.HashedPassword, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	logger.Info("user logged in", map[string]interface{}{"email": user.Email, "user_id": user.ID})

	return s.authResponse(user)
}

// GetUser returns the active user for a validated token's claims.
func (s *Service) GetUser(id uint) (*User, error) {
	return s.repo.GetUserByID(id)
}

// ValidateToken verifies an access token and returns its claims
func (s *Service) ValidateToken(token string) (*TokenClaims, error) {
	return s.jwtService.ValidateToken(token)
}

func (s *Service) authResponse(user *User) (*AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
		User:        user,
	}, nil
}
