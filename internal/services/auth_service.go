package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"socialposts/internal/events"
	"socialposts/internal/models"
	"socialposts/internal/repositories"
)

// DefaultBcryptCost is the bcrypt work factor used for new passwords.
const DefaultBcryptCost = 10

// bcrypt only reads the first 72 bytes of a password.
const maxPasswordBytes = 72

// passwordKey returns the part of password that bcrypt hashes. Longer
// passwords are truncated rather than rejected.
func passwordKey(password string) []byte {
	key := []byte(password)
	if len(key) > maxPasswordBytes {
		key = key[:maxPasswordBytes]
	}
	return key
}

// AuthService handles registration and login.
type AuthService struct {
	userRepo   repositories.UserRepository
	publisher  events.Publisher
	bcryptCost int
	log        zerolog.Logger
}

// NewAuthService creates a new AuthService. A cost outside bcrypt's bounds
// falls back to DefaultBcryptCost; publisher may be nil.
func NewAuthService(userRepo repositories.UserRepository, publisher events.Publisher, bcryptCost int, log zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = DefaultBcryptCost
	}
	return &AuthService{
		userRepo:   userRepo,
		publisher:  publisher,
		bcryptCost: bcryptCost,
		log:        log.With().Str("component", "auth").Logger(),
	}
}

// Register creates a user and its profile. The returned user carries the
// profile and no password hash.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(passwordKey(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	profile := &models.Profile{
		Name: req.Name,
		Bio:  req.Bio,
	}
	if err := s.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.log.Info().Uint("user_id", user.ID).Msg("user registered")
	publishEvent(ctx, s.publisher, s.log, events.UserRegistered, map[string]interface{}{
		"userId": user.ID,
		"email":  user.Email,
	})
	return user.WithoutPassword(), nil
}

// Login verifies the credentials and returns the matching user with its
// profile. Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), passwordKey(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user.WithoutPassword(), nil
}
