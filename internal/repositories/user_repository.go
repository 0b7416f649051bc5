package repositories

import (
	"context"

	"socialposts/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// CreateWithProfile stores the user and its profile atomically.
	CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
}
