package repositories

import (
	"context"

	"socialposts/internal/models"
)

// ProfileRepository defines the interface for profile data access.
// Profiles are addressed by the ID of the user owning them.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	UpdateByUserID(ctx context.Context, userID uint, changes map[string]interface{}) error
	DeleteByUserID(ctx context.Context, userID uint) error
}
