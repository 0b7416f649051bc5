package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"socialposts/internal/models"
)

// GORMProfileRepository is a GORM implementation of ProfileRepository.
type GORMProfileRepository struct {
	db *gorm.DB
}

// NewGORMProfileRepository creates a new instance of GORMProfileRepository.
func NewGORMProfileRepository(db *gorm.DB) *GORMProfileRepository {
	return &GORMProfileRepository{
		db: db,
	}
}

// GetByUserID retrieves the profile owned by userID.
func (r *GORMProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile of user %d: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile of user %d: %w", userID, err)
	}
	return &profile, nil
}

// UpdateByUserID applies changes to the profile owned by userID.
func (r *GORMProfileRepository) UpdateByUserID(ctx context.Context, userID uint, changes map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&models.Profile{}).Where("user_id = ?", userID).Updates(changes)
	if res.Error != nil {
		return fmt.Errorf("failed to update profile of user %d: %w", userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("profile of user %d: %w", userID, ErrNotFound)
	}
	return nil
}

// DeleteByUserID removes the profile owned by userID. The user itself is kept.
func (r *GORMProfileRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Profile{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete profile of user %d: %w", userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("profile of user %d: %w", userID, ErrNotFound)
	}
	return nil
}
