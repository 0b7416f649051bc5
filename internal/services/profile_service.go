package services

import (
	"context"

	"github.com/rs/zerolog"

	"socialposts/internal/events"
	"socialposts/internal/models"
	"socialposts/internal/repositories"
)

// ProfileService reads and changes profiles by owning user ID.
// It trusts the user ID it is given.
type ProfileService struct {
	profileRepo repositories.ProfileRepository
	publisher   events.Publisher
	log         zerolog.Logger
}

// NewProfileService creates a new ProfileService. publisher may be nil.
func NewProfileService(profileRepo repositories.ProfileRepository, publisher events.Publisher, log zerolog.Logger) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		publisher:   publisher,
		log:         log.With().Str("component", "profiles").Logger(),
	}
}

// GetProfile returns the profile of userID.
func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrProfileNotFound)
	}
	return profile, nil
}

// UpdateProfile applies the supplied fields to the profile of userID.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uint, req models.UpdateProfileRequest) (*models.Profile, error) {
	changes := map[string]interface{}{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Bio.Set {
		changes["bio"] = req.Bio.ColumnValue()
	}
	if req.Avatar.Set {
		changes["avatar"] = req.Avatar.ColumnValue()
	}

	if len(changes) == 0 {
		return s.GetProfile(ctx, userID)
	}

	if err := s.profileRepo.UpdateByUserID(ctx, userID, changes); err != nil {
		return nil, notFoundAs(err, ErrProfileNotFound)
	}
	publishEvent(ctx, s.publisher, s.log, events.ProfileUpdated, map[string]interface{}{
		"userId": userID,
	})
	return s.GetProfile(ctx, userID)
}

// DeleteProfile removes the profile of userID. The user and their posts stay.
func (s *ProfileService) DeleteProfile(ctx context.Context, userID uint) error {
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return notFoundAs(err, ErrProfileNotFound)
	}
	publishEvent(ctx, s.publisher, s.log, events.ProfileDeleted, map[string]interface{}{
		"userId": userID,
	})
	return nil
}
