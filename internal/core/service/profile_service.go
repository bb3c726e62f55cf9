package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
	"github.com/consultantnexus/marketplace-system/internal/core/state"
)

// ProfileService implements consultant self-service profile management. A
// consultant with no saved profile reads back the default-constructed one.
type ProfileService struct {
	store *state.Store
	log   zerolog.Logger
}

func NewProfileService(store *state.Store, log zerolog.Logger) *ProfileService {
	return &ProfileService{store: store, log: log}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.ConsultantProfile, error) {
	profile, ok := s.store.Profiles()[userID]
	if !ok {
		profile = domain.DefaultProfile(userID)
	}
	return &profile, nil
}

// Save replaces the whole profile. The stored UserID always matches the
// authenticated caller regardless of the payload.
func (s *ProfileService) Save(ctx context.Context, in ports.SaveProfileInput) (*domain.ConsultantProfile, error) {
	if !domain.ValidConsultantStatus(in.Status) {
		return nil, domain.ErrInvalidConsultantStatus
	}

	profile := domain.ConsultantProfile{
		UserID:         in.UserID,
		Title:          in.Title,
		Phone:          in.Phone,
		Skills:         normalizeTags(in.Skills),
		PreferredRoles: normalizeTags(in.PreferredRoles),
		PreferredTasks: normalizeTags(in.PreferredTasks),
		Location:       in.Location,
		Status:         in.Status,
		HourlyRate:     in.HourlyRate,
		Bio:            in.Bio,
	}

	err := s.store.UpdateProfiles(ctx, func(profiles map[string]domain.ConsultantProfile) (map[string]domain.ConsultantProfile, error) {
		profiles[in.UserID] = profile
		return profiles, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", in.UserID).Msg("profile saved")
	return &profile, nil
}

// SetStatus updates only the availability flag, creating the default profile
// first when the consultant has never saved one.
func (s *ProfileService) SetStatus(ctx context.Context, userID string, status domain.ConsultantStatus) (*domain.ConsultantProfile, error) {
	if !domain.ValidConsultantStatus(status) {
		return nil, domain.ErrInvalidConsultantStatus
	}

	var updated domain.ConsultantProfile
	err := s.store.UpdateProfiles(ctx, func(profiles map[string]domain.ConsultantProfile) (map[string]domain.ConsultantProfile, error) {
		profile, ok := profiles[userID]
		if !ok {
			profile = domain.DefaultProfile(userID)
		}
		profile.Status = status
		profiles[userID] = profile
		updated = profile
		return profiles, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Str("status", string(status)).Msg("availability changed")
	return &updated, nil
}
