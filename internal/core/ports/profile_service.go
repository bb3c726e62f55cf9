package ports

import (
	"context"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
)

// SaveProfileInput is a full-profile replace; there is no partial-field
// update primitive at this layer.
type SaveProfileInput struct {
	UserID         string
	Title          string
	Phone          string
	Skills         []string
	PreferredRoles []string
	PreferredTasks []string
	Location       string
	Status         domain.ConsultantStatus
	HourlyRate     string
	Bio            string
}

// ProfileService defines consultant self-service profile operations.
type ProfileService interface {
	// Get returns the consultant's profile, default-constructed when absent.
	Get(ctx context.Context, userID string) (*domain.ConsultantProfile, error)
	Save(ctx context.Context, in SaveProfileInput) (*domain.ConsultantProfile, error)
	// SetStatus updates only the availability flag.
	SetStatus(ctx context.Context, userID string, status domain.ConsultantStatus) (*domain.ConsultantProfile, error)
}
