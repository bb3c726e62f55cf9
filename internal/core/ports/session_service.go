package ports

import (
	"context"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
)

// SessionService turns a user selection into a bearer session. There are no
// credentials anywhere in the system: login picks an existing seeded user.
type SessionService interface {
	// Login selects the user and returns a signed token carrying id and role.
	Login(ctx context.Context, userID string) (string, *domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	// UpdateAvatar replaces the user's avatar; the change is immediately
	// visible to every view reading the user collection.
	UpdateAvatar(ctx context.Context, userID, avatar string) (*domain.User, error)
}
