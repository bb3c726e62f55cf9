package ports

import (
	"context"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
)

// ConsultantSearchInput carries the business-side talent pool filters.
type ConsultantSearchInput struct {
	// Search matches case-insensitively against the consultant's name or any
	// skill tag. Empty matches everyone.
	Search string
	// Status filters by availability; empty or "ALL" matches every status.
	Status string
}

// ConsultantSummary is a talent-pool entry: user, profile, derived rating.
type ConsultantSummary struct {
	User          domain.User
	Profile       domain.ConsultantProfile
	AverageRating float64
	ReviewCount   int
}

// ConsultantDetail extends the summary with the full review history.
type ConsultantDetail struct {
	ConsultantSummary
	Reviews []domain.Review
}

// AdminStats is the admin dashboard headline view.
type AdminStats struct {
	UserCount        int
	ProjectCount     int
	ApplicationCount int
	RecentUsers      []domain.User // newest five
}

// DirectoryService exposes cross-collection read views: the business talent
// pool and the admin console listings.
type DirectoryService interface {
	SearchConsultants(ctx context.Context, in ConsultantSearchInput) ([]ConsultantSummary, error)
	GetConsultant(ctx context.Context, consultantID string) (*ConsultantDetail, error)

	Stats(ctx context.Context) (*AdminStats, error)
	ListUsers(ctx context.Context, search string, role domain.Role) ([]domain.User, error)
	ListProjects(ctx context.Context, search string, status domain.ProjectStatus) ([]domain.Project, error)
	ListApplications(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error)
}
