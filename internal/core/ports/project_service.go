package ports

import (
	"context"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
)

// CreateProjectInput carries the fields a business user submits for a new
// posting. The project always starts RECRUITING.
type CreateProjectInput struct {
	OwnerID        string
	Title          string
	Description    string
	Budget         string
	Points         int
	RequiredSkills []string
	StartDate      string
	EndDate        string
}

// UpdateProjectInput carries an edit of an existing posting. Status is not
// editable through this path.
type UpdateProjectInput struct {
	ProjectID      string
	OwnerID        string
	Title          string
	Description    string
	Budget         string
	Points         int
	RequiredSkills []string
	StartDate      string
	EndDate        string
}

// ProjectSummary is a posting as listed in the owner's project board.
type ProjectSummary struct {
	Project             domain.Project
	PendingApplications int // consultant-initiated PENDING rows
}

// ProjectService defines the business-side project operations.
type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, in UpdateProjectInput) (*domain.Project, error)
	// Terminate moves an owned, non-terminal project to TERMINATED. The
	// transition is irreversible and blocks further recruiting.
	Terminate(ctx context.Context, projectID, ownerID string) (*domain.Project, error)
	// ListOwned returns the owner's projects, newest first, optionally
	// filtered by status.
	ListOwned(ctx context.Context, ownerID string, status domain.ProjectStatus) ([]ProjectSummary, error)
	// GetOwned returns a single project, scoped to its owner.
	GetOwned(ctx context.Context, projectID, ownerID string) (*domain.Project, error)
}
