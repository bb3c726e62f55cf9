package ports

import (
	"context"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
)

// ApplicationState is the consultant-facing summary of their standing on a
// project: exactly one of the three values holds at any time.
type ApplicationState string

const (
	StateNone    ApplicationState = "NONE"    // no live row — applying is possible
	StatePending ApplicationState = "PENDING" // awaiting response — cancelling is possible
	StateJoined  ApplicationState = "JOINED"  // accepted — no further action
)

// Opportunity is a RECRUITING project annotated with the caller's standing.
type Opportunity struct {
	Project       domain.Project
	State         ApplicationState
	ApplicationID string // set when State != NONE
}

// ApplicationDetail pairs an application row with the consultant it names,
// for the business project view.
type ApplicationDetail struct {
	Application    domain.Application
	ConsultantName string
}

// InvitationDetail pairs a pending invitation with its project, for the
// consultant inbox.
type InvitationDetail struct {
	Application  domain.Application
	ProjectTitle string
	BusinessName string
}

// ApplicationService defines all application/invitation operations. Status
// transitions are one-way; terminal rows reject every further operation.
type ApplicationService interface {
	// Apply creates a PENDING consultant-initiated row against a RECRUITING
	// project. At most one live row per (project, consultant) is allowed.
	Apply(ctx context.Context, projectID, consultantID string) (*domain.Application, error)
	// Invite creates a PENDING business-initiated row for an owned
	// RECRUITING project.
	Invite(ctx context.Context, projectID, consultantID, businessID string) (*domain.Application, error)
	// Cancel flips the initiator's own PENDING row to CANCELLED.
	Cancel(ctx context.Context, applicationID, initiatorID string) (*domain.Application, error)
	// RespondAsBusiness accepts or rejects a PENDING consultant-initiated
	// row on a project the business owns.
	RespondAsBusiness(ctx context.Context, applicationID, businessID string, accept bool) (*domain.Application, error)
	// RespondAsConsultant accepts or rejects a PENDING invitation addressed
	// to the consultant.
	RespondAsConsultant(ctx context.Context, applicationID, consultantID string, accept bool) (*domain.Application, error)
	// ListForProject returns every row for an owned project.
	ListForProject(ctx context.Context, projectID, ownerID string) ([]ApplicationDetail, error)
	// ListInvitations returns the PENDING invitations addressed to a consultant.
	ListInvitations(ctx context.Context, consultantID string) ([]InvitationDetail, error)
	// Opportunities returns all RECRUITING projects annotated with the
	// consultant's standing on each.
	Opportunities(ctx context.Context, consultantID string) ([]Opportunity, error)
}
