package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
	"github.com/consultantnexus/marketplace-system/internal/core/state"
)

// ApplicationService implements every application/invitation operation. All
// status transitions are one-way: PENDING is the only state that accepts a
// response or a withdrawal, and the uniqueness rule keeps at most one live
// row per (project, consultant) pair.
type ApplicationService struct {
	store *state.Store
	log   zerolog.Logger
}

func NewApplicationService(store *state.Store, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{store: store, log: log}
}

// Apply creates a PENDING consultant-initiated row against a RECRUITING project.
func (s *ApplicationService) Apply(ctx context.Context, projectID, consultantID string) (*domain.Application, error) {
	projects := s.store.Projects()
	i := indexProject(projects, projectID)
	if i < 0 {
		return nil, domain.ErrProjectNotFound
	}
	if projects[i].Status != domain.ProjectRecruiting {
		return nil, domain.ErrProjectNotRecruiting
	}

	app := domain.Application{
		ID:           "app-" + uuid.NewString(),
		ProjectID:    projectID,
		ConsultantID: consultantID,
		BusinessID:   projects[i].OwnerID,
		Status:       domain.ApplicationPending,
		Type:         domain.TypeApplication,
		Date:         today(),
	}
	if err := s.appendUnique(ctx, app); err != nil {
		return nil, err
	}

	s.log.Info().Str("application_id", app.ID).Str("project_id", projectID).Str("consultant_id", consultantID).Msg("application created")
	return &app, nil
}

// Invite creates a PENDING business-initiated row for an owned RECRUITING project.
func (s *ApplicationService) Invite(ctx context.Context, projectID, consultantID, businessID string) (*domain.Application, error) {
	projects := s.store.Projects()
	i := indexProject(projects, projectID)
	if i < 0 {
		return nil, domain.ErrProjectNotFound
	}
	if projects[i].OwnerID != businessID {
		return nil, domain.ErrForbidden
	}
	if projects[i].Status != domain.ProjectRecruiting {
		return nil, domain.ErrProjectNotRecruiting
	}
	if !s.isConsultant(consultantID) {
		return nil, domain.ErrUserNotFound
	}

	app := domain.Application{
		ID:           "app-" + uuid.NewString(),
		ProjectID:    projectID,
		ConsultantID: consultantID,
		BusinessID:   businessID,
		Status:       domain.ApplicationPending,
		Type:         domain.TypeInvitation,
		Date:         today(),
	}
	if err := s.appendUnique(ctx, app); err != nil {
		return nil, err
	}

	s.log.Info().Str("application_id", app.ID).Str("project_id", projectID).Str("consultant_id", consultantID).Msg("invitation created")
	return &app, nil
}

// appendUnique appends the row under the collection lock, enforcing the
// at-most-one-live-row rule for the (project, consultant) pair.
func (s *ApplicationService) appendUnique(ctx context.Context, app domain.Application) error {
	return s.store.UpdateApplications(ctx, func(apps []domain.Application) ([]domain.Application, error) {
		for _, a := range apps {
			if a.ProjectID == app.ProjectID && a.ConsultantID == app.ConsultantID && a.Status.Live() {
				return nil, domain.ErrDuplicateApplication
			}
		}
		return append(apps, app), nil
	})
}

// Cancel flips the initiator's own PENDING row to CANCELLED. Only the
// initiator may withdraw: the consultant for applications, the business for
// invitations.
func (s *ApplicationService) Cancel(ctx context.Context, applicationID, initiatorID string) (*domain.Application, error) {
	return s.transition(ctx, applicationID, domain.ApplicationCancelled, func(a domain.Application) error {
		initiator := a.ConsultantID
		if a.Type == domain.TypeInvitation {
			initiator = a.BusinessID
		}
		if initiator != initiatorID {
			return domain.ErrForbidden
		}
		return nil
	})
}

// RespondAsBusiness accepts or rejects a PENDING consultant-initiated row on
// a project the business owns.
func (s *ApplicationService) RespondAsBusiness(ctx context.Context, applicationID, businessID string, accept bool) (*domain.Application, error) {
	return s.transition(ctx, applicationID, responseStatus(accept), func(a domain.Application) error {
		if a.Type != domain.TypeApplication || a.BusinessID != businessID {
			return domain.ErrForbidden
		}
		return nil
	})
}

// RespondAsConsultant accepts or rejects a PENDING invitation addressed to
// the consultant.
func (s *ApplicationService) RespondAsConsultant(ctx context.Context, applicationID, consultantID string, accept bool) (*domain.Application, error) {
	return s.transition(ctx, applicationID, responseStatus(accept), func(a domain.Application) error {
		if a.Type != domain.TypeInvitation || a.ConsultantID != consultantID {
			return domain.ErrForbidden
		}
		return nil
	})
}

func responseStatus(accept bool) domain.ApplicationStatus {
	if accept {
		return domain.ApplicationAccepted
	}
	return domain.ApplicationRejected
}

// transition applies a status change under the collection lock: the row must
// exist, the authorize check must pass, and the state machine must allow the
// edge. Terminal rows reject every transition.
func (s *ApplicationService) transition(ctx context.Context, applicationID string, next domain.ApplicationStatus, authorize func(domain.Application) error) (*domain.Application, error) {
	var updated domain.Application
	err := s.store.UpdateApplications(ctx, func(apps []domain.Application) ([]domain.Application, error) {
		for i := range apps {
			if apps[i].ID != applicationID {
				continue
			}
			if err := authorize(apps[i]); err != nil {
				return nil, err
			}
			if !apps[i].Status.CanTransitionTo(next) {
				return nil, domain.ErrInvalidTransition
			}
			apps[i].Status = next
			updated = apps[i]
			return apps, nil
		}
		return nil, domain.ErrApplicationNotFound
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("application_id", applicationID).Str("status", string(next)).Msg("application transitioned")
	return &updated, nil
}

// ListForProject returns every row for an owned project, each paired with
// the consultant's display name.
func (s *ApplicationService) ListForProject(ctx context.Context, projectID, ownerID string) ([]ports.ApplicationDetail, error) {
	projects := s.store.Projects()
	i := indexProject(projects, projectID)
	if i < 0 {
		return nil, domain.ErrProjectNotFound
	}
	if projects[i].OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}

	names := s.userNames()
	out := []ports.ApplicationDetail{}
	for _, a := range s.store.Applications() {
		if a.ProjectID == projectID {
			out = append(out, ports.ApplicationDetail{Application: a, ConsultantName: names[a.ConsultantID]})
		}
	}
	return out, nil
}

// ListInvitations returns the PENDING invitations addressed to a consultant.
func (s *ApplicationService) ListInvitations(ctx context.Context, consultantID string) ([]ports.InvitationDetail, error) {
	titles := make(map[string]string)
	for _, p := range s.store.Projects() {
		titles[p.ID] = p.Title
	}
	names := s.userNames()

	out := []ports.InvitationDetail{}
	for _, a := range s.store.Applications() {
		if a.ConsultantID == consultantID && a.Type == domain.TypeInvitation && a.Status == domain.ApplicationPending {
			out = append(out, ports.InvitationDetail{
				Application:  a,
				ProjectTitle: titles[a.ProjectID],
				BusinessName: names[a.BusinessID],
			})
		}
	}
	return out, nil
}

// Opportunities returns every RECRUITING project annotated with the
// consultant's standing: no live row, a PENDING row (cancellable), or an
// ACCEPTED row (joined). A project leaves this list the moment its status
// changes to anything else.
func (s *ApplicationService) Opportunities(ctx context.Context, consultantID string) ([]ports.Opportunity, error) {
	live := make(map[string]domain.Application)
	for _, a := range s.store.Applications() {
		if a.ConsultantID == consultantID && a.Status.Live() {
			live[a.ProjectID] = a
		}
	}

	out := []ports.Opportunity{}
	for _, p := range s.store.Projects() {
		if p.Status != domain.ProjectRecruiting {
			continue
		}
		op := ports.Opportunity{Project: p, State: ports.StateNone}
		if a, ok := live[p.ID]; ok {
			op.ApplicationID = a.ID
			if a.Status == domain.ApplicationAccepted {
				op.State = ports.StateJoined
			} else {
				op.State = ports.StatePending
			}
		}
		out = append(out, op)
	}
	return out, nil
}

func (s *ApplicationService) isConsultant(userID string) bool {
	for _, u := range s.store.Users() {
		if u.ID == userID {
			return u.Role == domain.RoleConsultant
		}
	}
	return false
}

func (s *ApplicationService) userNames() map[string]string {
	names := make(map[string]string)
	for _, u := range s.store.Users() {
		names[u.ID] = u.Name
	}
	return names
}
