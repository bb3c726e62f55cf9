package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
	"github.com/consultantnexus/marketplace-system/internal/core/state"
)

// ProjectService implements the business-side project operations.
type ProjectService struct {
	store *state.Store
	log   zerolog.Logger
}

func NewProjectService(store *state.Store, log zerolog.Logger) *ProjectService {
	return &ProjectService{store: store, log: log}
}

// today returns the calendar date used for Date/LastModified stamps.
func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// Create adds a new RECRUITING posting at the head of the collection.
func (s *ProjectService) Create(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	project := domain.Project{
		ID:             "proj-" + uuid.NewString(),
		Title:          in.Title,
		Description:    in.Description,
		Status:         domain.ProjectRecruiting,
		Budget:         in.Budget,
		Points:         in.Points,
		RequiredSkills: normalizeTags(in.RequiredSkills),
		OwnerID:        in.OwnerID,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
	}

	err := s.store.UpdateProjects(ctx, func(projects []domain.Project) ([]domain.Project, error) {
		return append([]domain.Project{project}, projects...), nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", project.ID).Str("owner_id", in.OwnerID).Msg("project created")
	return &project, nil
}

// Update edits an owned, non-terminal posting. Status never changes through
// this path; LastModified is stamped on every edit.
func (s *ProjectService) Update(ctx context.Context, in ports.UpdateProjectInput) (*domain.Project, error) {
	var updated domain.Project
	err := s.store.UpdateProjects(ctx, func(projects []domain.Project) ([]domain.Project, error) {
		i := indexProject(projects, in.ProjectID)
		if i < 0 {
			return nil, domain.ErrProjectNotFound
		}
		if projects[i].OwnerID != in.OwnerID {
			return nil, domain.ErrForbidden
		}
		if projects[i].Status.Terminal() {
			return nil, domain.ErrProjectNotEditable
		}

		p := projects[i]
		p.Title = in.Title
		p.Description = in.Description
		p.Budget = in.Budget
		p.Points = in.Points
		p.RequiredSkills = normalizeTags(in.RequiredSkills)
		p.StartDate = in.StartDate
		p.EndDate = in.EndDate
		p.LastModified = today()

		projects[i] = p
		updated = p
		return projects, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Terminate moves an owned project to TERMINATED. The transition is
// irreversible and ends recruiting for good.
func (s *ProjectService) Terminate(ctx context.Context, projectID, ownerID string) (*domain.Project, error) {
	var updated domain.Project
	err := s.store.UpdateProjects(ctx, func(projects []domain.Project) ([]domain.Project, error) {
		i := indexProject(projects, projectID)
		if i < 0 {
			return nil, domain.ErrProjectNotFound
		}
		if projects[i].OwnerID != ownerID {
			return nil, domain.ErrForbidden
		}
		if !projects[i].Status.CanTransitionTo(domain.ProjectTerminated) {
			return nil, domain.ErrInvalidTransition
		}

		projects[i].Status = domain.ProjectTerminated
		projects[i].LastModified = today()
		updated = projects[i]
		return projects, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", projectID).Msg("project terminated")
	return &updated, nil
}

// ListOwned returns the owner's projects in collection order (newest first,
// since Create prepends), optionally filtered by status, each with its count
// of pending consultant applications.
func (s *ProjectService) ListOwned(ctx context.Context, ownerID string, status domain.ProjectStatus) ([]ports.ProjectSummary, error) {
	applications := s.store.Applications()
	pending := make(map[string]int)
	for _, a := range applications {
		if a.Type == domain.TypeApplication && a.Status == domain.ApplicationPending {
			pending[a.ProjectID]++
		}
	}

	out := []ports.ProjectSummary{}
	for _, p := range s.store.Projects() {
		if p.OwnerID != ownerID {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, ports.ProjectSummary{Project: p, PendingApplications: pending[p.ID]})
	}
	return out, nil
}

// GetOwned returns a single project scoped to its owner.
func (s *ProjectService) GetOwned(ctx context.Context, projectID, ownerID string) (*domain.Project, error) {
	projects := s.store.Projects()
	i := indexProject(projects, projectID)
	if i < 0 {
		return nil, domain.ErrProjectNotFound
	}
	if projects[i].OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	p := projects[i]
	return &p, nil
}

func indexProject(projects []domain.Project, id string) int {
	for i := range projects {
		if projects[i].ID == id {
			return i
		}
	}
	return -1
}

// normalizeTags trims tags and drops empties, preserving order.
func normalizeTags(tags []string) []string {
	out := []string{}
	for _, t := range tags {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
