package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
	"github.com/consultantnexus/marketplace-system/internal/core/state"
)

// DirectoryService builds the cross-collection read views: the business-side
// talent pool and the admin console listings. Everything here is derived on
// read; nothing is written.
type DirectoryService struct {
	store *state.Store
	log   zerolog.Logger
}

func NewDirectoryService(store *state.Store, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{store: store, log: log}
}

// SearchConsultants returns every consultant matching the filters. The search
// term matches case-insensitively against the name or any skill tag; the
// status filter is exact, with "" and "ALL" matching everyone.
func (s *DirectoryService) SearchConsultants(ctx context.Context, in ports.ConsultantSearchInput) ([]ports.ConsultantSummary, error) {
	profiles := s.store.Profiles()
	averages, counts := s.ratingIndex()

	out := []ports.ConsultantSummary{}
	for _, u := range s.store.Users() {
		if u.Role != domain.RoleConsultant {
			continue
		}
		profile, ok := profiles[u.ID]
		if !ok {
			profile = domain.DefaultProfile(u.ID)
		}
		if !matchesSearch(u.Name, profile.Skills, in.Search) {
			continue
		}
		if in.Status != "" && in.Status != "ALL" && string(profile.Status) != in.Status {
			continue
		}
		out = append(out, ports.ConsultantSummary{
			User:          u,
			Profile:       profile,
			AverageRating: averages[u.ID],
			ReviewCount:   counts[u.ID],
		})
	}
	return out, nil
}

// GetConsultant returns one consultant with the full review history attached.
func (s *DirectoryService) GetConsultant(ctx context.Context, consultantID string) (*ports.ConsultantDetail, error) {
	var user *domain.User
	for _, u := range s.store.Users() {
		if u.ID == consultantID && u.Role == domain.RoleConsultant {
			user = &u
			break
		}
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	profile, ok := s.store.Profiles()[consultantID]
	if !ok {
		profile = domain.DefaultProfile(consultantID)
	}

	reviews := []domain.Review{}
	total := 0
	for _, r := range s.store.Reviews() {
		if r.ConsultantID == consultantID {
			reviews = append(reviews, r)
			total += r.Rating
		}
	}

	detail := &ports.ConsultantDetail{
		ConsultantSummary: ports.ConsultantSummary{User: *user, Profile: profile, ReviewCount: len(reviews)},
		Reviews:           reviews,
	}
	if len(reviews) > 0 {
		detail.AverageRating = float64(total) / float64(len(reviews))
	}
	return detail, nil
}

// Stats returns the admin dashboard headline counts and the five most
// recently added users.
func (s *DirectoryService) Stats(ctx context.Context) (*ports.AdminStats, error) {
	users := s.store.Users()

	recent := []domain.User{}
	for i := len(users) - 1; i >= 0 && len(recent) < 5; i-- {
		recent = append(recent, users[i])
	}

	return &ports.AdminStats{
		UserCount:        len(users),
		ProjectCount:     len(s.store.Projects()),
		ApplicationCount: len(s.store.Applications()),
		RecentUsers:      recent,
	}, nil
}

// ListUsers returns users filtered by a name/email substring and optionally
// by role.
func (s *DirectoryService) ListUsers(ctx context.Context, search string, role domain.Role) ([]domain.User, error) {
	term := strings.ToLower(strings.TrimSpace(search))

	out := []domain.User{}
	for _, u := range s.store.Users() {
		if role != "" && u.Role != role {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(u.Name), term) && !strings.Contains(strings.ToLower(u.Email), term) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// ListProjects returns all projects filtered by a title substring and
// optionally by status. Admin sees every owner's postings.
func (s *DirectoryService) ListProjects(ctx context.Context, search string, status domain.ProjectStatus) ([]domain.Project, error) {
	term := strings.ToLower(strings.TrimSpace(search))

	out := []domain.Project{}
	for _, p := range s.store.Projects() {
		if status != "" && p.Status != status {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Title), term) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// ListApplications returns all applications, optionally filtered by status.
func (s *DirectoryService) ListApplications(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	out := []domain.Application{}
	for _, a := range s.store.Applications() {
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// ratingIndex derives each consultant's average rating and review count.
func (s *DirectoryService) ratingIndex() (map[string]float64, map[string]int) {
	totals := make(map[string]int)
	counts := make(map[string]int)
	for _, r := range s.store.Reviews() {
		totals[r.ConsultantID] += r.Rating
		counts[r.ConsultantID]++
	}
	averages := make(map[string]float64, len(counts))
	for id, n := range counts {
		averages[id] = float64(totals[id]) / float64(n)
	}
	return averages, counts
}

// matchesSearch reports whether the term appears in the name or any skill,
// case-insensitively. An empty term matches everyone.
func matchesSearch(name string, skills []string, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(name), term) {
		return true
	}
	for _, skill := range skills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}
