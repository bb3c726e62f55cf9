package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
	"github.com/consultantnexus/marketplace-system/internal/core/state"
)

// InflightGuard limits each user to one in-flight call per assist operation.
// TryAcquire returns false while an earlier call holds the slot.
type InflightGuard interface {
	TryAcquire(ctx context.Context, operation, userID string) (bool, error)
	Release(ctx context.Context, operation, userID string)
}

// noopGuard admits everything. Used when no Redis backend is wired.
type noopGuard struct{}

func (noopGuard) TryAcquire(ctx context.Context, operation, userID string) (bool, error) {
	return true, nil
}
func (noopGuard) Release(ctx context.Context, operation, userID string) {}

// AssistService fronts the generative assistant. The assistant may be nil
// (feature disabled) and every upstream fault degrades to a neutral result:
// callers never see a failure, only an unimproved value. The in-flight guard
// conflict is the single error this service surfaces.
type AssistService struct {
	store     *state.Store
	assistant ports.Assistant
	guard     InflightGuard
	log       zerolog.Logger
}

func NewAssistService(store *state.Store, assistant ports.Assistant, guard InflightGuard, log zerolog.Logger) *AssistService {
	if guard == nil {
		guard = noopGuard{}
	}
	return &AssistService{store: store, assistant: assistant, guard: guard, log: log}
}

func (s *AssistService) Enabled() bool {
	return s.assistant != nil
}

// RankConsultants asks the assistant for the best matches among AVAILABLE
// consultants on an owned project. The answer is filtered to known ids and
// clamped to three; disabled or failed calls return an empty list.
func (s *AssistService) RankConsultants(ctx context.Context, projectID, ownerID string) ([]string, error) {
	projects := s.store.Projects()
	i := indexProject(projects, projectID)
	if i < 0 {
		return nil, domain.ErrProjectNotFound
	}
	if projects[i].OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	if s.assistant == nil {
		return []string{}, nil
	}

	candidates := map[string]bool{}
	profiles := []domain.ConsultantProfile{}
	allProfiles := s.store.Profiles()
	for _, u := range s.store.Users() {
		if u.Role != domain.RoleConsultant {
			continue
		}
		profile, ok := allProfiles[u.ID]
		if !ok {
			profile = domain.DefaultProfile(u.ID)
		}
		if profile.Status != domain.ConsultantAvailable {
			continue
		}
		candidates[u.ID] = true
		profiles = append(profiles, profile)
	}
	if len(profiles) == 0 {
		return []string{}, nil
	}

	release, err := s.acquire(ctx, "rank", ownerID)
	if err != nil {
		return nil, err
	}
	defer release()

	ids, err := s.assistant.RankConsultants(ctx, projects[i], profiles)
	if err != nil {
		s.log.Warn().Err(err).Str("project_id", projectID).Msg("consultant ranking failed, returning no matches")
		return []string{}, nil
	}

	out := []string{}
	for _, id := range ids {
		if candidates[id] {
			out = append(out, id)
		}
		if len(out) == 3 {
			break
		}
	}
	return out, nil
}

// RefineDescription rewrites free text into a professional posting and
// extracts skill tags. Disabled or failed calls echo the input untouched.
func (s *AssistService) RefineDescription(ctx context.Context, userID, text string) (*ports.RefinedDescription, error) {
	neutral := &ports.RefinedDescription{Refined: text, Skills: []string{}}
	if s.assistant == nil {
		return neutral, nil
	}

	release, err := s.acquire(ctx, "refine", userID)
	if err != nil {
		return nil, err
	}
	defer release()

	refined, err := s.assistant.RefineDescription(ctx, text)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("description refinement failed, echoing input")
		return neutral, nil
	}
	if refined.Skills == nil {
		refined.Skills = []string{}
	}
	return refined, nil
}

// SynthesizeAvatar generates a profile image for the style prompt. Disabled
// or failed calls return "" and the caller keeps the prior avatar.
func (s *AssistService) SynthesizeAvatar(ctx context.Context, userID, stylePrompt string) (string, error) {
	if s.assistant == nil {
		return "", nil
	}

	release, err := s.acquire(ctx, "avatar", userID)
	if err != nil {
		return "", err
	}
	defer release()

	uri, err := s.assistant.SynthesizeAvatar(ctx, stylePrompt)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("avatar synthesis failed, keeping current avatar")
		return "", nil
	}
	return uri, nil
}

func (s *AssistService) acquire(ctx context.Context, operation, userID string) (func(), error) {
	ok, err := s.guard.TryAcquire(ctx, operation, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("operation", operation).Msg("in-flight guard unavailable, admitting call")
		return func() {}, nil
	}
	if !ok {
		return nil, domain.ErrAssistInFlight
	}
	return func() { s.guard.Release(ctx, operation, userID) }, nil
}
