package state

import (
	"context"
	"encoding/json"
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
)

// Store is the single source of truth for the five marketplace collections.
// Collections live in memory; every mutation synchronously rewrites the
// affected snapshot in the durable backend. A failed snapshot write is logged
// and discarded — in-memory state stays advanced and the durable copy catches
// up on the next successful write. There is no rollback and no retry.
type Store struct {
	mu        sync.RWMutex
	snapshots ports.SnapshotStore
	log       zerolog.Logger

	users        []domain.User
	projects     []domain.Project
	profiles     map[string]domain.ConsultantProfile
	applications []domain.Application
	reviews      []domain.Review
}

// Open loads all five collections from the snapshot store. A missing or
// undecodable snapshot falls back to the seed fixture for that collection;
// the fault is logged with the failing key and never propagated.
func Open(ctx context.Context, snapshots ports.SnapshotStore, log zerolog.Logger) *Store {
	return &Store{
		snapshots:    snapshots,
		log:          log,
		users:        load(ctx, snapshots, log, ports.KeyUsers, SeedUsers()),
		projects:     load(ctx, snapshots, log, ports.KeyProjects, SeedProjects()),
		profiles:     load(ctx, snapshots, log, ports.KeyProfiles, SeedProfiles()),
		applications: load(ctx, snapshots, log, ports.KeyApplications, SeedApplications()),
		reviews:      load(ctx, snapshots, log, ports.KeyReviews, SeedReviews()),
	}
}

// load performs a typed decode of one snapshot. Unlike a swallow-everything
// read, the specific failure (missing key vs. decode fault) is logged before
// falling back.
func load[T any](ctx context.Context, snapshots ports.SnapshotStore, log zerolog.Logger, key string, fallback T) T {
	data, err := snapshots.Load(ctx, key)
	if err != nil {
		if errors.Is(err, ports.ErrSnapshotNotFound) {
			log.Info().Str("key", key).Msg("no snapshot yet, seeding collection")
		} else {
			log.Error().Err(err).Str("key", key).Msg("snapshot load failed, seeding collection")
		}
		return fallback
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Error().Err(err).Str("key", key).Msg("snapshot decode failed, seeding collection")
		return fallback
	}
	return v
}

// --- Read views (copies, safe to hold across calls) ---

func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

func (s *Store) Projects() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.projects)
}

func (s *Store) Profiles() map[string]domain.ConsultantProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.profiles)
}

func (s *Store) Applications() []domain.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.applications)
}

func (s *Store) Reviews() []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.reviews)
}

// --- Typed mutators ---
//
// Each mutator runs fn on a copy of the collection under the write lock. If
// fn returns an error nothing changes; otherwise the returned collection
// replaces the in-memory one and its snapshot is rewritten.

func (s *Store) UpdateUsers(ctx context.Context, fn func([]domain.User) ([]domain.User, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(slices.Clone(s.users))
	if err != nil {
		return err
	}
	s.users = next
	s.persist(ctx, ports.KeyUsers, next)
	return nil
}

func (s *Store) UpdateProjects(ctx context.Context, fn func([]domain.Project) ([]domain.Project, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(slices.Clone(s.projects))
	if err != nil {
		return err
	}
	s.projects = next
	s.persist(ctx, ports.KeyProjects, next)
	return nil
}

func (s *Store) UpdateProfiles(ctx context.Context, fn func(map[string]domain.ConsultantProfile) (map[string]domain.ConsultantProfile, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(maps.Clone(s.profiles))
	if err != nil {
		return err
	}
	s.profiles = next
	s.persist(ctx, ports.KeyProfiles, next)
	return nil
}

func (s *Store) UpdateApplications(ctx context.Context, fn func([]domain.Application) ([]domain.Application, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(slices.Clone(s.applications))
	if err != nil {
		return err
	}
	s.applications = next
	s.persist(ctx, ports.KeyApplications, next)
	return nil
}

// UpdateReviewsAndProjects is the combined mutator for the review flow: the
// review append and the project completion commit together, and both
// snapshots go to the backend in a single SaveAll call.
func (s *Store) UpdateReviewsAndProjects(ctx context.Context, fn func([]domain.Review, []domain.Project) ([]domain.Review, []domain.Project, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	reviews, projects, err := fn(slices.Clone(s.reviews), slices.Clone(s.projects))
	if err != nil {
		return err
	}
	s.reviews = reviews
	s.projects = projects

	entries := make(map[string][]byte, 2)
	for key, v := range map[string]any{ports.KeyReviews: reviews, ports.KeyProjects: projects} {
		data, merr := json.Marshal(v)
		if merr != nil {
			s.log.Error().Err(merr).Str("key", key).Msg("snapshot encode failed, in-memory state kept")
			return nil
		}
		entries[key] = data
	}
	if err := s.snapshots.SaveAll(ctx, entries); err != nil {
		s.log.Error().Err(err).Msg("combined snapshot write failed, in-memory state kept")
	}
	return nil
}

// persist serializes and writes one snapshot, holding the write lock. Write
// failures (quota, backend outage) are logged and the write is discarded.
func (s *Store) persist(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("snapshot encode failed, in-memory state kept")
		return
	}
	if err := s.snapshots.Save(ctx, key, data); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("snapshot write failed, in-memory state kept")
	}
}
