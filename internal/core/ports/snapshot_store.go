package ports

import (
	"context"
	"errors"
)

// Snapshot keys, one per collection. Every value is the JSON encoding of the
// whole collection — snapshots are full rewrites, never deltas.
const (
	KeyUsers        = "nexus_users"
	KeyProjects     = "nexus_projects"
	KeyProfiles     = "nexus_profiles"
	KeyApplications = "nexus_applications"
	KeyReviews      = "nexus_reviews"
)

// CollectionKeys lists every snapshot key in load order.
var CollectionKeys = []string{KeyUsers, KeyProjects, KeyProfiles, KeyApplications, KeyReviews}

// ErrSnapshotNotFound is returned by Load when the key has never been written.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore persists per-collection snapshots to a durable key-value
// backend. Implementations give no cross-instance coordination: concurrent
// writers overwrite each other last-write-wins.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	// SaveAll writes several snapshots in a single backend call so that
	// multi-collection commits (review + project completion) land together.
	SaveAll(ctx context.Context, entries map[string][]byte) error
	Delete(ctx context.Context, key string) error
}
