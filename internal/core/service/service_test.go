package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/consultantnexus/marketplace-system/internal/core/ports"
	"github.com/consultantnexus/marketplace-system/internal/core/state"
)

// ---------------------------------------------------------------------------
// Shared test helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

// stubSnapshots is an always-empty, always-succeeding backend, so every test
// store opens on the seed fixtures.
type stubSnapshots struct {
	data map[string][]byte
}

func newStubSnapshots() *stubSnapshots {
	return &stubSnapshots{data: make(map[string][]byte)}
}

func (s *stubSnapshots) Load(_ context.Context, key string) ([]byte, error) {
	data, ok := s.data[key]
	if !ok {
		return nil, ports.ErrSnapshotNotFound
	}
	return data, nil
}

func (s *stubSnapshots) Save(_ context.Context, key string, data []byte) error {
	s.data[key] = data
	return nil
}

func (s *stubSnapshots) SaveAll(_ context.Context, entries map[string][]byte) error {
	for key, data := range entries {
		s.data[key] = data
	}
	return nil
}

func (s *stubSnapshots) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

// newTestStore opens a store seeded with the fixtures: users admin1, biz1,
// biz2, cons1-3; projects proj1 (RECRUITING, biz1), proj2 (IN_PROGRESS,
// biz2), proj3 (COMPLETED, biz1); applications app1 (ACCEPTED, proj2/cons1),
// app2 (PENDING INVITATION, proj1/cons2), app3 (ACCEPTED, proj3/cons3).
func newTestStore(t *testing.T) *state.Store {
	t.Helper()
	return state.Open(context.Background(), newStubSnapshots(), discardLogger)
}
