package state

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub snapshot store
// ---------------------------------------------------------------------------

type stubSnapshots struct {
	data     map[string][]byte
	saveErr  error // if set, Save and SaveAll return this error
	saveAlls int   // number of SaveAll calls observed
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
	if s.saveErr != nil {
		return s.saveErr
	}
	s.data[key] = data
	return nil
}

func (s *stubSnapshots) SaveAll(_ context.Context, entries map[string][]byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saveAlls++
	for key, data := range entries {
		s.data[key] = data
	}
	return nil
}

func (s *stubSnapshots) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestOpenSeedsWhenEmpty(t *testing.T) {
	store := Open(context.Background(), newStubSnapshots(), discardLogger)

	if got, want := len(store.Users()), len(SeedUsers()); got != want {
		t.Fatalf("expected %d seed users, got %d", want, got)
	}
	if got, want := len(store.Projects()), len(SeedProjects()); got != want {
		t.Fatalf("expected %d seed projects, got %d", want, got)
	}
}

func TestOpenLoadsExistingSnapshot(t *testing.T) {
	snapshots := newStubSnapshots()
	users := []domain.User{{ID: "u1", Name: "Solo", Role: domain.RoleAdmin}}
	data, _ := json.Marshal(users)
	snapshots.data[ports.KeyUsers] = data

	store := Open(context.Background(), snapshots, discardLogger)

	got := store.Users()
	if len(got) != 1 || got[0].ID != "u1" {
		t.Fatalf("expected snapshot users, got %+v", got)
	}
}

func TestOpenFallsBackOnMalformedSnapshot(t *testing.T) {
	snapshots := newStubSnapshots()
	snapshots.data[ports.KeyProjects] = []byte("{not json")

	store := Open(context.Background(), snapshots, discardLogger)

	if got, want := len(store.Projects()), len(SeedProjects()); got != want {
		t.Fatalf("malformed snapshot should seed: expected %d projects, got %d", want, got)
	}
}

func TestUpdatePersistsSnapshot(t *testing.T) {
	snapshots := newStubSnapshots()
	store := Open(context.Background(), snapshots, discardLogger)

	err := store.UpdateUsers(context.Background(), func(users []domain.User) ([]domain.User, error) {
		users[0].Avatar = "data:image/png;base64,xyz"
		return users, nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	var persisted []domain.User
	if err := json.Unmarshal(snapshots.data[ports.KeyUsers], &persisted); err != nil {
		t.Fatalf("decode persisted snapshot: %v", err)
	}
	if persisted[0].Avatar != "data:image/png;base64,xyz" {
		t.Fatalf("snapshot not rewritten after update")
	}
}

func TestUpdateErrorLeavesStateUnchanged(t *testing.T) {
	store := Open(context.Background(), newStubSnapshots(), discardLogger)
	before := store.Users()

	wantErr := errors.New("boom")
	err := store.UpdateUsers(context.Background(), func(users []domain.User) ([]domain.User, error) {
		users[0].Name = "changed"
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected mutator error, got %v", err)
	}

	after := store.Users()
	if after[0].Name != before[0].Name {
		t.Fatalf("failed mutation must not change in-memory state")
	}
}

func TestWriteFailureKeepsInMemoryState(t *testing.T) {
	snapshots := newStubSnapshots()
	store := Open(context.Background(), snapshots, discardLogger)
	snapshots.saveErr = errors.New("backend down")

	err := store.UpdateUsers(context.Background(), func(users []domain.User) ([]domain.User, error) {
		users[0].Name = "advanced"
		return users, nil
	})
	if err != nil {
		t.Fatalf("write failure must not surface: %v", err)
	}

	if store.Users()[0].Name != "advanced" {
		t.Fatalf("in-memory state must stay advanced after failed snapshot write")
	}
	if _, ok := snapshots.data[ports.KeyUsers]; ok {
		t.Fatalf("backend should hold no users snapshot after the failed write")
	}
}

func TestUpdateReviewsAndProjectsCommitsTogether(t *testing.T) {
	snapshots := newStubSnapshots()
	store := Open(context.Background(), snapshots, discardLogger)

	err := store.UpdateReviewsAndProjects(context.Background(), func(reviews []domain.Review, projects []domain.Project) ([]domain.Review, []domain.Project, error) {
		reviews = append(reviews, domain.Review{ID: "rev-x", ProjectID: projects[0].ID, Rating: 4})
		projects[0].Status = domain.ProjectCompleted
		return reviews, projects, nil
	})
	if err != nil {
		t.Fatalf("combined update: %v", err)
	}

	if snapshots.saveAlls != 1 {
		t.Fatalf("expected one SaveAll call, got %d", snapshots.saveAlls)
	}

	var reviews []domain.Review
	if err := json.Unmarshal(snapshots.data[ports.KeyReviews], &reviews); err != nil {
		t.Fatalf("decode reviews snapshot: %v", err)
	}
	var projects []domain.Project
	if err := json.Unmarshal(snapshots.data[ports.KeyProjects], &projects); err != nil {
		t.Fatalf("decode projects snapshot: %v", err)
	}
	if reviews[len(reviews)-1].ID != "rev-x" {
		t.Fatalf("review missing from snapshot")
	}
	if projects[0].Status != domain.ProjectCompleted {
		t.Fatalf("project completion missing from snapshot")
	}
}

func TestReadsReturnCopies(t *testing.T) {
	store := Open(context.Background(), newStubSnapshots(), discardLogger)

	users := store.Users()
	users[0].Name = "mutated locally"

	if store.Users()[0].Name == "mutated locally" {
		t.Fatalf("read view must be a copy")
	}

	profiles := store.Profiles()
	delete(profiles, "cons1")
	if _, ok := store.Profiles()["cons1"]; !ok {
		t.Fatalf("profile map view must be a copy")
	}
}
