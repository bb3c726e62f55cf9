package service

import (
	"context"
	"errors"
	"testing"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
)

func TestProjectCreateStartsRecruiting(t *testing.T) {
	svc := NewProjectService(newTestStore(t), discardLogger)

	project, err := svc.Create(context.Background(), ports.CreateProjectInput{
		OwnerID:        "biz1",
		Title:          "Data Pipeline Revamp",
		Description:    "Rebuild the nightly ETL",
		Budget:         "¥80,000",
		RequiredSkills: []string{" Python ", "", "SQL"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if project.Status != domain.ProjectRecruiting {
		t.Fatalf("new project must start RECRUITING, got %s", project.Status)
	}
	if project.ID == "" {
		t.Fatalf("project id not assigned")
	}
	if len(project.RequiredSkills) != 2 || project.RequiredSkills[0] != "Python" {
		t.Fatalf("skills not normalized: %v", project.RequiredSkills)
	}

	summaries, err := svc.ListOwned(context.Background(), "biz1", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if summaries[0].Project.ID != project.ID {
		t.Fatalf("new project should list first")
	}
}

func TestProjectUpdateRejectsNonOwner(t *testing.T) {
	svc := NewProjectService(newTestStore(t), discardLogger)

	_, err := svc.Update(context.Background(), ports.UpdateProjectInput{
		ProjectID: "proj1",
		OwnerID:   "biz2",
		Title:     "Hijacked",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestProjectUpdateRejectsTerminalStatus(t *testing.T) {
	svc := NewProjectService(newTestStore(t), discardLogger)

	// proj3 is COMPLETED.
	_, err := svc.Update(context.Background(), ports.UpdateProjectInput{
		ProjectID: "proj3",
		OwnerID:   "biz1",
		Title:     "Too late",
	})
	if !errors.Is(err, domain.ErrProjectNotEditable) {
		t.Fatalf("expected ErrProjectNotEditable, got %v", err)
	}
}

func TestProjectTerminate(t *testing.T) {
	store := newTestStore(t)
	svc := NewProjectService(store, discardLogger)

	project, err := svc.Terminate(context.Background(), "proj1", "biz1")
	if err != nil {
		t.Fatalf("terminate: %v", err)
	}
	if project.Status != domain.ProjectTerminated {
		t.Fatalf("expected TERMINATED, got %s", project.Status)
	}

	// A second terminate is an invalid transition, not a silent no-op.
	if _, err := svc.Terminate(context.Background(), "proj1", "biz1"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on repeat, got %v", err)
	}
}

func TestProjectTerminateUnknownProject(t *testing.T) {
	svc := NewProjectService(newTestStore(t), discardLogger)

	if _, err := svc.Terminate(context.Background(), "proj-missing", "biz1"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectListOwnedCountsPendingApplications(t *testing.T) {
	store := newTestStore(t)
	appSvc := NewApplicationService(store, discardLogger)
	if _, err := appSvc.Apply(context.Background(), "proj1", "cons1"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	svc := NewProjectService(store, discardLogger)
	summaries, err := svc.ListOwned(context.Background(), "biz1", domain.ProjectRecruiting)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Project.ID != "proj1" {
		t.Fatalf("status filter wrong: %+v", summaries)
	}
	// app2 is an INVITATION and must not count; the new application does.
	if summaries[0].PendingApplications != 1 {
		t.Fatalf("expected 1 pending application, got %d", summaries[0].PendingApplications)
	}
}
