package service

import (
	"context"
	"errors"
	"testing"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
)

func TestSearchConsultantsBySkill(t *testing.T) {
	svc := NewDirectoryService(newTestStore(t), discardLogger)

	// "react" matches cons1's React skill regardless of case.
	got, err := svc.SearchConsultants(context.Background(), ports.ConsultantSearchInput{Search: "react"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].User.ID != "cons1" {
		t.Fatalf("expected cons1 for 'react', got %+v", got)
	}
}

func TestSearchConsultantsByName(t *testing.T) {
	svc := NewDirectoryService(newTestStore(t), discardLogger)

	got, err := svc.SearchConsultants(context.Background(), ports.ConsultantSearchInput{Search: "wei"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].User.ID != "cons1" {
		t.Fatalf("expected cons1 for 'wei', got %+v", got)
	}
}

func TestSearchConsultantsStatusFilter(t *testing.T) {
	svc := NewDirectoryService(newTestStore(t), discardLogger)

	got, _ := svc.SearchConsultants(context.Background(), ports.ConsultantSearchInput{Status: "BUSY"})
	if len(got) != 1 || got[0].User.ID != "cons2" {
		t.Fatalf("expected cons2 for BUSY, got %+v", got)
	}

	all, _ := svc.SearchConsultants(context.Background(), ports.ConsultantSearchInput{Status: "ALL"})
	if len(all) != 3 {
		t.Fatalf("ALL should match every consultant, got %d", len(all))
	}

	empty, _ := svc.SearchConsultants(context.Background(), ports.ConsultantSearchInput{})
	if len(empty) != 3 {
		t.Fatalf("empty status should match every consultant, got %d", len(empty))
	}
}

func TestSearchConsultantsDerivesRating(t *testing.T) {
	svc := NewDirectoryService(newTestStore(t), discardLogger)

	got, _ := svc.SearchConsultants(context.Background(), ports.ConsultantSearchInput{Search: "qiang"})
	if len(got) != 1 {
		t.Fatalf("expected cons3, got %+v", got)
	}
	if got[0].AverageRating != 5 || got[0].ReviewCount != 1 {
		t.Fatalf("seed review not reflected: %+v", got[0])
	}
}

func TestGetConsultant(t *testing.T) {
	svc := NewDirectoryService(newTestStore(t), discardLogger)

	detail, err := svc.GetConsultant(context.Background(), "cons3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(detail.Reviews) != 1 || detail.AverageRating != 5 {
		t.Fatalf("reviews not attached: %+v", detail)
	}

	if _, err := svc.GetConsultant(context.Background(), "biz1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("business user is not a consultant: expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.GetConsultant(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAdminStats(t *testing.T) {
	svc := NewDirectoryService(newTestStore(t), discardLogger)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.UserCount != 6 || stats.ProjectCount != 3 || stats.ApplicationCount != 3 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if len(stats.RecentUsers) != 5 {
		t.Fatalf("expected five recent users, got %d", len(stats.RecentUsers))
	}
	if stats.RecentUsers[0].ID != "cons3" {
		t.Fatalf("recent users should be newest first, got %s", stats.RecentUsers[0].ID)
	}
}

func TestAdminListings(t *testing.T) {
	svc := NewDirectoryService(newTestStore(t), discardLogger)

	users, _ := svc.ListUsers(context.Background(), "", domain.RoleBusiness)
	if len(users) != 2 {
		t.Fatalf("expected two business users, got %d", len(users))
	}

	users, _ = svc.ListUsers(context.Background(), "marketing", "")
	if len(users) != 1 || users[0].ID != "biz1" {
		t.Fatalf("name search wrong: %+v", users)
	}

	projects, _ := svc.ListProjects(context.Background(), "", domain.ProjectRecruiting)
	if len(projects) != 1 || projects[0].ID != "proj1" {
		t.Fatalf("status filter wrong: %+v", projects)
	}

	projects, _ = svc.ListProjects(context.Background(), "crm", "")
	if len(projects) != 1 || projects[0].ID != "proj2" {
		t.Fatalf("title search wrong: %+v", projects)
	}

	apps, _ := svc.ListApplications(context.Background(), domain.ApplicationPending)
	if len(apps) != 1 || apps[0].ID != "app2" {
		t.Fatalf("application filter wrong: %+v", apps)
	}
}
