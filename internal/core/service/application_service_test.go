package service

import (
	"context"
	"errors"
	"testing"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
)

func TestApplyCreatesPendingRow(t *testing.T) {
	svc := NewApplicationService(newTestStore(t), discardLogger)

	app, err := svc.Apply(context.Background(), "proj1", "cons1")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if app.Status != domain.ApplicationPending || app.Type != domain.TypeApplication {
		t.Fatalf("unexpected row: %+v", app)
	}
	if app.BusinessID != "biz1" {
		t.Fatalf("business id should come from the project owner, got %s", app.BusinessID)
	}
}

func TestApplyRejectsNonRecruitingProject(t *testing.T) {
	svc := NewApplicationService(newTestStore(t), discardLogger)

	// proj2 is IN_PROGRESS.
	if _, err := svc.Apply(context.Background(), "proj2", "cons2"); !errors.Is(err, domain.ErrProjectNotRecruiting) {
		t.Fatalf("expected ErrProjectNotRecruiting, got %v", err)
	}
}

func TestApplyRejectsDuplicateLiveRow(t *testing.T) {
	svc := NewApplicationService(newTestStore(t), discardLogger)

	if _, err := svc.Apply(context.Background(), "proj1", "cons1"); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if _, err := svc.Apply(context.Background(), "proj1", "cons1"); !errors.Is(err, domain.ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
}

func TestApplyAllowedAfterCancellation(t *testing.T) {
	svc := NewApplicationService(newTestStore(t), discardLogger)

	first, err := svc.Apply(context.Background(), "proj1", "cons1")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := svc.Cancel(context.Background(), first.ID, "cons1"); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// The cancelled row is no longer live, so a fresh application is fine.
	if _, err := svc.Apply(context.Background(), "proj1", "cons1"); err != nil {
		t.Fatalf("re-apply after cancel: %v", err)
	}
}

func TestInviteChecksOwnershipAndConsultant(t *testing.T) {
	svc := NewApplicationService(newTestStore(t), discardLogger)

	if _, err := svc.Invite(context.Background(), "proj1", "cons1", "biz2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("non-owner invite: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Invite(context.Background(), "proj1", "biz2", "biz1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("inviting a business user: expected ErrUserNotFound, got %v", err)
	}

	app, err := svc.Invite(context.Background(), "proj1", "cons1", "biz1")
	if err != nil {
		t.Fatalf("invite: %v", err)
	}
	if app.Type != domain.TypeInvitation || app.Status != domain.ApplicationPending {
		t.Fatalf("unexpected invitation row: %+v", app)
	}
}

func TestCancelOnlyByInitiator(t *testing.T) {
	svc := NewApplicationService(newTestStore(t), discardLogger)

	// app2 is a PENDING invitation from biz1 to cons2: only biz1 may cancel.
	if _, err := svc.Cancel(context.Background(), "app2", "cons2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("consultant cancelling an invitation: expected ErrForbidden, got %v", err)
	}

	app, err := svc.Cancel(context.Background(), "app2", "biz1")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if app.Status != domain.ApplicationCancelled {
		t.Fatalf("expected CANCELLED, got %s", app.Status)
	}
}

func TestRespondAsBusinessRejectsInvitationRows(t *testing.T) {
	svc := NewApplicationService(newTestStore(t), discardLogger)

	// app2 is an invitation; the business side cannot respond to its own offer.
	if _, err := svc.RespondAsBusiness(context.Background(), "app2", "biz1", true); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRespondAsConsultantAcceptsInvitation(t *testing.T) {
	svc := NewApplicationService(newTestStore(t), discardLogger)

	app, err := svc.RespondAsConsultant(context.Background(), "app2", "cons2", true)
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if app.Status != domain.ApplicationAccepted {
		t.Fatalf("expected ACCEPTED, got %s", app.Status)
	}

	// Terminal rows reject any further response.
	if _, err := svc.RespondAsConsultant(context.Background(), "app2", "cons2", false); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on settled row, got %v", err)
	}
}

func TestRespondUnknownApplication(t *testing.T) {
	svc := NewApplicationService(newTestStore(t), discardLogger)

	if _, err := svc.RespondAsBusiness(context.Background(), "app-missing", "biz1", true); !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestListForProjectScopedToOwner(t *testing.T) {
	svc := NewApplicationService(newTestStore(t), discardLogger)

	if _, err := svc.ListForProject(context.Background(), "proj1", "biz2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	details, err := svc.ListForProject(context.Background(), "proj1", "biz1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(details) != 1 || details[0].Application.ID != "app2" {
		t.Fatalf("expected app2, got %+v", details)
	}
	if details[0].ConsultantName != "Na Li" {
		t.Fatalf("consultant name not resolved: %q", details[0].ConsultantName)
	}
}

func TestListInvitationsOnlyPending(t *testing.T) {
	svc := NewApplicationService(newTestStore(t), discardLogger)

	invitations, err := svc.ListInvitations(context.Background(), "cons2")
	if err != nil {
		t.Fatalf("list invitations: %v", err)
	}
	if len(invitations) != 1 || invitations[0].Application.ID != "app2" {
		t.Fatalf("expected the pending invitation, got %+v", invitations)
	}
	if invitations[0].ProjectTitle == "" || invitations[0].BusinessName == "" {
		t.Fatalf("invitation context not resolved: %+v", invitations[0])
	}

	if _, err := svc.RespondAsConsultant(context.Background(), "app2", "cons2", false); err != nil {
		t.Fatalf("decline: %v", err)
	}
	invitations, _ = svc.ListInvitations(context.Background(), "cons2")
	if len(invitations) != 0 {
		t.Fatalf("declined invitation should leave the inbox")
	}
}

func TestOpportunitiesAnnotatesStanding(t *testing.T) {
	store := newTestStore(t)
	svc := NewApplicationService(store, discardLogger)

	// cons2 holds a PENDING invitation on proj1, the only RECRUITING project.
	ops, err := svc.Opportunities(context.Background(), "cons2")
	if err != nil {
		t.Fatalf("opportunities: %v", err)
	}
	if len(ops) != 1 || ops[0].Project.ID != "proj1" {
		t.Fatalf("expected only proj1, got %+v", ops)
	}
	if ops[0].State != ports.StatePending || ops[0].ApplicationID != "app2" {
		t.Fatalf("expected PENDING standing on app2, got %+v", ops[0])
	}

	// cons1 has no live row on proj1.
	ops, _ = svc.Opportunities(context.Background(), "cons1")
	if ops[0].State != ports.StateNone || ops[0].ApplicationID != "" {
		t.Fatalf("expected NONE standing, got %+v", ops[0])
	}

	// A terminated project leaves the board entirely.
	projSvc := NewProjectService(store, discardLogger)
	if _, err := projSvc.Terminate(context.Background(), "proj1", "biz1"); err != nil {
		t.Fatalf("terminate: %v", err)
	}
	ops, _ = svc.Opportunities(context.Background(), "cons2")
	if len(ops) != 0 {
		t.Fatalf("terminated project must not appear, got %+v", ops)
	}
}
