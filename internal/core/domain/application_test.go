package domain

import "testing"

func TestApplicationStatusCanTransitionTo(t *testing.T) {
	for _, next := range []ApplicationStatus{ApplicationAccepted, ApplicationRejected, ApplicationCancelled} {
		if !ApplicationPending.CanTransitionTo(next) {
			t.Fatalf("PENDING -> %s should be allowed", next)
		}
	}

	terminal := []ApplicationStatus{ApplicationAccepted, ApplicationRejected, ApplicationCancelled}
	for _, from := range terminal {
		for _, to := range []ApplicationStatus{ApplicationPending, ApplicationAccepted, ApplicationRejected, ApplicationCancelled} {
			if from.CanTransitionTo(to) {
				t.Fatalf("%s -> %s should be rejected", from, to)
			}
		}
		if !from.Terminal() {
			t.Fatalf("%s should be terminal", from)
		}
	}
}

func TestApplicationStatusLive(t *testing.T) {
	if !ApplicationPending.Live() || !ApplicationAccepted.Live() {
		t.Fatalf("PENDING and ACCEPTED are live")
	}
	if ApplicationRejected.Live() || ApplicationCancelled.Live() {
		t.Fatalf("REJECTED and CANCELLED are not live")
	}
}
