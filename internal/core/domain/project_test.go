package domain

import "testing"

func TestProjectStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		name string
		from ProjectStatus
		to   ProjectStatus
		want bool
	}{
		{"recruiting to terminated", ProjectRecruiting, ProjectTerminated, true},
		{"recruiting to completed", ProjectRecruiting, ProjectCompleted, true},
		{"in progress to terminated", ProjectInProgress, ProjectTerminated, true},
		{"acceptance to completed", ProjectAcceptance, ProjectCompleted, true},
		{"recruiting to in progress", ProjectRecruiting, ProjectInProgress, false},
		{"completed is terminal", ProjectCompleted, ProjectTerminated, false},
		{"terminated is terminal", ProjectTerminated, ProjectCompleted, false},
		{"terminated to terminated", ProjectTerminated, ProjectTerminated, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
				t.Fatalf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestProjectStatusTerminal(t *testing.T) {
	for _, s := range []ProjectStatus{ProjectCompleted, ProjectTerminated} {
		if !s.Terminal() {
			t.Fatalf("%s should be terminal", s)
		}
	}
	for _, s := range []ProjectStatus{ProjectRecruiting, ProjectInProgress, ProjectAcceptance} {
		if s.Terminal() {
			t.Fatalf("%s should not be terminal", s)
		}
	}
}

func TestValidProjectStatus(t *testing.T) {
	if !ValidProjectStatus(ProjectRecruiting) {
		t.Fatalf("RECRUITING should be valid")
	}
	if ValidProjectStatus("ARCHIVED") {
		t.Fatalf("ARCHIVED should not be valid")
	}
}
