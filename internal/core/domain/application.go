package domain

import "errors"

// ApplicationStatus represents the lifecycle state of an application or
// invitation row.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "PENDING"
	ApplicationAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationRejected  ApplicationStatus = "REJECTED"
	ApplicationCancelled ApplicationStatus = "CANCELLED"
)

// ApplicationType distinguishes who initiated the row.
type ApplicationType string

const (
	// TypeApplication is consultant-initiated: a consultant applied to a project.
	TypeApplication ApplicationType = "APPLICATION"
	// TypeInvitation is business-initiated: a business invited a consultant.
	TypeInvitation ApplicationType = "INVITATION"
)

// applicationTransitions: PENDING is the only non-terminal status. The
// counterpart of the initiator accepts or rejects; the initiator cancels.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending: {ApplicationAccepted, ApplicationRejected, ApplicationCancelled},
}

var ErrApplicationNotFound = errors.New("application not found")
var ErrDuplicateApplication = errors.New("a live application already exists for this project and consultant")

// CanTransitionTo reports whether a transition from s to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether s permits no further transition.
func (s ApplicationStatus) Terminal() bool {
	return len(applicationTransitions[s]) == 0
}

// Live reports whether the row still binds the project and consultant:
// PENDING awaits a response, ACCEPTED is an active engagement.
func (s ApplicationStatus) Live() bool {
	return s == ApplicationPending || s == ApplicationAccepted
}

// Application links one project, one consultant, and the project's owning
// business user. At most one live row may exist per (project, consultant).
type Application struct {
	ID           string            `json:"id"`
	ProjectID    string            `json:"projectId"`
	ConsultantID string            `json:"consultantId"`
	BusinessID   string            `json:"businessId"`
	Status       ApplicationStatus `json:"status"`
	Type         ApplicationType   `json:"type"`
	Date         string            `json:"date"`
}
