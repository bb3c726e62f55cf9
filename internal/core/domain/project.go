package domain

import "errors"

// ProjectStatus represents the lifecycle state of a project posting.
type ProjectStatus string

const (
	ProjectRecruiting ProjectStatus = "RECRUITING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectAcceptance ProjectStatus = "ACCEPTANCE"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectTerminated ProjectStatus = "TERMINATED"
)

// projectTransitions defines the allowed state machine edges. TERMINATED is a
// manual owner action; COMPLETED is reachable only through review submission.
// Both are terminal.
var projectTransitions = map[ProjectStatus][]ProjectStatus{
	ProjectRecruiting: {ProjectTerminated, ProjectCompleted},
	ProjectInProgress: {ProjectTerminated, ProjectCompleted},
	ProjectAcceptance: {ProjectTerminated, ProjectCompleted},
}

var ErrProjectNotFound = errors.New("project not found")
var ErrProjectNotEditable = errors.New("project is in a terminal status")
var ErrProjectNotRecruiting = errors.New("project is not recruiting")
var ErrInvalidTransition = errors.New("invalid status transition")

// CanTransitionTo reports whether a transition from s to next is valid.
func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	for _, allowed := range projectTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is permitted out of s.
func (s ProjectStatus) Terminal() bool {
	return len(projectTransitions[s]) == 0
}

// ValidProjectStatus reports whether s is a known project status.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectRecruiting, ProjectInProgress, ProjectAcceptance, ProjectCompleted, ProjectTerminated:
		return true
	}
	return false
}

// Project is a posting owned by exactly one business user. Budget and the
// schedule dates are free-text as entered by the owner; no ordering between
// StartDate and EndDate is enforced.
type Project struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Status         ProjectStatus `json:"status"`
	Budget         string        `json:"budget"`
	Points         int           `json:"points,omitempty"`
	RequiredSkills []string      `json:"requiredSkills"`
	OwnerID        string        `json:"ownerId"`
	StartDate      string        `json:"startDate"`
	EndDate        string        `json:"endDate"`
	LastModified   string        `json:"lastModified,omitempty"`
}
