package domain

import "errors"

// ConsultantStatus is the availability flag a consultant exposes to the
// marketplace. BUSY is a plain manual value like the others; it is never
// derived from application state.
type ConsultantStatus string

const (
	ConsultantAvailable ConsultantStatus = "AVAILABLE"
	ConsultantBusy      ConsultantStatus = "BUSY"
	ConsultantPaused    ConsultantStatus = "PAUSED"
	ConsultantVacation  ConsultantStatus = "VACATION"
)

var ErrInvalidConsultantStatus = errors.New("unknown consultant status")

// ValidConsultantStatus reports whether s is a known availability value.
func ValidConsultantStatus(s ConsultantStatus) bool {
	switch s {
	case ConsultantAvailable, ConsultantBusy, ConsultantPaused, ConsultantVacation:
		return true
	}
	return false
}

// ConsultantProfile holds the marketplace-facing details of a consultant,
// keyed one-to-one by user id. A missing profile is valid: views see a
// default-constructed one until the consultant saves their own.
type ConsultantProfile struct {
	UserID         string           `json:"userId"`
	Title          string           `json:"title"`
	Phone          string           `json:"phone"`
	Skills         []string         `json:"skills"`
	PreferredRoles []string         `json:"preferredRoles"`
	PreferredTasks []string         `json:"preferredTasks"`
	Location       string           `json:"location"`
	Status         ConsultantStatus `json:"status"`
	HourlyRate     string           `json:"hourlyRate"`
	Bio            string           `json:"bio"`
}

// DefaultProfile returns the empty profile presented for a consultant who has
// not saved one yet.
func DefaultProfile(userID string) ConsultantProfile {
	return ConsultantProfile{
		UserID:         userID,
		Skills:         []string{},
		PreferredRoles: []string{},
		PreferredTasks: []string{},
		Status:         ConsultantAvailable,
	}
}
