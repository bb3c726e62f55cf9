package handler

import (
	"github.com/consultantnexus/marketplace-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Session ---

type loginRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type updateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required"`
}

// --- Projects ---

type projectRequest struct {
	Title          string   `json:"title"          validate:"required"`
	Description    string   `json:"description"    validate:"required"`
	Budget         string   `json:"budget"         validate:"required"`
	Points         int      `json:"points"         validate:"min=0"`
	RequiredSkills []string `json:"requiredSkills"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
}

type terminateProjectRequest struct {
	// Confirm must be true; termination is irreversible.
	Confirm bool `json:"confirm" validate:"required,eq=true"`
}

type projectSummaryResponse struct {
	domain.Project
	PendingApplications int `json:"pendingApplications"`
}

// --- Applications / invitations ---

type applyRequest struct {
	ProjectID string `json:"projectId" validate:"required"`
}

type inviteRequest struct {
	ProjectID    string `json:"projectId"    validate:"required"`
	ConsultantID string `json:"consultantId" validate:"required"`
}

type respondRequest struct {
	Accept *bool `json:"accept" validate:"required"`
}

type applicationDetailResponse struct {
	domain.Application
	ConsultantName string `json:"consultantName"`
}

type invitationDetailResponse struct {
	domain.Application
	ProjectTitle string `json:"projectTitle"`
	BusinessName string `json:"businessName"`
}

type opportunityResponse struct {
	domain.Project
	ApplicationState string `json:"applicationState"`
	ApplicationID    string `json:"applicationId,omitempty"`
}

// --- Reviews ---

type submitReviewRequest struct {
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type consultantReviewsResponse struct {
	Reviews       []domain.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
	ReviewCount   int             `json:"reviewCount"`
}

// --- Consultant profile ---

type saveProfileRequest struct {
	Title          string   `json:"title"`
	Phone          string   `json:"phone"`
	Skills         []string `json:"skills"`
	PreferredRoles []string `json:"preferredRoles"`
	PreferredTasks []string `json:"preferredTasks"`
	Location       string   `json:"location"`
	Status         string   `json:"status" validate:"required,oneof=AVAILABLE BUSY PAUSED VACATION"`
	HourlyRate     string   `json:"hourlyRate"`
	Bio            string   `json:"bio"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE BUSY PAUSED VACATION"`
}

// --- Directory ---

type consultantSummaryResponse struct {
	User          domain.User              `json:"user"`
	Profile       domain.ConsultantProfile `json:"profile"`
	AverageRating float64                  `json:"averageRating"`
	ReviewCount   int                      `json:"reviewCount"`
}

type consultantDetailResponse struct {
	consultantSummaryResponse
	Reviews []domain.Review `json:"reviews"`
}

// --- Admin ---

type adminStatsResponse struct {
	UserCount        int           `json:"userCount"`
	ProjectCount     int           `json:"projectCount"`
	ApplicationCount int           `json:"applicationCount"`
	RecentUsers      []domain.User `json:"recentUsers"`
}

// --- Assist ---

type refineDescriptionRequest struct {
	Description string `json:"description" validate:"required"`
}

type refineDescriptionResponse struct {
	Refined string   `json:"refined"`
	Skills  []string `json:"skills"`
}

type recommendationsResponse struct {
	ConsultantIDs []string `json:"consultantIds"`
}

type synthesizeAvatarRequest struct {
	StylePrompt string `json:"stylePrompt" validate:"required"`
}

type synthesizeAvatarResponse struct {
	// Avatar is a data URI, or "" when the assistant is disabled or failed.
	Avatar string `json:"avatar"`
}
