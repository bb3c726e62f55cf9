package domain

import "errors"

const (
	MinRating = 1
	MaxRating = 5
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// ErrNoAcceptedApplication is returned when a review is submitted for a
// project that has no accepted consultant to review.
var ErrNoAcceptedApplication = errors.New("project has no accepted application")

// Review is a business user's rating of a consultant on a completed project.
// Reviews are immutable: there is no edit or delete path, and submitting one
// completes the linked project in the same commit.
type Review struct {
	ID           string `json:"id"`
	ProjectID    string `json:"projectId"`
	ConsultantID string `json:"consultantId"`
	BusinessID   string `json:"businessId"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Date         string `json:"date"`
}
