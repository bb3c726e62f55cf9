package ports

import (
	"context"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
)

// SubmitReviewInput carries a business user's rating of the consultant
// accepted on one of their projects.
type SubmitReviewInput struct {
	ProjectID  string
	BusinessID string
	Rating     int
	Comment    string
}

// ConsultantReviews is a consultant's review history with the derived average.
type ConsultantReviews struct {
	Reviews       []domain.Review
	AverageRating float64
	ReviewCount   int
}

// ReviewService defines review operations. Submission is the only write path
// and atomically completes the reviewed project.
type ReviewService interface {
	Submit(ctx context.Context, in SubmitReviewInput) (*domain.Review, error)
	ListForConsultant(ctx context.Context, consultantID string) (*ConsultantReviews, error)
}
