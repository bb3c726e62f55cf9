package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
	"github.com/consultantnexus/marketplace-system/internal/core/ports"
	"github.com/consultantnexus/marketplace-system/internal/core/state"
)

// ReviewService implements review submission and the per-consultant history
// view. Submission is a paired write: the review append and the project's
// move to COMPLETED commit together or not at all.
type ReviewService struct {
	store *state.Store
	log   zerolog.Logger
}

func NewReviewService(store *state.Store, log zerolog.Logger) *ReviewService {
	return &ReviewService{store: store, log: log}
}

// Submit records the owner's rating of the accepted consultant and completes
// the project in the same commit. The reviewed consultant is resolved from
// the project's ACCEPTED application, never taken from the caller.
func (s *ReviewService) Submit(ctx context.Context, in ports.SubmitReviewInput) (*domain.Review, error) {
	if in.Rating < domain.MinRating || in.Rating > domain.MaxRating {
		return nil, domain.ErrInvalidRating
	}
	consultantID := s.acceptedConsultant(in.ProjectID)

	var review domain.Review
	err := s.store.UpdateReviewsAndProjects(ctx, func(reviews []domain.Review, projects []domain.Project) ([]domain.Review, []domain.Project, error) {
		i := indexProject(projects, in.ProjectID)
		if i < 0 {
			return nil, nil, domain.ErrProjectNotFound
		}
		if projects[i].OwnerID != in.BusinessID {
			return nil, nil, domain.ErrForbidden
		}
		if !projects[i].Status.CanTransitionTo(domain.ProjectCompleted) {
			return nil, nil, domain.ErrInvalidTransition
		}
		if consultantID == "" {
			return nil, nil, domain.ErrNoAcceptedApplication
		}

		review = domain.Review{
			ID:           "rev-" + uuid.NewString(),
			ProjectID:    in.ProjectID,
			ConsultantID: consultantID,
			BusinessID:   in.BusinessID,
			Rating:       in.Rating,
			Comment:      in.Comment,
			Date:         today(),
		}

		projects[i].Status = domain.ProjectCompleted
		projects[i].LastModified = today()
		return append(reviews, review), projects, nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("review_id", review.ID).Str("project_id", in.ProjectID).Str("consultant_id", review.ConsultantID).Int("rating", in.Rating).Msg("review submitted, project completed")
	return &review, nil
}

// acceptedConsultant finds the consultant whose application on the project is
// ACCEPTED. At most one can exist under the live-uniqueness rule.
func (s *ReviewService) acceptedConsultant(projectID string) string {
	for _, a := range s.store.Applications() {
		if a.ProjectID == projectID && a.Status == domain.ApplicationAccepted {
			return a.ConsultantID
		}
	}
	return ""
}

// ListForConsultant returns a consultant's reviews with the derived average.
// The average is computed on read and never stored.
func (s *ReviewService) ListForConsultant(ctx context.Context, consultantID string) (*ports.ConsultantReviews, error) {
	out := &ports.ConsultantReviews{Reviews: []domain.Review{}}
	total := 0
	for _, r := range s.store.Reviews() {
		if r.ConsultantID == consultantID {
			out.Reviews = append(out.Reviews, r)
			total += r.Rating
		}
	}
	out.ReviewCount = len(out.Reviews)
	if out.ReviewCount > 0 {
		out.AverageRating = float64(total) / float64(out.ReviewCount)
	}
	return out, nil
}
