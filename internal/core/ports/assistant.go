package ports

import (
	"context"

	"github.com/consultantnexus/marketplace-system/internal/core/domain"
)

// RefinedDescription is the result of an AI description rewrite.
type RefinedDescription struct {
	Refined string
	Skills  []string
}

// Assistant is the boundary to the external generative service. Every method
// may fail; callers are expected to degrade to a neutral result rather than
// surface the error to the user.
type Assistant interface {
	// RankConsultants returns the ids of the consultants best matching the
	// project, most suitable first.
	RankConsultants(ctx context.Context, project domain.Project, profiles []domain.ConsultantProfile) ([]string, error)
	// RefineDescription rewrites free text into a more professional version
	// and extracts the technical skills it implies.
	RefineDescription(ctx context.Context, raw string) (*RefinedDescription, error)
	// SynthesizeAvatar generates a profile photo for the style prompt and
	// returns it as a data URI.
	SynthesizeAvatar(ctx context.Context, stylePrompt string) (string, error)
}
