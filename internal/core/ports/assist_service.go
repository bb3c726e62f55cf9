package ports

import "context"

// AssistService is the disabled-safe facade over the Assistant boundary used
// by the HTTP layer. None of the methods ever returns an upstream error: on
// any fault they return the neutral value instead. The only error surfaced is
// the in-flight guard conflict.
type AssistService interface {
	// RankConsultants returns at most three consultant ids for an owned
	// project; empty when the service is disabled or the call fails.
	RankConsultants(ctx context.Context, projectID, ownerID string) ([]string, error)
	// RefineDescription returns the rewritten text and extracted skills, or
	// echoes the input with no skills when disabled or failed.
	RefineDescription(ctx context.Context, userID, text string) (*RefinedDescription, error)
	// SynthesizeAvatar returns a data-URI image, or "" when disabled or
	// failed — callers must then leave the prior avatar untouched.
	SynthesizeAvatar(ctx context.Context, userID, stylePrompt string) (string, error)
	// Enabled reports whether the external service is configured.
	Enabled() bool
}
