// Package engine is the pure avatar generation core. Given a seed and
// constraints it always produces the same avatar.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/oripheon-api/internal/engine Engine

import (
	"context"
)

// Engine generates avatars and name candidates
type Engine interface {
	// Generate assembles a new avatar. Id and createdAt are left for the caller.
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)

	// Reroll regenerates an existing avatar, keeping its id, createdAt and
	// every locked field.
	Reroll(ctx context.Context, input *RerollInput) (*RerollOutput, error)

	// NameCandidates runs the name forge on its own stream
	NameCandidates(ctx context.Context, input *NameCandidatesInput) (*NameCandidatesOutput, error)
}
