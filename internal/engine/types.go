package engine

import (
	"github.com/KirkDiggler/oripheon-api/internal/engine/locks"
	"github.com/KirkDiggler/oripheon-api/internal/entities"
)

// GenerateInput contains the constraints for one generation pass
type GenerateInput struct {
	Params entities.Params
}

// GenerateOutput contains the generated avatar and the seed it came from
type GenerateOutput struct {
	Avatar *entities.Avatar
	Seed   int64
}

// RerollInput contains the avatar to regenerate and the fields to keep
type RerollInput struct {
	Existing *entities.Avatar
	Params   entities.Params
	Locks    []locks.Path
}

// RerollOutput contains the regenerated avatar
type RerollOutput struct {
	Avatar *entities.Avatar
	Seed   int64
}

// NameCandidatesInput drives a standalone name forge run
type NameCandidatesInput struct {
	Seed          *int64
	Archetype     string
	Traits        []string
	Style         string
	NameMode      entities.NameMode
	AllowTitles   bool
	AllowEpithets bool
	Candidates    int
	Limit         int
}

// NameCandidatesOutput contains ranked names, best first
type NameCandidatesOutput struct {
	Names []entities.PrimaryName
	Seed  int64
}
