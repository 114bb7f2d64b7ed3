package locks

import "github.com/KirkDiggler/oripheon-api/internal/entities"

// Apply returns a copy of candidate with every locked field overwritten by a
// deep copy of original's value. Paths are applied in the given order, so a
// narrower path listed after its parent is a no-op.
func Apply(original, candidate *entities.Avatar, paths []Path) *entities.Avatar {
	out := candidate.Clone()
	if original == nil {
		return out
	}
	for _, p := range paths {
		if copyField, ok := lenses[p]; ok {
			copyField(out, original)
		}
	}
	return out
}
