package forge

import "strings"

// MaxTraits is the number of traits honored per request.
const MaxTraits = 3

// NormalizeTraitIDs lowercases, trims and snake-cases raw trait names, keeps
// the first limit distinct entries, then drops ids that are not registered.
func NormalizeTraitIDs(input []string, limit int) []TraitID {
	if len(input) == 0 {
		return nil
	}
	var unique []string
	for _, raw := range input {
		normalized := strings.Join(strings.Fields(strings.ToLower(raw)), "_")
		if normalized == "" {
			continue
		}
		dup := false
		for _, u := range unique {
			if u == normalized {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, normalized)
		}
		if len(unique) >= limit {
			break
		}
	}

	out := make([]TraitID, 0, len(unique))
	for _, u := range unique {
		if _, ok := traits[TraitID(u)]; ok {
			out = append(out, TraitID(u))
		}
	}
	return out
}
