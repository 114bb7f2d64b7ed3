package locks

import (
	"slices"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
)

// Hints folds the existing avatar's locked values into generation params so
// the regenerated avatar lands on them naturally where it can. Params not
// touched by a lock pass through unchanged.
func Hints(existing *entities.Avatar, params entities.Params, paths []Path) entities.Params {
	if existing == nil || len(paths) == 0 {
		return params
	}
	hints := params.Clone()
	locked := func(target Path) bool {
		return slices.ContainsFunc(paths, func(p Path) bool { return p.Covers(target) })
	}

	if locked(Seed) {
		seed := existing.Seed
		hints.Seed = &seed
	}
	if locked(Heritage) {
		h := existing.Heritage.Clone()
		hints.Heritage = &h
	}

	being := func() *entities.BeingParams {
		if hints.Being == nil {
			hints.Being = &entities.BeingParams{}
		}
		return hints.Being
	}
	if locked(BeingOrder) {
		being().Order = existing.Being.Order
	}
	if locked(BeingOffice) {
		being().Office = existing.Being.Office
	}
	if locked(BeingTarotArchetype) {
		being().TarotArchetype = existing.Being.TarotArchetype
	}

	identity := func() *entities.IdentityParams {
		if hints.Identity == nil {
			hints.Identity = &entities.IdentityParams{}
		}
		return hints.Identity
	}
	if locked(IdentityGender) {
		identity().Gender = existing.Identity.Gender
	}
	if locked(IdentityPrimaryNameTitle) {
		if t := existing.Identity.PrimaryName.Title; t != nil {
			identity().Title = entities.ForceTitle(*t)
		} else {
			identity().Title = entities.NoTitle()
		}
	}
	if locked(IdentityPrimaryNameNameMode) {
		identity().NameMode = existing.Identity.PrimaryName.Mode()
	}
	// A pinned name part only survives onto a form that has it, so keep the
	// existing topology unless the caller asked for another.
	for _, seg := range nameSegments {
		if !locked(seg) {
			continue
		}
		if _, ok := segmentOf(existing.Identity.PrimaryName.Form, seg); ok && identity().NameMode == "" {
			identity().NameMode = existing.Identity.PrimaryName.Mode()
		}
	}
	if locked(IdentityPseudonyms) {
		need := existing.Identity.Pseudonyms.LightSide != nil || existing.Identity.Pseudonyms.DarkSide != nil
		hints.NeedPseudonyms = &need
	}

	return hints
}
