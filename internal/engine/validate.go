package engine

import (
	"math"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
)

const weightTolerance = 0.011

// validateParams rejects enum values and shapes the randomizer cannot draw
// from. Empty enums mean "draw one".
func validateParams(p entities.Params) error {
	vb := errors.NewValidationBuilder()
	entities.ValidateSeed("seed", p.Seed, vb)

	if id := p.Identity; id != nil {
		checkEnum(vb, "identity.gender", string(id.Gender), entities.ParseGender)
		checkEnum(vb, "identity.nameMode", string(id.NameMode), entities.ParseNameMode)
		checkEnum(vb, "identity.lengthPreference", string(id.LengthPreference), entities.ParseLengthPreference)
	}

	if h := p.Heritage; h != nil {
		validateHeritage(vb, *h)
	}

	if b := p.Being; b != nil {
		checkEnum(vb, "being.order", string(b.Order), entities.ParseOrder)
		checkEnum(vb, "being.tarotArchetype", string(b.TarotArchetype), entities.ParseTarotArchetype)
		if b.Office != "" && b.Order == "" {
			vb.Field("being.office", "requires being.order")
		}
	}

	if pr := p.Prompt; pr != nil && pr.SigilBloom != nil {
		if i := pr.SigilBloom.Intensity; i < 0 || i > 100 || math.IsNaN(i) {
			vb.Field("prompt.sigilBloom.intensity", "must be between 0 and 100")
		}
	}

	return vb.Build()
}

func validateHeritage(vb *errors.ValidationBuilder, h entities.Heritage) {
	want := 1
	switch h.Mode {
	case entities.HeritageSingle:
	case entities.HeritageMixed:
		want = 2
	default:
		vb.InvalidField("heritage.mode", "must be single or mixed")
		return
	}
	if len(h.Components) != want {
		vb.Fieldf("heritage.components", "%s heritage needs %d component(s)", h.Mode, want)
		return
	}

	sum := 0.0
	for i, c := range h.Components {
		if _, err := entities.ParseCulture(string(c.Culture)); err != nil {
			vb.Fieldf("heritage.components", "component %d: %s", i, errors.GetMessage(err))
		}
		if c.Weight <= 0 || c.Weight > 1 {
			vb.Fieldf("heritage.components", "component %d: weight must be in (0, 1]", i)
		}
		sum += c.Weight
	}
	if math.Abs(sum-1) > weightTolerance {
		vb.Field("heritage.components", "weights must sum to 1")
	}
	if want == 2 && h.Components[0].Culture == h.Components[1].Culture {
		vb.Field("heritage.components", "mixed heritage needs two distinct cultures")
	}
}

func checkEnum[T ~string](vb *errors.ValidationBuilder, field, value string, parse func(string) (T, error)) {
	if value == "" {
		return
	}
	parsed, err := parse(value)
	if err != nil {
		vb.InvalidField(field, errors.GetMessage(err))
		return
	}
	if string(parsed) != value {
		vb.InvalidField(field, "must be the canonical lowercase form "+string(parsed))
	}
}
