// Package randomizer derives every facet of an avatar from one shared
// stream. Call order is part of the output: each facet consumes draws in a
// fixed sequence, so reordering changes everything downstream for a seed.
package randomizer

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/oripheon-api/internal/engine/banks"
	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/rng"
)

// Randomizer draws facets from a single stream.
type Randomizer struct {
	src    rng.Source
	names  banks.Generator
	prompt *entities.Prompt
}

// New creates a Randomizer. prompt may be nil.
func New(src rng.Source, names banks.Generator, prompt *entities.Prompt) *Randomizer {
	return &Randomizer{src: src, names: names, prompt: prompt}
}

// Heritage draws single or mixed heritage. A mixed base weight is drawn in
// [0.35, 0.7) and both weights are rounded to two decimals.
func (r *Randomizer) Heritage(mixedProbability float64) (entities.Heritage, error) {
	mixed := rng.Bool(r.src, mixedProbability)
	base, err := rng.Choice(r.src, entities.Cultures)
	if err != nil {
		return entities.Heritage{}, err
	}
	if !mixed {
		return entities.Heritage{
			Mode:       entities.HeritageSingle,
			Components: []entities.HeritageComponent{{Culture: base, Weight: 1}},
		}, nil
	}

	baseWeight := round2(rng.Float(r.src, mixedBaseMin, mixedBaseMax))
	remaining := make([]entities.Culture, 0, len(entities.Cultures)-1)
	for _, c := range entities.Cultures {
		if c != base {
			remaining = append(remaining, c)
		}
	}
	second, err := rng.Choice(r.src, remaining)
	if err != nil {
		return entities.Heritage{}, err
	}
	return entities.Heritage{
		Mode: entities.HeritageMixed,
		Components: []entities.HeritageComponent{
			{Culture: base, Weight: baseWeight},
			{Culture: second, Weight: round2(1 - baseWeight)},
		},
	}, nil
}

// DefaultHeritage draws heritage with the default 40% mixed chance.
func (r *Randomizer) DefaultHeritage() (entities.Heritage, error) {
	return r.Heritage(defaultMixedProbability)
}

// Being fills whatever the partial leaves unset.
func (r *Randomizer) Being(partial *entities.BeingParams) (entities.Being, error) {
	var p entities.BeingParams
	if partial != nil {
		p = *partial
	}
	var err error
	order := p.Order
	if order == "" {
		if order, err = rng.Choice(r.src, entities.Orders); err != nil {
			return entities.Being{}, err
		}
	}
	office := p.Office
	if office == "" {
		if office, err = rng.Choice(r.src, orderOffices[order]); err != nil {
			return entities.Being{}, err
		}
	}
	tarot := p.TarotArchetype
	if tarot == "" {
		if tarot, err = rng.Choice(r.src, entities.TarotArchetypes); err != nil {
			return entities.Being{}, err
		}
	}
	return entities.Being{Order: order, Office: office, TarotArchetype: tarot}, nil
}

// Appearance shuffles features first, then draws age and presentation.
func (r *Randomizer) Appearance() entities.Appearance {
	keyFeatures := rng.Sample(r.src, features, 3)
	return entities.Appearance{
		AgeAppearance: rng.MustChoice(r.src, ageAppearances),
		Presentation:  rng.MustChoice(r.src, presentations),
		KeyFeatures:   keyFeatures,
	}
}

// Personality draws four axes and merges prompt traits into core values.
func (r *Randomizer) Personality() entities.Personality {
	axes := entities.PersonalityAxes{
		OrderVsChaos:         round2(rng.Float(r.src, 0, 1)),
		MercyVsRuthlessness:  round2(rng.Float(r.src, 0, 1)),
		IntrovertVsExtrovert: round2(rng.Float(r.src, 0, 1)),
		FaithVsDoubt:         round2(rng.Float(r.src, 0, 1)),
	}
	traits, skills := r.promptTraits(), r.promptSkills()
	random := rng.Sample(r.src, personalityValues, 3)
	values := dedupeFold(append(append([]string{}, traits...), random...))
	if len(values) > 3 {
		values = values[:3]
	}

	summary := fmt.Sprintf("A %s-facing force whose %s balances %s with %s.",
		pick(axes.IntrovertVsExtrovert > 0.5, "outward", "inward"),
		pick(axes.OrderVsChaos > 0.5, "discipline", "improvisation"),
		pick(axes.FaithVsDoubt > 0.5, "faith", "doubt"),
		pick(axes.MercyVsRuthlessness > 0.5, "mercy", "unyielding verdicts"),
	)
	if persona := r.persona(); persona != "" {
		summary = ensureSentence(persona)
	} else if len(traits) > 0 || len(skills) > 0 {
		var fragments []string
		if len(traits) > 0 {
			fragments = append(fragments, "Guided by "+formatList(traits))
		}
		if len(skills) > 0 {
			fragments = append(fragments, "devoted to "+formatList(skills))
		}
		summary = ensureSentence(strings.Join(fragments, " and "))
	}

	return entities.Personality{Summary: summary, Axes: axes, CoreValues: values}
}

// Mythos templates lore from heritage and being.
func (r *Randomizer) Mythos(being entities.Being, heritage entities.Heritage) entities.Mythos {
	descriptor := DescribeHeritage(heritage)
	traits, skills := r.promptTraits(), r.promptSkills()

	shortTitle := fmt.Sprintf("The %s of %s", rng.MustChoice(r.src, titleFigures), rng.MustChoice(r.src, titleDomains))

	origin := fmt.Sprintf("Born of %s lineages, this %s %s was tempered in cities that sleep beneath thunder. "+
		"They bound %s sigils into their bones and swore service to wandering caravans. "+
		"Their legend is whispered in cathedrals carved into dunes.",
		descriptor, being.Order, being.Office, being.TarotArchetype)
	var extra []string
	if persona := r.persona(); persona != "" {
		extra = append(extra, ensureSentence(persona))
	}
	if len(traits) > 0 {
		extra = append(extra, fmt.Sprintf("They embody %s ideals.", formatList(traits)))
	}
	if len(skills) > 0 {
		extra = append(extra, fmt.Sprintf("Their craft centers on %s.", formatList(skills)))
	}
	if len(extra) > 0 {
		origin += " " + strings.Join(extra, " ")
	}

	faction := rng.MustChoice(r.src, factions)

	var focus string
	if len(skills) > 0 {
		focus = "awaken the age of " + skills[0]
	} else {
		focus = rng.MustChoice(r.src, prophecyFocus)
	}
	prophecy := fmt.Sprintf("Prophecy claims they will %s when the %s is drawn three times in one night.",
		focus, strings.ReplaceAll(string(being.TarotArchetype), "_", " "))

	action := rng.MustChoice(r.src, ritualActions)
	tail := "anchoring allies to reality's seam"
	if len(skills) > 0 {
		tail = fmt.Sprintf("interweaving %s with every breath", formatList(skills))
	}
	ritual := fmt.Sprintf("%s while reciting the %s canticles, %s.", action, descriptor, tail)

	return entities.Mythos{
		ShortTitle:      shortTitle,
		OriginStory:     origin,
		Faction:         faction,
		ProphecyOrCurse: prophecy,
		SignatureRitual: ritual,
	}
}

// TasteProfile draws shuffled slices of each pool.
func (r *Randomizer) TasteProfile() entities.TasteProfile {
	return entities.TasteProfile{
		Music:       rng.Sample(r.src, tasteMusic, 2),
		Fashion:     rng.Sample(r.src, tasteFashion, 2),
		Indulgences: rng.Sample(r.src, tasteIndulge, 2),
		Likes:       rng.Sample(r.src, tasteLikes, 3),
		Dislikes:    rng.Sample(r.src, tasteDislikes, 2),
	}
}

func (r *Randomizer) promptTraits() []string {
	if r.prompt == nil {
		return nil
	}
	return capitalizeAll(r.prompt.DesiredTraits)
}

func (r *Randomizer) promptSkills() []string {
	if r.prompt == nil {
		return nil
	}
	return capitalizeAll(r.prompt.DesiredSkills)
}

func (r *Randomizer) persona() string {
	if r.prompt == nil {
		return ""
	}
	return strings.TrimSpace(r.prompt.PersonaDescription)
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
