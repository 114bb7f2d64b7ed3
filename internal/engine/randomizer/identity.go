package randomizer

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/KirkDiggler/oripheon-api/internal/engine/banks"
	"github.com/KirkDiggler/oripheon-api/internal/engine/forge"
	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/rng"
)

const (
	forgeCandidates = 30
	forgeLimit      = 10
	lightSuffix     = " Dawn"
	shadeFallback   = "Shade"
)

// IdentityInput carries everything Identity reads besides the prompt.
type IdentityInput struct {
	Params         *entities.IdentityParams
	Heritage       entities.Heritage
	NeedPseudonyms bool
	Order          entities.Order
	Tarot          entities.TarotArchetype
}

// IdentityOutput holds the identity plus the name as it stood before sigil
// bloom. NameMeaning is left empty for the caller to fill once the being is
// known.
type IdentityOutput struct {
	Identity entities.Identity
	BaseName entities.PrimaryName
}

// nameDraft is the mutable shape a primary name goes through while it is
// being assembled.
type nameDraft struct {
	title   *string
	mode    entities.NameMode
	first   string
	middle  string
	last    string
	mononym string
}

func draftFrom(p entities.PrimaryName) *nameDraft {
	d := &nameDraft{title: p.Title, mode: p.Mode()}
	switch f := p.Form.(type) {
	case entities.Mononym:
		d.mononym = f.Value
	case entities.FirstLast:
		d.first, d.last = f.First, f.Last
	case entities.FirstMiddleLast:
		d.first, d.middle, d.last = f.First, f.Middle, f.Last
	case entities.FusedMononym:
		d.mononym, d.first, d.last = f.Fused, f.First, f.Last
	}
	return d
}

func (d *nameDraft) primaryName() entities.PrimaryName {
	p := entities.PrimaryName{}
	if d.title != nil {
		t := *d.title
		p.Title = &t
	}
	switch d.mode {
	case entities.NameModeMononym:
		p.Form = entities.Mononym{Value: d.mononym}
	case entities.NameModeFirstMiddleLast:
		p.Form = entities.FirstMiddleLast{First: d.first, Middle: d.middle, Last: d.last}
	case entities.NameModeFusedMononym:
		p.Form = entities.FusedMononym{Fused: d.mononym, First: d.first, Last: d.last}
	default:
		p.Form = entities.FirstLast{First: d.first, Last: d.last}
	}
	return p
}

// Identity draws gender, topology, title and name parts, then applies
// preferred names, clash and sigil bloom in that order.
func (r *Randomizer) Identity(in IdentityInput) (*IdentityOutput, error) {
	var params entities.IdentityParams
	if in.Params != nil {
		params = *in.Params
	}

	var err error
	gender := params.Gender
	if gender == "" {
		if gender, err = rng.Choice(r.src, entities.Genders); err != nil {
			return nil, err
		}
	}
	mode := params.NameMode
	if mode == "" {
		mode = r.nameModeFor(params.LengthPreference)
	}

	draft, err := r.forgeDraft(params.Title, mode)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		draft, err = r.bankDraft(params.Title, mode, banks.Request{
			Gender:   gender,
			Heritage: in.Heritage,
			Order:    in.Order,
			Tarot:    in.Tarot,
		})
		if err != nil {
			return nil, err
		}
	}

	r.applyPreferredNames(draft, gender, in.Order)
	if params.ClashNames || in.Order == entities.OrderTrickster {
		r.applyClash(draft, params.LengthPreference)
	}

	base := draft.primaryName()
	r.applySigilBloom(draft)

	identity := entities.Identity{
		PrimaryName: draft.primaryName(),
		Gender:      gender,
	}
	if in.NeedPseudonyms {
		light := DescribeHeritage(in.Heritage) + lightSuffix
		baseDraft := draftFrom(base)
		anchor := firstNonEmpty(baseDraft.mononym, baseDraft.last, shadeFallback)
		dark := anchor + " " + rng.MustChoice(r.src, darkSuffixes)
		identity.Pseudonyms = entities.Pseudonyms{LightSide: &light, DarkSide: &dark}
	}

	return &IdentityOutput{Identity: identity, BaseName: base}, nil
}

func (r *Randomizer) nameModeFor(pref entities.LengthPreference) entities.NameMode {
	switch pref {
	case entities.LengthShort:
		return rng.MustChoice(r.src, shortModes)
	case entities.LengthLong:
		return rng.MustChoice(r.src, longModes)
	}
	return rng.MustChoice(r.src, entities.NameModes)
}

// forgeDraft runs the name forge when the prompt names an archetype. A nil
// draft means the bank path should be used instead.
func (r *Randomizer) forgeDraft(hint entities.TitleHint, mode entities.NameMode) (*nameDraft, error) {
	if r.prompt == nil {
		return nil, nil
	}
	archetype := strings.TrimSpace(r.prompt.NameArchetype)
	if archetype == "" {
		return nil, nil
	}

	allowTitles := hint.AllowsTitle()
	forged, err := forge.GenerateCandidates(r.src, forge.Options{
		Archetype:     archetype,
		Traits:        forge.NormalizeTraitIDs(r.prompt.NameTraits, forge.MaxTraits),
		Style:         forge.StyleID(r.prompt.NameStyle),
		AllowTitles:   allowTitles,
		AllowEpithets: r.prompt.AllowEpithets,
		NameMode:      mode,
		Candidates:    forgeCandidates,
		Limit:         forgeLimit,
	})
	if err != nil {
		return nil, err
	}
	if len(forged) == 0 {
		return nil, nil
	}

	draft := draftFrom(forged[0])
	if !allowTitles {
		draft.title = nil
	}
	if forced, ok := hint.Forced(); ok && forced != "" {
		draft.title = &forced
	}
	return draft, nil
}

func (r *Randomizer) bankDraft(hint entities.TitleHint, mode entities.NameMode, req banks.Request) (*nameDraft, error) {
	draft := &nameDraft{mode: mode}
	if hint.IsZero() {
		if t := rng.MustChoice(r.src, titles); t != "" {
			draft.title = &t
		}
	} else if forced, ok := hint.Forced(); ok {
		draft.title = &forced
	}

	var err error
	switch mode {
	case entities.NameModeMononym:
		draft.mononym, err = r.names.Mononym(r.src, req)
		return draft, err
	case entities.NameModeFusedMononym:
		if draft.first, err = r.names.GivenName(r.src, req); err != nil {
			return nil, err
		}
		if draft.last, err = r.names.Surname(r.src, req); err != nil {
			return nil, err
		}
		draft.mononym = forge.Fuse(r.src, draft.first, draft.last)
		return draft, nil
	}

	if draft.first, err = r.names.GivenName(r.src, req); err != nil {
		return nil, err
	}
	if draft.last, err = r.names.Surname(r.src, req); err != nil {
		return nil, err
	}
	if mode == entities.NameModeFirstMiddleLast {
		middleReq := req
		middleReq.Gender = entities.GenderAndrogynous
		if draft.middle, err = r.names.GivenName(r.src, middleReq); err != nil {
			return nil, err
		}
	}
	return draft, nil
}

type preferredName struct {
	raw    string
	first  string
	last   string
	middle []string
}

// applyPreferredNames swaps drafted parts for the caller's preferred names,
// snapping each to the closest entry of the order's pools when one is near.
func (r *Randomizer) applyPreferredNames(draft *nameDraft, gender entities.Gender, order entities.Order) {
	if r.prompt == nil {
		return
	}
	var parsed []preferredName
	for _, raw := range r.prompt.PreferredNames {
		parts := strings.Fields(raw)
		if len(parts) == 0 {
			continue
		}
		p := preferredName{raw: capitalizeWords(raw), first: capitalizeWords(parts[0])}
		if len(parts) > 1 {
			p.last = capitalizeWords(parts[len(parts)-1])
		}
		if len(parts) > 2 {
			for _, seg := range parts[1 : len(parts)-1] {
				p.middle = append(p.middle, capitalizeWords(seg))
			}
		}
		parsed = append(parsed, p)
	}
	if len(parsed) == 0 {
		return
	}

	var mononyms, givens, surnames, middles []string
	for _, p := range parsed {
		mononyms = append(mononyms, p.raw)
		givens = append(givens, p.first)
		if p.last != "" {
			surnames = append(surnames, p.last)
		}
		middles = append(middles, p.middle...)
	}
	orDefault := func(list []string) []string {
		if len(list) == 0 {
			return mononyms
		}
		return list
	}

	var namePool, surnamePool, mononymPool []string
	if order != "" {
		namePool = banks.OrderNames(order, gender)
		surnamePool = banks.OrderSurnames(order)
		mononymPool = banks.OrderMononyms(order)
	}

	if draft.mode == entities.NameModeMononym {
		if v := resolvePreference(mononyms, mononymPool); v != "" {
			draft.mononym = v
		}
		return
	}

	if v := resolvePreference(orDefault(givens), namePool); v != "" {
		draft.first = v
	}
	if draft.mode == entities.NameModeFirstMiddleLast {
		if v := resolvePreference(orDefault(middles), namePool); v != "" {
			draft.middle = v
		}
	}
	if v := resolvePreference(orDefault(surnames), surnamePool); v != "" {
		draft.last = v
	}
	if draft.mode != entities.NameModeFusedMononym {
		return
	}
	switch {
	case draft.first != "" && draft.last != "":
		draft.mononym = forge.Fuse(r.src, draft.first, draft.last)
	case draft.first != "" || draft.last != "":
		draft.mononym = draft.first + draft.last
	}
}

// resolvePreference returns an exact (accent and case folded) pool match,
// else the closest pool entry within max(2, len/2) edits, else the first
// preference capitalized.
func resolvePreference(preferences, pool []string) string {
	var cleaned []string
	for _, p := range preferences {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) == 0 {
		return ""
	}
	if len(pool) == 0 {
		return capitalizeWords(cleaned[0])
	}

	for _, pref := range cleaned {
		key := fold(pref)
		for _, candidate := range pool {
			if fold(strings.TrimSpace(candidate)) == key {
				return strings.TrimSpace(candidate)
			}
		}
	}

	best, bestScore := "", -1
	sourceLength := len([]rune(cleaned[0]))
	for _, pref := range cleaned {
		key := fold(pref)
		for _, candidate := range pool {
			c := strings.TrimSpace(candidate)
			score := levenshtein.ComputeDistance(key, fold(c))
			if bestScore < 0 || score < bestScore {
				best, bestScore = c, score
				sourceLength = len([]rune(pref))
			}
		}
	}
	if best != "" && bestScore <= max(2, sourceLength/2) {
		return best
	}
	return capitalizeWords(cleaned[0])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
