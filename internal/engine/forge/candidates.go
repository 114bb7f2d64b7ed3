package forge

import (
	"cmp"
	"slices"
	"strings"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/rng"
)

const (
	DefaultCandidates = 30
	MinCandidates     = 10
	DefaultLimit      = 10

	defaultTitleChance   = 0.25
	defaultEpithetChance = 0.25
	defaultMinSyllables  = 2
	defaultMaxSyllables  = 4

	dedupeKeyLength = 18
	nearDupPrefix   = 6
)

// Options drive one candidate run. Zero Candidates and Limit take defaults.
type Options struct {
	Archetype     string
	Traits        []TraitID
	Style         StyleID
	AllowTitles   bool
	AllowEpithets bool
	NameMode      entities.NameMode
	Candidates    int
	Limit         int
}

type scored struct {
	name    entities.PrimaryName
	display string
	score   float64
	key     string
}

// GenerateCandidates forges a pool of names, ranks them by Score and returns
// a deduplicated shortlist. An unknown archetype yields an empty result.
func GenerateCandidates(src rng.Source, opts Options) ([]entities.PrimaryName, error) {
	archetype, ok := LookupArchetype(opts.Archetype)
	if !ok {
		return nil, nil
	}

	traitIDs := NormalizeTraitIDs(traitStrings(opts.Traits), MaxTraits)
	var style *Style
	if s, ok := LookupStyle(opts.Style); ok {
		style = &s
	}

	g := &nameGenerator{
		src:      src,
		opts:     opts,
		dist:     MergeWeights(&archetype, traitIDs, style),
		titles:   titlePool(archetype, traitIDs),
		epithets: epithetPool(archetype, traitIDs),
		style:    style,
	}

	total := DefaultCandidates
	if opts.Candidates > 0 {
		total = max(MinCandidates, opts.Candidates)
	}
	limit := DefaultLimit
	if opts.Limit > 0 {
		limit = opts.Limit
	}

	pool := make([]scored, 0, total)
	for range total {
		name, err := g.primaryName()
		if err != nil {
			return nil, err
		}
		display := name.String()
		pool = append(pool, scored{name: name, display: display, score: Score(display), key: dedupeKey(display)})
	}

	return shortlist(pool, limit), nil
}

// shortlist ranks the pool best first and keeps one name per near-duplicate
// family. Leftovers backfill in rank order when the families run out.
func shortlist(pool []scored, limit int) []entities.PrimaryName {
	slices.SortStableFunc(pool, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return strings.Compare(a.display, b.display)
	})

	picked := make([]entities.PrimaryName, 0, limit)
	used := make([]bool, len(pool))
	var seen []string
	for i, entry := range pool {
		if len(picked) >= limit {
			break
		}
		if nearDuplicate(entry.key, seen) {
			continue
		}
		seen = append(seen, entry.key)
		picked = append(picked, entry.name)
		used[i] = true
	}

	for i, entry := range pool {
		if len(picked) >= limit {
			break
		}
		if !used[i] {
			picked = append(picked, entry.name)
			used[i] = true
		}
	}
	return picked
}

type nameGenerator struct {
	src      rng.Source
	opts     Options
	dist     Distribution
	titles   []string
	epithets []string
	style    *Style
}

func (g *nameGenerator) primaryName() (entities.PrimaryName, error) {
	titleChance, epithetChance := defaultTitleChance, defaultEpithetChance
	minSyl, maxSyl := defaultMinSyllables, defaultMaxSyllables
	if g.style != nil {
		titleChance, epithetChance = g.style.TitleChance, g.style.EpithetChance
		minSyl, maxSyl = g.style.MinSyllables, g.style.MaxSyllables
	}

	var name entities.PrimaryName
	if g.opts.AllowTitles && rng.Bool(g.src, titleChance) {
		title := rng.MustChoice(g.src, g.titles)
		name.Title = &title
	}
	epithet := ""
	if g.opts.AllowEpithets && rng.Bool(g.src, epithetChance) {
		epithet = rng.MustChoice(g.src, g.epithets)
	}

	word := func(lo, hi int) (string, error) {
		return GenerateWord(g.src, g.dist, lo, hi)
	}

	switch g.opts.NameMode {
	case entities.NameModeMononym:
		w, err := word(minSyl, maxSyl)
		if err != nil {
			return name, err
		}
		name.Form = entities.Mononym{Value: withEpithet(w, epithet)}
	case entities.NameModeFusedMononym:
		first, err := word(minSyl, maxSyl)
		if err != nil {
			return name, err
		}
		last, err := word(minSyl, maxSyl)
		if err != nil {
			return name, err
		}
		name.Form = entities.FusedMononym{Fused: withEpithet(Fuse(g.src, first, last), epithet), First: first, Last: last}
	case entities.NameModeFirstMiddleLast:
		first, err := word(minSyl, maxSyl)
		if err != nil {
			return name, err
		}
		middle, err := word(max(2, minSyl-1), max(2, maxSyl-1))
		if err != nil {
			return name, err
		}
		last, err := word(minSyl, maxSyl)
		if err != nil {
			return name, err
		}
		name.Form = entities.FirstMiddleLast{First: first, Middle: middle, Last: withEpithet(last, epithet)}
	default:
		first, err := word(minSyl, maxSyl)
		if err != nil {
			return name, err
		}
		last, err := word(minSyl, maxSyl)
		if err != nil {
			return name, err
		}
		name.Form = entities.FirstLast{First: first, Last: withEpithet(last, epithet)}
	}
	return name, nil
}

func dedupeKey(display string) string {
	s := lettersOnly(strings.ToLower(display))
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if !isVowel(s[i]) {
			b.WriteByte(s[i])
		}
	}
	s = collapseRuns(b.String(), 1, func(byte) bool { return true })
	if len(s) > dedupeKeyLength {
		s = s[:dedupeKeyLength]
	}
	return s
}

func nearDuplicate(key string, seen []string) bool {
	if key == "" {
		return true
	}
	for _, existing := range seen {
		if existing == key ||
			strings.HasPrefix(existing, prefix(key, nearDupPrefix)) ||
			strings.HasPrefix(key, prefix(existing, nearDupPrefix)) {
			return true
		}
	}
	return false
}

func prefix(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func traitStrings(ids []TraitID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
