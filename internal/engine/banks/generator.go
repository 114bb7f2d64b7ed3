package banks

import (
	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/rng"
)

// sourceWeights are percentages per source. The human rows lean toward
// culture.
type sourceWeights struct {
	both       [3]float64 // order, tarot, culture
	bothHuman  [3]float64
	order      [2]float64 // order, culture
	orderHuman [2]float64
	tarot      [2]float64 // tarot, culture
}

var (
	givenWeights = sourceWeights{
		both: [3]float64{55, 40, 5}, bothHuman: [3]float64{45, 35, 20},
		order: [2]float64{90, 10}, orderHuman: [2]float64{60, 40},
		tarot: [2]float64{75, 25},
	}
	surnameWeights = sourceWeights{
		both: [3]float64{50, 45, 5}, bothHuman: [3]float64{40, 35, 25},
		order: [2]float64{85, 15}, orderHuman: [2]float64{50, 50},
		tarot: [2]float64{60, 40},
	}
	mononymWeights = sourceWeights{
		both: [3]float64{55, 40, 5}, bothHuman: [3]float64{45, 45, 10},
		order: [2]float64{95, 5}, orderHuman: [2]float64{70, 30},
		tarot: [2]float64{80, 20},
	}
)

// table picks the weight row for which of order and tarot are present.
func (w sourceWeights) table(req Request) []rng.Weighted[Source] {
	human := req.Order == entities.OrderHuman
	switch {
	case req.Order != "" && req.Tarot != "":
		row := w.both
		if human {
			row = w.bothHuman
		}
		return []rng.Weighted[Source]{{Item: sourceOrder, Weight: row[0]}, {Item: sourceTarot, Weight: row[1]}, {Item: sourceCulture, Weight: row[2]}}
	case req.Order != "":
		row := w.order
		if human {
			row = w.orderHuman
		}
		return []rng.Weighted[Source]{{Item: sourceOrder, Weight: row[0]}, {Item: sourceCulture, Weight: row[1]}}
	case req.Tarot != "":
		return []rng.Weighted[Source]{{Item: sourceTarot, Weight: w.tarot[0]}, {Item: sourceCulture, Weight: w.tarot[1]}}
	default:
		return []rng.Weighted[Source]{{Item: sourceCulture, Weight: 100}}
	}
}

// picker returns a name, or "" when its source has nothing to offer.
type picker func() (string, error)

// InMemory blends the compiled-in banks.
type InMemory struct{}

var _ Generator = (*InMemory)(nil)

// NewInMemory returns the compiled-in bank generator.
func NewInMemory() *InMemory {
	return &InMemory{}
}

// GivenName draws a given name.
func (g *InMemory) GivenName(src rng.Source, req Request) (string, error) {
	culture, err := pickCulture(src, req.Heritage)
	if err != nil {
		return "", err
	}
	b := cultureBanks[culture]
	cultureGiven := func() (string, error) { return pickGiven(src, b, req.Gender), nil }

	return blend(src, givenWeights.table(req), map[Source]picker{
		sourceOrder: func() (string, error) {
			if req.Order == "" {
				return "", nil
			}
			return safePick(src, OrderNames(req.Order, req.Gender)), nil
		},
		sourceTarot: func() (string, error) {
			if req.Tarot == "" {
				return "", nil
			}
			return safePick(src, TarotNames(req.Tarot, req.Gender)), nil
		},
		sourceCulture: cultureGiven,
	}, cultureGiven)
}

// Surname draws a family name.
func (g *InMemory) Surname(src rng.Source, req Request) (string, error) {
	culture, err := pickCulture(src, req.Heritage)
	if err != nil {
		return "", err
	}
	b := cultureBanks[culture]
	cultureSurname := func() (string, error) { return pickSurname(src, b), nil }

	return blend(src, surnameWeights.table(req), map[Source]picker{
		sourceOrder: func() (string, error) {
			if req.Order == "" {
				return "", nil
			}
			return safePick(src, OrderSurnames(req.Order)), nil
		},
		sourceTarot: func() (string, error) {
			if req.Tarot == "" {
				return "", nil
			}
			return safePick(src, tarotBanks[req.Tarot].surnames), nil
		},
		sourceCulture: cultureSurname,
	}, cultureSurname)
}

// Mononym draws a single-word name, preferring dedicated mononym lists and
// falling back to given names.
func (g *InMemory) Mononym(src rng.Source, req Request) (string, error) {
	culture, err := pickCulture(src, req.Heritage)
	if err != nil {
		return "", err
	}
	b := cultureBanks[culture]

	return blend(src, mononymWeights.table(req), map[Source]picker{
		sourceOrder: func() (string, error) {
			if req.Order == "" {
				return "", nil
			}
			if m := OrderMononyms(req.Order); len(m) > 0 {
				return safePick(src, m), nil
			}
			return safePick(src, OrderNames(req.Order, req.Gender)), nil
		},
		sourceTarot: func() (string, error) {
			if req.Tarot == "" {
				return "", nil
			}
			if m := tarotBanks[req.Tarot].mononyms; len(m) > 0 {
				return safePick(src, m), nil
			}
			return safePick(src, TarotNames(req.Tarot, req.Gender)), nil
		},
		sourceCulture: func() (string, error) {
			if len(b.mononyms) > 0 && rng.Bool(src, cultureMononymChance) {
				if picked := safePick(src, b.mononyms); picked != "" {
					return picked, nil
				}
			}
			return pickGiven(src, b, req.Gender), nil
		},
	}, func() (string, error) { return pickGiven(src, b, req.Gender), nil })
}

// blend draws the preferred source, then tries chosen, order, tarot, culture
// in that order, skipping repeats.
func blend(src rng.Source, table []rng.Weighted[Source], pickers map[Source]picker, last picker) (string, error) {
	chosen, err := rng.WeightedChoice(src, table)
	if err != nil {
		return "", err
	}
	attempted := map[Source]bool{}
	for _, s := range []Source{chosen, sourceOrder, sourceTarot, sourceCulture} {
		if attempted[s] {
			continue
		}
		attempted[s] = true
		name, err := pickers[s]()
		if err != nil {
			return "", err
		}
		if name != "" {
			return name, nil
		}
	}
	return last()
}

// pickCulture resolves one culture from the heritage mix by weight.
func pickCulture(src rng.Source, h entities.Heritage) (entities.Culture, error) {
	if len(h.Components) == 0 {
		return "", errors.InvalidArgument("heritage has no components")
	}
	table := make([]rng.Weighted[entities.Culture], len(h.Components))
	for i, c := range h.Components {
		table[i] = rng.Weighted[entities.Culture]{Item: c.Culture, Weight: c.Weight}
	}
	return rng.WeightedChoice(src, table)
}

func pickGiven(src rng.Source, b buckets, g entities.Gender) string {
	if name := safePick(src, b.byGender(g)); name != "" {
		return name
	}
	return fallbackGiven
}

func pickSurname(src rng.Source, b buckets) string {
	if name := safePick(src, b.surnames); name != "" {
		return name
	}
	return fallbackSurname
}

func safePick(src rng.Source, list []string) string {
	name, err := rng.Choice(src, list)
	if err != nil {
		return ""
	}
	return name
}
