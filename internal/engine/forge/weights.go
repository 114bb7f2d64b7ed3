package forge

import (
	"strings"

	"github.com/KirkDiggler/oripheon-api/internal/pkg/rng"
)

const (
	// unseenFragmentWeight seeds a boosted fragment that is not in the base table.
	unseenFragmentWeight = 0.25
	minFragmentWeight    = 0.05
)

// Distribution is an ordered weighted fragment table. New fragments are
// appended after the base table in the order they are first boosted.
type Distribution []rng.Weighted[string]

// MergeWeights applies archetype, trait and style boosts on top of the base
// table, clamping after every source.
func MergeWeights(archetype *Archetype, traitIDs []TraitID, style *Style) Distribution {
	dist := make(Distribution, len(baseFragments))
	copy(dist, baseFragments)
	index := make(map[string]int, len(dist))
	for i, f := range dist {
		index[f.Item] = i
	}

	apply := func(boosts []Boost) {
		for _, b := range boosts {
			key := strings.ToLower(b.Fragment)
			i, ok := index[key]
			if !ok {
				dist = append(dist, rng.Weighted[string]{Item: key, Weight: unseenFragmentWeight})
				i = len(dist) - 1
				index[key] = i
			}
			dist[i].Weight = max(minFragmentWeight, dist[i].Weight+b.Amount)
		}
	}

	if archetype != nil {
		apply(archetype.Boosts)
	}
	for _, id := range traitIDs {
		if t, ok := traits[id]; ok {
			apply(t.Boosts)
		}
	}
	if style != nil {
		apply(style.Boosts)
	}
	return dist
}

// Weight returns the effective weight of a fragment, or 0 when absent.
func (d Distribution) Weight(fragment string) float64 {
	for _, f := range d {
		if f.Item == fragment {
			return f.Weight
		}
	}
	return 0
}

func titlePool(archetype Archetype, traitIDs []TraitID) []string {
	pools := [][]string{baseTitles, archetype.Titles}
	for _, id := range traitIDs {
		pools = append(pools, traits[id].Titles)
	}
	return union(pools...)
}

func epithetPool(archetype Archetype, traitIDs []TraitID) []string {
	pools := [][]string{baseEpithets, archetype.Epithets}
	for _, id := range traitIDs {
		pools = append(pools, traits[id].Epithets)
	}
	return union(pools...)
}

// union keeps first-seen order.
func union(pools ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, pool := range pools {
		for _, v := range pool {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
