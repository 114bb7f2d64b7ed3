package randomizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
)

var mononymSplit = regexp.MustCompile(`[\s_-]+`)

// NameMeaning describes a name component by component. Pass the name as it
// stood before any sigil bloom. It consumes no randomness.
func NameMeaning(name entities.PrimaryName, heritage entities.Heritage, being entities.Being) string {
	descriptor := DescribeHeritage(heritage)
	theme := orderThemes[being.Order]

	components := nameComponents(name)
	var meaning string
	switch len(components) {
	case 0:
		if target := resolvedName(name); target != "" {
			meaning = fmt.Sprintf("%s is a %s name associated with %s among the %s order.",
				target, descriptor, theme, being.Order)
		} else {
			meaning = fmt.Sprintf("Nameless avatar of the %s order, honored for %s.", being.Order, theme)
		}
	case 1:
		meaning = fmt.Sprintf("%s: a %s epithet aligned with %s.", components[0], descriptor, theme)
	default:
		parts := make([]string, len(components))
		for i, c := range components {
			parts[i] = fmt.Sprintf("%s (a %s epithet aligned with %s.)", c, descriptor, theme)
		}
		meaning = fmt.Sprintf("%s. Combined, %s forms a single mantle of %s.",
			strings.Join(parts, "; "), strings.Join(components, " "), theme)
	}
	return ensureSentence(meaning)
}

// nameComponents lists title and parts. A mononym is tokenized only when it
// is the whole name.
func nameComponents(name entities.PrimaryName) []string {
	d := draftFrom(name)
	var parts []string
	push := func(v string) {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	if d.title != nil {
		push(*d.title)
	}
	push(d.first)
	push(d.middle)
	push(d.last)

	if d.mononym != "" && (len(parts) == 0 || d.mode == entities.NameModeMononym) {
		for _, token := range mononymSplit.Split(d.mononym, -1) {
			push(token)
		}
	}
	return parts
}

func resolvedName(name entities.PrimaryName) string {
	d := draftFrom(name)
	return strings.TrimSpace(firstNonEmpty(d.first, d.mononym, d.last, d.middle))
}
