// Package banks holds the curated culture, order and tarot name lists and
// blends them by weighted source selection.
package banks

import (
	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/rng"
)

//go:generate mockgen -destination=mock/mock_generator.go -package=banksmock github.com/KirkDiggler/oripheon-api/internal/engine/banks Generator

const (
	fallbackGiven        = "Unnamed"
	fallbackSurname      = "of_No_House"
	cultureMononymChance = 0.7
)

const (
	sourceOrder   Source = "order"
	sourceTarot   Source = "tarot"
	sourceCulture Source = "culture"
)

// Source is one of the three name origins.
type Source string

type buckets struct {
	male        []string
	female      []string
	androgynous []string
	surnames    []string
	mononyms    []string
}

// byGender returns the gendered bucket followed by the androgynous one.
func (b buckets) byGender(g entities.Gender) []string {
	var out []string
	switch g {
	case entities.GenderMale:
		out = append(out, b.male...)
	case entities.GenderFemale:
		out = append(out, b.female...)
	}
	return append(out, b.androgynous...)
}

// Request describes the avatar a name is being drawn for. Order and Tarot
// are optional; empty means absent.
type Request struct {
	Gender   entities.Gender
	Heritage entities.Heritage
	Order    entities.Order
	Tarot    entities.TarotArchetype
}

// Generator draws single name parts.
type Generator interface {
	GivenName(src rng.Source, req Request) (string, error)
	Surname(src rng.Source, req Request) (string, error)
	Mononym(src rng.Source, req Request) (string, error)
}

// OrderNames lists the given names an order offers for a gender.
func OrderNames(order entities.Order, g entities.Gender) []string {
	return orderBanks[order].byGender(g)
}

// OrderSurnames lists an order's surnames.
func OrderSurnames(order entities.Order) []string {
	return orderBanks[order].surnames
}

// OrderMononyms lists an order's mononyms.
func OrderMononyms(order entities.Order) []string {
	return orderBanks[order].mononyms
}

// TarotNames lists the given names a tarot archetype offers for a gender.
func TarotNames(t entities.TarotArchetype, g entities.Gender) []string {
	return tarotBanks[t].byGender(g)
}

// CultureNames lists the given names a culture offers for a gender.
func CultureNames(c entities.Culture, g entities.Gender) []string {
	return cultureBanks[c].byGender(g)
}
