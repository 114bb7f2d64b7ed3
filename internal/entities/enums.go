package entities

import (
	"strings"

	"github.com/KirkDiggler/oripheon-api/internal/errors"
)

// Gender of an avatar
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderAndrogynous Gender = "androgynous"
)

// Genders lists every gender in draw order.
var Genders = []Gender{GenderMale, GenderFemale, GenderAndrogynous}

// Culture is a heritage culture
type Culture string

const (
	CultureYoruba            Culture = "african_yoruba"
	CultureIgbo              Culture = "african_igbo"
	CultureArabic            Culture = "arabic"
	CultureCaucasianEuropean Culture = "caucasian_european"
	CultureCeltic            Culture = "celtic"
	CultureNorseViking       Culture = "norse_viking"
)

// Cultures lists every culture in draw order.
var Cultures = []Culture{
	CultureYoruba,
	CultureIgbo,
	CultureArabic,
	CultureCaucasianEuropean,
	CultureCeltic,
	CultureNorseViking,
}

// HeritageMode is single or mixed
type HeritageMode string

const (
	HeritageSingle HeritageMode = "single"
	HeritageMixed  HeritageMode = "mixed"
)

// Order is the ontological category of the avatar
type Order string

const (
	OrderAngel     Order = "angel"
	OrderDemon     Order = "demon"
	OrderJinn      Order = "jinn"
	OrderHuman     Order = "human"
	OrderTitan     Order = "titan"
	OrderFae       Order = "fae"
	OrderYokai     Order = "yokai"
	OrderElemental Order = "elemental"
	OrderNephilim  Order = "nephilim"
	OrderArchon    Order = "archon"
	OrderDragonkin Order = "dragonkin"
	OrderConstruct Order = "construct"
	OrderEldritch  Order = "eldritch"
	OrderTrickster Order = "trickster"
)

// Orders lists every order in draw order.
var Orders = []Order{
	OrderAngel,
	OrderDemon,
	OrderJinn,
	OrderHuman,
	OrderTitan,
	OrderFae,
	OrderYokai,
	OrderElemental,
	OrderNephilim,
	OrderArchon,
	OrderDragonkin,
	OrderConstruct,
	OrderEldritch,
	OrderTrickster,
}

// TarotArchetype is one of the 22 major arcana
type TarotArchetype string

const (
	TarotFool           TarotArchetype = "fool"
	TarotMagician       TarotArchetype = "magician"
	TarotHighPriestess  TarotArchetype = "high_priestess"
	TarotEmpress        TarotArchetype = "empress"
	TarotEmperor        TarotArchetype = "emperor"
	TarotHierophant     TarotArchetype = "hierophant"
	TarotLovers         TarotArchetype = "lovers"
	TarotChariot        TarotArchetype = "chariot"
	TarotStrength       TarotArchetype = "strength"
	TarotHermit         TarotArchetype = "hermit"
	TarotWheelOfFortune TarotArchetype = "wheel_of_fortune"
	TarotJustice        TarotArchetype = "justice"
	TarotHangedMan      TarotArchetype = "hanged_man"
	TarotDeath          TarotArchetype = "death"
	TarotTemperance     TarotArchetype = "temperance"
	TarotDevil          TarotArchetype = "devil"
	TarotTower          TarotArchetype = "tower"
	TarotStar           TarotArchetype = "star"
	TarotMoon           TarotArchetype = "moon"
	TarotSun            TarotArchetype = "sun"
	TarotJudgement      TarotArchetype = "judgement"
	TarotWorld          TarotArchetype = "world"
)

// TarotArchetypes lists the major arcana in card order.
var TarotArchetypes = []TarotArchetype{
	TarotFool, TarotMagician, TarotHighPriestess, TarotEmpress, TarotEmperor,
	TarotHierophant, TarotLovers, TarotChariot, TarotStrength, TarotHermit,
	TarotWheelOfFortune, TarotJustice, TarotHangedMan, TarotDeath, TarotTemperance,
	TarotDevil, TarotTower, TarotStar, TarotMoon, TarotSun, TarotJudgement, TarotWorld,
}

// NameMode is the topology of a primary name
type NameMode string

const (
	NameModeMononym         NameMode = "mononym"
	NameModeFirstLast       NameMode = "first_last"
	NameModeFirstMiddleLast NameMode = "first_middle_last"
	NameModeFusedMononym    NameMode = "fused_mononym"
)

// NameModes lists every topology in draw order.
var NameModes = []NameMode{
	NameModeMononym,
	NameModeFirstLast,
	NameModeFirstMiddleLast,
	NameModeFusedMononym,
}

// LengthPreference narrows the topology draw
type LengthPreference string

const (
	LengthAny   LengthPreference = ""
	LengthShort LengthPreference = "short"
	LengthLong  LengthPreference = "long"
)

// ParseGender validates a gender from the transport boundary
func ParseGender(s string) (Gender, error) {
	return parseEnum("gender", s, Genders)
}

// ParseCulture validates a culture
func ParseCulture(s string) (Culture, error) {
	return parseEnum("culture", s, Cultures)
}

// ParseOrder validates an order
func ParseOrder(s string) (Order, error) {
	return parseEnum("order", s, Orders)
}

// ParseTarotArchetype validates a tarot archetype
func ParseTarotArchetype(s string) (TarotArchetype, error) {
	return parseEnum("tarotArchetype", s, TarotArchetypes)
}

// ParseNameMode validates a name topology
func ParseNameMode(s string) (NameMode, error) {
	return parseEnum("nameMode", s, NameModes)
}

// ParseLengthPreference validates a length preference; blank means any
func ParseLengthPreference(s string) (LengthPreference, error) {
	if strings.TrimSpace(s) == "" {
		return LengthAny, nil
	}
	return parseEnum("lengthPreference", s, []LengthPreference{LengthShort, LengthLong})
}

func parseEnum[T ~string](field, raw string, allowed []T) (T, error) {
	value := T(strings.ToLower(strings.TrimSpace(raw)))
	for _, a := range allowed {
		if a == value {
			return value, nil
		}
	}

	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum(field, raw, names, vb)
	var zero T
	return zero, vb.Build()
}
