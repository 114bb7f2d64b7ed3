// Package locks names the avatar fields a reroll may pin, turns pinned
// fields into generation hints and copies pinned values onto a rerolled
// candidate.
package locks

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
)

// Path is one lockable field, written in dotted wire form.
type Path string

// Lockable paths.
const (
	Seed Path = "seed"

	Heritage           Path = "heritage"
	HeritageMode       Path = "heritage.mode"
	HeritageComponents Path = "heritage.components"

	Identity                    Path = "identity"
	IdentityGender              Path = "identity.gender"
	IdentityNameMeaning         Path = "identity.nameMeaning"
	IdentityPrimaryName         Path = "identity.primaryName"
	IdentityPrimaryNameTitle    Path = "identity.primaryName.title"
	IdentityPrimaryNameNameMode Path = "identity.primaryName.nameMode"
	IdentityPrimaryNameFirst    Path = "identity.primaryName.first"
	IdentityPrimaryNameMiddle   Path = "identity.primaryName.middle"
	IdentityPrimaryNameLast     Path = "identity.primaryName.last"
	IdentityPrimaryNameMononym  Path = "identity.primaryName.mononym"
	IdentityPseudonyms          Path = "identity.pseudonyms"
	IdentityPseudonymsLightSide Path = "identity.pseudonyms.lightSide"
	IdentityPseudonymsDarkSide  Path = "identity.pseudonyms.darkSide"

	Being               Path = "being"
	BeingOrder          Path = "being.order"
	BeingOffice         Path = "being.office"
	BeingTarotArchetype Path = "being.tarotArchetype"

	Appearance              Path = "appearance"
	AppearanceAgeAppearance Path = "appearance.ageAppearance"
	AppearancePresentation  Path = "appearance.presentation"
	AppearanceKeyFeatures   Path = "appearance.keyFeatures"

	Personality                         Path = "personality"
	PersonalitySummary                  Path = "personality.summary"
	PersonalityAxes                     Path = "personality.axes"
	PersonalityAxesOrderVsChaos         Path = "personality.axes.orderVsChaos"
	PersonalityAxesMercyVsRuthlessness  Path = "personality.axes.mercyVsRuthlessness"
	PersonalityAxesIntrovertVsExtrovert Path = "personality.axes.introvertVsExtrovert"
	PersonalityAxesFaithVsDoubt         Path = "personality.axes.faithVsDoubt"
	PersonalityCoreValues               Path = "personality.coreValues"

	Mythos                Path = "mythos"
	MythosShortTitle      Path = "mythos.shortTitle"
	MythosOriginStory     Path = "mythos.originStory"
	MythosFaction         Path = "mythos.faction"
	MythosProphecyOrCurse Path = "mythos.prophecyOrCurse"
	MythosSignatureRitual Path = "mythos.signatureRitual"

	TasteProfile            Path = "tasteProfile"
	TasteProfileMusic       Path = "tasteProfile.music"
	TasteProfileFashion     Path = "tasteProfile.fashion"
	TasteProfileIndulgences Path = "tasteProfile.indulgences"
	TasteProfileLikes       Path = "tasteProfile.likes"
	TasteProfileDislikes    Path = "tasteProfile.dislikes"
)

// lens copies one field from src onto dst. Slices and pointers are cloned.
type lens func(dst, src *entities.Avatar)

var lenses = map[Path]lens{
	Seed: func(dst, src *entities.Avatar) { dst.Seed = src.Seed },

	Heritage:           func(dst, src *entities.Avatar) { dst.Heritage = src.Heritage.Clone() },
	HeritageMode:       func(dst, src *entities.Avatar) { dst.Heritage.Mode = src.Heritage.Mode },
	HeritageComponents: func(dst, src *entities.Avatar) {
		dst.Heritage.Components = slices.Clone(src.Heritage.Components)
	},

	Identity:            func(dst, src *entities.Avatar) { dst.Identity = src.Identity.Clone() },
	IdentityGender:      func(dst, src *entities.Avatar) { dst.Identity.Gender = src.Identity.Gender },
	IdentityNameMeaning: func(dst, src *entities.Avatar) { dst.Identity.NameMeaning = src.Identity.NameMeaning },
	IdentityPrimaryName: func(dst, src *entities.Avatar) {
		dst.Identity.PrimaryName = src.Identity.PrimaryName.Clone()
	},
	IdentityPrimaryNameTitle: func(dst, src *entities.Avatar) {
		dst.Identity.PrimaryName.Title = cloneStrPtr(src.Identity.PrimaryName.Title)
	},
	// The topology decides which parts exist, so the whole form travels with it.
	IdentityPrimaryNameNameMode: func(dst, src *entities.Avatar) {
		dst.Identity.PrimaryName.Form = src.Identity.PrimaryName.Clone().Form
	},
	IdentityPrimaryNameFirst:   segmentLens(IdentityPrimaryNameFirst),
	IdentityPrimaryNameMiddle:  segmentLens(IdentityPrimaryNameMiddle),
	IdentityPrimaryNameLast:    segmentLens(IdentityPrimaryNameLast),
	IdentityPrimaryNameMononym: segmentLens(IdentityPrimaryNameMononym),
	IdentityPseudonyms: func(dst, src *entities.Avatar) {
		dst.Identity.Pseudonyms = entities.Pseudonyms{
			LightSide: cloneStrPtr(src.Identity.Pseudonyms.LightSide),
			DarkSide:  cloneStrPtr(src.Identity.Pseudonyms.DarkSide),
		}
	},
	IdentityPseudonymsLightSide: func(dst, src *entities.Avatar) {
		dst.Identity.Pseudonyms.LightSide = cloneStrPtr(src.Identity.Pseudonyms.LightSide)
	},
	IdentityPseudonymsDarkSide: func(dst, src *entities.Avatar) {
		dst.Identity.Pseudonyms.DarkSide = cloneStrPtr(src.Identity.Pseudonyms.DarkSide)
	},

	Being:               func(dst, src *entities.Avatar) { dst.Being = src.Being },
	BeingOrder:          func(dst, src *entities.Avatar) { dst.Being.Order = src.Being.Order },
	BeingOffice:         func(dst, src *entities.Avatar) { dst.Being.Office = src.Being.Office },
	BeingTarotArchetype: func(dst, src *entities.Avatar) { dst.Being.TarotArchetype = src.Being.TarotArchetype },

	Appearance: func(dst, src *entities.Avatar) {
		dst.Appearance = src.Appearance
		dst.Appearance.KeyFeatures = slices.Clone(src.Appearance.KeyFeatures)
	},
	AppearanceAgeAppearance: func(dst, src *entities.Avatar) {
		dst.Appearance.AgeAppearance = src.Appearance.AgeAppearance
	},
	AppearancePresentation: func(dst, src *entities.Avatar) {
		dst.Appearance.Presentation = src.Appearance.Presentation
	},
	AppearanceKeyFeatures: func(dst, src *entities.Avatar) {
		dst.Appearance.KeyFeatures = slices.Clone(src.Appearance.KeyFeatures)
	},

	Personality: func(dst, src *entities.Avatar) {
		dst.Personality = src.Personality
		dst.Personality.CoreValues = slices.Clone(src.Personality.CoreValues)
	},
	PersonalitySummary:    func(dst, src *entities.Avatar) { dst.Personality.Summary = src.Personality.Summary },
	PersonalityAxes:       func(dst, src *entities.Avatar) { dst.Personality.Axes = src.Personality.Axes },
	PersonalityAxesOrderVsChaos: func(dst, src *entities.Avatar) {
		dst.Personality.Axes.OrderVsChaos = src.Personality.Axes.OrderVsChaos
	},
	PersonalityAxesMercyVsRuthlessness: func(dst, src *entities.Avatar) {
		dst.Personality.Axes.MercyVsRuthlessness = src.Personality.Axes.MercyVsRuthlessness
	},
	PersonalityAxesIntrovertVsExtrovert: func(dst, src *entities.Avatar) {
		dst.Personality.Axes.IntrovertVsExtrovert = src.Personality.Axes.IntrovertVsExtrovert
	},
	PersonalityAxesFaithVsDoubt: func(dst, src *entities.Avatar) {
		dst.Personality.Axes.FaithVsDoubt = src.Personality.Axes.FaithVsDoubt
	},
	PersonalityCoreValues: func(dst, src *entities.Avatar) {
		dst.Personality.CoreValues = slices.Clone(src.Personality.CoreValues)
	},

	Mythos:                func(dst, src *entities.Avatar) { dst.Mythos = src.Mythos },
	MythosShortTitle:      func(dst, src *entities.Avatar) { dst.Mythos.ShortTitle = src.Mythos.ShortTitle },
	MythosOriginStory:     func(dst, src *entities.Avatar) { dst.Mythos.OriginStory = src.Mythos.OriginStory },
	MythosFaction:         func(dst, src *entities.Avatar) { dst.Mythos.Faction = src.Mythos.Faction },
	MythosProphecyOrCurse: func(dst, src *entities.Avatar) { dst.Mythos.ProphecyOrCurse = src.Mythos.ProphecyOrCurse },
	MythosSignatureRitual: func(dst, src *entities.Avatar) { dst.Mythos.SignatureRitual = src.Mythos.SignatureRitual },

	TasteProfile:      func(dst, src *entities.Avatar) { dst.TasteProfile = src.TasteProfile.Clone() },
	TasteProfileMusic: func(dst, src *entities.Avatar) {
		dst.TasteProfile.Music = slices.Clone(src.TasteProfile.Music)
	},
	TasteProfileFashion: func(dst, src *entities.Avatar) {
		dst.TasteProfile.Fashion = slices.Clone(src.TasteProfile.Fashion)
	},
	TasteProfileIndulgences: func(dst, src *entities.Avatar) {
		dst.TasteProfile.Indulgences = slices.Clone(src.TasteProfile.Indulgences)
	},
	TasteProfileLikes: func(dst, src *entities.Avatar) {
		dst.TasteProfile.Likes = slices.Clone(src.TasteProfile.Likes)
	},
	TasteProfileDislikes: func(dst, src *entities.Avatar) {
		dst.TasteProfile.Dislikes = slices.Clone(src.TasteProfile.Dislikes)
	},
}

// Valid reports whether p names a lockable field.
func (p Path) Valid() bool {
	_, ok := lenses[p]
	return ok
}

// Covers reports whether locking p pins target: p is target or one of its
// ancestors.
func (p Path) Covers(target Path) bool {
	return p == target || strings.HasPrefix(string(target), string(p)+".")
}

// Parse validates a dotted lock path.
func Parse(s string) (Path, error) {
	p := Path(strings.TrimSpace(s))
	if !p.Valid() {
		return "", errors.InvalidArgumentf("unknown lock path %q", s)
	}
	return p, nil
}

// ParseAll validates every path and drops duplicates, keeping first-seen order.
func ParseAll(raw []string) ([]Path, error) {
	var out []Path
	for _, s := range raw {
		p, err := Parse(s)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// All lists every lockable path, sorted.
func All() []Path {
	out := make([]Path, 0, len(lenses))
	for p := range lenses {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

func cloneStrPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
