package entities

import (
	"encoding/json"
	"time"
)

// Avatar is the aggregate produced by one generation pass. ID and CreatedAt
// are assigned once at creation; everything else is replaced on reroll.
type Avatar struct {
	ID           string       `json:"id"`
	Seed         int64        `json:"seed"`
	Identity     Identity     `json:"identity"`
	Heritage     Heritage     `json:"heritage"`
	Being        Being        `json:"being"`
	Appearance   Appearance   `json:"appearance"`
	Personality  Personality  `json:"personality"`
	Mythos       Mythos       `json:"mythos"`
	TasteProfile TasteProfile `json:"tasteProfile"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// Identity holds the names and gender
type Identity struct {
	PrimaryName PrimaryName `json:"primaryName"`
	Pseudonyms  Pseudonyms  `json:"pseudonyms"`
	Gender      Gender      `json:"gender"`
	NameMeaning string      `json:"nameMeaning,omitempty"`
}

// Pseudonyms are optional alternate names
type Pseudonyms struct {
	LightSide *string `json:"lightSide,omitempty"`
	DarkSide  *string `json:"darkSide,omitempty"`
}

// HeritageComponent is one culture and its share of the lineage
type HeritageComponent struct {
	Culture Culture `json:"culture"`
	Weight  float64 `json:"weight"`
}

// Heritage is a single culture or a two-culture mix
type Heritage struct {
	Mode       HeritageMode        `json:"mode"`
	Components []HeritageComponent `json:"components"`
}

// Being is the kind of entity the avatar is
type Being struct {
	Order          Order          `json:"order"`
	Office         string         `json:"office"`
	TarotArchetype TarotArchetype `json:"tarotArchetype"`
}

// Appearance describes how the avatar presents
type Appearance struct {
	AgeAppearance string   `json:"ageAppearance"`
	Presentation  string   `json:"presentation"`
	KeyFeatures   []string `json:"keyFeatures"`
}

// PersonalityAxes are each in [0,1], rounded to two decimals
type PersonalityAxes struct {
	OrderVsChaos         float64 `json:"orderVsChaos"`
	MercyVsRuthlessness  float64 `json:"mercyVsRuthlessness"`
	IntrovertVsExtrovert float64 `json:"introvertVsExtrovert"`
	FaithVsDoubt         float64 `json:"faithVsDoubt"`
}

// Personality is the summary, axes and values
type Personality struct {
	Summary    string          `json:"summary"`
	Axes       PersonalityAxes `json:"axes"`
	CoreValues []string        `json:"coreValues"`
}

// Mythos is the templated lore
type Mythos struct {
	ShortTitle      string `json:"shortTitle"`
	OriginStory     string `json:"originStory"`
	Faction         string `json:"faction"`
	ProphecyOrCurse string `json:"prophecyOrCurse"`
	SignatureRitual string `json:"signatureRitual"`
}

// TasteProfile lists preferences
type TasteProfile struct {
	Music       []string `json:"music"`
	Fashion     []string `json:"fashion"`
	Indulgences []string `json:"indulgences"`
	Likes       []string `json:"likes"`
	Dislikes    []string `json:"dislikes"`
}

// Clone returns a deep copy of the avatar
func (a *Avatar) Clone() *Avatar {
	if a == nil {
		return nil
	}
	out := *a
	out.Identity = a.Identity.Clone()
	out.Heritage = a.Heritage.Clone()
	out.Appearance.KeyFeatures = cloneStrings(a.Appearance.KeyFeatures)
	out.Personality.CoreValues = cloneStrings(a.Personality.CoreValues)
	out.TasteProfile = a.TasteProfile.Clone()
	return &out
}

// Clone returns a deep copy
func (i Identity) Clone() Identity {
	out := i
	out.PrimaryName = i.PrimaryName.Clone()
	out.Pseudonyms = Pseudonyms{
		LightSide: cloneStrPtr(i.Pseudonyms.LightSide),
		DarkSide:  cloneStrPtr(i.Pseudonyms.DarkSide),
	}
	return out
}

// Clone returns a deep copy
func (h Heritage) Clone() Heritage {
	out := h
	out.Components = append([]HeritageComponent(nil), h.Components...)
	return out
}

// Clone returns a deep copy
func (t TasteProfile) Clone() TasteProfile {
	return TasteProfile{
		Music:       cloneStrings(t.Music),
		Fashion:     cloneStrings(t.Fashion),
		Indulgences: cloneStrings(t.Indulgences),
		Likes:       cloneStrings(t.Likes),
		Dislikes:    cloneStrings(t.Dislikes),
	}
}

// CanonicalJSON renders the avatar without id and createdAt, the two fields
// that are not a function of seed and params.
func (a *Avatar) CanonicalJSON() ([]byte, error) {
	c := a.Clone()
	c.ID = ""
	c.CreatedAt = time.Time{}
	return json.Marshal(c)
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneStrPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
