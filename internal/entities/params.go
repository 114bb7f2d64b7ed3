package entities

import (
	"bytes"
	"encoding/json"

	"github.com/KirkDiggler/oripheon-api/internal/errors"
)

// TitleHint distinguishes an unset title (random draw), an explicit "no
// title", and a forced title. The zero value is unset.
type TitleHint struct {
	Set   bool
	Value *string
}

// NoTitle requests a name without a title
func NoTitle() TitleHint {
	return TitleHint{Set: true}
}

// ForceTitle requests a specific title
func ForceTitle(title string) TitleHint {
	return TitleHint{Set: true, Value: &title}
}

// AllowsTitle is false only for an explicit "no title"
func (h TitleHint) AllowsTitle() bool {
	return !h.Set || h.Value != nil
}

// Forced returns the forced title, if any
func (h TitleHint) Forced() (string, bool) {
	if h.Set && h.Value != nil {
		return *h.Value, true
	}
	return "", false
}

// IsZero reports an unset hint so the key is omitted on encode
func (h TitleHint) IsZero() bool {
	return !h.Set
}

// MarshalJSON writes null for "no title" and the string when forced
func (h TitleHint) MarshalJSON() ([]byte, error) {
	if !h.Set || h.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*h.Value)
}

// UnmarshalJSON is only invoked when the key is present, so a null literal
// means "no title".
func (h *TitleHint) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*h = NoTitle()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*h = ForceTitle(s)
	return nil
}

// IdentityParams constrain the identity facet
type IdentityParams struct {
	Title            TitleHint        `json:"title,omitzero"`
	NameMode         NameMode         `json:"nameMode,omitempty"`
	Gender           Gender           `json:"gender,omitempty"`
	LengthPreference LengthPreference `json:"lengthPreference,omitempty"`
	ClashNames       bool             `json:"clashNames,omitempty"`
}

// BeingParams constrain the being facet
type BeingParams struct {
	Order          Order          `json:"order,omitempty"`
	Office         string         `json:"office,omitempty"`
	TarotArchetype TarotArchetype `json:"tarotArchetype,omitempty"`
}

// SigilBloom ornaments name segments with diacritics and glyphs
type SigilBloom struct {
	Enabled bool `json:"enabled"`
	// Intensity is 0-100
	Intensity float64 `json:"intensity"`
}

// Prompt carries free-form customization
type Prompt struct {
	NameArchetype      string      `json:"nameArchetype,omitempty"`
	NameTraits         []string    `json:"nameTraits,omitempty"`
	NameStyle          string      `json:"nameStyle,omitempty"`
	AllowEpithets      bool        `json:"allowEpithets,omitempty"`
	PreferredNames     []string    `json:"preferredNames,omitempty"`
	DesiredTraits      []string    `json:"desiredTraits,omitempty"`
	DesiredSkills      []string    `json:"desiredSkills,omitempty"`
	PersonaDescription string      `json:"personaDescription,omitempty"`
	SigilBloom         *SigilBloom `json:"sigilBloom,omitempty"`
}

// MaxSeedMagnitude is the largest seed a double carries unambiguously.
// Seeds cross the wire as JSON numbers, and from 2^53 on neighbouring
// integers round to the same value.
const MaxSeedMagnitude int64 = 1<<53 - 1

// ValidateSeed flags a seed outside [-MaxSeedMagnitude, MaxSeedMagnitude].
// A nil seed is valid.
func ValidateSeed(field string, seed *int64, vb *errors.ValidationBuilder) {
	if seed == nil {
		return
	}
	if *seed > MaxSeedMagnitude || *seed < -MaxSeedMagnitude {
		vb.Fieldf(field, "magnitude must not exceed %d", MaxSeedMagnitude)
	}
}

// Params are the optional constraints of one generation pass
type Params struct {
	Seed           *int64          `json:"seed,omitempty"`
	Identity       *IdentityParams `json:"identity,omitempty"`
	Heritage       *Heritage       `json:"heritage,omitempty"`
	Being          *BeingParams    `json:"being,omitempty"`
	NeedPseudonyms *bool           `json:"needPseudonyms,omitempty"`
	Prompt         *Prompt         `json:"prompt,omitempty"`
}

// WantsPseudonyms defaults to true
func (p Params) WantsPseudonyms() bool {
	return p.NeedPseudonyms == nil || *p.NeedPseudonyms
}

// Clone returns a deep-enough copy for hint injection
func (p Params) Clone() Params {
	out := p
	if p.Seed != nil {
		s := *p.Seed
		out.Seed = &s
	}
	if p.Identity != nil {
		id := *p.Identity
		out.Identity = &id
	}
	if p.Heritage != nil {
		h := p.Heritage.Clone()
		out.Heritage = &h
	}
	if p.Being != nil {
		b := *p.Being
		out.Being = &b
	}
	return out
}
