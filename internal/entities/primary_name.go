package entities

import (
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/oripheon-api/internal/errors"
)

// NameForm is the topology-specific body of a PrimaryName. Exactly one of
// Mononym, FirstLast, FirstMiddleLast or FusedMononym.
type NameForm interface {
	Mode() NameMode
	// Parts returns the display segments in reading order.
	Parts() []string
	isNameForm()
}

// Mononym is a single-word name
type Mononym struct {
	Value string
}

// FirstLast is a given name plus surname
type FirstLast struct {
	First string
	Last  string
}

// FirstMiddleLast adds a middle name
type FirstMiddleLast struct {
	First  string
	Middle string
	Last   string
}

// FusedMononym is a portmanteau of First and Last, which are kept as provenance.
type FusedMononym struct {
	Fused string
	First string
	Last  string
}

func (Mononym) Mode() NameMode         { return NameModeMononym }
func (FirstLast) Mode() NameMode       { return NameModeFirstLast }
func (FirstMiddleLast) Mode() NameMode { return NameModeFirstMiddleLast }
func (FusedMononym) Mode() NameMode    { return NameModeFusedMononym }

func (n Mononym) Parts() []string         { return nonEmpty(n.Value) }
func (n FirstLast) Parts() []string       { return nonEmpty(n.First, n.Last) }
func (n FirstMiddleLast) Parts() []string { return nonEmpty(n.First, n.Middle, n.Last) }
func (n FusedMononym) Parts() []string    { return nonEmpty(n.Fused) }

func (Mononym) isNameForm()         {}
func (FirstLast) isNameForm()       {}
func (FirstMiddleLast) isNameForm() {}
func (FusedMononym) isNameForm()    {}

// PrimaryName is an optional title plus a topology-specific form.
type PrimaryName struct {
	Title *string
	Form  NameForm
}

// Mode returns the topology of the name
func (p PrimaryName) Mode() NameMode {
	if p.Form == nil {
		return ""
	}
	return p.Form.Mode()
}

// TitleText returns the title or an empty string
func (p PrimaryName) TitleText() string {
	if p.Title == nil {
		return ""
	}
	return *p.Title
}

// String formats the name for display: title first, then the form's parts.
func (p PrimaryName) String() string {
	var segments []string
	if t := strings.TrimSpace(p.TitleText()); t != "" {
		segments = append(segments, t)
	}
	if p.Form != nil {
		segments = append(segments, p.Form.Parts()...)
	}
	return strings.Join(segments, " ")
}

// Clone returns a deep copy
func (p PrimaryName) Clone() PrimaryName {
	out := PrimaryName{Form: p.Form}
	if p.Title != nil {
		t := *p.Title
		out.Title = &t
	}
	return out
}

// NameFields is the flat wire shape of a PrimaryName. Fields not implied by
// the name mode are null.
type NameFields struct {
	Title    *string  `json:"title"`
	NameMode NameMode `json:"nameMode"`
	First    *string  `json:"first"`
	Middle   *string  `json:"middle"`
	Last     *string  `json:"last"`
	Mononym  *string  `json:"mononym"`
}

// Fields flattens the variant
func (p PrimaryName) Fields() NameFields {
	f := NameFields{Title: p.Clone().Title, NameMode: p.Mode()}
	switch form := p.Form.(type) {
	case Mononym:
		f.Mononym = strPtr(form.Value)
	case FirstLast:
		f.First, f.Last = strPtr(form.First), strPtr(form.Last)
	case FirstMiddleLast:
		f.First, f.Middle, f.Last = strPtr(form.First), strPtr(form.Middle), strPtr(form.Last)
	case FusedMononym:
		f.First, f.Last, f.Mononym = strPtr(form.First), strPtr(form.Last), strPtr(form.Fused)
	}
	return f
}

// PrimaryNameFromFields rebuilds the variant, rejecting shapes that do not
// match the declared mode.
func PrimaryNameFromFields(f NameFields) (PrimaryName, error) {
	p := PrimaryName{Title: f.Title}
	vb := errors.NewValidationBuilder()
	require := func(field string, v *string) string {
		if v == nil || *v == "" {
			vb.RequiredField(field)
			return ""
		}
		return *v
	}

	switch f.NameMode {
	case NameModeMononym:
		p.Form = Mononym{Value: require("mononym", f.Mononym)}
	case NameModeFirstLast:
		p.Form = FirstLast{First: require("first", f.First), Last: require("last", f.Last)}
	case NameModeFirstMiddleLast:
		p.Form = FirstMiddleLast{
			First:  require("first", f.First),
			Middle: require("middle", f.Middle),
			Last:   require("last", f.Last),
		}
	case NameModeFusedMononym:
		p.Form = FusedMononym{
			Fused: require("mononym", f.Mononym),
			First: require("first", f.First),
			Last:  require("last", f.Last),
		}
	default:
		vb.InvalidField("nameMode", string(f.NameMode))
	}

	if err := vb.Build(); err != nil {
		return PrimaryName{}, errors.Wrap(err, "malformed primary name")
	}
	return p, nil
}

// MarshalJSON writes the flat wire shape
func (p PrimaryName) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Fields())
}

// UnmarshalJSON reads the flat wire shape
func (p *PrimaryName) UnmarshalJSON(data []byte) error {
	var f NameFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	parsed, err := PrimaryNameFromFields(f)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func strPtr(s string) *string {
	return &s
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
