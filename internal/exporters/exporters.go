// Package exporters maps finished avatars onto third-party character
// authoring schemas. Every exporter is a pure field mapping.
package exporters

import (
	"fmt"
	"math"
	"strings"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
)

// Format names a target schema
type Format string

// Supported formats
const (
	FormatInworld  Format = "inworld"
	FormatConvai   Format = "convai"
	FormatCharisma Format = "charisma"
)

// Formats lists every supported format
var Formats = []Format{FormatInworld, FormatConvai, FormatCharisma}

const nameless = "Nameless"

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown export format %q", s)
}

// Export renders the avatar in the given format
func Export(avatar *entities.Avatar, format Format) (any, error) {
	if avatar == nil {
		return nil, errors.InvalidArgument("avatar is required")
	}
	switch format {
	case FormatInworld:
		return ToInworld(avatar), nil
	case FormatConvai:
		return ToConvai(avatar), nil
	case FormatCharisma:
		return ToCharisma(avatar), nil
	}
	return nil, errors.InvalidArgumentf("unknown export format %q", format)
}

// fullName renders title and parts. A mononym stands alone; other
// topologies fall back to the mononym and then to "Nameless".
func fullName(p entities.PrimaryName) string {
	var base string
	switch f := p.Form.(type) {
	case entities.Mononym:
		base = f.Value
	case entities.FirstLast:
		base = strings.Join(nonEmpty(f.First, f.Last), " ")
	case entities.FirstMiddleLast:
		base = strings.Join(nonEmpty(f.First, f.Middle, f.Last), " ")
	case entities.FusedMononym:
		base = strings.Join(nonEmpty(f.First, f.Last), " ")
		if base == "" {
			base = f.Fused
		}
	}
	if base == "" {
		base = nameless
	}
	return strings.Join(nonEmpty(p.TitleText(), base), " ")
}

// shortName is the mononym when one exists, else first and last.
func shortName(p entities.PrimaryName) string {
	switch f := p.Form.(type) {
	case entities.Mononym:
		if f.Value != "" {
			return f.Value
		}
	case entities.FusedMononym:
		if f.Fused != "" {
			return f.Fused
		}
		return strings.Join(nonEmpty(f.First, f.Last), " ")
	case entities.FirstLast:
		return strings.Join(nonEmpty(f.First, f.Last), " ")
	case entities.FirstMiddleLast:
		return strings.Join(nonEmpty(f.First, f.Last), " ")
	}
	return ""
}

func heritageShares(h entities.Heritage, suffix string) []string {
	out := make([]string, 0, len(h.Components))
	for _, c := range h.Components {
		out = append(out, strings.TrimSpace(fmt.Sprintf("%d%% %s %s", int(math.Round(c.Weight*100)), c.Culture, suffix)))
	}
	return out
}

func pick[T any](cond bool, yes, no T) T {
	if cond {
		return yes
	}
	return no
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
