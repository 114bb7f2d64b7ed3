package randomizer

import (
	"math"
	"strings"
	"unicode"

	"github.com/KirkDiggler/oripheon-api/internal/pkg/rng"
)

var (
	triangleGlyphs = []string{"▲", "△", "▴", "▵", "▼", "▽"}
	crossGlyphs    = []string{"†", "✝", "✠", "☥", "☨"}
	ornateGlyphs   = append(append([]string{"◈", "✶", "✷", "✸", "✹", "✺", "✦"}, triangleGlyphs...), crossGlyphs...)
)

var diacritics = map[rune][]string{
	'a': {"á", "à", "â", "ä", "å", "æ"},
	'e': {"é", "è", "ê", "ë"},
	'i': {"í", "ì", "î", "ï"},
	'o': {"ó", "ò", "ô", "ö", "õ", "ø"},
	'u': {"ú", "ù", "û", "ü"},
	'y': {"ý", "ÿ"},
	'c': {"ç"},
	'n': {"ñ"},
	's': {"ś", "š"},
	't': {"ŧ"},
	'd': {"ð"},
}

// applySigilBloom decorates every populated name part. Only a mononym gets
// a frame.
func (r *Randomizer) applySigilBloom(draft *nameDraft) {
	if r.prompt == nil || r.prompt.SigilBloom == nil || !r.prompt.SigilBloom.Enabled {
		return
	}
	intensity := clamp01(r.prompt.SigilBloom.Intensity / 100)
	if intensity <= 0 {
		return
	}
	draft.mononym = r.stylize(draft.mononym, intensity, true)
	draft.first = r.stylize(draft.first, intensity, false)
	draft.middle = r.stylize(draft.middle, intensity, false)
	draft.last = r.stylize(draft.last, intensity, false)
}

func (r *Randomizer) stylize(value string, intensity float64, allowFrame bool) string {
	if value == "" {
		return value
	}
	weight := 1.0
	if allowFrame {
		weight = 1.3
	}
	result := r.accent(value, intensity)
	result = r.adorn(result, intensity, weight)
	if allowFrame && intensity > 0.1 {
		size := max(2, int(math.Round(intensity*6)))
		left := r.frameCluster(size)
		right := r.frameCluster(size)
		result = strings.Join(strings.Fields(left+" "+result+" "+right), " ")
	}
	return result
}

// accent swaps a share of accentable letters for diacritic variants,
// preserving case.
func (r *Randomizer) accent(value string, intensity float64) string {
	chars := []rune(value)
	var candidates []int
	for i, c := range chars {
		if _, ok := diacritics[unicode.ToLower(c)]; ok {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return value
	}

	n := min(len(candidates), max(1, int(math.Round(float64(len(candidates))*clamp01(intensity+0.1)))))
	out := make([]string, len(chars))
	for i, c := range chars {
		out[i] = string(c)
	}
	for i := 0; i < n && len(candidates) > 0; i++ {
		pick := int(math.Floor(r.src.Next() * float64(len(candidates))))
		idx := candidates[pick]
		candidates = append(candidates[:pick], candidates[pick+1:]...)

		original := chars[idx]
		glyph := rng.MustChoice(r.src, diacritics[unicode.ToLower(original)])
		if unicode.IsUpper(original) {
			glyph = strings.ToUpper(glyph)
		}
		out[idx] = glyph
	}
	return strings.Join(out, "")
}

func (r *Randomizer) adorn(value string, intensity, weight float64) string {
	if intensity <= 0.2 {
		return value
	}
	size := max(1, int(math.Round(intensity*3*weight)))
	suffix := r.glyphCluster(size)
	if intensity > 0.55 {
		prefix := r.glyphCluster(size)
		return strings.Join(strings.Fields(prefix+" "+value+" "+suffix), " ")
	}
	return strings.TrimSpace(value + " " + suffix)
}

func (r *Randomizer) glyphCluster(size int) string {
	var b strings.Builder
	for range size {
		b.WriteString(rng.MustChoice(r.src, ornateGlyphs))
	}
	return b.String()
}

// frameCluster alternates triangle and cross glyphs.
func (r *Randomizer) frameCluster(size int) string {
	var b strings.Builder
	for i := range size {
		pool := triangleGlyphs
		if i%2 == 1 {
			pool = crossGlyphs
		}
		b.WriteString(rng.MustChoice(r.src, pool))
	}
	return b.String()
}
