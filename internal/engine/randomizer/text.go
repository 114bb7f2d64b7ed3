package randomizer

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
)

// DescribeHeritage joins culture labels: "Celtic", "Arabic and Norse".
func DescribeHeritage(h entities.Heritage) string {
	names := make([]string, 0, len(h.Components))
	for _, c := range h.Components {
		names = append(names, cultureLabels[c.Culture])
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

func ensureSentence(text string) string {
	if text == "" {
		return text
	}
	switch text[len(text)-1] {
	case '.', '!', '?':
		return text
	}
	return text + "."
}

// formatList renders "a", "a and b", "a, b, and c".
func formatList(values []string) string {
	var filtered []string
	for _, v := range values {
		if v != "" {
			filtered = append(filtered, v)
		}
	}
	switch len(filtered) {
	case 0:
		return ""
	case 1:
		return filtered[0]
	case 2:
		return filtered[0] + " and " + filtered[1]
	}
	return strings.Join(filtered[:len(filtered)-1], ", ") + ", and " + filtered[len(filtered)-1]
}

// capitalizeWords uppercases the first letter of each word and lowercases
// the rest.
func capitalizeWords(value string) string {
	words := strings.Fields(value)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

func capitalizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if c := capitalizeWords(v); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// dedupeFold keeps the first of each case-insensitive duplicate.
func dedupeFold(values []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, v := range values {
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

// fold lowercases and strips combining marks so "Seraphína" matches "Seraphina".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
