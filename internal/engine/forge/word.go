package forge

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/oripheon-api/internal/pkg/rng"
)

const maxWordLength = 14

// GenerateWord forges one capitalized word of minSyllables..maxSyllables
// fragments. A fragment equal to its predecessor is redrawn once.
func GenerateWord(src rng.Source, dist Distribution, minSyllables, maxSyllables int) (string, error) {
	count := rng.Int(src, minSyllables, maxSyllables)
	var b strings.Builder
	last := ""
	for range count {
		next, err := rng.WeightedChoice(src, dist)
		if err != nil {
			return "", err
		}
		if next == last {
			if next, err = rng.WeightedChoice(src, dist); err != nil {
				return "", err
			}
		}
		b.WriteString(next)
		last = next
	}
	return capitalize(cleanupWord(b.String(), maxWordLength)), nil
}

// cleanupWord lowercases, keeps a-z only, collapses runs, fixes bare q and
// truncates to limit.
func cleanupWord(word string, limit int) string {
	s := lettersOnly(strings.ToLower(word))
	s = collapseRuns(s, 2, func(byte) bool { return true })
	s = collapseRuns(s, 1, isVowel)
	s = fixBareQ(s)
	if len(s) > limit {
		s = s[:limit]
	}
	return s
}

func lettersOnly(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// collapseRuns shortens runs of an identical byte to keep, for bytes where
// match is true.
func collapseRuns(s string, keep int, match func(byte) bool) string {
	var b strings.Builder
	run := 0
	for i := 0; i < len(s); i++ {
		if i > 0 && s[i] == s[i-1] {
			run++
		} else {
			run = 1
		}
		if run > keep && match(s[i]) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func fixBareQ(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		if s[i] == 'q' && (i+1 == len(s) || s[i+1] != 'u') {
			b.WriteByte('u')
		}
	}
	return b.String()
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	r := []rune(word)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// titleCaseWords title-cases each word longer than two letters and lowercases
// the rest.
func titleCaseWords(phrase string) string {
	caser := cases.Title(language.English)
	words := strings.Fields(phrase)
	for i, w := range words {
		if len(w) <= 2 {
			words[i] = strings.ToLower(w)
			continue
		}
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

func withEpithet(base, epithet string) string {
	if epithet == "" {
		return base
	}
	suffix := epithet
	if !strings.HasPrefix(epithet, "the ") && !strings.HasPrefix(epithet, "of ") {
		suffix = "the " + epithet
	}
	return strings.TrimSpace(base + " " + titleCaseWords(suffix))
}
