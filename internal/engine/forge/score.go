package forge

import (
	"math"
	"regexp"
	"strings"
)

var (
	scoreStrip    = regexp.MustCompile(`[^a-z\s.-]`)
	spaceRun      = regexp.MustCompile(`\s+`)
	uglyPatterns  = []*regexp.Regexp{regexp.MustCompile(`xq`), regexp.MustCompile(`q[^u]`), regexp.MustCompile(`ptkz`), regexp.MustCompile(`[bcdfghjklmnpqrstvwxyz]{4,}`)}
	consonantRun  = regexp.MustCompile(`[bcdfghjklmnpqrstvwxyz]{3,}`)
	alternation   = regexp.MustCompile(`[aeiouy][bcdfghjklmnpqrstvwxyz]|[bcdfghjklmnpqrstvwxyz][aeiouy]`)
	scoreTitleSet = map[string]struct{}{
		"dr": {}, "dr.": {}, "saint": {}, "st": {}, "st.": {},
		"sister": {}, "brother": {}, "oracle": {}, "professor": {},
	}
)

// TooShortScore is returned when fewer than three core letters remain.
const TooShortScore = -10.0

// Score rates a display name for pronounceability. Higher is prettier; the
// value may be negative and is only meaningful for ranking.
func Score(name string) float64 {
	cleaned := strings.TrimSpace(spaceRun.ReplaceAllString(scoreStrip.ReplaceAllString(strings.ToLower(name), " "), " "))
	if cleaned == "" {
		return math.Inf(-1)
	}

	words := strings.Fields(cleaned)
	var coreWords []string
	for _, w := range words {
		if _, title := scoreTitleSet[w]; !title {
			coreWords = append(coreWords, w)
		}
	}
	letters := lettersOnly(strings.Join(coreWords, ""))
	if len(letters) < 3 {
		return TooShortScore
	}

	vowels := 0
	counts := map[byte]int{}
	for i := 0; i < len(letters); i++ {
		if isVowel(letters[i]) {
			vowels++
			counts[letters[i]]++
		}
	}
	consonants := len(letters) - vowels
	vowelRatio := float64(vowels) / float64(len(letters))

	score := 0.0
	for _, re := range uglyPatterns {
		if re.MatchString(letters) {
			score -= 3
		}
	}
	if hasTripleLetter(letters) {
		score -= 3
	}

	if len(letters) >= 5 && len(letters) <= 12 {
		score += 2
	}
	if len(letters) > 16 {
		score -= 2
	}

	score += 3 - math.Abs(vowelRatio-0.45)*10
	if consonants > vowels*2 {
		score -= 2
	}

	score -= float64(len(consonantRun.FindAllString(letters, -1))) * 1.5
	score += math.Min(3, float64(len(alternation.FindAllString(letters, -1)))/3)

	switch letters[len(letters)-1] {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		score += 0.8
	case 'q', 'w', 'x':
		score -= 1.2
	}

	var named []string
	for _, w := range coreWords {
		if w != "the" && w != "of" {
			named = append(named, w)
		}
	}
	if len(named) >= 2 && named[0][0] == named[1][0] {
		score += 1.2
	}

	if dominant, ok := dominantVowel(counts); ok {
		for _, w := range coreWords {
			if strings.IndexByte(w, dominant) >= 0 {
				score += 0.5
				break
			}
		}
	}

	return score
}

func hasTripleLetter(s string) bool {
	for i := 2; i < len(s); i++ {
		if s[i] == s[i-1] && s[i] == s[i-2] {
			return true
		}
	}
	return false
}

// dominantVowel breaks count ties by vowel order so the result is stable.
func dominantVowel(counts map[byte]int) (byte, bool) {
	var best byte
	bestCount := 0
	for _, v := range []byte("aeiouy") {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best, bestCount > 0
}
