package forge

import (
	"math"
	"strings"

	"github.com/KirkDiggler/oripheon-api/internal/pkg/rng"
)

const (
	maxFusedLength   = 10
	minFusedLength   = 3
	fallbackLength   = 6
	namelessFallback = "Nameless"
)

type fuseStrategy func(a, b string) string

var fuseStrategies = []fuseStrategy{
	syllableSplice,
	vowelBoundarySplice,
	overlapPortmanteau,
	proportionalBlend,
}

// Fuse blends two words into one portmanteau of 3 to 10 letters with a
// capitalized first letter.
func Fuse(src rng.Source, first, last string) string {
	a := lettersOnly(strings.ToLower(first))
	b := lettersOnly(strings.ToLower(last))

	fused := fuseStrategies[rng.Int(src, 0, len(fuseStrategies)-1)](a, b)
	if len(fused) > maxFusedLength {
		fused = fused[:maxFusedLength]
	}
	if len(fused) < minFusedLength {
		fused = prefix(a+b, fallbackLength)
	}
	if len(fused) < minFusedLength {
		return namelessFallback
	}
	return capitalize(fused)
}

// syllables splits after each vowel run. Trailing consonants form their own
// chunk.
func syllables(word string) []string {
	var out []string
	start := 0
	for i := 0; i < len(word); i++ {
		if isVowel(word[i]) && (i+1 == len(word) || !isVowel(word[i+1])) {
			out = append(out, word[start:i+1])
			start = i + 1
		}
	}
	if start < len(word) {
		out = append(out, word[start:])
	}
	return out
}

// syllableSplice joins up to two leading syllables of a with up to two
// trailing syllables of b.
func syllableSplice(a, b string) string {
	sa, sb := syllables(a), syllables(b)
	if len(sa) == 0 || len(sb) == 0 {
		return prefix(a, 3) + suffix(b, 3)
	}
	return strings.Join(sa[:min(2, len(sa))], "") + strings.Join(sb[len(sb)-min(2, len(sb)):], "")
}

func vowelBoundarySplice(a, b string) string {
	head := a
	if i := strings.LastIndexAny(a, "aeiouy"); i >= 0 {
		head = a[:i+1]
	}
	tail := b
	if i := strings.IndexAny(b, "aeiouy"); i >= 0 {
		tail = b[i:]
	}
	return head + tail
}

func overlapPortmanteau(a, b string) string {
	for n := min(3, len(a), len(b)); n > 0; n-- {
		if strings.HasPrefix(b, a[len(a)-n:]) {
			return a + b[n:]
		}
	}
	return prefix(a, int(math.Ceil(float64(len(a))*0.6))) + suffix(b, int(math.Floor(float64(len(b))*0.4)))
}

func proportionalBlend(a, b string) string {
	return prefix(a, min(4, int(math.Ceil(float64(len(a))*0.7)))) + suffix(b, min(3, int(math.Ceil(float64(len(b))*0.5))))
}

func suffix(s string, n int) string {
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}
