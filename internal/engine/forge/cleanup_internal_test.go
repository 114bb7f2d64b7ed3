package forge

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/rng"
)

type CleanupTestSuite struct {
	suite.Suite
}

func TestCleanupSuite(t *testing.T) {
	suite.Run(t, new(CleanupTestSuite))
}

func (s *CleanupTestSuite) TestCleanupWord() {
	testCases := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "lowercases", input: "Thalor", limit: maxWordLength, want: "thalor"},
		{name: "drops non letters", input: "Mor-dred 2!", limit: maxWordLength, want: "mordred"},
		{name: "three consonants become two", input: "vallllor", limit: maxWordLength, want: "vallor"},
		{name: "doubled vowel becomes one", input: "seeker", limit: maxWordLength, want: "seker"},
		{name: "vowel run becomes one", input: "zzzaaar", limit: maxWordLength, want: "zzar"},
		{name: "y counts as a vowel", input: "lyyra", limit: maxWordLength, want: "lyra"},
		{name: "bare q inside gains u", input: "qirra", limit: maxWordLength, want: "quirra"},
		{name: "bare q at the end gains u", input: "iraq", limit: maxWordLength, want: "iraqu"},
		{name: "qu is left alone", input: "aqua", limit: maxWordLength, want: "aqua"},
		{name: "cut at fourteen", input: "abcdefghijklmnopq", limit: maxWordLength, want: "abcdefghijklmn"},
		{name: "q fix counts toward the cut", input: "abcdefghijklmq", limit: maxWordLength, want: "abcdefghijklmq"},
		{name: "custom limit", input: "seraphiel", limit: 4, want: "sera"},
		{name: "empty", input: "", limit: maxWordLength, want: ""},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, cleanupWord(tc.input, tc.limit))
		})
	}
}

func (s *CleanupTestSuite) TestDedupeKey() {
	testCases := []struct {
		name    string
		display string
		want    string
	}{
		{name: "drops vowels", display: "Aelis Lumen", want: "lslmn"},
		{name: "collapses repeats", display: "Vessa", want: "vs"},
		{name: "repeats across words", display: "Brannoch Vale", want: "brnchvl"},
		{name: "ignores punctuation", display: "Ser Kael, the Unbroken", want: "srklthnbrkn"},
		{name: "cut at eighteen", display: "Bartholomew Crankshaft Winterbottom", want: "brthlmwcrnkshftwnt"},
		{name: "all vowels", display: "Aya", want: ""},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, dedupeKey(tc.display))
		})
	}
}

func (s *CleanupTestSuite) TestNearDuplicate() {
	testCases := []struct {
		name string
		key  string
		seen []string
		want bool
	}{
		{name: "nothing seen", key: "brnchvl", seen: nil, want: false},
		{name: "empty key is always a duplicate", key: "", seen: nil, want: true},
		{name: "exact match", key: "vslmn", seen: []string{"rncldr", "vslmn"}, want: true},
		{name: "shares a six letter prefix", key: "brnchvlmnt", seen: []string{"brnchvl"}, want: true},
		{name: "seen key shares our prefix", key: "brnchvl", seen: []string{"brnchvlmnt"}, want: true},
		{name: "short key prefixes a seen key", key: "vs", seen: []string{"vslmn"}, want: true},
		{name: "differs inside six letters", key: "brnchz", seen: []string{"brnchvl"}, want: false},
		{name: "differs after six letters", key: "rncldrz", seen: []string{"brnchvl"}, want: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, nearDuplicate(tc.key, tc.seen))
		})
	}
}

func entry(display string, score float64) scored {
	return scored{
		name:    entities.PrimaryName{Form: entities.Mononym{Value: display}},
		display: display,
		score:   score,
		key:     dedupeKey(display),
	}
}

func names(list []entities.PrimaryName) []string {
	out := make([]string, len(list))
	for i, n := range list {
		out[i] = n.String()
	}
	return out
}

func (s *CleanupTestSuite) TestShortlist() {
	pool := func() []scored {
		return []scored{
			entry("Orin Calder", 0.7),
			entry("Brannoch Valemont", 0.8),
			entry("Vessa Lumen", 0.6),
			entry("Brannoch Vale", 0.9),
		}
	}

	s.Run("near duplicate drops out before backfill", func() {
		s.Equal([]string{"Brannoch Vale", "Orin Calder", "Vessa Lumen"}, names(shortlist(pool(), 3)))
	})

	s.Run("backfill brings it back last", func() {
		s.Equal([]string{"Brannoch Vale", "Orin Calder", "Vessa Lumen", "Brannoch Valemont"}, names(shortlist(pool(), 4)))
	})

	s.Run("limit cuts the best first", func() {
		s.Equal([]string{"Brannoch Vale"}, names(shortlist(pool(), 1)))
	})

	s.Run("ties break on display", func() {
		tied := []scored{entry("Zeren", 0.5), entry("Caldor", 0.5)}
		s.Equal([]string{"Caldor", "Zeren"}, names(shortlist(tied, 2)))
	})
}

func (s *CleanupTestSuite) TestGenerateCandidatesKeepsFamiliesApart() {
	got, err := GenerateCandidates(rng.New(42), Options{
		Archetype:  "ashen_seer",
		NameMode:   entities.NameModeMononym,
		Candidates: 200,
		Limit:      3,
	})
	s.Require().NoError(err)
	s.Require().Len(got, 3)

	var seen []string
	for _, name := range got {
		key := dedupeKey(name.String())
		s.False(nearDuplicate(key, seen), name.String())
		seen = append(seen, key)
	}
}
