package forge_test

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/oripheon-api/internal/engine/forge"
	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/rng"
)

type ForgeTestSuite struct {
	suite.Suite
}

func TestForgeSuite(t *testing.T) {
	suite.Run(t, new(ForgeTestSuite))
}

func (s *ForgeTestSuite) TestNormalizeTraitIDs() {
	s.Run("caps at three in order", func() {
		got := forge.NormalizeTraitIDs([]string{"prophet", "blacksmith", "memelord", "assassin"}, forge.MaxTraits)
		s.Equal([]forge.TraitID{forge.TraitProphet, forge.TraitBlacksmith, forge.TraitMemelord}, got)
	})
	s.Run("normalizes case and whitespace", func() {
		got := forge.NormalizeTraitIDs([]string{"  Street Saint ", "TECHNO mage"}, forge.MaxTraits)
		s.Equal([]forge.TraitID{forge.TraitStreetSaint, forge.TraitTechnoMage}, got)
	})
	s.Run("unknown ids still use a slot", func() {
		got := forge.NormalizeTraitIDs([]string{"bard", "prophet", "prophet", "exile", "paladin"}, forge.MaxTraits)
		s.Equal([]forge.TraitID{forge.TraitProphet, forge.TraitExile}, got)
	})
	s.Run("empty input", func() {
		s.Empty(forge.NormalizeTraitIDs(nil, forge.MaxTraits))
	})
}

func (s *ForgeTestSuite) TestMergeWeights() {
	archetype, ok := forge.LookupArchetype("ashen_seer")
	s.Require().True(ok)
	style, ok := forge.LookupStyle(forge.StyleEloquent)
	s.Require().True(ok)

	dist := forge.MergeWeights(&archetype, []forge.TraitID{forge.TraitProphet}, &style)

	s.InDelta(0.6+0.4+1.4, dist.Weight("sy"), 1e-9)
	s.InDelta(0.25+1.0, dist.Weight("ash"), 1e-9)
	s.InDelta(1.1+1.1+1.0, dist.Weight("el"), 1e-9)
	s.InDelta(1.0, dist.Weight("a"), 1e-9)
	s.Zero(dist.Weight("kek"))
}

func (s *ForgeTestSuite) TestGenerateWord() {
	dist := forge.MergeWeights(nil, nil, nil)
	src := rng.New(7)
	for range 200 {
		w, err := forge.GenerateWord(src, dist, 2, 4)
		s.Require().NoError(err)
		s.Require().NotEmpty(w)
		s.LessOrEqual(len(w), 14)
		s.True(unicode.IsUpper(rune(w[0])), w)
		for _, r := range w[1:] {
			s.True(r >= 'a' && r <= 'z', w)
		}
	}
}

func (s *ForgeTestSuite) TestScoreOrdering() {
	s.Greater(forge.Score("Aeloria"), forge.Score("Xqptkz"))
	s.Equal(forge.TooShortScore, forge.Score("Dr. Al"))
	s.Greater(forge.Score("Lira Lune"), forge.Score("Lira Dune"))
}

func (s *ForgeTestSuite) TestFuseBounds() {
	src := rng.New(99)
	pairs := [][2]string{
		{"Aeloria", "Vanthos"}, {"Al", "Bo"}, {"Sylbel", "Ashora"},
		{"Xy", ""}, {"Kingsley", "Bellerose"}, {"Nyx", "Krr"},
		{"Thessaly", "Sylvanmoor"}, {"A", "B"},
	}
	for range 50 {
		for _, p := range pairs {
			fused := forge.Fuse(src, p[0], p[1])
			s.GreaterOrEqual(len(fused), 3, fused)
			s.LessOrEqual(len(fused), 10, fused)
			s.True(unicode.IsUpper(rune(fused[0])), fused)
		}
	}
}

func (s *ForgeTestSuite) TestGenerateCandidatesDeterministic() {
	opts := forge.Options{
		Archetype:     "ashen_seer",
		Traits:        forge.NormalizeTraitIDs([]string{"prophet", "archivist", "street_saint"}, forge.MaxTraits),
		Style:         forge.StyleEloquent,
		AllowTitles:   true,
		AllowEpithets: true,
		NameMode:      entities.NameModeFirstLast,
		Candidates:    30,
		Limit:         10,
	}

	a, err := forge.GenerateCandidates(rng.New(42), opts)
	s.Require().NoError(err)
	b, err := forge.GenerateCandidates(rng.New(42), opts)
	s.Require().NoError(err)

	s.Len(a, 10)
	s.Equal(display(a), display(b))
	for _, n := range a {
		s.Equal(entities.NameModeFirstLast, n.Mode())
	}
}

func (s *ForgeTestSuite) TestGenerateCandidatesBackfill() {
	names, err := forge.GenerateCandidates(rng.New(5), forge.Options{
		Archetype: "void_captain",
		NameMode:  entities.NameModeMononym,
		Limit:     30,
	})
	s.Require().NoError(err)
	s.Len(names, 30)

	top := names[0].String()
	for _, n := range names {
		s.GreaterOrEqual(forge.Score(top), forge.Score(n.String()))
	}
}

func (s *ForgeTestSuite) TestGenerateCandidatesTopologies() {
	testCases := []entities.NameMode{
		entities.NameModeMononym,
		entities.NameModeFirstLast,
		entities.NameModeFirstMiddleLast,
		entities.NameModeFusedMononym,
	}
	for _, mode := range testCases {
		s.Run(string(mode), func() {
			names, err := forge.GenerateCandidates(rng.New(11), forge.Options{
				Archetype:     "thread_prophet",
				AllowEpithets: true,
				NameMode:      mode,
				Limit:         5,
			})
			s.Require().NoError(err)
			s.Len(names, 5)
			for _, n := range names {
				s.Equal(mode, n.Mode())
				s.NotEmpty(n.String())
			}
		})
	}
}

func (s *ForgeTestSuite) TestUnknownArchetype() {
	names, err := forge.GenerateCandidates(rng.New(1), forge.Options{Archetype: "nope", NameMode: entities.NameModeFirstLast})
	s.Require().NoError(err)
	s.Empty(names)
}

func (s *ForgeTestSuite) TestTitlesDisabled() {
	names, err := forge.GenerateCandidates(rng.New(3), forge.Options{
		Archetype: "ashen_seer",
		Style:     forge.StyleNoble,
		NameMode:  entities.NameModeFirstLast,
	})
	s.Require().NoError(err)
	for _, n := range names {
		s.Nil(n.Title)
	}
}

func display(names []entities.PrimaryName) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out
}
