package randomizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/oripheon-api/internal/engine/banks"
	banksmock "github.com/KirkDiggler/oripheon-api/internal/engine/banks/mock"
	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/rng"
)

type RandomizerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockNames *banksmock.MockGenerator
	celtic    entities.Heritage
}

func TestRandomizerSuite(t *testing.T) {
	suite.Run(t, new(RandomizerTestSuite))
}

func (s *RandomizerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockNames = banksmock.NewMockGenerator(s.ctrl)
	s.celtic = entities.Heritage{
		Mode:       entities.HeritageSingle,
		Components: []entities.HeritageComponent{{Culture: entities.CultureCeltic, Weight: 1}},
	}
}

func (s *RandomizerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RandomizerTestSuite) TestHeritageWeights() {
	for seed := int64(1); seed <= 200; seed++ {
		h, err := New(rng.New(seed), s.mockNames, nil).DefaultHeritage()
		s.Require().NoError(err)

		switch h.Mode {
		case entities.HeritageSingle:
			s.Require().Len(h.Components, 1)
			s.Equal(1.0, h.Components[0].Weight)
		case entities.HeritageMixed:
			s.Require().Len(h.Components, 2)
			s.NotEqual(h.Components[0].Culture, h.Components[1].Culture)
			s.GreaterOrEqual(h.Components[0].Weight, 0.35)
			s.LessOrEqual(h.Components[0].Weight, 0.7)
			s.InDelta(1.0, h.Components[0].Weight+h.Components[1].Weight, 1e-9)
		default:
			s.Failf("unexpected mode", "%q", h.Mode)
		}
	}
}

func (s *RandomizerTestSuite) TestHeritageForcedMixed() {
	h, err := New(rng.New(5), s.mockNames, nil).Heritage(1)
	s.Require().NoError(err)
	s.Equal(entities.HeritageMixed, h.Mode)
}

func (s *RandomizerTestSuite) TestBeingKeepsPartial() {
	r := New(rng.New(9), s.mockNames, nil)

	being, err := r.Being(&entities.BeingParams{Order: entities.OrderFae})
	s.Require().NoError(err)
	s.Equal(entities.OrderFae, being.Order)
	s.Contains(Offices(entities.OrderFae), being.Office)
	s.Contains(entities.TarotArchetypes, being.TarotArchetype)

	being, err = r.Being(&entities.BeingParams{
		Order:          entities.OrderAngel,
		Office:         "custom office",
		TarotArchetype: entities.TarotStar,
	})
	s.Require().NoError(err)
	s.Equal("custom office", being.Office)
	s.Equal(entities.TarotStar, being.TarotArchetype)
}

func (s *RandomizerTestSuite) TestIdentityFirstLastWithoutTitle() {
	s.mockNames.EXPECT().GivenName(gomock.Any(), gomock.Any()).Return("Aoife", nil)
	s.mockNames.EXPECT().Surname(gomock.Any(), gomock.Any()).Return("Byrne", nil)

	out, err := New(rng.New(1), s.mockNames, nil).Identity(IdentityInput{
		Params: &entities.IdentityParams{
			Gender:   entities.GenderFemale,
			NameMode: entities.NameModeFirstLast,
			Title:    entities.NoTitle(),
		},
		Heritage:       s.celtic,
		NeedPseudonyms: true,
		Order:          entities.OrderHuman,
	})
	s.Require().NoError(err)

	name := out.Identity.PrimaryName
	s.Nil(name.Title)
	s.Equal(entities.FirstLast{First: "Aoife", Last: "Byrne"}, name.Form)
	s.Equal(entities.GenderFemale, out.Identity.Gender)
	s.Require().NotNil(out.Identity.Pseudonyms.LightSide)
	s.Equal("Celtic Dawn", *out.Identity.Pseudonyms.LightSide)
	s.Require().NotNil(out.Identity.Pseudonyms.DarkSide)
	s.True(strings.HasPrefix(*out.Identity.Pseudonyms.DarkSide, "Byrne "))
	s.Empty(out.Identity.NameMeaning)
}

func (s *RandomizerTestSuite) TestIdentityMiddleNameIsAndrogynous() {
	s.mockNames.EXPECT().GivenName(gomock.Any(), gomock.Any()).Return("Finn", nil)
	s.mockNames.EXPECT().Surname(gomock.Any(), gomock.Any()).Return("Walsh", nil)
	s.mockNames.EXPECT().GivenName(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ rng.Source, req banks.Request) (string, error) {
			s.Equal(entities.GenderAndrogynous, req.Gender)
			return "Rowan", nil
		})

	out, err := New(rng.New(2), s.mockNames, nil).Identity(IdentityInput{
		Params: &entities.IdentityParams{
			Gender:   entities.GenderMale,
			NameMode: entities.NameModeFirstMiddleLast,
			Title:    entities.ForceTitle("Lord"),
		},
		Heritage: s.celtic,
		Order:    entities.OrderHuman,
	})
	s.Require().NoError(err)
	s.Equal("Lord Finn Rowan Walsh", out.Identity.PrimaryName.String())
	s.Nil(out.Identity.Pseudonyms.LightSide)
	s.Nil(out.Identity.Pseudonyms.DarkSide)
}

func (s *RandomizerTestSuite) TestIdentityFusedKeepsParts() {
	s.mockNames.EXPECT().GivenName(gomock.Any(), gomock.Any()).Return("Seraphina", nil)
	s.mockNames.EXPECT().Surname(gomock.Any(), gomock.Any()).Return("Lightbringer", nil)

	out, err := New(rng.New(4), s.mockNames, nil).Identity(IdentityInput{
		Params:   &entities.IdentityParams{NameMode: entities.NameModeFusedMononym, Title: entities.NoTitle()},
		Heritage: s.celtic,
		Order:    entities.OrderAngel,
	})
	s.Require().NoError(err)

	fused, ok := out.Identity.PrimaryName.Form.(entities.FusedMononym)
	s.Require().True(ok)
	s.Equal("Seraphina", fused.First)
	s.Equal("Lightbringer", fused.Last)
	s.GreaterOrEqual(len(fused.Fused), 3)
	s.LessOrEqual(len(fused.Fused), 10)
}

func (s *RandomizerTestSuite) TestIdentityClash() {
	s.Run("when requested", func() {
		s.mockNames.EXPECT().Mononym(gomock.Any(), gomock.Any()).Return("Halo", nil)

		out, err := New(rng.New(11), s.mockNames, nil).Identity(IdentityInput{
			Params: &entities.IdentityParams{
				NameMode:   entities.NameModeMononym,
				ClashNames: true,
			},
			Heritage: s.celtic,
			Order:    entities.OrderAngel,
		})
		s.Require().NoError(err)

		name := out.Identity.PrimaryName
		s.Equal(entities.NameModeMononym, name.Mode())
		s.Require().NotNil(name.Title)
		s.Contains(sacredTitles, *name.Title)
		s.NotEmpty(name.Form.(entities.Mononym).Value)
	})

	s.Run("always for tricksters", func() {
		s.mockNames.EXPECT().GivenName(gomock.Any(), gomock.Any()).Return("Loki", nil)
		s.mockNames.EXPECT().Surname(gomock.Any(), gomock.Any()).Return("Grin", nil)

		out, err := New(rng.New(12), s.mockNames, nil).Identity(IdentityInput{
			Params:   &entities.IdentityParams{NameMode: entities.NameModeFirstLast},
			Heritage: s.celtic,
			Order:    entities.OrderTrickster,
		})
		s.Require().NoError(err)
		s.Equal(entities.NameModeMononym, out.Identity.PrimaryName.Mode())
		s.Equal(out.BaseName, out.Identity.PrimaryName)
	})
}

func (s *RandomizerTestSuite) TestSanitizeClash() {
	s.Equal("Rust Messiah of 404", sanitizeClash("  Rust   Messiah! of #404 "))
	s.Equal("Goat-Meme + Lag", sanitizeClash("Goat-Meme + Lag"))
}

func (s *RandomizerTestSuite) TestPreferredNames() {
	s.Run("snaps a near miss to the order pool", func() {
		s.mockNames.EXPECT().Mononym(gomock.Any(), gomock.Any()).Return("Lux", nil)

		prompt := &entities.Prompt{PreferredNames: []string{"  beakon "}}
		out, err := New(rng.New(3), s.mockNames, prompt).Identity(IdentityInput{
			Params:   &entities.IdentityParams{NameMode: entities.NameModeMononym, Title: entities.NoTitle()},
			Heritage: s.celtic,
			Order:    entities.OrderAngel,
		})
		s.Require().NoError(err)
		s.Equal(entities.Mononym{Value: "Beacon"}, out.Identity.PrimaryName.Form)
	})

	s.Run("splits a full name across parts", func() {
		s.mockNames.EXPECT().GivenName(gomock.Any(), gomock.Any()).Return("Azrael", nil)
		s.mockNames.EXPECT().Surname(gomock.Any(), gomock.Any()).Return("Starborn", nil)

		prompt := &entities.Prompt{PreferredNames: []string{"zorblax quuxington"}}
		out, err := New(rng.New(3), s.mockNames, prompt).Identity(IdentityInput{
			Params: &entities.IdentityParams{
				Gender:   entities.GenderMale,
				NameMode: entities.NameModeFirstLast,
				Title:    entities.NoTitle(),
			},
			Heritage: s.celtic,
			Order:    entities.OrderAngel,
		})
		s.Require().NoError(err)
		s.Equal(entities.FirstLast{First: "Zorblax", Last: "Quuxington"}, out.Identity.PrimaryName.Form)
	})
}

func (s *RandomizerTestSuite) TestResolvePreference() {
	pool := []string{"Seraphina", "Celestia", "Grace"}

	s.Equal("Seraphina", resolvePreference([]string{"SERAPHÍNA"}, pool))
	s.Equal("Celestia", resolvePreference([]string{"Celestya"}, pool))
	s.Equal("Grace", resolvePreference([]string{"grase"}, pool))
	s.Equal("Gr", resolvePreference([]string{"gr"}, pool))
	s.Equal("Xanthippe", resolvePreference([]string{"xanthippe"}, pool))
	s.Equal("Ada", resolvePreference([]string{"ada"}, nil))
	s.Empty(resolvePreference([]string{"  "}, pool))
}

func (s *RandomizerTestSuite) TestSigilBloom() {
	s.Run("decorates the display name only", func() {
		s.mockNames.EXPECT().Mononym(gomock.Any(), gomock.Any()).Return("Sanctus", nil)

		prompt := &entities.Prompt{SigilBloom: &entities.SigilBloom{Enabled: true, Intensity: 100}}
		out, err := New(rng.New(8), s.mockNames, prompt).Identity(IdentityInput{
			Params:         &entities.IdentityParams{NameMode: entities.NameModeMononym, Title: entities.NoTitle()},
			Heritage:       s.celtic,
			NeedPseudonyms: true,
			Order:          entities.OrderAngel,
		})
		s.Require().NoError(err)

		s.Equal(entities.Mononym{Value: "Sanctus"}, out.BaseName.Form)
		styled := out.Identity.PrimaryName.Form.(entities.Mononym).Value
		s.NotEqual("Sanctus", styled)
		s.Contains(triangleGlyphs, string([]rune(styled)[0]))
		s.True(strings.HasPrefix(*out.Identity.Pseudonyms.DarkSide, "Sanctus "))
	})

	s.Run("zero intensity is a no-op", func() {
		s.mockNames.EXPECT().Mononym(gomock.Any(), gomock.Any()).Return("Sanctus", nil)

		prompt := &entities.Prompt{SigilBloom: &entities.SigilBloom{Enabled: true, Intensity: 0}}
		out, err := New(rng.New(8), s.mockNames, prompt).Identity(IdentityInput{
			Params:   &entities.IdentityParams{NameMode: entities.NameModeMononym, Title: entities.NoTitle()},
			Heritage: s.celtic,
			Order:    entities.OrderAngel,
		})
		s.Require().NoError(err)
		s.Equal(entities.Mononym{Value: "Sanctus"}, out.Identity.PrimaryName.Form)
	})
}

func (s *RandomizerTestSuite) TestAccentPreservesCase() {
	r := New(rng.New(21), s.mockNames, nil)
	out := []rune(r.accent("ADA", 1))
	s.Len(out, 3)
	for _, c := range out {
		s.NotEqual('A', c)
		s.NotEqual('a', c)
	}
}

func (s *RandomizerTestSuite) TestIdentityIsDeterministic() {
	draw := func() entities.Identity {
		r := New(rng.New(42), banks.NewInMemory(), nil)
		out, err := r.Identity(IdentityInput{Heritage: s.celtic, NeedPseudonyms: true, Order: entities.OrderJinn})
		s.Require().NoError(err)
		return out.Identity
	}
	s.Equal(draw(), draw())
}

func (s *RandomizerTestSuite) TestForgePath() {
	prompt := &entities.Prompt{NameArchetype: " ashen_seer ", NameTraits: []string{"Prophet"}}
	out, err := New(rng.New(42), s.mockNames, prompt).Identity(IdentityInput{
		Params:   &entities.IdentityParams{NameMode: entities.NameModeMononym, Title: entities.ForceTitle("Oracle")},
		Heritage: s.celtic,
		Order:    entities.OrderAngel,
	})
	s.Require().NoError(err)
	s.Equal("Oracle", out.Identity.PrimaryName.TitleText())
	s.Equal(entities.NameModeMononym, out.Identity.PrimaryName.Mode())
}

func (s *RandomizerTestSuite) TestPersonalityFromPrompt() {
	prompt := &entities.Prompt{
		DesiredTraits: []string{"brave", "BRAVE", "kind"},
		DesiredSkills: []string{"archery"},
	}
	p := New(rng.New(6), s.mockNames, prompt).Personality()

	s.Equal("Brave", p.CoreValues[0])
	s.Equal("Kind", p.CoreValues[1])
	s.Len(p.CoreValues, 3)
	s.Equal("Guided by Brave, Brave, and Kind and devoted to Archery.", p.Summary)
	for _, v := range []float64{p.Axes.OrderVsChaos, p.Axes.MercyVsRuthlessness, p.Axes.IntrovertVsExtrovert, p.Axes.FaithVsDoubt} {
		s.GreaterOrEqual(v, 0.0)
		s.LessOrEqual(v, 1.0)
	}
}

func (s *RandomizerTestSuite) TestPersonaOverridesSummary() {
	prompt := &entities.Prompt{PersonaDescription: "A tired saint of the night shift"}
	p := New(rng.New(6), s.mockNames, prompt).Personality()
	s.Equal("A tired saint of the night shift.", p.Summary)
}

func (s *RandomizerTestSuite) TestMythos() {
	being := entities.Being{Order: entities.OrderAngel, Office: "warden of thresholds", TarotArchetype: entities.TarotHighPriestess}
	prompt := &entities.Prompt{DesiredSkills: []string{"glass singing"}}

	m := New(rng.New(7), s.mockNames, prompt).Mythos(being, s.celtic)

	s.True(strings.HasPrefix(m.ShortTitle, "The "))
	s.Contains(m.OriginStory, "Born of Celtic lineages, this angel warden of thresholds")
	s.Contains(m.OriginStory, "Their craft centers on Glass Singing.")
	s.Equal("Prophecy claims they will awaken the age of Glass Singing when the high priestess is drawn three times in one night.", m.ProphecyOrCurse)
	s.Contains(m.SignatureRitual, "interweaving Glass Singing with every breath.")
	s.Contains(factions, m.Faction)
}

func (s *RandomizerTestSuite) TestTasteProfileSizes() {
	t := New(rng.New(10), s.mockNames, nil).TasteProfile()
	s.Len(t.Music, 2)
	s.Len(t.Fashion, 2)
	s.Len(t.Indulgences, 2)
	s.Len(t.Likes, 3)
	s.Len(t.Dislikes, 2)
}

func (s *RandomizerTestSuite) TestNameMeaning() {
	being := entities.Being{Order: entities.OrderAngel}
	theme := orderThemes[entities.OrderAngel]

	s.Run("single component", func() {
		got := NameMeaning(entities.PrimaryName{Form: entities.Mononym{Value: "Halo"}}, s.celtic, being)
		s.Equal("Halo: a Celtic epithet aligned with "+theme+".", got)
	})

	s.Run("compound", func() {
		title := "St."
		got := NameMeaning(entities.PrimaryName{Title: &title, Form: entities.FirstLast{First: "Ada", Last: "Vale"}}, s.celtic, being)
		s.True(strings.HasPrefix(got, "St. (a Celtic epithet"))
		s.True(strings.HasSuffix(got, "Combined, St. Ada Vale forms a single mantle of "+theme+"."))
	})

	s.Run("fused names describe their parts", func() {
		got := NameMeaning(entities.PrimaryName{Form: entities.FusedMononym{Fused: "Adavale", First: "Ada", Last: "Vale"}}, s.celtic, being)
		s.Contains(got, "Combined, Ada Vale forms")
		s.NotContains(got, "Adavale")
	})

	s.Run("nameless", func() {
		got := NameMeaning(entities.PrimaryName{Form: entities.Mononym{}}, s.celtic, being)
		s.Equal("Nameless avatar of the angel order, honored for "+theme+".", got)
	})
}
