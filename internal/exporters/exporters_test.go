package exporters_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
	"github.com/KirkDiggler/oripheon-api/internal/exporters"
)

type ExportersTestSuite struct {
	suite.Suite
	avatar *entities.Avatar
}

func TestExportersSuite(t *testing.T) {
	suite.Run(t, new(ExportersTestSuite))
}

func (s *ExportersTestSuite) SetupTest() {
	title := "St."
	light := "Celtic and Arabic Dawn"
	dark := "Vale Thorn"
	s.avatar = &entities.Avatar{
		ID:   "avatar-1",
		Seed: 42,
		Identity: entities.Identity{
			PrimaryName: entities.PrimaryName{Title: &title, Form: entities.FirstLast{First: "Ada", Last: "Vale"}},
			Pseudonyms:  entities.Pseudonyms{LightSide: &light, DarkSide: &dark},
			Gender:      entities.GenderFemale,
		},
		Heritage: entities.Heritage{
			Mode: entities.HeritageMixed,
			Components: []entities.HeritageComponent{
				{Culture: entities.CultureCeltic, Weight: 0.62},
				{Culture: entities.CultureArabic, Weight: 0.38},
			},
		},
		Being: entities.Being{Order: entities.OrderAngel, Office: "herald", TarotArchetype: entities.TarotStar},
		Personality: entities.Personality{
			Summary:    "A calm force.",
			Axes:       entities.PersonalityAxes{OrderVsChaos: 0.8, MercyVsRuthlessness: 0.2, IntrovertVsExtrovert: 0.6, FaithVsDoubt: 0.4},
			CoreValues: []string{"loyalty", "vision"},
		},
		Mythos: entities.Mythos{
			ShortTitle:      "The Seer of Chrome Rain",
			OriginStory:     "Born of storms.",
			Faction:         "Choir of Rust",
			ProphecyOrCurse: "Prophecy claims much.",
			SignatureRitual: "Sings coded hymns.",
		},
		TasteProfile: entities.TasteProfile{
			Music: []string{"desert blues", "glitch harps"},
			Likes: []string{"archive dust", "storm watching", "honest wagers"},
		},
	}
}

func (s *ExportersTestSuite) TestParseFormat() {
	f, err := exporters.ParseFormat(" Inworld ")
	s.Require().NoError(err)
	s.Equal(exporters.FormatInworld, f)

	_, err = exporters.ParseFormat("unity")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ExportersTestSuite) TestInworld() {
	c := exporters.ToInworld(s.avatar)

	s.Equal("St. Ada Vale", c.Name)
	s.Equal("Celtic and Arabic Dawn", c.DisplayName)
	s.Equal("A calm force. Known as The Seer of Chrome Rain.", c.Description)
	s.Equal([]string{"celtic", "arabic", "angel", "herald", "star"}, c.Tags)
	s.Equal([]string{"62% celtic lineage", "38% arabic lineage"}, c.KnowledgeGraph[0].Facts)
	s.Equal("Greetings. I am Celtic and Arabic Dawn, herald of Choir of Rust.", c.BehaviorTree[0].Response)
	s.Equal("Your defiance will be met with swift judgment.", c.BehaviorTree[3].Response)
}

func (s *ExportersTestSuite) TestInworldMononymFallbacks() {
	s.avatar.Identity.PrimaryName = entities.PrimaryName{Form: entities.Mononym{}}
	s.avatar.Identity.Pseudonyms = entities.Pseudonyms{}

	c := exporters.ToInworld(s.avatar)
	s.Equal("Nameless", c.Name)
	s.Equal("Nameless", c.DisplayName)
}

func (s *ExportersTestSuite) TestConvai() {
	c := exporters.ToConvai(s.avatar)

	s.Equal("Ada Vale", c.Name)
	s.Equal("Born of storms. Sings coded hymns.", c.Backstory)
	s.Equal("A calm force. Core values: loyalty, vision. Prophecy: Prophecy claims much.", c.Personality)
	s.Equal("Heritage: 62% celtic, 38% arabic", c.CoreMemories[2].Content)
	s.Equal(exporters.ConvaiVoiceConfig{VoiceType: "confident", Pitch: 1.3, Speed: 0.9, Emotion: "stern"}, c.VoiceConfig)

	s.avatar.Identity.PrimaryName = entities.PrimaryName{Form: entities.FusedMononym{Fused: "Adale", First: "Ada", Last: "Vale"}}
	s.Equal("Adale", exporters.ToConvai(s.avatar).Name)
}

func (s *ExportersTestSuite) TestCharisma() {
	c := exporters.ToCharisma(s.avatar)

	s.Equal("Vale Thorn", c.Name)
	s.Equal("The Seer of Chrome Rain. Born of storms. Member of Choir of Rust.", c.Bio)
	s.Equal("Leans order with ruthlessness and doubt as guiding lights.", c.EmotionalProfile)
	s.Equal("Taste: loves desert blues & glitch harps", c.Hooks[2])
	s.Len(c.SceneGraph, 5)
	s.Equal(0.2, c.Beats[3].RequiredTraits["mercy"])
	s.Equal("Reflect on the encounter and share wisdom about archive dust", c.Beats[4].DialoguePrompt)

	raw, err := json.Marshal(c)
	s.Require().NoError(err)
	s.Contains(string(raw), `"transitions":[]`)
}

func (s *ExportersTestSuite) TestExport() {
	for _, f := range exporters.Formats {
		payload, err := exporters.Export(s.avatar, f)
		s.Require().NoError(err)
		s.NotNil(payload)
	}

	_, err := exporters.Export(nil, exporters.FormatConvai)
	s.True(errors.IsInvalidArgument(err))

	_, err = exporters.Export(s.avatar, "unity")
	s.True(errors.IsInvalidArgument(err))
}
