package testutils

import (
	"time"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
)

// FixtureTime is the createdAt used by NewTestAvatar
var FixtureTime = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

// NewTestAvatar returns a fully populated avatar with a fixed seed. It is
// not the output of any particular generation run.
func NewTestAvatar(id string, createdAt time.Time) *entities.Avatar {
	light := "Celtic Dawn"
	dark := "Lumen Ashfall"
	title := "Saint"
	return &entities.Avatar{
		ID:   id,
		Seed: 42,
		Identity: entities.Identity{
			PrimaryName: entities.PrimaryName{
				Title: &title,
				Form:  entities.FirstLast{First: "Aelis", Last: "Lumen"},
			},
			Pseudonyms: entities.Pseudonyms{LightSide: &light, DarkSide: &dark},
			Gender:     entities.GenderFemale,
			NameMeaning: "Aelis (a Celtic epithet aligned with radiant guardianship.); " +
				"Lumen (a Celtic epithet aligned with radiant guardianship.).",
		},
		Heritage: entities.Heritage{
			Mode: entities.HeritageSingle,
			Components: []entities.HeritageComponent{
				{Culture: entities.CultureCeltic, Weight: 1},
			},
		},
		Being: entities.Being{
			Order:          entities.OrderAngel,
			Office:         "Seraph",
			TarotArchetype: entities.TarotStar,
		},
		Appearance: entities.Appearance{
			AgeAppearance: "ageless youth",
			Presentation:  "luminous and serene",
			KeyFeatures:   []string{"silver eyes", "halo of embers", "scarred wings"},
		},
		Personality: entities.Personality{
			Summary: "A quiet guardian who keeps vigil.",
			Axes: entities.PersonalityAxes{
				OrderVsChaos:         0.25,
				MercyVsRuthlessness:  0.1,
				IntrovertVsExtrovert: 0.4,
				FaithVsDoubt:         0.9,
			},
			CoreValues: []string{"Mercy", "Truth"},
		},
		Mythos: entities.Mythos{
			ShortTitle:      "The Last Vigil",
			OriginStory:     "Born where the sea meets the sky.",
			Faction:         "The Choir of Embers",
			ProphecyOrCurse: "Will fall when the last star dims.",
			SignatureRitual: "Lights a candle for every name forgotten.",
		},
		TasteProfile: entities.TasteProfile{
			Music:       []string{"choral drones", "harp"},
			Fashion:     []string{"linen", "gold thread"},
			Indulgences: []string{"honey", "rain"},
			Likes:       []string{"dawn", "silence", "bells"},
			Dislikes:    []string{"lies", "iron"},
		},
		CreatedAt: createdAt,
	}
}
