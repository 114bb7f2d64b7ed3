package exporters

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
)

// CharismaTransition moves the story to another scene
type CharismaTransition struct {
	TargetSceneID string `json:"targetSceneId"`
	Condition     string `json:"condition"`
}

// CharismaSceneNode is one scene in the encounter graph
type CharismaSceneNode struct {
	SceneID     string               `json:"sceneId"`
	SceneName   string               `json:"sceneName"`
	Description string               `json:"description"`
	Transitions []CharismaTransition `json:"transitions"`
}

// CharismaCurveStep shifts a trait when an event fires
type CharismaCurveStep struct {
	TriggerEvent string  `json:"triggerEvent"`
	DeltaValue   float64 `json:"deltaValue"`
}

// CharismaTraitCurve tracks one trait over the encounter
type CharismaTraitCurve struct {
	TraitName string              `json:"traitName"`
	BaseValue float64             `json:"baseValue"`
	CurvePath []CharismaCurveStep `json:"curvePath"`
}

// CharismaBeat is one narrative beat
type CharismaBeat struct {
	BeatID             string             `json:"beatId"`
	BeatType           string             `json:"beatType"`
	DialoguePrompt     string             `json:"dialoguePrompt"`
	EmotionalIntensity int                `json:"emotionalIntensity"`
	RequiredTraits     map[string]float64 `json:"requiredTraits,omitempty"`
}

// CharismaCharacter is the Charisma character payload
type CharismaCharacter struct {
	Name             string               `json:"name"`
	Bio              string               `json:"bio"`
	EmotionalProfile string               `json:"emotionalProfile"`
	Hooks            []string             `json:"hooks"`
	SceneGraph       []CharismaSceneNode  `json:"sceneGraph"`
	TraitCurves      []CharismaTraitCurve `json:"traitCurves"`
	Beats            []CharismaBeat       `json:"beats"`
}

// ToCharisma maps an avatar to a Charisma character. The dark-side
// pseudonym is preferred as the name.
func ToCharisma(a *entities.Avatar) *CharismaCharacter {
	axes := a.Personality.Axes
	m := a.Mythos

	name := shortName(a.Identity.PrimaryName)
	if dark := a.Identity.Pseudonyms.DarkSide; dark != nil {
		name = *dark
	}

	var favorite string
	if len(a.TasteProfile.Likes) > 0 {
		favorite = a.TasteProfile.Likes[0]
	}

	return &CharismaCharacter{
		Name: name,
		Bio:  fmt.Sprintf("%s. %s Member of %s.", m.ShortTitle, m.OriginStory, m.Faction),
		EmotionalProfile: fmt.Sprintf("Leans %s with %s and %s as guiding lights.",
			pick(axes.OrderVsChaos > 0.5, "order", "chaos"),
			pick(axes.MercyVsRuthlessness > 0.5, "mercy", "ruthlessness"),
			pick(axes.FaithVsDoubt > 0.5, "faith", "doubt"),
		),
		Hooks: []string{
			"Prophecy: " + m.ProphecyOrCurse,
			"Ritual: " + m.SignatureRitual,
			"Taste: loves " + strings.Join(a.TasteProfile.Music, " & "),
		},
		SceneGraph: []CharismaSceneNode{
			{
				SceneID:     "intro",
				SceneName:   "First Encounter",
				Description: "Initial meeting with " + a.Being.Office,
				Transitions: []CharismaTransition{
					{TargetSceneID: "ritual_scene", Condition: "user_asks_about_abilities"},
					{TargetSceneID: "prophecy_scene", Condition: "user_asks_about_destiny"},
					{TargetSceneID: "conflict", Condition: "user_shows_hostility"},
				},
			},
			{
				SceneID:     "ritual_scene",
				SceneName:   "Ritual Demonstration",
				Description: m.SignatureRitual,
				Transitions: []CharismaTransition{
					{TargetSceneID: "prophecy_scene", Condition: "ritual_complete"},
					{TargetSceneID: "resolution", Condition: "user_satisfied"},
				},
			},
			{
				SceneID:     "prophecy_scene",
				SceneName:   "Prophecy Revelation",
				Description: m.ProphecyOrCurse,
				Transitions: []CharismaTransition{{TargetSceneID: "resolution", Condition: "prophecy_understood"}},
			},
			{
				SceneID:     "conflict",
				SceneName:   "Trial of Will",
				Description: a.Being.Office + " confronts opposition",
				Transitions: []CharismaTransition{{TargetSceneID: "resolution", Condition: "conflict_resolved"}},
			},
			{
				SceneID:     "resolution",
				SceneName:   "Parting Ways",
				Description: "Conclusion of the encounter",
				Transitions: []CharismaTransition{},
			},
		},
		TraitCurves: []CharismaTraitCurve{
			{TraitName: "order", BaseValue: axes.OrderVsChaos, CurvePath: []CharismaCurveStep{
				{TriggerEvent: "witness_chaos", DeltaValue: -0.1},
				{TriggerEvent: "restore_order", DeltaValue: 0.2},
			}},
			{TraitName: "mercy", BaseValue: axes.MercyVsRuthlessness, CurvePath: []CharismaCurveStep{
				{TriggerEvent: "show_compassion", DeltaValue: 0.15},
				{TriggerEvent: "face_betrayal", DeltaValue: -0.2},
			}},
			{TraitName: "faith", BaseValue: axes.FaithVsDoubt, CurvePath: []CharismaCurveStep{
				{TriggerEvent: "prophecy_fulfilled", DeltaValue: 0.3},
				{TriggerEvent: "prophecy_challenged", DeltaValue: -0.15},
			}},
			{TraitName: "openness", BaseValue: axes.IntrovertVsExtrovert, CurvePath: []CharismaCurveStep{
				{TriggerEvent: "trust_earned", DeltaValue: 0.2},
				{TriggerEvent: "trust_broken", DeltaValue: -0.25},
			}},
		},
		Beats: []CharismaBeat{
			{
				BeatID:             "intro_beat",
				BeatType:           "exposition",
				DialoguePrompt:     fmt.Sprintf("Introduce yourself as %s, member of %s", m.ShortTitle, m.Faction),
				EmotionalIntensity: 3,
			},
			{
				BeatID:             "ritual_beat",
				BeatType:           "rising_action",
				DialoguePrompt:     m.SignatureRitual,
				EmotionalIntensity: 6,
				RequiredTraits:     map[string]float64{"order": 0.5},
			},
			{
				BeatID:             "prophecy_reveal",
				BeatType:           "climax",
				DialoguePrompt:     m.ProphecyOrCurse,
				EmotionalIntensity: 9,
				RequiredTraits:     map[string]float64{"faith": 0.6},
			},
			{
				BeatID:             "conflict_beat",
				BeatType:           "climax",
				DialoguePrompt:     fmt.Sprintf("Defend %s in the face of opposition", strings.Join(a.Personality.CoreValues, ", ")),
				EmotionalIntensity: 10,
				RequiredTraits:     map[string]float64{"mercy": axes.MercyVsRuthlessness},
			},
			{
				BeatID:             "resolution_beat",
				BeatType:           "resolution",
				DialoguePrompt:     "Reflect on the encounter and share wisdom about " + favorite,
				EmotionalIntensity: 4,
			},
		},
	}
}
