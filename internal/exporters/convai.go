package exporters

import (
	"strings"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
)

// ConvaiAction is a scripted action the character can take
type ConvaiAction struct {
	ActionID    string `json:"actionId"`
	ActionName  string `json:"actionName"`
	Trigger     string `json:"trigger"`
	Description string `json:"description"`
}

// ConvaiGoal is a weighted conversational goal
type ConvaiGoal struct {
	GoalID        string   `json:"goalId"`
	Description   string   `json:"description"`
	Priority      int      `json:"priority"`
	RelatedTopics []string `json:"relatedTopics"`
}

// ConvaiMemory is one seeded memory
type ConvaiMemory struct {
	MemoryType string `json:"memoryType"`
	Content    string `json:"content"`
	Importance int    `json:"importance"`
}

// ConvaiVoiceConfig tunes text to speech
type ConvaiVoiceConfig struct {
	VoiceType string  `json:"voiceType"`
	Pitch     float64 `json:"pitch"`
	Speed     float64 `json:"speed"`
	Emotion   string  `json:"emotion"`
}

// ConvaiCharacter is the Convai character payload
type ConvaiCharacter struct {
	Name                string            `json:"name"`
	Backstory           string            `json:"backstory"`
	Personality         string            `json:"personality"`
	ConversationalTones []string          `json:"conversationalTones"`
	Actions             []ConvaiAction    `json:"actions"`
	Goals               []ConvaiGoal      `json:"goals"`
	CoreMemories        []ConvaiMemory    `json:"coreMemories"`
	VoiceConfig         ConvaiVoiceConfig `json:"voiceConfig"`
}

// ToConvai maps an avatar to a Convai character
func ToConvai(a *entities.Avatar) *ConvaiCharacter {
	values := strings.Join(a.Personality.CoreValues, ", ")
	axes := a.Personality.Axes

	pitch := 1.0
	switch a.Identity.Gender {
	case entities.GenderMale:
		pitch = 0.7
	case entities.GenderFemale:
		pitch = 1.3
	}

	return &ConvaiCharacter{
		Name:      shortName(a.Identity.PrimaryName),
		Backstory: a.Mythos.OriginStory + " " + a.Mythos.SignatureRitual,
		Personality: a.Personality.Summary + " Core values: " + values +
			". Prophecy: " + a.Mythos.ProphecyOrCurse,
		ConversationalTones: []string{string(a.Being.Order), a.Being.Office, string(a.Being.TarotArchetype)},
		Actions: []ConvaiAction{
			{
				ActionID:    "perform_ritual",
				ActionName:  "Perform Signature Ritual",
				Trigger:     "when asked about rituals or seeking guidance",
				Description: a.Mythos.SignatureRitual,
			},
			{
				ActionID:    "share_prophecy",
				ActionName:  "Reveal Prophecy",
				Trigger:     "when discussing fate or future events",
				Description: a.Mythos.ProphecyOrCurse,
			},
			{
				ActionID:    "invoke_faction",
				ActionName:  "Invoke Faction Authority",
				Trigger:     "when authority or alliance is questioned",
				Description: "Speak on behalf of " + a.Mythos.Faction,
			},
		},
		Goals: []ConvaiGoal{
			{
				GoalID:        "fulfill_prophecy",
				Description:   a.Mythos.ProphecyOrCurse,
				Priority:      10,
				RelatedTopics: []string{"destiny", "fate", "future", string(a.Being.TarotArchetype)},
			},
			{
				GoalID:        "uphold_values",
				Description:   "Live by the values of " + values,
				Priority:      8,
				RelatedTopics: []string{"morality", "ethics", "beliefs"},
			},
			{
				GoalID:        "serve_faction",
				Description:   "Advance the goals of " + a.Mythos.Faction,
				Priority:      7,
				RelatedTopics: []string{"faction", "duty", "loyalty", a.Mythos.Faction},
			},
		},
		CoreMemories: []ConvaiMemory{
			{MemoryType: "core", Content: a.Mythos.OriginStory, Importance: 10},
			{
				MemoryType: "core",
				Content:    "Identity: " + a.Being.Office + " of the " + string(a.Being.Order) + " order",
				Importance: 9,
			},
			{
				MemoryType: "semantic",
				Content:    "Heritage: " + strings.Join(heritageShares(a.Heritage, ""), ", "),
				Importance: 7,
			},
			{MemoryType: "semantic", Content: "Likes: " + strings.Join(a.TasteProfile.Likes, ", "), Importance: 5},
			{MemoryType: "semantic", Content: "Dislikes: " + strings.Join(a.TasteProfile.Dislikes, ", "), Importance: 5},
		},
		VoiceConfig: ConvaiVoiceConfig{
			VoiceType: pick(axes.IntrovertVsExtrovert > 0.5, "confident", "contemplative"),
			Pitch:     pitch,
			Speed:     pick(axes.OrderVsChaos > 0.5, 0.9, 1.1),
			Emotion:   pick(axes.MercyVsRuthlessness > 0.5, "compassionate", "stern"),
		},
	}
}
