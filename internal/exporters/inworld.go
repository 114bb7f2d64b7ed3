package exporters

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
)

// InworldDialogueGoal is one goal the character pursues in conversation
type InworldDialogueGoal struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

// InworldKnowledgeEntry groups facts under a topic
type InworldKnowledgeEntry struct {
	Topic string   `json:"topic"`
	Facts []string `json:"facts"`
}

// InworldBehaviorNode is a trigger, response or action node
type InworldBehaviorNode struct {
	NodeType   string `json:"nodeType"`
	Condition  string `json:"condition,omitempty"`
	Response   string `json:"response,omitempty"`
	NextNodeID string `json:"nextNodeId,omitempty"`
}

// InworldCharacter is the Inworld character payload
type InworldCharacter struct {
	Name              string                  `json:"name"`
	DisplayName       string                  `json:"displayName"`
	Description       string                  `json:"description"`
	PersonalityPrompt string                  `json:"personalityPrompt"`
	Tags              []string                `json:"tags"`
	DialogueGoals     []InworldDialogueGoal   `json:"dialogueGoals"`
	KnowledgeGraph    []InworldKnowledgeEntry `json:"knowledgeGraph"`
	BehaviorTree      []InworldBehaviorNode   `json:"behaviorTree"`
}

// ToInworld maps an avatar to an Inworld character
func ToInworld(a *entities.Avatar) *InworldCharacter {
	name := fullName(a.Identity.PrimaryName)
	display := name
	if light := a.Identity.Pseudonyms.LightSide; light != nil {
		display = *light
	}

	tags := make([]string, 0, len(a.Heritage.Components)+3)
	for _, c := range a.Heritage.Components {
		tags = append(tags, string(c.Culture))
	}
	tags = append(tags, string(a.Being.Order), a.Being.Office, string(a.Being.TarotArchetype))

	return &InworldCharacter{
		Name:        name,
		DisplayName: display,
		Description: fmt.Sprintf("%s Known as %s.", a.Personality.Summary, a.Mythos.ShortTitle),
		PersonalityPrompt: strings.Join([]string{
			a.Mythos.OriginStory,
			a.Mythos.ProphecyOrCurse,
			"Signature ritual: " + a.Mythos.SignatureRitual,
			"Values: " + strings.Join(a.Personality.CoreValues, ", "),
		}, " "),
		Tags: tags,
		DialogueGoals: []InworldDialogueGoal{
			{ID: "prophecy_fulfillment", Description: a.Mythos.ProphecyOrCurse, Priority: 10},
			{ID: "faction_loyalty", Description: "Serve the interests of " + a.Mythos.Faction, Priority: 8},
			{ID: "ritual_practice", Description: "Perform and teach: " + a.Mythos.SignatureRitual, Priority: 6},
		},
		KnowledgeGraph: []InworldKnowledgeEntry{
			{Topic: "heritage", Facts: heritageShares(a.Heritage, "lineage")},
			{Topic: "faction", Facts: []string{"Member of " + a.Mythos.Faction, "Role: " + a.Being.Office}},
			{Topic: "tastes", Facts: []string{
				"Music: " + strings.Join(a.TasteProfile.Music, ", "),
				"Fashion: " + strings.Join(a.TasteProfile.Fashion, ", "),
				"Indulgences: " + strings.Join(a.TasteProfile.Indulgences, ", "),
			}},
			{Topic: "values", Facts: append([]string{}, a.Personality.CoreValues...)},
		},
		BehaviorTree: []InworldBehaviorNode{
			{
				NodeType:   "trigger",
				Condition:  "user_greets",
				Response:   fmt.Sprintf("Greetings. I am %s, %s of %s.", display, a.Being.Office, a.Mythos.Faction),
				NextNodeID: "assess_intent",
			},
			{
				NodeType:   "trigger",
				Condition:  "user_asks_about_prophecy",
				Response:   a.Mythos.ProphecyOrCurse,
				NextNodeID: "discuss_fate",
			},
			{
				NodeType:   "trigger",
				Condition:  "user_asks_about_ritual",
				Response:   a.Mythos.SignatureRitual,
				NextNodeID: "ritual_explanation",
			},
			{
				NodeType:  "action",
				Condition: "threatened",
				Response: pick(a.Personality.Axes.MercyVsRuthlessness > 0.5,
					"I offer you mercy, but do not mistake it for weakness.",
					"Your defiance will be met with swift judgment."),
			},
		},
	}
}
