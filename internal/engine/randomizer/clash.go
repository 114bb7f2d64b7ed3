package randomizer

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/rng"
)

var (
	sacredTitles = []string{
		"St.", "Saint", "Holy", "Blessed", "Divine", "Seraphic", "Mother Superior",
		"Archangel", "Radiant", "Prophet", "High Priest",
	}
	sacredEchoes = []string{
		"Seraph", "Angel", "Oracle", "Temple", "Cathedral", "Gospel", "Hymn", "Sanctum",
		"Halo", "Reliquary", "Meme", "Prompt", "Thread", "Emoji", "Mod", "Server", "Moderator",
	}
	profaneCores = []string{
		"Madman", "Dying God", "Clown Prince", "Void Jester", "Troll Herald", "Profane Lamb",
		"Grinning Plague", "Blasphemer", "Laughing Abyss", "Rotting Cherub", "Rust Messiah",
		"Goat Meme", "Betty Meme", "Shitpost Archon", "Copypasta King", "Prompt Gremlin",
		"Thread Goblin", "Meme Revenant", "Emoji Wraith", "Giga Chad", "Reddit Oracle",
		"Prompt Pastor",
	}
	profaneTrails = []string{
		"Laughter", "Carnival", "Jester", "Chaos", "Neon", "Joke", "Grave", "Nonsense",
		"Bruise", "Blasphemy", "Mainframe", "404", "Shitpost", "Copium", "Lag", "Latency",
		"Algorithm", "Promptstorm", "Upvote", "Downvote", "Doomscroll", "Bandwidth", "Cache",
	}
	internetHandles = []string{
		"Betty Meme", "Goat Meme", "UwU Prophet", "Copypasta Oracle", "Thread Gremlin",
		"Emoji Pope", "AI Prompt", "Server Goblin", "Doomscroll Saint", "Meme Witch",
		"Reddit Oracle", "Hashtag Halo", "Prompt Storm",
	}
	clashJoiners = []string{"of", "and", "+"}

	clashPatterns = []func(p, a string) string{
		func(p, a string) string { return p + " " + a },
		func(p, a string) string { return p + "-" + a },
		func(p, a string) string { return p + " of " + a },
		func(p, a string) string { return p + " the " + a },
		func(p, a string) string { return p + " of the " + a },
		func(p, a string) string { return p + " + " + a },
	}
)

var (
	clashDisallowed = regexp.MustCompile(`[^A-Za-z0-9\s\-'+]`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

func sanitizeClash(value string) string {
	value = clashDisallowed.ReplaceAllString(value, "")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(value, " "))
}

// applyClash replaces the name with a sacred title over a profane mononym.
func (r *Randomizer) applyClash(draft *nameDraft, pref entities.LengthPreference) {
	sacred := rng.MustChoice(r.src, sacredTitles)
	seed := rng.MustChoice(r.src, profaneCores)

	var anchorPool []string
	for _, v := range []string{draft.mononym, draft.first, draft.middle, draft.last} {
		if s := sanitizeClash(v); s != "" {
			anchorPool = append(anchorPool, s)
		}
	}
	anchorPool = append(anchorPool, sacredEchoes...)
	anchorPool = append(anchorPool, profaneTrails...)
	anchorPool = append(anchorPool, internetHandles...)
	anchor := func() string { return sanitizeClash(rng.MustChoice(r.src, anchorPool)) }

	buildShort := func() string {
		token := strings.Fields(seed)[0]
		if rng.Bool(r.src, 0.4) {
			return sanitizeClash(token)
		}
		return sanitizeClash(token + " " + firstWord(anchor()))
	}
	buildLong := func() string {
		a := anchor()
		var extras []string
		if rng.Bool(r.src, 0.7) {
			extras = append(extras, anchor())
		}
		if rng.Bool(r.src, 0.4) {
			extras = append(extras, anchor())
		}
		result := rng.MustChoice(r.src, clashPatterns)(seed, a)
		for _, extra := range extras {
			result += " " + rng.MustChoice(r.src, clashJoiners) + " " + extra
		}
		return sanitizeClash(result)
	}

	var profane string
	if pref == entities.LengthLong {
		profane = buildLong()
	} else {
		profane = buildShort()
	}
	if pref == entities.LengthAny && rng.Bool(r.src, 0.5) {
		profane = buildLong()
	}
	if profane == "" {
		profane = seed + " " + anchor()
	}

	draft.title = &sacred
	draft.mode = entities.NameModeMononym
	draft.first, draft.middle, draft.last = "", "", ""
	draft.mononym = profane
}

func firstWord(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return ""
}
