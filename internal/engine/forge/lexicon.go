package forge

import "github.com/KirkDiggler/oripheon-api/internal/pkg/rng"

// TraitID names a trait that nudges syllables, titles and epithets.
type TraitID string

const (
	TraitBlacksmith   TraitID = "blacksmith"
	TraitProphet      TraitID = "prophet"
	TraitMemelord     TraitID = "memelord"
	TraitAssassin     TraitID = "assassin"
	TraitPaladin      TraitID = "paladin"
	TraitExile        TraitID = "exile"
	TraitTechnoMage   TraitID = "techno_mage"
	TraitBountyHunter TraitID = "bounty_hunter"
	TraitArchivist    TraitID = "archivist"
	TraitStreetSaint  TraitID = "street_saint"
)

// StyleID names a naming style.
type StyleID string

const (
	StyleEloquent  StyleID = "eloquent"
	StyleHarsh     StyleID = "harsh"
	StyleNoble     StyleID = "noble"
	StyleMystic    StyleID = "mystic"
	StyleStreet    StyleID = "street"
	StyleCorporate StyleID = "corporate"
	StyleComic     StyleID = "comic"
)

// Boost is an additive weight adjustment for one fragment.
type Boost struct {
	Fragment string
	Amount   float64
}

// Trait is a static trait definition.
type Trait struct {
	ID       TraitID
	Label    string
	Boosts   []Boost
	Titles   []string
	Epithets []string
}

// Style is a static style definition.
type Style struct {
	ID            StyleID
	Label         string
	Boosts        []Boost
	MinSyllables  int
	MaxSyllables  int
	TitleChance   float64
	EpithetChance float64
}

// Archetype bundles boosts and pools under a genre group.
type Archetype struct {
	ID              string
	Label           string
	Group           string
	SuggestedTraits []TraitID
	Boosts          []Boost
	Titles          []string
	Epithets        []string
}

const (
	GroupDarkFantasy = "Soulslike / Dark Fantasy"
	GroupSciFi       = "Sci-fi / Space Opera"
	GroupUrbanChaos  = "Urban Chaos / Gangster Sandbox"
	GroupMythic      = "Mythic / Occult"
	GroupComedy      = "Comedy / Internet"
)

// baseFragments is the starting distribution. Order matters: it is the scan
// order for weighted sampling.
var baseFragments = []rng.Weighted[string]{
	{Item: "a", Weight: 1}, {Item: "ae", Weight: 0.8}, {Item: "al", Weight: 1}, {Item: "an", Weight: 1},
	{Item: "ar", Weight: 1}, {Item: "au", Weight: 0.7}, {Item: "bel", Weight: 0.8}, {Item: "ca", Weight: 1},
	{Item: "cel", Weight: 0.8}, {Item: "cor", Weight: 0.8}, {Item: "da", Weight: 1}, {Item: "de", Weight: 1},
	{Item: "del", Weight: 0.9}, {Item: "dra", Weight: 0.9}, {Item: "el", Weight: 1.1}, {Item: "en", Weight: 1.1},
	{Item: "ene", Weight: 0.9}, {Item: "er", Weight: 1}, {Item: "eth", Weight: 0.8}, {Item: "fa", Weight: 0.9},
	{Item: "fen", Weight: 0.8}, {Item: "fi", Weight: 0.9}, {Item: "for", Weight: 0.7}, {Item: "ga", Weight: 0.9},
	{Item: "gal", Weight: 0.9}, {Item: "gi", Weight: 0.8}, {Item: "gra", Weight: 0.7}, {Item: "ha", Weight: 0.8},
	{Item: "hel", Weight: 0.9}, {Item: "ia", Weight: 0.8}, {Item: "il", Weight: 0.9}, {Item: "in", Weight: 0.9},
	{Item: "ion", Weight: 0.8}, {Item: "ir", Weight: 0.9}, {Item: "is", Weight: 0.9}, {Item: "ka", Weight: 1},
	{Item: "kel", Weight: 0.8}, {Item: "ke", Weight: 0.9}, {Item: "ki", Weight: 0.9}, {Item: "la", Weight: 1},
	{Item: "lan", Weight: 0.9}, {Item: "len", Weight: 1}, {Item: "li", Weight: 1}, {Item: "lin", Weight: 1},
	{Item: "lo", Weight: 0.9}, {Item: "lu", Weight: 0.8}, {Item: "ly", Weight: 0.7}, {Item: "ma", Weight: 1},
	{Item: "mal", Weight: 0.8}, {Item: "mir", Weight: 0.8}, {Item: "mo", Weight: 0.9}, {Item: "na", Weight: 1},
	{Item: "ne", Weight: 1}, {Item: "nel", Weight: 0.9}, {Item: "ni", Weight: 1}, {Item: "no", Weight: 0.9},
	{Item: "nor", Weight: 0.7}, {Item: "ny", Weight: 0.7}, {Item: "nyx", Weight: 0.4}, {Item: "oa", Weight: 0.6},
	{Item: "ol", Weight: 0.9}, {Item: "on", Weight: 1}, {Item: "or", Weight: 1}, {Item: "ora", Weight: 0.9},
	{Item: "os", Weight: 0.8}, {Item: "pha", Weight: 0.6}, {Item: "pro", Weight: 0.6}, {Item: "qua", Weight: 0.5},
	{Item: "ra", Weight: 1}, {Item: "rav", Weight: 0.6}, {Item: "re", Weight: 1}, {Item: "ren", Weight: 0.9},
	{Item: "ri", Weight: 1}, {Item: "rin", Weight: 0.9}, {Item: "ro", Weight: 0.9}, {Item: "sa", Weight: 1},
	{Item: "san", Weight: 0.8}, {Item: "ser", Weight: 0.8}, {Item: "shi", Weight: 0.5}, {Item: "sib", Weight: 0.5},
	{Item: "sil", Weight: 0.6}, {Item: "sin", Weight: 0.6}, {Item: "so", Weight: 0.8}, {Item: "sol", Weight: 0.8},
	{Item: "sta", Weight: 0.6}, {Item: "stel", Weight: 0.6}, {Item: "syn", Weight: 0.7}, {Item: "sy", Weight: 0.6},
	{Item: "ta", Weight: 1}, {Item: "tel", Weight: 0.8}, {Item: "tem", Weight: 0.7}, {Item: "tha", Weight: 0.6},
	{Item: "the", Weight: 0.5}, {Item: "thon", Weight: 0.5}, {Item: "tri", Weight: 0.6}, {Item: "ul", Weight: 0.6},
	{Item: "ur", Weight: 0.7}, {Item: "va", Weight: 1}, {Item: "val", Weight: 0.9}, {Item: "vel", Weight: 0.9},
	{Item: "ven", Weight: 0.8}, {Item: "ver", Weight: 0.8}, {Item: "vi", Weight: 0.9}, {Item: "vor", Weight: 0.6},
	{Item: "vox", Weight: 0.5}, {Item: "wa", Weight: 0.6}, {Item: "wyn", Weight: 0.5}, {Item: "xa", Weight: 0.3},
	{Item: "xe", Weight: 0.3}, {Item: "za", Weight: 0.4}, {Item: "zen", Weight: 0.6},
}

var traitOrder = []TraitID{
	TraitBlacksmith, TraitProphet, TraitMemelord, TraitAssassin, TraitPaladin,
	TraitExile, TraitTechnoMage, TraitBountyHunter, TraitArchivist, TraitStreetSaint,
}

var traits = map[TraitID]Trait{
	TraitBlacksmith: {
		ID: TraitBlacksmith, Label: "Blacksmith",
		Boosts:   []Boost{{"khar", 1.2}, {"bryn", 1.0}, {"gald", 0.9}, {"thon", 0.7}, {"keld", 0.8}, {"tem", 0.6}, {"for", 0.6}},
		Titles:   []string{"Master", "Artificer", "Forgewright"},
		Epithets: []string{"the Tempered", "of Emberforge", "of Quiet Cinders", "the Hearth-Bound"},
	},
	TraitProphet: {
		ID: TraitProphet, Label: "Prophet",
		Boosts:   []Boost{{"sy", 1.4}, {"sib", 1.2}, {"bel", 1.2}, {"lin", 1.1}, {"ene", 1.0}, {"el", 1.1}, {"ora", 0.8}},
		Titles:   []string{"Oracle", "Saint", "Sister", "Brother", "Dr.", "Prophet"},
		Epithets: []string{"the Far-Seeing", "of Candlelight", "the Veil-Blessed", "of Quiet Storms"},
	},
	TraitMemelord: {
		ID: TraitMemelord, Label: "Memelord",
		Boosts:   []Boost{{"kek", 1.6}, {"meme", 1.2}, {"bop", 1.0}, {"zoop", 0.9}, {"snark", 0.8}, {"wub", 0.8}},
		Titles:   []string{"Lord", "Mod", "Poster", "Dr."},
		Epithets: []string{"the Upvoted", "of Infinite Threads", "the Unhinged", "of Glorious Lag"},
	},
	TraitAssassin: {
		ID: TraitAssassin, Label: "Assassin",
		Boosts:   []Boost{{"sil", 1.1}, {"nyx", 1.0}, {"vor", 0.8}, {"kry", 0.9}, {"sin", 0.7}, {"shi", 0.8}},
		Titles:   []string{"Shade", "Agent", "Wraith"},
		Epithets: []string{"of the Thin Veil", "the Unseen", "of Last Light"},
	},
	TraitPaladin: {
		ID: TraitPaladin, Label: "Paladin",
		Boosts:   []Boost{{"val", 1.2}, {"aur", 0.8}, {"ser", 0.9}, {"gal", 0.8}, {"ren", 0.8}, {"el", 0.5}},
		Titles:   []string{"Sir", "Dame", "Knight", "Saint"},
		Epithets: []string{"of the Dawn Oath", "the Radiant", "of Gold Vows"},
	},
	TraitExile: {
		ID: TraitExile, Label: "Exile",
		Boosts:   []Boost{{"sol", 0.9}, {"ash", 1.0}, {"wan", 0.8}, {"nor", 0.7}, {"drift", 0.8}, {"ren", 0.4}},
		Titles:   []string{"Wanderer", "Outcast"},
		Epithets: []string{"of Ash Roads", "the Unmoored", "of Silent Borders"},
	},
	TraitTechnoMage: {
		ID: TraitTechnoMage, Label: "Techno-Mage",
		Boosts:   []Boost{{"neo", 1.1}, {"syn", 1.0}, {"qua", 0.8}, {"cor", 0.6}, {"byte", 0.7}, {"arc", 0.8}},
		Titles:   []string{"Arcanist", "Engineer", "Cipher"},
		Epithets: []string{"of Neon Sigils", "the Circuit-Seer", "of Quantum Runes"},
	},
	TraitBountyHunter: {
		ID: TraitBountyHunter, Label: "Bounty Hunter",
		Boosts:   []Boost{{"vex", 1.0}, {"jax", 0.9}, {"rin", 0.6}, {"gra", 0.5}, {"vox", 0.6}, {"hunt", 0.8}},
		Titles:   []string{"Captain", "Ranger", "Warden"},
		Epithets: []string{"of Broken Warrants", "the Red-Handed", "of Dust Contracts"},
	},
	TraitArchivist: {
		ID: TraitArchivist, Label: "Archivist",
		Boosts:   []Boost{{"lex", 1.0}, {"cod", 0.9}, {"arc", 0.9}, {"lin", 0.6}, {"cer", 0.6}, {"vel", 0.5}},
		Titles:   []string{"Scribe", "Curator", "Archivist", "Professor"},
		Epithets: []string{"of the Hidden Index", "the Page-Bound", "of Quiet Vaults"},
	},
	TraitStreetSaint: {
		ID: TraitStreetSaint, Label: "Street Saint",
		Boosts:   []Boost{{"san", 1.0}, {"sol", 0.8}, {"vox", 0.6}, {"ri", 0.4}, {"jax", 0.8}, {"la", 0.4}},
		Titles:   []string{"Saint", "Sister", "Brother"},
		Epithets: []string{"of Side-Street Altars", "the Graffiti-Blessed", "of Neon Mercy"},
	},
}

var styleOrder = []StyleID{
	StyleEloquent, StyleHarsh, StyleNoble, StyleMystic, StyleStreet, StyleCorporate, StyleComic,
}

var styles = map[StyleID]Style{
	StyleEloquent: {
		ID: StyleEloquent, Label: "Eloquent",
		Boosts:       []Boost{{"el", 1.0}, {"ene", 0.6}, {"ia", 0.6}, {"au", 0.5}, {"vel", 0.7}, {"lin", 0.4}},
		MinSyllables: 3, MaxSyllables: 4, TitleChance: 0.35, EpithetChance: 0.25,
	},
	StyleHarsh: {
		ID: StyleHarsh, Label: "Harsh",
		Boosts:       []Boost{{"gra", 0.8}, {"dra", 0.8}, {"thon", 0.7}, {"vor", 0.7}, {"za", 0.5}},
		MinSyllables: 2, MaxSyllables: 3, TitleChance: 0.2, EpithetChance: 0.15,
	},
	StyleNoble: {
		ID: StyleNoble, Label: "Noble",
		Boosts:       []Boost{{"val", 0.9}, {"ren", 0.8}, {"gal", 0.7}, {"aur", 0.6}, {"ion", 0.5}},
		MinSyllables: 3, MaxSyllables: 4, TitleChance: 0.45, EpithetChance: 0.35,
	},
	StyleMystic: {
		ID: StyleMystic, Label: "Mystic",
		Boosts:       []Boost{{"nyx", 0.8}, {"ora", 0.9}, {"sy", 0.6}, {"ae", 0.5}, {"eth", 0.6}},
		MinSyllables: 3, MaxSyllables: 4, TitleChance: 0.35, EpithetChance: 0.35,
	},
	StyleStreet: {
		ID: StyleStreet, Label: "Street",
		Boosts:       []Boost{{"jax", 0.9}, {"vox", 0.7}, {"za", 0.6}, {"ri", 0.4}, {"de", 0.5}},
		MinSyllables: 2, MaxSyllables: 3, TitleChance: 0.15, EpithetChance: 0.2,
	},
	StyleCorporate: {
		ID: StyleCorporate, Label: "Corporate",
		Boosts:       []Boost{{"cor", 1.0}, {"syn", 0.9}, {"qua", 0.7}, {"lex", 0.7}, {"ion", 0.6}},
		MinSyllables: 2, MaxSyllables: 3, TitleChance: 0.25, EpithetChance: 0.15,
	},
	StyleComic: {
		ID: StyleComic, Label: "Comic",
		Boosts:       []Boost{{"bop", 1.0}, {"kek", 0.8}, {"meme", 0.6}, {"zoop", 0.6}, {"wub", 0.6}},
		MinSyllables: 2, MaxSyllables: 4, TitleChance: 0.3, EpithetChance: 0.3,
	},
}

var archetypes = []Archetype{
	{
		ID: "dusk_knight", Label: "Dusk Knight", Group: GroupDarkFantasy,
		SuggestedTraits: []TraitID{TraitPaladin, TraitExile, TraitAssassin},
		Boosts:          []Boost{{"dusk", 0.9}, {"dra", 0.4}, {"mor", 0.5}, {"ren", 0.4}, {"vel", 0.3}},
		Epithets:        []string{"of Ash", "the Hollow-True", "of Dusk Vows"},
	},
	{
		ID: "ashen_seer", Label: "Ashen Seer", Group: GroupDarkFantasy,
		SuggestedTraits: []TraitID{TraitProphet, TraitExile, TraitArchivist},
		Boosts:          []Boost{{"ash", 1.0}, {"sy", 0.4}, {"bel", 0.4}, {"lin", 0.4}, {"ora", 0.4}},
		Titles:          []string{"Oracle", "Seer", "Saint"},
		Epithets:        []string{"the Far-Seeing", "of Candle Ash", "of Quiet Storms"},
	},
	{
		ID: "grave_warden", Label: "Grave Warden", Group: GroupDarkFantasy,
		SuggestedTraits: []TraitID{TraitAssassin, TraitPaladin, TraitExile},
		Boosts:          []Boost{{"gra", 0.9}, {"vor", 0.5}, {"thon", 0.4}, {"ren", 0.3}},
		Titles:          []string{"Warden", "Knight"},
		Epithets:        []string{"of Stone Quiet", "the Night-Bound", "of Last Light"},
	},
	{
		ID: "void_captain", Label: "Void Captain", Group: GroupSciFi,
		SuggestedTraits: []TraitID{TraitBountyHunter, TraitTechnoMage, TraitArchivist},
		Boosts:          []Boost{{"vox", 0.6}, {"neo", 0.7}, {"syn", 0.6}, {"xa", 0.3}, {"zen", 0.4}},
		Titles:          []string{"Captain", "Commander"},
		Epithets:        []string{"of Deep Orbits", "the Star-Quiet", "of Black Signals"},
	},
	{
		ID: "neon_technomancer", Label: "Neon Technomancer", Group: GroupSciFi,
		SuggestedTraits: []TraitID{TraitTechnoMage, TraitProphet, TraitArchivist},
		Boosts:          []Boost{{"neo", 1.0}, {"syn", 0.8}, {"ora", 0.4}, {"ae", 0.3}, {"ion", 0.3}},
		Titles:          []string{"Arcanist", "Cipher", "Oracle"},
		Epithets:        []string{"of Neon Sigils", "the Circuit-Seer", "of Quantum Runes"},
	},
	{
		ID: "star_archivist", Label: "Star Archivist", Group: GroupSciFi,
		SuggestedTraits: []TraitID{TraitArchivist, TraitExile, TraitTechnoMage},
		Boosts:          []Boost{{"stel", 0.8}, {"lex", 0.8}, {"cor", 0.4}, {"lin", 0.3}},
		Titles:          []string{"Archivist", "Curator", "Professor"},
		Epithets:        []string{"of the Hidden Index", "the Page-Bound", "of Quiet Vaults"},
	},
	{
		ID: "alley_oracle", Label: "Alley Oracle", Group: GroupUrbanChaos,
		SuggestedTraits: []TraitID{TraitStreetSaint, TraitProphet, TraitAssassin},
		Boosts:          []Boost{{"jax", 0.6}, {"vox", 0.6}, {"sy", 0.4}, {"rin", 0.3}, {"za", 0.4}},
		Titles:          []string{"Oracle", "Sister", "Brother"},
		Epithets:        []string{"of Side-Street Altars", "the Graffiti-Blessed", "of Neon Mercy"},
	},
	{
		ID: "chrome_hustler", Label: "Chrome Hustler", Group: GroupUrbanChaos,
		SuggestedTraits: []TraitID{TraitBountyHunter, TraitMemelord, TraitExile},
		Boosts:          []Boost{{"cor", 0.6}, {"vox", 0.5}, {"zoop", 0.3}, {"bop", 0.3}, {"ren", 0.3}},
		Titles:          []string{"Captain", "Boss"},
		Epithets:        []string{"the Upvoted", "of Glorious Lag", "of Dust Contracts"},
	},
	{
		ID: "night_runner", Label: "Night Runner", Group: GroupUrbanChaos,
		SuggestedTraits: []TraitID{TraitAssassin, TraitBountyHunter, TraitTechnoMage},
		Boosts:          []Boost{{"nyx", 0.6}, {"rin", 0.6}, {"vox", 0.4}, {"syn", 0.4}},
		Titles:          []string{"Agent", "Runner"},
		Epithets:        []string{"of Last Light", "the Unseen", "of Broken Warrants"},
	},
	{
		ID: "sigil_scribe", Label: "Sigil Scribe", Group: GroupMythic,
		SuggestedTraits: []TraitID{TraitArchivist, TraitProphet, TraitTechnoMage},
		Boosts:          []Boost{{"sig", 0.9}, {"sy", 0.5}, {"lex", 0.4}, {"eth", 0.5}, {"ora", 0.4}},
		Titles:          []string{"Scribe", "Oracle", "Curator"},
		Epithets:        []string{"of Quiet Vaults", "the Veil-Blessed", "of Candlelight"},
	},
	{
		ID: "temple_assassin", Label: "Temple Assassin", Group: GroupMythic,
		SuggestedTraits: []TraitID{TraitAssassin, TraitPaladin, TraitExile},
		Boosts:          []Boost{{"tha", 0.5}, {"sil", 0.6}, {"nyx", 0.4}, {"val", 0.3}},
		Titles:          []string{"Wraith", "Knight"},
		Epithets:        []string{"of the Thin Veil", "of Gold Vows", "the Unseen"},
	},
	{
		ID: "rift_blacksmith", Label: "Rift Blacksmith", Group: GroupMythic,
		SuggestedTraits: []TraitID{TraitBlacksmith, TraitTechnoMage, TraitExile},
		Boosts:          []Boost{{"khar", 0.8}, {"tem", 0.6}, {"syn", 0.4}, {"vel", 0.3}},
		Titles:          []string{"Forgewright", "Artificer"},
		Epithets:        []string{"of Emberforge", "the Tempered", "of Quiet Cinders"},
	},
	{
		ID: "thread_prophet", Label: "Thread Prophet", Group: GroupComedy,
		SuggestedTraits: []TraitID{TraitMemelord, TraitProphet, TraitStreetSaint},
		Boosts:          []Boost{{"kek", 0.6}, {"meme", 0.5}, {"sy", 0.5}, {"lin", 0.3}, {"vox", 0.3}},
		Titles:          []string{"Oracle", "Mod", "Saint"},
		Epithets:        []string{"of Infinite Threads", "the Upvoted", "of Side-Street Altars"},
	},
	{
		ID: "emoji_saint", Label: "Emoji Saint", Group: GroupComedy,
		SuggestedTraits: []TraitID{TraitStreetSaint, TraitMemelord, TraitArchivist},
		Boosts:          []Boost{{"meme", 0.4}, {"san", 0.5}, {"lex", 0.3}, {"bop", 0.4}, {"el", 0.2}},
		Titles:          []string{"Saint", "Sister", "Brother"},
		Epithets:        []string{"the Graffiti-Blessed", "of Glorious Lag", "of Neon Mercy"},
	},
	{
		ID: "copypasta_archivist", Label: "Copypasta Archivist", Group: GroupComedy,
		SuggestedTraits: []TraitID{TraitArchivist, TraitMemelord, TraitTechnoMage},
		Boosts:          []Boost{{"lex", 0.6}, {"cor", 0.4}, {"syn", 0.4}, {"kek", 0.3}, {"meme", 0.3}},
		Titles:          []string{"Archivist", "Curator", "Poster"},
		Epithets:        []string{"of Infinite Threads", "the Page-Bound", "of Glorious Lag"},
	},
}

var baseTitles = []string{"Dr.", "Saint", "Sister", "Brother", "Oracle", "Professor", "Captain", "Sir", "Dame"}

var baseEpithets = []string{
	"the Far-Seeing", "the Radiant", "the Unseen", "the Unbroken",
	"of Ash", "of Candlelight", "of Quiet Vaults", "of Neon Mercy", "of Last Light",
}

// LookupArchetype finds an archetype by id.
func LookupArchetype(id string) (Archetype, bool) {
	for _, a := range archetypes {
		if a.ID == id {
			return a, true
		}
	}
	return Archetype{}, false
}

// LookupTrait finds a trait by id.
func LookupTrait(id TraitID) (Trait, bool) {
	t, ok := traits[id]
	return t, ok
}

// LookupStyle finds a style by id.
func LookupStyle(id StyleID) (Style, bool) {
	s, ok := styles[id]
	return s, ok
}

// Archetypes returns every archetype in registry order.
func Archetypes() []Archetype {
	return append([]Archetype(nil), archetypes...)
}

// Traits returns every trait in registry order.
func Traits() []Trait {
	out := make([]Trait, 0, len(traitOrder))
	for _, id := range traitOrder {
		out = append(out, traits[id])
	}
	return out
}

// Styles returns every style in registry order.
func Styles() []Style {
	out := make([]Style, 0, len(styleOrder))
	for _, id := range styleOrder {
		out = append(out, styles[id])
	}
	return out
}
