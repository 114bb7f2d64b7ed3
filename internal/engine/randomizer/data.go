package randomizer

import "github.com/KirkDiggler/oripheon-api/internal/entities"

const (
	defaultMixedProbability = 0.4
	mixedBaseMin            = 0.35
	mixedBaseMax            = 0.7
)

// titles is the random title draw; "" means no title.
var titles = []string{"", "St.", "Dame", "Lord", "Lady", "Seraph", "Prophet", "Dr.", "Marshal"}

var (
	shortModes = []entities.NameMode{entities.NameModeMononym, entities.NameModeFusedMononym}
	longModes  = []entities.NameMode{entities.NameModeFirstLast, entities.NameModeFirstMiddleLast}
)

var cultureLabels = map[entities.Culture]string{
	entities.CultureYoruba:            "Yoruba",
	entities.CultureIgbo:              "Igbo",
	entities.CultureArabic:            "Arabic",
	entities.CultureCaucasianEuropean: "Continental European",
	entities.CultureCeltic:            "Celtic",
	entities.CultureNorseViking:       "Norse",
}

var orderOffices = map[entities.Order][]string{
	entities.OrderAngel:     {"shield-bearer", "prophet", "librarian of echoes", "witness of storms"},
	entities.OrderDemon:     {"whisper broker", "bloodforger", "temptation smith", "night marshal"},
	entities.OrderJinn:      {"sandseer", "memory merchant", "ember courier", "mirage tactician"},
	entities.OrderHuman:     {"wayfinder", "blacksmith", "seer", "sky courier"},
	entities.OrderTitan:     {"world-shaper", "primordial keeper", "mountain sovereign", "epoch warden"},
	entities.OrderFae:       {"thorn prince/princess", "moonweaver", "wild hunt master", "glamour artist"},
	entities.OrderYokai:     {"spirit guardian", "shapeshifter sage", "storm herald", "boundary keeper"},
	entities.OrderElemental: {"flame warden", "tide caller", "earthshaker", "wind whisper"},
	entities.OrderNephilim:  {"skyborn warrior", "giant-blood champion", "earth shaker", "star descendant"},
	entities.OrderArchon:    {"cosmic judge", "reality weaver", "demiurge", "plane overseer"},
	entities.OrderDragonkin: {"wyrm-bound emissary", "hoard augur", "skyfire tactician", "ember oathkeeper"},
	entities.OrderConstruct: {"clockwork adjutant", "axiom engraver", "lattice sentinel", "memory ward"},
	entities.OrderEldritch:  {"void cantor", "dream fracture oracle", "horizon unravelist", "starless witness"},
	entities.OrderTrickster: {"clown", "troll", "jester", "prankster"},
}

var orderThemes = map[entities.Order]string{
	entities.OrderAngel:     "celestial guardianship and sacred duty",
	entities.OrderDemon:     "forbidden compacts and hidden power",
	entities.OrderJinn:      "desert winds, whispers, and smokeless flame",
	entities.OrderHuman:     "mortal ingenuity and resilient courage",
	entities.OrderTitan:     "primordial strength that steadies worlds",
	entities.OrderFae:       "wild glamour and moonlit intrigue",
	entities.OrderYokai:     "spirit realms where shapes shift and teach",
	entities.OrderElemental: "the raw chorus of earth, air, fire, and water",
	entities.OrderNephilim:  "sky-born might that bridges mortal and divine",
	entities.OrderArchon:    "cosmic law and the architecture of reality",
	entities.OrderDragonkin: "wyrmfire covenants and hoarded wisdom",
	entities.OrderConstruct: "axiomatic purpose and timeless vigilance",
	entities.OrderEldritch:  "starless insight etched along the void",
	entities.OrderTrickster: "blasphemous mirth marrying sacred vows to chaotic pranks",
}

var ageAppearances = []string{"early 20s", "late 20s", "mid 30s", "early 40s", "ageless"}

var presentations = []string{
	"androgynous cyber mystic", "ornate desert paladin", "runed storm bard",
	"ashen shrine guardian", "chrome-plated oracle",
}

var features = []string{
	"eyes of liquid mercury", "sigil-tattooed palms", "voice with twin tones",
	"cloak woven from auroras", "braids tied with charms", "scar glowing ember-red",
	"floating prayer beads", "mechanical halo fragments",
}

var personalityValues = []string{
	"loyalty", "vision", "sacred rebellion", "discipline", "secret compassion",
	"unyielding curiosity", "ritual precision", "protective fury", "strategic mercy",
}

var (
	titleFigures  = []string{"Angel", "Shade", "Herald", "Seer", "Blade"}
	titleDomains  = []string{"Chrome Rain", "Silent Embers", "Gilded Storms", "Forgotten Rivers"}
	factions      = []string{"Choir of Rust", "Sable Caravan", "Chronicle Wardens", "Gilded Rift", "Order of the Dust Choir"}
	prophecyFocus = []string{"ignite the last astral lighthouse", "untangle the twin moons", "silence a tyrant choir"}
	ritualActions = []string{"etches sigils into the air", "sings coded hymns", "baptizes relics in embers", "unfurls mirrored banners"}
	darkSuffixes  = []string{"Veil", "Thorn", "Cipher"}
	tasteMusic    = []string{"polyphonic psalms", "desert blues", "glitch harps", "northern war chants", "cathedral jazz"}
	tasteFashion  = []string{"tasseled armor", "mirror-lens veils", "geomantic robes", "feathered capes", "sleek flight leathers"}
	tasteIndulge  = []string{"opalescent tea", "forbidden chronicles", "crystalized thunder honey", "holographic theater", "silent feasts"}
	tasteLikes    = []string{"honest wagers", "sunrise duels", "archive dust", "storm watching", "quiet apprentices"}
	tasteDislikes = []string{"false prophecies", "untuned choirs", "lawless portals", "rusted promises", "vacant thrones"}
)

// Offices returns the office pool of an order.
func Offices(order entities.Order) []string {
	return orderOffices[order]
}

// Theme returns the meaning theme of an order.
func Theme(order entities.Order) string {
	return orderThemes[order]
}

// CultureLabel returns the display label of a culture.
func CultureLabel(c entities.Culture) string {
	return cultureLabels[c]
}
