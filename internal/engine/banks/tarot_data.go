package banks

import "github.com/KirkDiggler/oripheon-api/internal/entities"

// tarotBanks are themed on each major arcana card.
var tarotBanks = map[entities.TarotArchetype]buckets{
	entities.TarotFool: {
		male:        []string{"Pippin", "Jory", "Quillon", "Merry", "Tumble", "Bramble", "Jape", "Rascal"},
		female:      []string{"Pippa", "Mira", "Lolly", "Rilla", "Tansy", "Bree", "Jinx", "Capri"},
		androgynous: []string{"Pip", "Quip", "Merri", "Bumble", "Doodle", "Skipper", "Wink", "Fable"},
		surnames:    []string{"Jestwind", "Gigglebrook", "Tumblefoot", "Capers", "Brightfool", "Riddlewalk", "Jingle", "Oddluck"},
		mononyms:    []string{"Jape", "Wink", "Quip", "Bumble", "Tumble", "Merri"},
	},
	entities.TarotMagician: {
		male:        []string{"Lucan", "Aurel", "Cassian", "Marcell", "Orion", "Severin", "Eldric", "Calder"},
		female:      []string{"Aurelia", "Liora", "Seren", "Vespera", "Elowen", "Cassia", "Maris", "Ilyra"},
		androgynous: []string{"Aster", "Meridian", "Rune", "Caelum", "Sable", "Vail", "Oris", "Nyren"},
		surnames:    []string{"Sigilwright", "Spellweaver", "Arcbound", "Cipherhand", "Runebrook", "Starcoil", "Veilkeeper", "Hexward"},
		mononyms:    []string{"Rune", "Cipher", "Sigil", "Aster", "Vail", "Meridian"},
	},
	entities.TarotHighPriestess: {
		male:        []string{"Elias", "Solon", "Amonel", "Cassiel", "Noerian", "Theron", "Iovian", "Maloren"},
		female:      []string{"Seloria", "Noema", "Elyra", "Isyra", "Seraphine", "Lunara", "Arielle", "Vaela"},
		androgynous: []string{"Sable", "Oracle", "Noiriel", "Halcyon", "Aster", "Eiren", "Vesper", "Lumen"},
		surnames:    []string{"Veilborne", "Candlewatch", "Moonvigil", "QuietSeer", "Sanctuary", "WhisperNun", "Omenwell", "AshWarden"},
		mononyms:    []string{"Oracle", "Lumen", "Vesper", "Halcyon", "Seer", "Noema"},
	},
	entities.TarotEmpress: {
		male:        []string{"Aurelian", "Valerius", "Cassian", "Octavian", "Hadrian", "Marcellus", "Severus", "Dorian"},
		female:      []string{"Aurelia", "Valeria", "Octavia", "Cassiana", "Sabina", "Helena", "Marcella", "Diona"},
		androgynous: []string{"Regent", "Aurel", "Valen", "Crown", "August", "Seren", "Civis", "Imperial"},
		surnames:    []string{"Crownward", "GildedHouse", "Throneborne", "IvoryCourt", "Lionsigil", "GoldenMantle", "MarbleKeep", "VioletCrest"},
		mononyms:    []string{"Regent", "Crown", "August", "Aurelia", "Valen", "Imperial"},
	},
	entities.TarotEmperor: {
		male:        []string{"Octavian", "Aurelian", "Cassian", "Valerian", "Hadrian", "Tiber", "Severin", "Marcell"},
		female:      []string{"Octavia", "Aurelia", "Cassia", "Valeria", "Hadriana", "Sabine", "Severina", "Maris"},
		androgynous: []string{"Crown", "Regent", "Sovereign", "August", "Imperial", "Lionheart", "Throne", "Viceroy"},
		surnames:    []string{"Throneward", "IronCrown", "CivicLaurel", "Imperius", "MarbleCourt", "LionStandard", "GildedBanner", "RoyalSigil"},
		mononyms:    []string{"Sovereign", "Regent", "August", "Crown", "Throne", "Viceroy"},
	},
	entities.TarotHierophant: {
		male:        []string{"Benedan", "Athan", "Calder", "Jerom", "Silvan", "Orrin", "Pontel", "Kyrion"},
		female:      []string{"Benedetta", "Athenia", "Calindra", "Seraphia", "Maren", "Soline", "Kyria", "Elspeth"},
		androgynous: []string{"Cleric", "Abbess", "Scribe", "Cantor", "Vesper", "Lantern", "Hallow", "Covenant"},
		surnames:    []string{"Hallowgate", "Covenant", "Chantwell", "Sanctum", "OathScript", "Reliquary", "Bellkeeper", "Templeward"},
		mononyms:    []string{"Cantor", "Scribe", "Cleric", "Hallow", "Lantern", "Covenant"},
	},
	entities.TarotLovers: {
		male:        []string{"Evan", "Lucian", "Soren", "Adrian", "Ronan", "Cass", "Elio", "Milan"},
		female:      []string{"Elara", "Liora", "Vivienne", "Isolde", "Serena", "Amara", "Niamh", "Aine"},
		androgynous: []string{"Arden", "Rowan", "Quinn", "Jules", "Morgan", "Vale", "Ariel", "Noor"},
		surnames:    []string{"Heartglen", "Roseveil", "Softwind", "Twinlight", "Everkind", "Bondwell", "Moonkiss", "Dawnlace"},
		mononyms:    []string{"Vale", "Arden", "Rowan", "Liora", "Noor", "Quinn"},
	},
	entities.TarotChariot: {
		male:        []string{"Kade", "Rourke", "Talon", "Darius", "Rex", "Sable", "Kael", "Jaxon"},
		female:      []string{"Vera", "Rhea", "Lyra", "Thalia", "Kara", "Nova", "Bria", "Daria"},
		androgynous: []string{"Rider", "Vanguard", "Strider", "Arrow", "Steel", "Torque", "Riven", "Pace"},
		surnames:    []string{"IronStride", "Stormcar", "BannerRun", "Roadmarshal", "Swiftward", "Spearwheel", "Trailguard", "Jetstream"},
		mononyms:    []string{"Vanguard", "Strider", "Rider", "Arrow", "Pace", "Torque"},
	},
	entities.TarotStrength: {
		male:        []string{"Bryn", "Thorne", "Garron", "Stellan", "Torin", "Ragnar", "Bastian", "Calum"},
		female:      []string{"Thora", "Brynna", "Astrid", "Freya", "Rowena", "Signe", "Eira", "Kaida"},
		androgynous: []string{"Stone", "Iron", "Vale", "Storm", "Atlas", "Sage", "Warden", "Frost"},
		surnames:    []string{"Ironheart", "Stoneguard", "Bearmantle", "Stormhold", "Oakshield", "Wolfbinder", "Lionwrought", "Cinderarm"},
		mononyms:    []string{"Stone", "Iron", "Warden", "Storm", "Atlas", "Frost"},
	},
	entities.TarotHermit: {
		male:        []string{"Silas", "Erem", "Peregrin", "Rowan", "Orrin", "Talen", "Cael", "Nolan"},
		female:      []string{"Eira", "Maren", "Sable", "Elowen", "Niamh", "Lina", "Seren", "Wren"},
		androgynous: []string{"Wren", "Sage", "Lantern", "Pilgrim", "Ash", "Vale", "Hollow", "Drift"},
		surnames:    []string{"LanternKeep", "QuietRoad", "HollowVale", "AshWalker", "FarStone", "Driftwood", "Caveborn", "Solitary"},
		mononyms:    []string{"Sage", "Pilgrim", "Lantern", "Ash", "Wren", "Drift"},
	},
	entities.TarotWheelOfFortune: {
		male:        []string{"Kismet", "Fortun", "Ravel", "Chance", "Lark", "Orris", "Talon", "Caius"},
		female:      []string{"Fortuna", "Kisma", "Ravelle", "Seren", "Lark", "Mira", "Carys", "Astra"},
		androgynous: []string{"Chance", "Spindle", "Wheel", "Gamble", "Turner", "Kismet", "Riddle", "Orbit"},
		surnames:    []string{"Turnwheel", "Spindlemark", "Coinflip", "GildedChance", "Fateweft", "Luckborne", "Orbitline", "RavelRoad"},
		mononyms:    []string{"Kismet", "Chance", "Spindle", "Orbit", "Ravel", "Fortuna"},
	},
	entities.TarotJustice: {
		male:        []string{"Justan", "Dorian", "Verin", "Athan", "Calder", "Lucius", "Tiber", "Galen"},
		female:      []string{"Justine", "Verity", "Doria", "Athenia", "Clara", "Lucia", "Sabina", "Galia"},
		androgynous: []string{"Verdict", "Balance", "Witness", "Vigil", "Scale", "Oath", "Law", "Merit"},
		surnames:    []string{"Scalehold", "Oathkeeper", "VerdictHall", "Lawspire", "Meritstone", "Justicar", "WitnessGate", "BalanceLine"},
		mononyms:    []string{"Verdict", "Vigil", "Scale", "Oath", "Merit", "Witness"},
	},
	entities.TarotHangedMan: {
		male:        []string{"Talen", "Rowan", "Silas", "Peregrin", "Eldan", "Nolan", "Cael", "Orin"},
		female:      []string{"Wren", "Maren", "Elara", "Seren", "Noemi", "Isolde", "Lina", "Eira"},
		androgynous: []string{"Reversal", "Still", "Sway", "Knot", "Hollow", "Aster", "Vail", "Drift"},
		surnames:    []string{"Stillcord", "HangingBough", "Knotwise", "Swayline", "TurnedPath", "QuietBind", "Ropewalker", "Reversal"},
		mononyms:    []string{"Still", "Sway", "Knot", "Drift", "Vail", "Hollow"},
	},
	entities.TarotDeath: {
		male:        []string{"Morin", "Noctan", "Cinder", "Riven", "Vorin", "Thane", "Kezro", "Eldar"},
		female:      []string{"Noctessa", "Cindra", "Mora", "Vespera", "Nyx", "Isyra", "Velith", "Zenara"},
		androgynous: []string{"Ash", "Ruin", "Cinder", "Null", "Shade", "Requiem", "Grave", "Hush"},
		surnames:    []string{"Graveward", "Ashenveil", "Nightfall", "Cinderborne", "Requiem", "Hushkeep", "BlackRiver", "QuietGrave"},
		mononyms:    []string{"Ash", "Shade", "Cinder", "Requiem", "Hush", "Grave"},
	},
	entities.TarotTemperance: {
		male:        []string{"Seren", "Calen", "Harmon", "Lucan", "Eiren", "Dorian", "Aurel", "Silvan"},
		female:      []string{"Serena", "Calma", "Harmony", "Elara", "Eirene", "Clara", "Aurelia", "Selene"},
		androgynous: []string{"Balance", "Tide", "Stillwater", "Mingle", "Even", "Measure", "Quiet", "Hearth"},
		surnames:    []string{"Stillwater", "Evenhand", "Hearthmeasure", "QuietTide", "Balancewell", "Softscale", "Calmriver", "Harmonic"},
		mononyms:    []string{"Balance", "Even", "Measure", "Quiet", "Hearth", "Tide"},
	},
	entities.TarotDevil: {
		male:        []string{"Malach", "Vesper", "Asmode", "Belan", "Damon", "Ravik", "Samael", "Korrin"},
		female:      []string{"Lilura", "Vespera", "Belara", "Damina", "Ravina", "Nyssa", "Seraxa", "Morrin"},
		androgynous: []string{"Tempt", "Chain", "Velvet", "Vow", "Gild", "Vice", "Shadow", "Hex"},
		surnames:    []string{"Chainborne", "VelvetVow", "Vicegate", "GildedSin", "ShadowPact", "Hexbound", "NightContract", "Temptress"},
		mononyms:    []string{"Vesper", "Hex", "Vice", "Chain", "Shadow", "Tempt"},
	},
	entities.TarotTower: {
		male:        []string{"Riven", "Shard", "Krag", "Vorun", "Eldric", "Talon", "Brax", "Drevan"},
		female:      []string{"Rivna", "Sharda", "Kara", "Vora", "Elyra", "Talia", "Brea", "Drava"},
		androgynous: []string{"Shatter", "Storm", "Ruin", "Crack", "Spire", "Fall", "Echo", "Ash"},
		surnames:    []string{"Shatterspire", "Stormfall", "Ruinstone", "Cracklight", "BrokenCrest", "FellTower", "AshRampart", "EchoWall"},
		mononyms:    []string{"Ruin", "Shatter", "Storm", "Echo", "Spire", "Fall"},
	},
	entities.TarotStar: {
		male:        []string{"Stellan", "Aster", "Lucan", "Orion", "Caelum", "Elio", "Novaen", "Solan"},
		female:      []string{"Astra", "Liora", "Selene", "Elara", "Nova", "Aurora", "Lyra", "Solara"},
		androgynous: []string{"Lumen", "Aster", "Nova", "Halo", "Beacon", "Starlit", "Dawn", "Gleam"},
		surnames:    []string{"Starborne", "Beaconwell", "Dawncrest", "HaloWard", "Skylight", "Aurorafield", "Gleamridge", "Starlace"},
		mononyms:    []string{"Nova", "Lumen", "Halo", "Beacon", "Dawn", "Aster"},
	},
	entities.TarotMoon: {
		male:        []string{"Selan", "Lunor", "Noctan", "Orin", "Eldan", "Caelum", "Marek", "Vesper"},
		female:      []string{"Selene", "Lunara", "Noctessa", "Eira", "Isolde", "Velith", "Maren", "Vespera"},
		androgynous: []string{"Moon", "Vail", "Noir", "Gloom", "Tide", "Hush", "Crescent", "Silver"},
		surnames:    []string{"Moonveil", "CrescentHall", "SilverTide", "Noirwater", "Hushpond", "NightMirror", "Vailstone", "Lunarwatch"},
		mononyms:    []string{"Vail", "Hush", "Crescent", "Silver", "Moon", "Noir"},
	},
	entities.TarotSun: {
		male:        []string{"Helio", "Solan", "Aurel", "Lucan", "Rayan", "Dorian", "Caelum", "Stellan"},
		female:      []string{"Solara", "Aurelia", "Lucia", "Elara", "Raya", "Doria", "Caela", "Stella"},
		androgynous: []string{"Radiant", "Dawn", "Lumen", "Gold", "Beacon", "Bright", "Halo", "Solar"},
		surnames:    []string{"Suncrest", "Dawnward", "Goldray", "Brightwell", "Solaris", "HaloCrown", "RadiantVale", "Lumenfield"},
		mononyms:    []string{"Dawn", "Lumen", "Radiant", "Halo", "Gold", "Solar"},
	},
	entities.TarotJudgement: {
		male:        []string{"Callan", "Verin", "Dorian", "Lucius", "Athan", "Galen", "Orin", "Severin"},
		female:      []string{"Calla", "Verity", "Doria", "Lucia", "Athena", "Galia", "Oria", "Severina"},
		androgynous: []string{"Awaken", "Summons", "Witness", "Verdict", "Trumpet", "Rising", "Coda", "Reckon"},
		surnames:    []string{"TrumpetCall", "RisingGate", "Reckoning", "VerdictDawn", "WitnessStone", "Summons", "Awakened", "CodaLine"},
		mononyms:    []string{"Summons", "Rising", "Witness", "Reckon", "Coda", "Awaken"},
	},
	entities.TarotWorld: {
		male:        []string{"Orbis", "Galen", "Atlas", "Caelum", "Dorian", "Silvan", "Eldan", "Taren"},
		female:      []string{"Gaia", "Terra", "Selene", "Aurora", "Clara", "Serena", "Elara", "Liora"},
		androgynous: []string{"Whole", "Horizon", "Compass", "Axis", "Sphere", "Voyage", "Crown", "Bridge"},
		surnames:    []string{"Horizonline", "Worldbridge", "Axisway", "Compassrose", "Spherehold", "Voyager", "Everpath", "Allroads"},
		mononyms:    []string{"Horizon", "Compass", "Axis", "Sphere", "Voyage", "Bridge"},
	},
}
