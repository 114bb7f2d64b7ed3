package banks

import "github.com/KirkDiggler/oripheon-api/internal/entities"

// orderBanks draws on mythological and folkloric sources per order.
var orderBanks = map[entities.Order]buckets{
	entities.OrderAngel: {
		male:        []string{"Azrael", "Cassiel", "Uriel", "Raphael", "Gabriel", "Michael", "Raziel", "Sariel", "Lumiel", "Oroniel", "Cyrionel", "Seraphel", "Vaeliel", "Elyon"},
		female:      []string{"Seraphina", "Celestia", "Auriel", "Evangeline", "Angelica", "Mercy", "Grace", "Luminara", "Eliora", "Serapha", "Caliel", "Solenne", "Aureline"},
		androgynous: []string{"Ariel", "Jophiel", "Haniel", "Zadkiel", "Metatron", "Soliel", "Orisiel", "Luminael", "Cyrinel", "Vaelion"},
		surnames:    []string{"Lightbringer", "Starborn", "Celestis", "Devoran", "Aetherwing", "Dawncrest", "HaloWard", "RadiantVale", "Aethercrown"},
		mononyms:    []string{"Lux", "Seraph", "Herald", "Sanctus", "Radiant", "Beacon", "Halo", "Dawn", "Candescent"},
	},
	entities.OrderDemon: {
		male:        []string{"Belial", "Amon", "Asmodeus", "Bael", "Malphas", "Vassago", "Ronove", "Cain", "Zareth", "Khalzor", "Morvane", "Varek", "Drevan", "Nocthar"},
		female:      []string{"Lilith", "Naamah", "Agrat", "Mahalath", "Proserpina", "Eisheth", "Jezebel", "Morra", "Velzara", "Nerissa", "Zorya", "Bellara", "Vexia"},
		androgynous: []string{"Baphomet", "Leviathan", "Abaddon", "Samael", "Azazel", "Beleth", "Umbriel", "Noctar", "Nyxar", "Grim", "Ruin"},
		surnames:    []string{"Infernus", "Shadowmere", "Abyss", "Noctis", "Hellborn", "Darkthorn", "Ashveil", "Cinderpact", "Bloodsigil", "Nightthorn"},
		mononyms:    []string{"Shade", "Nox", "Void", "Umbra", "Ater", "Cinder", "Hex", "Fang", "Ruin"},
	},
	entities.OrderJinn: {
		male:        []string{"Iblis", "Malik", "Ghul", "Marid", "Ifrit", "Qarin", "Zawba'ah", "Faris", "Rashid", "Nadir", "Zahir", "Samir", "Jalil"},
		female:      []string{"Zara", "Shams", "Laila", "Qamar", "Nasim", "Samira", "Ruhina", "Nura", "Sahar", "Yasmin", "Farah", "Aaliyah", "Nadira"},
		androgynous: []string{"Shaitan", "Buraq", "Zephyr", "Simoom", "Haboob", "Khamsin", "Sirocco", "Sirr", "Rihab", "Sahra"},
		surnames:    []string{"al-Sihr", "al-Noor", "al-Sahra", "al-Rih", "al-Nar", "al-Qamar", "al-Ramal", "al-Sirr", "al-Ashar"},
		mononyms:    []string{"Djinn", "Smokeless", "Flame", "Mirage", "Sirocco", "Ember", "Whirl", "Dune", "Zephyr"},
	},
	entities.OrderHuman: {
		male:        []string{"Arthur", "Odysseus", "Beowulf", "Gilgamesh", "Achilles", "Siegfried", "Roland", "Theseus", "Hector", "Aeneas", "Tristan", "Rollo"},
		female:      []string{"Morgana", "Penelope", "Judith", "Boudica", "Mulan", "Joan", "Cleopatra", "Ariadne", "Isolde", "Freydis", "Sigrid", "Helena"},
		androgynous: []string{"Robin", "Merlin", "Sage", "Percival", "Morgan", "Lancelot", "Quinn", "Rowan", "Sasha", "Jules", "Avery"},
		surnames:    []string{"Ironheart", "Vanguard", "Mortal", "Earthbound", "Legacy", "Chronicle", "Wayfarer", "Stonefield", "Brightwood", "Oathbound"},
		mononyms:    []string{"Champion", "Wanderer", "Hero", "Seeker", "Survivor", "Pilgrim", "Artisan", "Vigil", "Outrider"},
	},
	entities.OrderTitan: {
		male:        []string{"Atlas", "Prometheus", "Hyperion", "Kronos", "Oceanus", "Helios", "Coeus", "Iapetus", "Crius", "Astraeus", "Pallas", "Epimetheus"},
		female:      []string{"Rhea", "Themis", "Phoebe", "Tethys", "Mnemosyne", "Theia", "Dione", "Clymene", "Eurybia", "Ananke", "Asteria", "Eos"},
		androgynous: []string{"Metis", "Leto", "Asteria", "Selene", "Eos", "Ananke", "Moira", "Nemesis", "Chrona"},
		surnames:    []string{"Primordial", "Worldbearer", "Titanborn", "Olympian", "Gigantes", "Firstborn", "Skyforge", "Stonecrown", "Worldroot", "Firstfire"},
		mononyms:    []string{"Colossus", "Elder", "Primeval", "Vast", "Ancient", "Behemoth", "Foundation", "Eon"},
	},
	entities.OrderFae: {
		male:        []string{"Oberon", "Puck", "Finvarra", "Ailill", "Gwyn", "Pwyll", "Midir", "Arawn", "Ciaran", "Eogan", "Faolan", "Rhydderch"},
		female:      []string{"Titania", "Mab", "Oonagh", "Niamh", "Aine", "Maeve", "Etain", "Deirdre", "Brigid", "Aoife", "Roisin", "Eithne"},
		androgynous: []string{"Gossamer", "Willow", "Thorn", "Bramble", "Elderwood", "Moonshade", "Foxglove", "Moss", "Silverleaf", "Echofern"},
		surnames:    []string{"Wildwood", "Glamour", "Moonwhisper", "Dewdrop", "Starlight", "Thornheart", "Glimmerdew", "Mistbloom", "Fernwhorl", "Moonlace"},
		mononyms:    []string{"Sprite", "Pixie", "Changeling", "Wisp", "Glimmer", "Glamour", "Moth", "Dew"},
	},
	entities.OrderYokai: {
		male:        []string{"Tengu", "Kappa", "Oni", "Raijin", "Fujin", "Inugami", "Ryujin", "Akio", "Haruto", "Renji", "Kaito", "Shiro", "Daichi"},
		female:      []string{"Kitsune", "Yuki-onna", "Jorogumo", "Futakuchi-onna", "Nure-onna", "Hone-onna", "Yumi", "Hina", "Akari", "Sakura", "Mai", "Reiko"},
		androgynous: []string{"Tanuki", "Kodama", "Nue", "Kirin", "Tsukumogami", "Bakeneko", "Rei", "Makoto", "Haru", "Sora", "Kaede"},
		surnames:    []string{"Yokaido", "Ayakashi", "Mononoke", "Yurei", "Bakemono", "Kurogane", "Shirogami", "Tsukikage", "Kazehara"},
		mononyms:    []string{"Obake", "Mujina", "Henge", "Yasha", "Kamikaze", "Kage", "Mask", "Whisper", "Foxfire"},
	},
	entities.OrderElemental: {
		male:        []string{"Ignis", "Aquilo", "Zephyrus", "Geo", "Vulcan", "Boreas", "Notus", "Aeris", "Pyrr", "Glacius", "Flint", "Cinder"},
		female:      []string{"Undine", "Sylph", "Salamandra", "Terra", "Aura", "Marina", "Ember", "Astraea", "Brine", "Calyx", "Sirova", "Glacia"},
		androgynous: []string{"Gnome", "Ifrit", "Djinn", "Nymph", "Dryad", "Naiad", "Oread", "Zephyr", "Spark", "Stone", "Mist", "Current"},
		surnames:    []string{"Stormborn", "Earthshaper", "Flameheart", "Tidecaller", "Windwalker", "Cinderwake", "Mistweaver", "Stonewhorl", "Brinewell", "Skycurrent"},
		mononyms:    []string{"Blaze", "Torrent", "Gale", "Quake", "Tempest", "Ember", "Mist", "Spark"},
	},
	entities.OrderNephilim: {
		male:        []string{"Anak", "Goliath", "Og", "Nimrod", "Samyaza", "Azazel", "Gadreel", "Azariel", "Serapion", "Ezekar", "Malkor", "Raguel"},
		female:      []string{"Naarah", "Zillah", "Adah", "Nephira", "Anakiel", "Seraphel", "Seraphine", "Eliara", "Zeriel", "Marael", "Azaia"},
		androgynous: []string{"Enoch", "Jared", "Mahalalel", "Kenan", "Seth", "Noah", "Uri", "Zadok"},
		surnames:    []string{"Giantborn", "Halfblood", "Skyfall", "Earthshaker", "Starkin", "Skyborne", "Stonegiant", "Dawnfall", "Starbridge", "Cloudward"},
		mononyms:    []string{"Colossus", "Hybrid", "Fallen", "Towering", "Giant", "Skyborn", "Halfstar", "Riftwalker"},
	},
	entities.OrderArchon: {
		male:        []string{"Sabaoth", "Ialdabaoth", "Saklas", "Samael", "Authades", "Yao", "Oronos", "Kalyptos", "Aionis", "Sideron"},
		female:      []string{"Sophia", "Barbelo", "Zoe", "Pronoia", "Pistis", "Achamoth", "Eirene", "Noema", "Aletheia", "Thelma"},
		androgynous: []string{"Abraxas", "Nous", "Logos", "Pleroma", "Bythos", "Sige", "Axiom", "Mandate", "Cipher", "Ordinance"},
		surnames:    []string{"Aeonborn", "Demiurge", "Cosmocrator", "Aetheric", "Primarch", "Lawweft", "VoidEdict", "StarScript", "Pleromic", "Axiarch"},
		mononyms:    []string{"Ruler", "Archon", "Eon", "Cosmic", "Prime", "Edict", "Axiom", "Mandate"},
	},
	entities.OrderDragonkin: {
		male:        []string{"Fafnir", "Kaedros", "Vythor", "Aurelian", "Tharos", "Drakon", "Skaelor", "Pyrrhos", "Vermis", "Kharzun"},
		female:      []string{"Tiamara", "Saphyra", "Kaida", "Lyraeth", "Nythria", "Emberlyn", "Dracona", "Cindara", "Aurelith", "Vyrra"},
		androgynous: []string{"Ashwyn", "Dracel", "Kirin", "Emberis", "Skael", "Talyn", "Wyrmlyn", "Cinderis", "Skywyr", "Scaleveil"},
		surnames:    []string{"Flamecrest", "Scaleheart", "Stormtalon", "Wyrmguard", "Pyreblood", "Ashscale", "Goldfang", "Skyfire", "Embercrown", "Ridgewyrm"},
		mononyms:    []string{"Pyre", "Ember", "Wyrm", "Cinder", "Aerie", "Scale", "Skyfire", "Fang"},
	},
	entities.OrderConstruct: {
		male:        []string{"Ferrus", "Axion", "Talos", "Cobal", "Gideon", "Quirin", "Vectron", "Sprocket", "Axiom", "Chronos", "Boltar"},
		female:      []string{"Seraphiel", "Auriga", "Kalyx", "Vespera", "Ilyra", "Ophiel", "Nyxelle", "Korrax", "Lumira", "Axioma"},
		androgynous: []string{"Cipher", "Alloy", "Vector", "Nexus", "Parallax", "Circuit", "Module", "Kernel", "Mnemonic", "Relay"},
		surnames:    []string{"Gearheart", "Ironkeep", "Mnemonic", "Coilbound", "GildedWard", "Clockspire", "Pulseforge", "CircuitVault", "AxiomGate", "SteelArchive"},
		mononyms:    []string{"Cog", "Pulse", "Glyph", "Prime", "Halo", "Relay", "Kernel", "Module"},
	},
	entities.OrderEldritch: {
		male:        []string{"Azathor", "Nyraem", "Ultharic", "Kezroth", "Vorun", "Eldaros", "Xeroth", "Qorun", "Malthyr", "Serovoid"},
		female:      []string{"Azelia", "Ythria", "Noctessa", "Isyra", "Velith", "Zenara", "Nyssara", "Vorael", "Elyth", "Zerith"},
		androgynous: []string{"Xhaos", "Voidra", "Serolith", "Quorin", "Mhyrr", "Abyl", "Nulla", "Chasmiel", "Echoform", "Riftborn"},
		surnames:    []string{"Starwound", "Voidborn", "Dreamrend", "Horizonfall", "Nullsigil", "BlackOrbit", "Abyssal", "Starless", "FarChorus", "NightWeft"},
		mononyms:    []string{"Null", "Chasm", "Echo", "Abyss", "Rift", "Hush", "Orbit", "Starless"},
	},
	entities.OrderTrickster: {
		male:        []string{"Anansi", "Loki", "Till", "Coyote", "Harlequin", "Pierrot", "Jape", "Quillon", "Merry", "Puckster"},
		female:      []string{"Coyol", "Mara", "Mischala", "Vexa", "Lira", "Bellatrix", "Jinx", "Tansy", "Capri", "Wink"},
		androgynous: []string{"Jester", "Fool", "Carnivale", "Riddle", "Mockery", "Satire", "Quip", "Bumble", "Doodle", "Fable"},
		surnames:    []string{"Laughline", "Prankweaver", "Trolltongue", "Chaosmask", "Gallowsgrin", "Jestwind", "Gigglebrook", "Jingle", "Oddluck"},
		mononyms:    []string{"Guffaw", "Cackle", "Snicker", "Grin", "Jinx", "Wink", "Quip", "Bumble"},
	},
}
