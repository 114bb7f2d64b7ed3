package banks

import "github.com/KirkDiggler/oripheon-api/internal/entities"

// cultureBanks hold the heritage name lists.
var cultureBanks = map[entities.Culture]buckets{
	entities.CultureYoruba: {
		male:        []string{"Adeyemi", "Babatunde", "Olujinmi", "Kayode"},
		female:      []string{"Amara", "Yetunde", "Folake", "Temitope"},
		androgynous: []string{"Ola", "Taiwo", "Ayodele"},
		surnames:    []string{"Adebayo", "Ogunleye", "Okoya", "Oshodi"},
		mononyms:    []string{"Oba", "Ori", "Yemo"},
	},
	entities.CultureIgbo: {
		male:        []string{"Chinedu", "Obinna", "Emeka", "Ugochukwu"},
		female:      []string{"Adaeze", "Ngozi", "Chimaka", "Oluchi"},
		androgynous: []string{"Kelechi", "Ife", "Damili"},
		surnames:    []string{"Okafor", "Nwosu", "Eze", "Madu"},
		mononyms:    []string{"Nma", "Udo"},
	},
	entities.CultureArabic: {
		male:        []string{"Idris", "Jibril", "Zayd", "Karim"},
		female:      []string{"Layla", "Mariam", "Soraya", "Zahra"},
		androgynous: []string{"Noor", "Amani", "Raf", "Azar"},
		surnames:    []string{"al-Harith", "Rahman", "Sarif", "Mirza"},
		mononyms:    []string{"Nur", "Haqq"},
	},
	entities.CultureCaucasianEuropean: {
		male:        []string{"Lucian", "Matthias", "Sebastian", "Rene"},
		female:      []string{"Elara", "Vivienne", "Isolde", "Rowena"},
		androgynous: []string{"Jules", "Adrian", "Sasha"},
		surnames:    []string{"Kingsley", "Vaughn", "Sinclair", "Bellerose"},
		mononyms:    []string{"Rune", "Vale"},
	},
	entities.CultureCeltic: {
		male:        []string{"Finnian", "Cormac", "Ronan", "Aeron"},
		female:      []string{"Eira", "Niamh", "Siobhan", "Rhiannon"},
		androgynous: []string{"Quinn", "Morgan", "Dilys"},
		surnames:    []string{"MacCrae", "O'Connell", "Kavanagh", "Rowntree"},
		mononyms:    []string{"Bryn", "Thorne"},
	},
	entities.CultureNorseViking: {
		male:        []string{"Bjorn", "Leif", "Soren", "Eirik"},
		female:      []string{"Astrid", "Freya", "Signe", "Liv"},
		androgynous: []string{"Skadi", "Storm", "Nika"},
		surnames:    []string{"Stormguard", "Ulfrik", "Ragnarsson", "Skeld"},
		mononyms:    []string{"Frost", "Drake"},
	},
}
