// Package params maps command-line flags onto generation params. The local
// commands and the gRPC client commands share it.
package params

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
)

// Flags holds the raw flag values
type Flags struct {
	JSON           string
	Seed           int64
	Gender         string
	NameMode       string
	Length         string
	Title          string
	NoTitle        bool
	Clash          bool
	NoPseudonyms   bool
	Cultures       []string
	Order          string
	Office         string
	Tarot          string
	Archetype      string
	Traits         []string
	Style          string
	Epithets       bool
	PreferredNames []string
	DesiredTraits  []string
	Skills         []string
	Persona        string
	Sigil          float64
}

// Register adds the generation flags to a flag set
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.JSON, "params", "", "params as JSON, or @file.json; flags override it")
	fs.Int64Var(&f.Seed, "seed", 0, "generation seed")
	fs.StringVar(&f.Gender, "gender", "", "male|female|androgynous")
	fs.StringVar(&f.NameMode, "name-mode", "", "mononym|first_last|first_middle_last|fused_mononym")
	fs.StringVar(&f.Length, "length", "", "short|long")
	fs.StringVar(&f.Title, "title", "", "force this title")
	fs.BoolVar(&f.NoTitle, "no-title", false, "generate without a title")
	fs.BoolVar(&f.Clash, "clash", false, "anachronistic clash name")
	fs.BoolVar(&f.NoPseudonyms, "no-pseudonyms", false, "skip light and dark pseudonyms")
	fs.StringSliceVar(&f.Cultures, "culture", nil, "culture or culture:weight; two for a mixed heritage")
	fs.StringVar(&f.Order, "order", "", "being order, e.g. angel")
	fs.StringVar(&f.Office, "office", "", "office within the order")
	fs.StringVar(&f.Tarot, "tarot", "", "tarot archetype, e.g. star")
	fs.StringVar(&f.Archetype, "archetype", "", "name forge archetype")
	fs.StringSliceVar(&f.Traits, "traits", nil, "name forge traits")
	fs.StringVar(&f.Style, "style", "", "name forge style")
	fs.BoolVar(&f.Epithets, "epithets", false, "allow forged epithets")
	fs.StringSliceVar(&f.PreferredNames, "prefer", nil, "preferred names")
	fs.StringSliceVar(&f.DesiredTraits, "desired-traits", nil, "personality traits to weave in")
	fs.StringSliceVar(&f.Skills, "skills", nil, "skills to weave into mythos")
	fs.StringVar(&f.Persona, "persona", "", "persona description")
	fs.Float64Var(&f.Sigil, "sigil", 0, "sigil bloom intensity 0-100; 0 disables")
}

// Build merges the JSON base with every flag the user actually set
func (f *Flags) Build(fs *pflag.FlagSet) (entities.Params, error) {
	var p entities.Params
	if f.JSON != "" {
		data := []byte(f.JSON)
		if path, ok := strings.CutPrefix(f.JSON, "@"); ok {
			var err error
			if data, err = os.ReadFile(path); err != nil {
				return p, errors.Wrapf(err, "failed to read %s", path)
			}
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return p, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid --params")
		}
	}

	if fs.Changed("seed") {
		seed := f.Seed
		p.Seed = &seed
	}
	if err := CheckSeed(p.Seed); err != nil {
		return p, err
	}

	if err := f.applyIdentity(fs, &p); err != nil {
		return p, err
	}
	if err := f.applyBeing(fs, &p); err != nil {
		return p, err
	}
	if len(f.Cultures) > 0 {
		h, err := ParseHeritage(f.Cultures)
		if err != nil {
			return p, err
		}
		p.Heritage = &h
	}
	if f.NoPseudonyms {
		no := false
		p.NeedPseudonyms = &no
	}
	f.applyPrompt(fs, &p)

	return p, nil
}

// CheckSeed rejects a seed that would not survive the trip to a remote
// server intact.
func CheckSeed(seed *int64) error {
	vb := errors.NewValidationBuilder()
	entities.ValidateSeed("seed", seed, vb)
	return vb.Build()
}

func (f *Flags) applyIdentity(fs *pflag.FlagSet, p *entities.Params) error {
	touched := fs.Changed("gender") || fs.Changed("name-mode") || fs.Changed("length") ||
		fs.Changed("title") || f.NoTitle || f.Clash
	if !touched {
		return nil
	}
	if p.Identity == nil {
		p.Identity = &entities.IdentityParams{}
	}

	var err error
	if fs.Changed("gender") {
		if p.Identity.Gender, err = entities.ParseGender(f.Gender); err != nil {
			return err
		}
	}
	if fs.Changed("name-mode") {
		if p.Identity.NameMode, err = entities.ParseNameMode(f.NameMode); err != nil {
			return err
		}
	}
	if fs.Changed("length") {
		if p.Identity.LengthPreference, err = entities.ParseLengthPreference(f.Length); err != nil {
			return err
		}
	}
	switch {
	case f.NoTitle && fs.Changed("title"):
		return errors.InvalidArgument("--title and --no-title are mutually exclusive")
	case f.NoTitle:
		p.Identity.Title = entities.NoTitle()
	case fs.Changed("title"):
		p.Identity.Title = entities.ForceTitle(f.Title)
	}
	if f.Clash {
		p.Identity.ClashNames = true
	}
	return nil
}

func (f *Flags) applyBeing(fs *pflag.FlagSet, p *entities.Params) error {
	if !fs.Changed("order") && !fs.Changed("office") && !fs.Changed("tarot") {
		return nil
	}
	if p.Being == nil {
		p.Being = &entities.BeingParams{}
	}

	var err error
	if fs.Changed("order") {
		if p.Being.Order, err = entities.ParseOrder(f.Order); err != nil {
			return err
		}
	}
	if fs.Changed("office") {
		p.Being.Office = f.Office
	}
	if fs.Changed("tarot") {
		if p.Being.TarotArchetype, err = entities.ParseTarotArchetype(f.Tarot); err != nil {
			return err
		}
	}
	return nil
}

func (f *Flags) applyPrompt(fs *pflag.FlagSet, p *entities.Params) {
	set := func(name string) bool { return fs.Changed(name) }
	if !set("archetype") && !set("traits") && !set("style") && !set("epithets") && !set("prefer") &&
		!set("desired-traits") && !set("skills") && !set("persona") && !set("sigil") {
		return
	}
	if p.Prompt == nil {
		p.Prompt = &entities.Prompt{}
	}

	if set("archetype") {
		p.Prompt.NameArchetype = f.Archetype
	}
	if set("traits") {
		p.Prompt.NameTraits = f.Traits
	}
	if set("style") {
		p.Prompt.NameStyle = f.Style
	}
	if set("epithets") {
		p.Prompt.AllowEpithets = f.Epithets
	}
	if set("prefer") {
		p.Prompt.PreferredNames = f.PreferredNames
	}
	if set("desired-traits") {
		p.Prompt.DesiredTraits = f.DesiredTraits
	}
	if set("skills") {
		p.Prompt.DesiredSkills = f.Skills
	}
	if set("persona") {
		p.Prompt.PersonaDescription = f.Persona
	}
	if set("sigil") {
		p.Prompt.SigilBloom = &entities.SigilBloom{Enabled: f.Sigil > 0, Intensity: f.Sigil}
	}
}

// ParseHeritage reads one or two culture[:weight] values. One culture is a
// single heritage with weight 1. Two cultures without weights split evenly.
func ParseHeritage(values []string) (entities.Heritage, error) {
	if len(values) == 0 || len(values) > 2 {
		return entities.Heritage{}, errors.InvalidArgument("give one or two cultures")
	}

	components := make([]entities.HeritageComponent, 0, len(values))
	weighted := 0
	for _, v := range values {
		name, rawWeight, hasWeight := strings.Cut(v, ":")
		culture, err := entities.ParseCulture(name)
		if err != nil {
			return entities.Heritage{}, err
		}
		c := entities.HeritageComponent{Culture: culture}
		if hasWeight {
			w, err := strconv.ParseFloat(rawWeight, 64)
			if err != nil {
				return entities.Heritage{}, errors.InvalidArgumentf("invalid weight %q for %s", rawWeight, name)
			}
			c.Weight = w
			weighted++
		}
		components = append(components, c)
	}

	if len(components) == 1 {
		components[0].Weight = 1
		return entities.Heritage{Mode: entities.HeritageSingle, Components: components}, nil
	}

	switch weighted {
	case 0:
		components[0].Weight, components[1].Weight = 0.5, 0.5
	case 1:
		return entities.Heritage{}, errors.InvalidArgument("give a weight for both cultures or neither")
	}
	return entities.Heritage{Mode: entities.HeritageMixed, Components: components}, nil
}
