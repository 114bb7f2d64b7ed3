package engine

import (
	"context"
	"strings"

	"github.com/KirkDiggler/oripheon-api/internal/engine/banks"
	"github.com/KirkDiggler/oripheon-api/internal/engine/forge"
	"github.com/KirkDiggler/oripheon-api/internal/engine/locks"
	"github.com/KirkDiggler/oripheon-api/internal/engine/randomizer"
	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/random"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/rng"
)

const maxCandidates = 200

type engine struct {
	names banks.Generator
	seeds random.SeedSource
}

// Config holds the engine's collaborators
type Config struct {
	Names banks.Generator
	Seeds random.SeedSource
}

// Validate checks the config
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Names == nil {
		vb.RequiredField("Names")
	}
	if cfg.Seeds == nil {
		vb.RequiredField("Seeds")
	}
	return vb.Build()
}

// New creates an engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{names: cfg.Names, seeds: cfg.Seeds}, nil
}

func (e *engine) Generate(_ context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateParams(input.Params); err != nil {
		return nil, err
	}

	seed := e.seed(input.Params.Seed)
	avatar, err := e.assemble(seed, input.Params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to generate avatar for seed %d", seed)
	}
	return &GenerateOutput{Avatar: avatar, Seed: seed}, nil
}

func (e *engine) Reroll(_ context.Context, input *RerollInput) (*RerollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Existing == nil {
		return nil, errors.InvalidArgument("existing avatar is required")
	}
	if err := validateParams(input.Params); err != nil {
		return nil, err
	}

	hints := locks.Hints(input.Existing, input.Params, input.Locks)
	seed := e.seed(hints.Seed)
	candidate, err := e.assemble(seed, hints)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reroll avatar %s", input.Existing.ID)
	}
	candidate.ID = input.Existing.ID
	candidate.CreatedAt = input.Existing.CreatedAt

	return &RerollOutput{
		Avatar: locks.Apply(input.Existing, candidate, input.Locks),
		Seed:   seed,
	}, nil
}

func (e *engine) NameCandidates(_ context.Context, input *NameCandidatesInput) (*NameCandidatesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("archetype", input.Archetype, vb)
	if input.NameMode != "" {
		if _, err := entities.ParseNameMode(string(input.NameMode)); err != nil {
			vb.InvalidField("nameMode", err.Error())
		}
	}
	errors.ValidateRange("candidates", input.Candidates, 0, maxCandidates, vb)
	errors.ValidateRange("limit", input.Limit, 0, maxCandidates, vb)
	entities.ValidateSeed("seed", input.Seed, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	mode := input.NameMode
	if mode == "" {
		mode = entities.NameModeFirstLast
	}

	seed := e.seed(input.Seed)
	names, err := forge.GenerateCandidates(rng.New(seed), forge.Options{
		Archetype:     strings.TrimSpace(input.Archetype),
		Traits:        forge.NormalizeTraitIDs(input.Traits, forge.MaxTraits),
		Style:         forge.StyleID(input.Style),
		AllowTitles:   input.AllowTitles,
		AllowEpithets: input.AllowEpithets,
		NameMode:      mode,
		Candidates:    input.Candidates,
		Limit:         input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to forge names")
	}
	return &NameCandidatesOutput{Names: names, Seed: seed}, nil
}

func (e *engine) seed(requested *int64) int64 {
	if requested != nil {
		return *requested
	}
	return e.seeds.NewSeed()
}

// assemble runs every facet off one stream in a fixed order: heritage,
// identity, being, appearance, personality, mythos, taste. Name meaning is
// filled last and draws nothing.
func (e *engine) assemble(seed int64, params entities.Params) (*entities.Avatar, error) {
	r := randomizer.New(rng.New(seed), e.names, params.Prompt)

	var heritage entities.Heritage
	if params.Heritage != nil {
		heritage = params.Heritage.Clone()
	} else {
		var err error
		if heritage, err = r.DefaultHeritage(); err != nil {
			return nil, err
		}
	}

	var beingParams entities.BeingParams
	if params.Being != nil {
		beingParams = *params.Being
	}
	identity, err := r.Identity(randomizer.IdentityInput{
		Params:         params.Identity,
		Heritage:       heritage,
		NeedPseudonyms: params.WantsPseudonyms(),
		Order:          beingParams.Order,
		Tarot:          beingParams.TarotArchetype,
	})
	if err != nil {
		return nil, err
	}

	being, err := r.Being(params.Being)
	if err != nil {
		return nil, err
	}
	appearance := r.Appearance()
	personality := r.Personality()
	mythos := r.Mythos(being, heritage)
	taste := r.TasteProfile()

	identity.Identity.NameMeaning = randomizer.NameMeaning(identity.BaseName, heritage, being)

	return &entities.Avatar{
		Seed:         seed,
		Identity:     identity.Identity,
		Heritage:     heritage,
		Being:        being,
		Appearance:   appearance,
		Personality:  personality,
		Mythos:       mythos,
		TasteProfile: taste,
	}, nil
}
