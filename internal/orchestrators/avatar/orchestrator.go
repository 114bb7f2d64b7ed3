// Package avatar implements the avatar orchestrator: generation, rerolls
// with locks, storage, name candidates and export.
package avatar

//go:generate mockgen -destination=mock/mock_service.go -package=avatarmock github.com/KirkDiggler/oripheon-api/internal/orchestrators/avatar Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/oripheon-api/internal/engine"
	"github.com/KirkDiggler/oripheon-api/internal/engine/forge"
	"github.com/KirkDiggler/oripheon-api/internal/engine/locks"
	"github.com/KirkDiggler/oripheon-api/internal/engine/randomizer"
	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
	"github.com/KirkDiggler/oripheon-api/internal/exporters"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/clock"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/idgen"
	"github.com/KirkDiggler/oripheon-api/internal/repositories/avatars"
)

const (
	// DefaultListLimit is used when neither the caller nor config sets one
	DefaultListLimit = 20
	// MaxListLimit caps a single page
	MaxListLimit = 100
)

// Service defines the interface for avatar operations
type Service interface {
	// Generate creates, stores and returns a new avatar
	// Returns errors.InvalidArgument for bad params
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)

	// Reroll regenerates a stored avatar, keeping locked fields
	// Returns errors.NotFound if the avatar doesn't exist
	// Returns errors.InvalidArgument for bad params or unknown lock paths
	Reroll(ctx context.Context, input *RerollInput) (*RerollOutput, error)

	// Get returns a stored avatar
	// Returns errors.NotFound if the avatar doesn't exist
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes a stored avatar
	// Returns errors.NotFound if the avatar doesn't exist
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// List returns stored avatars newest first
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// NameCandidates runs the name forge without storing anything
	NameCandidates(ctx context.Context, input *NameCandidatesInput) (*NameCandidatesOutput, error)

	// Export renders a stored avatar for an external character platform
	// Returns errors.InvalidArgument for an unknown format
	// Returns errors.NotFound if the avatar doesn't exist
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)

	// Catalog lists the registries clients may choose from
	Catalog(ctx context.Context, input *CatalogInput) (*CatalogOutput, error)
}

// Config holds the dependencies for the avatar orchestrator
type Config struct {
	Engine      engine.Engine
	Repository  avatars.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// ListDefaultLimit defaults to DefaultListLimit
	ListDefaultLimit int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	errors.ValidateRange("ListDefaultLimit", c.ListDefaultLimit, 0, MaxListLimit, vb)

	return vb.Build()
}

type orchestrator struct {
	engine       engine.Engine
	repo         avatars.Repository
	idGen        idgen.Generator
	clock        clock.Clock
	defaultLimit int
}

// NewOrchestrator creates a new avatar orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	limit := cfg.ListDefaultLimit
	if limit == 0 {
		limit = DefaultListLimit
	}

	return &orchestrator{
		engine:       cfg.Engine,
		repo:         cfg.Repository,
		idGen:        cfg.IDGenerator,
		clock:        c,
		defaultLimit: limit,
	}, nil
}

func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	generated, err := o.engine.Generate(ctx, &engine.GenerateInput{Params: input.Params})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate avatar")
	}

	avatar := generated.Avatar
	avatar.ID = o.idGen.Generate()
	avatar.CreatedAt = o.clock.Now()

	if _, err := o.repo.Create(ctx, avatars.CreateInput{Avatar: avatar}); err != nil {
		return nil, errors.Wrap(err, "failed to store avatar")
	}

	slog.InfoContext(ctx, "avatar generated",
		"id", avatar.ID,
		"seed", avatar.Seed,
		"order", avatar.Being.Order)

	return &GenerateOutput{Avatar: avatar}, nil
}

func (o *orchestrator) Reroll(ctx context.Context, input *RerollInput) (*RerollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID(input.ID); err != nil {
		return nil, err
	}

	paths, err := locks.ParseAll(input.Locks)
	if err != nil {
		return nil, err
	}

	existing, err := o.repo.Get(ctx, avatars.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load avatar %s", input.ID)
	}

	rerolled, err := o.engine.Reroll(ctx, &engine.RerollInput{
		Existing: existing.Avatar,
		Params:   input.Params,
		Locks:    paths,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to reroll avatar")
	}

	updated, err := o.repo.Update(ctx, avatars.UpdateInput{Avatar: rerolled.Avatar})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store rerolled avatar")
	}

	slog.InfoContext(ctx, "avatar rerolled",
		"id", input.ID,
		"seed", rerolled.Seed,
		"locks", len(paths))

	return &RerollOutput{Avatar: updated.Avatar}, nil
}

func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID(input.ID); err != nil {
		return nil, err
	}

	out, err := o.repo.Get(ctx, avatars.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get avatar %s", input.ID)
	}
	return &GetOutput{Avatar: out.Avatar}, nil
}

func (o *orchestrator) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID(input.ID); err != nil {
		return nil, err
	}

	if _, err := o.repo.Delete(ctx, avatars.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete avatar %s", input.ID)
	}

	slog.InfoContext(ctx, "avatar deleted", "id", input.ID)
	return &DeleteOutput{}, nil
}

func (o *orchestrator) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		input = &ListInput{}
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("limit", input.Limit, 0, MaxListLimit, vb)
	if input.Offset < 0 {
		vb.Field("offset", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = o.defaultLimit
	}

	out, err := o.repo.List(ctx, avatars.ListInput{Limit: limit, Offset: input.Offset})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list avatars")
	}

	return &ListOutput{
		Avatars: out.Avatars,
		Limit:   limit,
		Offset:  input.Offset,
		Total:   out.Total,
	}, nil
}

func (o *orchestrator) NameCandidates(ctx context.Context, input *NameCandidatesInput) (*NameCandidatesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.engine.NameCandidates(ctx, &engine.NameCandidatesInput{
		Seed:          input.Seed,
		Archetype:     input.Archetype,
		Traits:        input.Traits,
		Style:         input.Style,
		NameMode:      input.NameMode,
		AllowTitles:   input.AllowTitles,
		AllowEpithets: input.AllowEpithets,
		Candidates:    input.Candidates,
		Limit:         input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to forge names")
	}

	return &NameCandidatesOutput{Names: out.Names, Seed: out.Seed}, nil
}

func (o *orchestrator) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireID(input.ID); err != nil {
		return nil, err
	}

	format, err := exporters.ParseFormat(input.Format)
	if err != nil {
		return nil, err
	}

	stored, err := o.repo.Get(ctx, avatars.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get avatar %s", input.ID)
	}

	payload, err := exporters.Export(stored.Avatar, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to export avatar %s", input.ID)
	}

	return &ExportOutput{Format: format, Payload: payload}, nil
}

func (o *orchestrator) Catalog(_ context.Context, _ *CatalogInput) (*CatalogOutput, error) {
	out := &CatalogOutput{}

	for _, a := range forge.Archetypes() {
		entry := ArchetypeEntry{ID: a.ID, Label: a.Label, Group: a.Group, SuggestedTraits: []string{}}
		for _, t := range a.SuggestedTraits {
			entry.SuggestedTraits = append(entry.SuggestedTraits, string(t))
		}
		out.Archetypes = append(out.Archetypes, entry)
	}
	for _, t := range forge.Traits() {
		out.Traits = append(out.Traits, CatalogEntry{ID: string(t.ID), Label: t.Label})
	}
	for _, s := range forge.Styles() {
		out.Styles = append(out.Styles, CatalogEntry{ID: string(s.ID), Label: s.Label})
	}
	for _, c := range entities.Cultures {
		out.Cultures = append(out.Cultures, CatalogEntry{ID: string(c), Label: randomizer.CultureLabel(c)})
	}
	for _, ord := range entities.Orders {
		out.Orders = append(out.Orders, OrderEntry{
			ID:      string(ord),
			Offices: append([]string{}, randomizer.Offices(ord)...),
		})
	}
	out.Tarot = stringsOf(entities.TarotArchetypes)
	out.Genders = stringsOf(entities.Genders)
	out.NameModes = stringsOf(entities.NameModes)
	out.LockPaths = stringsOf(locks.All())
	out.ExportFormats = stringsOf(exporters.Formats)

	return out, nil
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func requireID(id string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", id, vb)
	return vb.Build()
}
