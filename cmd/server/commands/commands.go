// Package commands holds the avatar subcommands. The same commands run
// in-process against a local store or over gRPC against a server; only the
// Opener differs.
package commands

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/oripheon-api/cmd/server/params"
	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
	"github.com/KirkDiggler/oripheon-api/internal/handlers/avatar/v1alpha1"
	"github.com/KirkDiggler/oripheon-api/internal/orchestrators/avatar"
)

// Opener returns the service to run against and a cleanup func
type Opener func(ctx context.Context) (avatar.Service, func(), error)

// New builds the avatar subcommands
func New(open Opener) []*cobra.Command {
	return []*cobra.Command{
		generateCmd(open),
		rerollCmd(open),
		getCmd(open),
		listCmd(open),
		deleteCmd(open),
		namesCmd(open),
		exportCmd(open),
		catalogCmd(open),
	}
}

func run(cmd *cobra.Command, open Opener, fn func(ctx context.Context, svc avatar.Service) (any, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, cleanup, err := open(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := fn(ctx, svc)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}

func generateCmd(open Opener) *cobra.Command {
	var flags params.Flags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Forge and store a new avatar",
		Example: `  oripheon generate --seed 42
  oripheon generate --order demon --tarot tower --culture norse_viking:0.7,celtic:0.3
  oripheon generate --archetype ashen_seer --traits prophet --sigil 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := flags.Build(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd, open, func(ctx context.Context, svc avatar.Service) (any, error) {
				out, err := svc.Generate(ctx, &avatar.GenerateInput{Params: p})
				if err != nil {
					return nil, err
				}
				return out.Avatar, nil
			})
		},
	}
	flags.Register(cmd.Flags())
	return cmd
}

func rerollCmd(open Opener) *cobra.Command {
	var (
		flags params.Flags
		locks []string
	)
	cmd := &cobra.Command{
		Use:   "reroll <id>",
		Short: "Regenerate a stored avatar, keeping locked fields",
		Example: `  oripheon reroll 6f1c... --lock identity.primaryName,being.order
  oripheon reroll 6f1c... --lock seed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.Build(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd, open, func(ctx context.Context, svc avatar.Service) (any, error) {
				out, err := svc.Reroll(ctx, &avatar.RerollInput{ID: args[0], Params: p, Locks: locks})
				if err != nil {
					return nil, err
				}
				return out.Avatar, nil
			})
		},
	}
	flags.Register(cmd.Flags())
	cmd.Flags().StringSliceVar(&locks, "lock", nil, "dotted field paths to keep, e.g. being.order")
	return cmd
}

func getCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a stored avatar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, open, func(ctx context.Context, svc avatar.Service) (any, error) {
				out, err := svc.Get(ctx, &avatar.GetInput{ID: args[0]})
				if err != nil {
					return nil, err
				}
				return out.Avatar, nil
			})
		},
	}
}

func listCmd(open Opener) *cobra.Command {
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored avatars, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, open, func(ctx context.Context, svc avatar.Service) (any, error) {
				out, err := svc.List(ctx, &avatar.ListInput{Limit: limit, Offset: offset})
				if err != nil {
					return nil, err
				}
				return v1alpha1.ListResponse{
					Avatars: out.Avatars,
					Limit:   out.Limit,
					Offset:  out.Offset,
					Total:   out.Total,
				}, nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "page size; 0 uses the server default")
	cmd.Flags().IntVar(&offset, "offset", 0, "items to skip")
	return cmd
}

func deleteCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored avatar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, open, func(ctx context.Context, svc avatar.Service) (any, error) {
				if _, err := svc.Delete(ctx, &avatar.DeleteInput{ID: args[0]}); err != nil {
					return nil, err
				}
				return map[string]string{"deleted": args[0]}, nil
			})
		},
	}
}

func namesCmd(open Opener) *cobra.Command {
	var (
		seed     int64
		in       avatar.NameCandidatesInput
		nameMode string
	)
	cmd := &cobra.Command{
		Use:     "names",
		Short:   "Forge ranked name candidates without storing anything",
		Example: `  oripheon names --archetype dusk_knight --traits paladin,exile --limit 5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := in
			if cmd.Flags().Changed("seed") {
				input.Seed = &seed
			}
			if err := params.CheckSeed(input.Seed); err != nil {
				return err
			}
			if nameMode != "" {
				mode, err := entities.ParseNameMode(nameMode)
				if err != nil {
					return err
				}
				input.NameMode = mode
			}
			return run(cmd, open, func(ctx context.Context, svc avatar.Service) (any, error) {
				out, err := svc.NameCandidates(ctx, &input)
				if err != nil {
					return nil, err
				}
				return v1alpha1.NameCandidatesResponse{Names: out.Names, Seed: out.Seed}, nil
			})
		},
	}
	f := cmd.Flags()
	f.Int64Var(&seed, "seed", 0, "forge seed")
	f.StringVar(&in.Archetype, "archetype", "", "archetype id (see catalog)")
	f.StringSliceVar(&in.Traits, "traits", nil, "trait ids")
	f.StringVar(&in.Style, "style", "", "style id")
	f.StringVar(&nameMode, "name-mode", "", "mononym|first_last|first_middle_last|fused_mononym")
	f.BoolVar(&in.AllowTitles, "titles", false, "allow titles")
	f.BoolVar(&in.AllowEpithets, "epithets", false, "allow epithets")
	f.IntVar(&in.Candidates, "candidates", 0, "candidates to score")
	f.IntVar(&in.Limit, "limit", 0, "names to return")
	return cmd
}

func exportCmd(open Opener) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Render a stored avatar for an external character platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, open, func(ctx context.Context, svc avatar.Service) (any, error) {
				out, err := svc.Export(ctx, &avatar.ExportInput{ID: args[0], Format: format})
				if err != nil {
					return nil, err
				}
				return out.Payload, nil
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", "inworld", "inworld|convai|charisma")
	return cmd
}

func catalogCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List archetypes, traits, styles, cultures, orders and lock paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, open, func(ctx context.Context, svc avatar.Service) (any, error) {
				return svc.Catalog(ctx, &avatar.CatalogInput{})
			})
		},
	}
}
