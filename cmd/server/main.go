// Package main is the entry point for the oripheon server and CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/oripheon-api/cmd/server/client"
	"github.com/KirkDiggler/oripheon-api/cmd/server/commands"
	"github.com/KirkDiggler/oripheon-api/internal/config"
)

var (
	cfg *config.Config

	storeDriver string
	sqlitePath  string
)

var rootCmd = &cobra.Command{
	Use:   "oripheon",
	Short: "Oripheon avatar forge",
	Long: `Oripheon forges deterministic avatars for celestial and infernal beings:
names, heritage, appearance, personality and mythos, all reproducible from a seed.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeDriver, "store", "", "avatar store: memory|redis|sqlite|postgres (overrides STORE_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "db", "", "sqlite database path (overrides SQLITE_PATH)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(commands.New(openLocal)...)
	rootCmd.AddCommand(client.ClientCmd)
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	if storeDriver != "" {
		loaded.StoreDriver = config.StoreDriver(storeDriver)
	}
	if sqlitePath != "" {
		loaded.SQLitePath = sqlitePath
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	slog.SetDefault(loaded.NewLogger(cmd.ErrOrStderr()))
	cfg = loaded
	return nil
}
