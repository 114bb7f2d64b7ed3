// Package client runs the avatar commands against a remote Oripheon server
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/oripheon-api/cmd/server/commands"
	"github.com/KirkDiggler/oripheon-api/internal/handlers/avatar/v1alpha1"
	"github.com/KirkDiggler/oripheon-api/internal/orchestrators/avatar"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Run avatar commands against a running server",
	Long:  `Client commands make real gRPC requests to an Oripheon server and print the JSON responses.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(commands.New(openRemote)...)
}

func openRemote(_ context.Context) (avatar.Service, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return NewRemoteService(v1alpha1.NewAvatarServiceClient(conn), timeout), cleanup, nil
}
