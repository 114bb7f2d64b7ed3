package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/oripheon-api/internal/handlers/avatar/v1alpha1"
	"github.com/KirkDiggler/oripheon-api/internal/handlers/interceptors"
	"github.com/KirkDiggler/oripheon-api/internal/orchestrators/avatar"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/idgen"
)

var (
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Oripheon gRPC server backed by the configured avatar store.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides GRPC_PORT)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := cfg.GRPCPort
	if grpcPort != 0 {
		port = grpcPort
	}

	svc, cleanup, err := newService(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv, err := newGRPCServer(svc, slog.Default())
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "gRPC server starting", "port", port, "store", cfg.StoreDriver)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		shutdown(srv, cfg.ShutdownTimeout)
		return nil
	case err := <-errChan:
		return err
	}
}

// newGRPCServer registers the avatar, health and reflection services
func newGRPCServer(svc avatar.Service, logger *slog.Logger) (*grpc.Server, error) {
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		AvatarService: svc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create avatar handler: %w", err)
	}

	grpcLogger := interceptors.SlogLogger(logger)
	recoverOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		logger.ErrorContext(ctx, "recovered from panic", "panic", p)
		return status.Error(codes.Internal, "internal error")
	})

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.RequestID(idgen.NewULID()),
			grpc_logging.UnaryServerInterceptor(grpcLogger, grpc_logging.WithLogOnEvents(grpc_logging.FinishCall)),
			grpc_recovery.UnaryServerInterceptor(recoverOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpcLogger),
			grpc_recovery.StreamServerInterceptor(recoverOpt),
		),
	)

	v1alpha1.RegisterAvatarServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, nil
}

func shutdown(srv *grpc.Server, timeout time.Duration) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(timeout):
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}
}
