// Package interceptors holds the gRPC server interceptors shared by every
// service: request ids and the slog bridge for the logging middleware.
package interceptors

import (
	"context"
	"log/slog"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/oripheon-api/internal/pkg/idgen"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "x-request-id"

const maxRequestIDLen = 128

type contextKey struct{}

// RequestIDFromContext returns the id set by RequestID, or ""
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// RequestID reuses a printable incoming x-request-id or mints one, stores it
// in the context and the logging fields, and echoes it as a response header.
func RequestID(gen idgen.Generator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		id := incomingRequestID(ctx)
		if id == "" {
			id = gen.Generate()
		}

		ctx = context.WithValue(ctx, contextKey{}, id)
		ctx = grpc_logging.InjectFields(ctx, grpc_logging.Fields{"request_id", id})
		// no transport stream in direct calls; the header is best effort
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, id))

		return handler(ctx, req)
	}
}

func incomingRequestID(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, v := range md.Get(RequestIDHeader) {
		if printableASCII(v) && len(v) <= maxRequestIDLen {
			return v
		}
	}
	return ""
}

func printableASCII(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// SlogLogger adapts a slog.Logger to the logging middleware. The middleware
// levels share slog's numeric values.
func SlogLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
