package interceptors_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/oripheon-api/internal/handlers/interceptors"
	idgenmock "github.com/KirkDiggler/oripheon-api/internal/pkg/idgen/mock"
)

type RequestIDTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	idGen *idgenmock.MockGenerator
	info  *grpc.UnaryServerInfo
}

func TestRequestIDSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.idGen = idgenmock.NewMockGenerator(s.ctrl)
	s.info = &grpc.UnaryServerInfo{FullMethod: "/oripheon.avatar.v1alpha1.AvatarService/Generate"}
}

func (s *RequestIDTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RequestIDTestSuite) run(ctx context.Context) (string, grpc_logging.Fields) {
	var seenID string
	var seenFields grpc_logging.Fields
	_, err := interceptors.RequestID(s.idGen)(ctx, nil, s.info, func(ctx context.Context, _ any) (any, error) {
		seenID = interceptors.RequestIDFromContext(ctx)
		seenFields = grpc_logging.ExtractFields(ctx)
		return nil, nil
	})
	s.Require().NoError(err)
	return seenID, seenFields
}

func (s *RequestIDTestSuite) TestMintsWhenAbsent() {
	s.idGen.EXPECT().Generate().Return("01J0000000000000000000000")

	id, fields := s.run(context.Background())
	s.Equal("01J0000000000000000000000", id)
	s.Equal(grpc_logging.Fields{"request_id", "01J0000000000000000000000"}, fields)
}

func (s *RequestIDTestSuite) TestReusesIncoming() {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(interceptors.RequestIDHeader, "req-7"))

	id, _ := s.run(ctx)
	s.Equal("req-7", id)
}

func (s *RequestIDTestSuite) TestRejectsUnprintableIncoming() {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(interceptors.RequestIDHeader, "bad\nid"))
	s.idGen.EXPECT().Generate().Return("fresh")

	id, _ := s.run(ctx)
	s.Equal("fresh", id)
}

func (s *RequestIDTestSuite) TestSlogLogger() {
	var buf bytes.Buffer
	logger := interceptors.SlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	logger.Log(context.Background(), grpc_logging.LevelDebug, "quiet")
	logger.Log(context.Background(), grpc_logging.LevelWarn, "finished call", "grpc.code", "NotFound")

	s.NotContains(buf.String(), "quiet")
	s.Contains(buf.String(), "level=WARN")
	s.Contains(buf.String(), "grpc.code=NotFound")
}
