package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
	"github.com/KirkDiggler/oripheon-api/internal/exporters"
	v1alpha1 "github.com/KirkDiggler/oripheon-api/internal/handlers/avatar/v1alpha1"
	"github.com/KirkDiggler/oripheon-api/internal/orchestrators/avatar"
	avatarmock "github.com/KirkDiggler/oripheon-api/internal/orchestrators/avatar/mock"
	"github.com/KirkDiggler/oripheon-api/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *avatarmock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = avatarmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	h, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{AvatarService: s.mockService})
	s.Require().NoError(err)
	s.handler = h
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(code, st.Code())
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Error(err)
}

func (s *HandlerTestSuite) TestGenerate() {
	stored := testutils.NewTestAvatar("avatar-1", testutils.FixtureTime)

	s.mockService.EXPECT().
		Generate(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *avatar.GenerateInput) (*avatar.GenerateOutput, error) {
			s.Require().NotNil(input.Params.Seed)
			s.Equal(int64(42), *input.Params.Seed)
			s.Require().NotNil(input.Params.Being)
			s.Equal(entities.OrderAngel, input.Params.Being.Order)
			s.Require().NotNil(input.Params.Identity)
			s.Equal(entities.NameModeMononym, input.Params.Identity.NameMode)
			return &avatar.GenerateOutput{Avatar: stored}, nil
		})

	resp, err := s.handler.Generate(s.ctx, s.request(map[string]any{
		"seed":     42,
		"being":    map[string]any{"order": "angel"},
		"identity": map[string]any{"nameMode": "mononym"},
	}))
	s.Require().NoError(err)

	var out v1alpha1.AvatarResponse
	s.Require().NoError(v1alpha1.DecodeResponse(resp, &out))
	s.Equal("avatar-1", out.Avatar.ID)
	s.Equal(entities.FirstLast{First: "Aelis", Last: "Lumen"}, out.Avatar.Identity.PrimaryName.Form)
	s.True(testutils.FixtureTime.Equal(out.Avatar.CreatedAt))
}

func (s *HandlerTestSuite) TestGenerateRejectsUnknownFields() {
	_, err := s.handler.Generate(s.ctx, s.request(map[string]any{"sede": 42}))
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestSeedsPastDoublePrecisionAreRejected() {
	// 2^53+1 arrives as 2^53 and 2^60+7 as a nearby double; neither may
	// reach the service as a silently different seed.
	for _, raw := range []float64{9007199254740993, 1152921504606846983, -9007199254740993} {
		_, err := s.handler.Generate(s.ctx, s.request(map[string]any{"seed": raw}))
		s.requireCode(err, codes.InvalidArgument)

		_, err = s.handler.NameCandidates(s.ctx, s.request(map[string]any{"seed": raw, "archetype": "ashen_seer"}))
		s.requireCode(err, codes.InvalidArgument)

		_, err = s.handler.Reroll(s.ctx, s.request(map[string]any{
			"id":     "avatar-1",
			"params": map[string]any{"seed": raw},
		}))
		s.requireCode(err, codes.InvalidArgument)
	}
}

func (s *HandlerTestSuite) TestLargestSafeSeedRoundTrips() {
	seed := entities.MaxSeedMagnitude
	s.mockService.EXPECT().
		NameCandidates(s.ctx, &avatar.NameCandidatesInput{Seed: &seed, Archetype: "ashen_seer"}).
		Return(&avatar.NameCandidatesOutput{Seed: seed}, nil)

	req, err := v1alpha1.EncodeRequest(v1alpha1.NameCandidatesRequest{Seed: &seed, Archetype: "ashen_seer"})
	s.Require().NoError(err)
	resp, err := s.handler.NameCandidates(s.ctx, req)
	s.Require().NoError(err)

	var out v1alpha1.NameCandidatesResponse
	s.Require().NoError(v1alpha1.DecodeResponse(resp, &out))
	s.Equal(seed, out.Seed)
}

func (s *HandlerTestSuite) TestGenerateMapsServiceErrors() {
	s.mockService.EXPECT().
		Generate(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("unknown order"))

	_, err := s.handler.Generate(s.ctx, s.request(map[string]any{"being": map[string]any{"order": "robot"}}))
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestReroll() {
	stored := testutils.NewTestAvatar("avatar-1", testutils.FixtureTime)

	s.mockService.EXPECT().
		Reroll(s.ctx, &avatar.RerollInput{
			ID:    "avatar-1",
			Locks: []string{"being.order"},
		}).
		Return(&avatar.RerollOutput{Avatar: stored}, nil)

	_, err := s.handler.Reroll(s.ctx, s.request(map[string]any{
		"id":    "avatar-1",
		"locks": []any{"being.order"},
	}))
	s.Require().NoError(err)

	s.Run("missing id", func() {
		_, err := s.handler.Reroll(s.ctx, s.request(map[string]any{}))
		s.requireCode(err, codes.InvalidArgument)
	})
}

func (s *HandlerTestSuite) TestGetAvatarNotFound() {
	s.mockService.EXPECT().
		Get(s.ctx, &avatar.GetInput{ID: "ghost"}).
		Return(nil, errors.NotFound("avatar with ID ghost not found"))

	_, err := s.handler.GetAvatar(s.ctx, s.request(map[string]any{"id": "ghost"}))
	s.requireCode(err, codes.NotFound)
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestListAvatars() {
	s.mockService.EXPECT().
		List(s.ctx, &avatar.ListInput{Limit: 5, Offset: 2}).
		Return(&avatar.ListOutput{
			Avatars: []*entities.Avatar{testutils.NewTestAvatar("avatar-1", testutils.FixtureTime)},
			Limit:   5,
			Offset:  2,
			Total:   3,
		}, nil)

	resp, err := s.handler.ListAvatars(s.ctx, s.request(map[string]any{"limit": 5, "offset": 2}))
	s.Require().NoError(err)

	var out v1alpha1.ListResponse
	s.Require().NoError(v1alpha1.DecodeResponse(resp, &out))
	s.Equal(3, out.Total)
	s.Require().Len(out.Avatars, 1)
	s.Equal("avatar-1", out.Avatars[0].ID)
}

func (s *HandlerTestSuite) TestDeleteAvatar() {
	s.mockService.EXPECT().
		Delete(s.ctx, &avatar.DeleteInput{ID: "avatar-1"}).
		Return(&avatar.DeleteOutput{}, nil)

	resp, err := s.handler.DeleteAvatar(s.ctx, s.request(map[string]any{"id": "avatar-1"}))
	s.Require().NoError(err)
	s.Empty(resp.GetFields())
}

func (s *HandlerTestSuite) TestNameCandidates() {
	seed := int64(9)
	s.mockService.EXPECT().
		NameCandidates(s.ctx, &avatar.NameCandidatesInput{
			Seed:      &seed,
			Archetype: "ashen_seer",
			Traits:    []string{"prophet"},
			NameMode:  entities.NameModeMononym,
			Limit:     2,
		}).
		Return(&avatar.NameCandidatesOutput{
			Names: []entities.PrimaryName{
				{Form: entities.Mononym{Value: "Vessa"}},
				{Form: entities.Mononym{Value: "Orin"}},
			},
			Seed: 9,
		}, nil)

	resp, err := s.handler.NameCandidates(s.ctx, s.request(map[string]any{
		"seed":      9,
		"archetype": "ashen_seer",
		"traits":    []any{"prophet"},
		"nameMode":  "mononym",
		"limit":     2,
	}))
	s.Require().NoError(err)

	var out v1alpha1.NameCandidatesResponse
	s.Require().NoError(v1alpha1.DecodeResponse(resp, &out))
	s.Equal(int64(9), out.Seed)
	s.Require().Len(out.Names, 2)
	s.Equal("Vessa", out.Names[0].String())
}

func (s *HandlerTestSuite) TestExportAvatar() {
	stored := testutils.NewTestAvatar("avatar-1", testutils.FixtureTime)
	s.mockService.EXPECT().
		Export(s.ctx, &avatar.ExportInput{ID: "avatar-1", Format: "convai"}).
		Return(&avatar.ExportOutput{Format: exporters.FormatConvai, Payload: exporters.ToConvai(stored)}, nil)

	resp, err := s.handler.ExportAvatar(s.ctx, s.request(map[string]any{"id": "avatar-1", "format": "convai"}))
	s.Require().NoError(err)
	s.Equal("convai", resp.GetFields()["format"].GetStringValue())
	s.NotNil(resp.GetFields()["payload"].GetStructValue())

	s.Run("format required", func() {
		_, err := s.handler.ExportAvatar(s.ctx, s.request(map[string]any{"id": "avatar-1"}))
		s.requireCode(err, codes.InvalidArgument)
	})
}

func (s *HandlerTestSuite) TestOverGRPC() {
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	v1alpha1.RegisterAvatarServiceServer(server, s.handler)
	go func() { _ = server.Serve(lis) }()
	defer server.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	s.mockService.EXPECT().
		Catalog(gomock.Any(), &avatar.CatalogInput{}).
		Return(&avatar.CatalogOutput{Tarot: []string{"star"}, ExportFormats: []string{"inworld"}}, nil)

	client := v1alpha1.NewAvatarServiceClient(conn)
	resp, err := client.Call(s.ctx, v1alpha1.MethodCatalog, nil)
	s.Require().NoError(err)

	var out avatar.CatalogOutput
	s.Require().NoError(v1alpha1.DecodeResponse(resp, &out))
	s.Equal([]string{"star"}, out.Tarot)

	s.mockService.EXPECT().
		Get(gomock.Any(), &avatar.GetInput{ID: "ghost"}).
		Return(nil, errors.NotFound("avatar with ID ghost not found").WithMeta("id", "ghost"))

	req, err := v1alpha1.EncodeRequest(v1alpha1.IDRequest{ID: "ghost"})
	s.Require().NoError(err)
	_, err = client.Call(s.ctx, v1alpha1.MethodGetAvatar, req)
	converted := errors.FromGRPCError(err)
	s.True(errors.IsNotFound(converted))
	s.Equal("ghost", errors.GetMeta(converted)["id"])
}
