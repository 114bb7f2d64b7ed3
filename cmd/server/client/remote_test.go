package client_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/oripheon-api/cmd/server/client"
	"github.com/KirkDiggler/oripheon-api/internal/engine"
	"github.com/KirkDiggler/oripheon-api/internal/engine/banks"
	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
	"github.com/KirkDiggler/oripheon-api/internal/exporters"
	"github.com/KirkDiggler/oripheon-api/internal/handlers/avatar/v1alpha1"
	"github.com/KirkDiggler/oripheon-api/internal/orchestrators/avatar"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/clock"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/idgen"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/random"
	"github.com/KirkDiggler/oripheon-api/internal/repositories/avatars"
	"github.com/KirkDiggler/oripheon-api/internal/testutils"
)

// RemoteServiceTestSuite drives a real server over an in-memory listener.
type RemoteServiceTestSuite struct {
	suite.Suite
	server *grpc.Server
	conn   *grpc.ClientConn
	remote *client.RemoteService
	ctx    context.Context
}

func TestRemoteServiceSuite(t *testing.T) {
	suite.Run(t, new(RemoteServiceTestSuite))
}

func (s *RemoteServiceTestSuite) SetupTest() {
	eng, err := engine.New(&engine.Config{
		Names: banks.NewInMemory(),
		Seeds: random.Fixed(777),
	})
	s.Require().NoError(err)

	svc, err := avatar.NewOrchestrator(&avatar.Config{
		Engine:      eng,
		Repository:  avatars.NewMemory(),
		IDGenerator: idgen.NewSequential("avatar"),
		Clock:       clock.Fixed{At: testutils.FixtureTime},
	})
	s.Require().NoError(err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{AvatarService: svc})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	v1alpha1.RegisterAvatarServiceServer(s.server, handler)
	go func() { _ = s.server.Serve(lis) }()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)

	s.remote = client.NewRemoteService(v1alpha1.NewAvatarServiceClient(s.conn), 5*time.Second)
	s.ctx = context.Background()
}

func (s *RemoteServiceTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
}

func (s *RemoteServiceTestSuite) generate(seed int64) *entities.Avatar {
	out, err := s.remote.Generate(s.ctx, &avatar.GenerateInput{Params: entities.Params{Seed: &seed}})
	s.Require().NoError(err)
	s.Require().NotNil(out.Avatar)
	return out.Avatar
}

func (s *RemoteServiceTestSuite) TestGenerateAndGet() {
	created := s.generate(42)
	s.Equal("avatar_1", created.ID)
	s.Equal(int64(42), created.Seed)
	s.True(created.CreatedAt.Equal(testutils.FixtureTime))

	got, err := s.remote.Get(s.ctx, &avatar.GetInput{ID: created.ID})
	s.Require().NoError(err)

	want, err := created.CanonicalJSON()
	s.Require().NoError(err)
	have, err := got.Avatar.CanonicalJSON()
	s.Require().NoError(err)
	s.JSONEq(string(want), string(have))
}

func (s *RemoteServiceTestSuite) TestRerollWithSeedLockReproduces() {
	created := s.generate(1234)

	out, err := s.remote.Reroll(s.ctx, &avatar.RerollInput{ID: created.ID, Locks: []string{"seed"}})
	s.Require().NoError(err)

	want, err := created.CanonicalJSON()
	s.Require().NoError(err)
	have, err := out.Avatar.CanonicalJSON()
	s.Require().NoError(err)
	s.JSONEq(string(want), string(have))
}

func (s *RemoteServiceTestSuite) TestRerollUnknownLock() {
	created := s.generate(5)

	_, err := s.remote.Reroll(s.ctx, &avatar.RerollInput{ID: created.ID, Locks: []string{"being.wings"}})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RemoteServiceTestSuite) TestUnsafeSeedIsRejectedBeforeSending() {
	seed := int64(9007199254740993)

	_, err := s.remote.Generate(s.ctx, &avatar.GenerateInput{Params: entities.Params{Seed: &seed}})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.remote.NameCandidates(s.ctx, &avatar.NameCandidatesInput{Seed: &seed, Archetype: "ashen_seer"})
	s.True(errors.IsInvalidArgument(err))

	list, err := s.remote.List(s.ctx, &avatar.ListInput{})
	s.Require().NoError(err)
	s.Zero(list.Total)
}

func (s *RemoteServiceTestSuite) TestListAndDelete() {
	first := s.generate(1)
	second := s.generate(2)

	page, err := s.remote.List(s.ctx, &avatar.ListInput{})
	s.Require().NoError(err)
	s.Equal(2, page.Total)
	s.Equal(avatar.DefaultListLimit, page.Limit)
	s.Require().Len(page.Avatars, 2)
	s.Equal(second.ID, page.Avatars[0].ID)

	_, err = s.remote.Delete(s.ctx, &avatar.DeleteInput{ID: first.ID})
	s.Require().NoError(err)

	_, err = s.remote.Get(s.ctx, &avatar.GetInput{ID: first.ID})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RemoteServiceTestSuite) TestNameCandidates() {
	seed := int64(99)
	out, err := s.remote.NameCandidates(s.ctx, &avatar.NameCandidatesInput{
		Seed:      &seed,
		Archetype: "dusk_knight",
		Traits:    []string{"paladin"},
		Limit:     3,
	})
	s.Require().NoError(err)
	s.Equal(seed, out.Seed)
	s.NotEmpty(out.Names)
	s.LessOrEqual(len(out.Names), 3)
	for _, n := range out.Names {
		s.NotEmpty(n.String())
	}
}

func (s *RemoteServiceTestSuite) TestExport() {
	created := s.generate(8)

	out, err := s.remote.Export(s.ctx, &avatar.ExportInput{ID: created.ID, Format: "convai"})
	s.Require().NoError(err)
	s.Equal(exporters.Format("convai"), out.Format)
	s.IsType(map[string]any{}, out.Payload)

	_, err = s.remote.Export(s.ctx, &avatar.ExportInput{ID: created.ID, Format: "pdf"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RemoteServiceTestSuite) TestCatalog() {
	out, err := s.remote.Catalog(s.ctx, &avatar.CatalogInput{})
	s.Require().NoError(err)
	s.NotEmpty(out.Archetypes)
	s.Contains(out.LockPaths, "identity.primaryName")
	s.ElementsMatch([]string{"inworld", "convai", "charisma"}, out.ExportFormats)
}
