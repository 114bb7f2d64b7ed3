package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/oripheon-api/cmd/server/commands"
	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
	"github.com/KirkDiggler/oripheon-api/internal/orchestrators/avatar"
	avatarmock "github.com/KirkDiggler/oripheon-api/internal/orchestrators/avatar/mock"
	"github.com/KirkDiggler/oripheon-api/internal/testutils"
)

type CommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *avatarmock.MockService
	closed      int
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func (s *CommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = avatarmock.NewMockService(s.ctrl)
	s.closed = 0
}

func (s *CommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CommandsTestSuite) execute(args ...string) (string, error) {
	open := func(context.Context) (avatar.Service, func(), error) {
		return s.mockService, func() { s.closed++ }, nil
	}
	root := &cobra.Command{Use: "oripheon", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(commands.New(open)...)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (s *CommandsTestSuite) TestGenerate() {
	seed := int64(42)
	s.mockService.EXPECT().
		Generate(gomock.Any(), &avatar.GenerateInput{Params: entities.Params{
			Seed:  &seed,
			Being: &entities.BeingParams{Order: entities.OrderAngel},
		}}).
		Return(&avatar.GenerateOutput{Avatar: testutils.NewTestAvatar("av_1", testutils.FixtureTime)}, nil)

	out, err := s.execute("generate", "--seed", "42", "--order", "angel")
	s.Require().NoError(err)

	var printed map[string]any
	s.Require().NoError(json.Unmarshal([]byte(out), &printed))
	s.Equal("av_1", printed["id"])
	s.Equal(1, s.closed)
}

func (s *CommandsTestSuite) TestGenerateBadFlagNeverOpens() {
	_, err := s.execute("generate", "--gender", "robot")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(0, s.closed)
}

func (s *CommandsTestSuite) TestReroll() {
	s.mockService.EXPECT().
		Reroll(gomock.Any(), &avatar.RerollInput{ID: "av_1", Locks: []string{"seed", "being.order"}}).
		Return(&avatar.RerollOutput{Avatar: testutils.NewTestAvatar("av_1", testutils.FixtureTime)}, nil)

	_, err := s.execute("reroll", "av_1", "--lock", "seed,being.order")
	s.Require().NoError(err)
}

func (s *CommandsTestSuite) TestGetNotFound() {
	s.mockService.EXPECT().
		Get(gomock.Any(), &avatar.GetInput{ID: "ghost"}).
		Return(nil, errors.NotFound("avatar with ID ghost not found"))

	_, err := s.execute("get", "ghost")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(1, s.closed)
}

func (s *CommandsTestSuite) TestList() {
	s.mockService.EXPECT().
		List(gomock.Any(), &avatar.ListInput{Limit: 5, Offset: 10}).
		Return(&avatar.ListOutput{Avatars: []*entities.Avatar{}, Limit: 5, Offset: 10, Total: 10}, nil)

	out, err := s.execute("list", "--limit", "5", "--offset", "10")
	s.Require().NoError(err)
	s.JSONEq(`{"avatars": [], "limit": 5, "offset": 10, "total": 10}`, out)
}

func (s *CommandsTestSuite) TestDelete() {
	s.mockService.EXPECT().
		Delete(gomock.Any(), &avatar.DeleteInput{ID: "av_1"}).
		Return(&avatar.DeleteOutput{}, nil)

	out, err := s.execute("delete", "av_1")
	s.Require().NoError(err)
	s.JSONEq(`{"deleted": "av_1"}`, out)
}

func (s *CommandsTestSuite) TestNames() {
	seed := int64(7)
	s.mockService.EXPECT().
		NameCandidates(gomock.Any(), &avatar.NameCandidatesInput{
			Seed:      &seed,
			Archetype: "dusk_knight",
			Traits:    []string{"paladin", "exile"},
			NameMode:  entities.NameModeMononym,
			Limit:     2,
		}).
		Return(&avatar.NameCandidatesOutput{
			Names: []entities.PrimaryName{{Form: entities.Mononym{Value: "Vesper"}}},
			Seed:  7,
		}, nil)

	out, err := s.execute("names", "--seed", "7", "--archetype", "dusk_knight",
		"--traits", "paladin,exile", "--name-mode", "mononym", "--limit", "2")
	s.Require().NoError(err)
	s.Contains(out, "Vesper")
}

func (s *CommandsTestSuite) TestUnsafeSeedNeverOpens() {
	for _, args := range [][]string{
		{"generate", "--seed", "9007199254740993"},
		{"names", "--seed", "-9007199254740993", "--archetype", "dusk_knight"},
	} {
		_, err := s.execute(args...)
		s.Require().Error(err, args[0])
		s.True(errors.IsInvalidArgument(err), args[0])
	}
	s.Equal(0, s.closed)
}

func (s *CommandsTestSuite) TestExport() {
	s.mockService.EXPECT().
		Export(gomock.Any(), &avatar.ExportInput{ID: "av_1", Format: "charisma"}).
		Return(&avatar.ExportOutput{Format: "charisma", Payload: map[string]string{"name": "Aelis"}}, nil)

	out, err := s.execute("export", "av_1", "--format", "charisma")
	s.Require().NoError(err)
	s.JSONEq(`{"name": "Aelis"}`, out)
}

func (s *CommandsTestSuite) TestCatalog() {
	s.mockService.EXPECT().
		Catalog(gomock.Any(), &avatar.CatalogInput{}).
		Return(&avatar.CatalogOutput{Tarot: []string{"star"}}, nil)

	out, err := s.execute("catalog")
	s.Require().NoError(err)
	s.Contains(out, `"star"`)
}
