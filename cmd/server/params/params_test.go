package params_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/oripheon-api/cmd/server/params"
	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
)

func build(t *testing.T, args ...string) (entities.Params, error) {
	t.Helper()
	var f params.Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Register(fs)
	require.NoError(t, fs.Parse(args))
	return f.Build(fs)
}

func TestBuildEmpty(t *testing.T) {
	p, err := build(t)
	require.NoError(t, err)
	assert.Equal(t, entities.Params{}, p)
}

func TestBuildFlags(t *testing.T) {
	p, err := build(t,
		"--seed", "42",
		"--gender", "Female",
		"--name-mode", "mononym",
		"--title", "Oracle",
		"--order", "angel",
		"--tarot", "star",
		"--culture", "celtic:0.6", "--culture", "arabic:0.4",
		"--no-pseudonyms",
		"--archetype", "ashen_seer",
		"--traits", "prophet,exile",
		"--sigil", "40",
	)
	require.NoError(t, err)

	require.NotNil(t, p.Seed)
	assert.Equal(t, int64(42), *p.Seed)
	assert.Equal(t, entities.GenderFemale, p.Identity.Gender)
	assert.Equal(t, entities.NameModeMononym, p.Identity.NameMode)
	title, forced := p.Identity.Title.Forced()
	assert.True(t, forced)
	assert.Equal(t, "Oracle", title)
	assert.Equal(t, entities.OrderAngel, p.Being.Order)
	assert.Equal(t, entities.TarotStar, p.Being.TarotArchetype)
	assert.Equal(t, entities.HeritageMixed, p.Heritage.Mode)
	assert.Equal(t, 0.6, p.Heritage.Components[0].Weight)
	assert.False(t, p.WantsPseudonyms())
	assert.Equal(t, []string{"prophet", "exile"}, p.Prompt.NameTraits)
	assert.True(t, p.Prompt.SigilBloom.Enabled)
}

func TestBuildRejectsUnsafeSeeds(t *testing.T) {
	_, err := build(t, "--seed", "9007199254740993")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = build(t, "--params", `{"seed": -9007199254740993}`)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = build(t, "--seed", "9007199254740992")
	assert.True(t, errors.IsInvalidArgument(err))

	p, err := build(t, "--seed", "9007199254740991")
	require.NoError(t, err)
	assert.Equal(t, entities.MaxSeedMagnitude, *p.Seed)
}

func TestBuildSeedZeroIsExplicit(t *testing.T) {
	p, err := build(t, "--seed", "0")
	require.NoError(t, err)
	require.NotNil(t, p.Seed)
	assert.Equal(t, int64(0), *p.Seed)
}

func TestBuildJSONBaseWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"seed": 7, "being": {"order": "demon"}, "identity": {"title": null}}`), 0o600))

	p, err := build(t, "--params", "@"+path, "--order", "angel")
	require.NoError(t, err)
	assert.Equal(t, int64(7), *p.Seed)
	assert.Equal(t, entities.OrderAngel, p.Being.Order)
	assert.False(t, p.Identity.Title.AllowsTitle())
}

func TestBuildErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "bad gender", args: []string{"--gender", "robot"}},
		{name: "bad order", args: []string{"--order", "wizard"}},
		{name: "title conflict", args: []string{"--title", "Saint", "--no-title"}},
		{name: "three cultures", args: []string{"--culture", "celtic,arabic,norse"}},
		{name: "half weighted", args: []string{"--culture", "celtic:0.6,arabic"}},
		{name: "bad json", args: []string{"--params", "{"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := build(t, tc.args...)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err), err.Error())
		})
	}
}

func TestParseHeritageSingle(t *testing.T) {
	h, err := params.ParseHeritage([]string{"celtic"})
	require.NoError(t, err)
	assert.Equal(t, entities.Heritage{
		Mode:       entities.HeritageSingle,
		Components: []entities.HeritageComponent{{Culture: entities.CultureCeltic, Weight: 1}},
	}, h)
}
