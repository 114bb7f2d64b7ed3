package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
)

type PrimaryNameTestSuite struct {
	suite.Suite
}

func TestPrimaryNameTestSuite(t *testing.T) {
	suite.Run(t, new(PrimaryNameTestSuite))
}

func (s *PrimaryNameTestSuite) TestStringFormatting() {
	title := "Dame"
	testCases := []struct {
		name     string
		input    entities.PrimaryName
		expected string
	}{
		{"mononym", entities.PrimaryName{Form: entities.Mononym{Value: "Aeloria"}}, "Aeloria"},
		{"titled first last", entities.PrimaryName{Title: &title, Form: entities.FirstLast{First: "Mira", Last: "Vale"}}, "Dame Mira Vale"},
		{"fml", entities.PrimaryName{Form: entities.FirstMiddleLast{First: "A", Middle: "B", Last: "C"}}, "A B C"},
		{"fused shows fused only", entities.PrimaryName{Form: entities.FusedMononym{Fused: "Miravale", First: "Mira", Last: "Vale"}}, "Miravale"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.input.String())
		})
	}
}

func (s *PrimaryNameTestSuite) TestJSONRoundTripKeepsVariant() {
	in := entities.PrimaryName{Form: entities.FusedMononym{Fused: "Miravale", First: "Mira", Last: "Vale"}}

	data, err := json.Marshal(in)
	s.Require().NoError(err)
	s.JSONEq(`{"title":null,"nameMode":"fused_mononym","first":"Mira","middle":null,"last":"Vale","mononym":"Miravale"}`, string(data))

	var out entities.PrimaryName
	s.Require().NoError(json.Unmarshal(data, &out))
	s.Equal(in, out)
}

func (s *PrimaryNameTestSuite) TestUnmarshalRejectsMismatchedShape() {
	var out entities.PrimaryName
	err := json.Unmarshal([]byte(`{"nameMode":"first_last","first":"Mira"}`), &out)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *PrimaryNameTestSuite) TestTitleHintStates() {
	s.Run("absent key leaves hint unset", func() {
		var p entities.IdentityParams
		s.Require().NoError(json.Unmarshal([]byte(`{}`), &p))
		s.False(p.Title.Set)
		s.True(p.Title.AllowsTitle())
	})
	s.Run("null means no title", func() {
		var p entities.IdentityParams
		s.Require().NoError(json.Unmarshal([]byte(`{"title":null}`), &p))
		s.True(p.Title.Set)
		s.False(p.Title.AllowsTitle())
	})
	s.Run("string forces title", func() {
		var p entities.IdentityParams
		s.Require().NoError(json.Unmarshal([]byte(`{"title":"Lord"}`), &p))
		forced, ok := p.Title.Forced()
		s.True(ok)
		s.Equal("Lord", forced)
	})
	s.Run("unset is omitted on encode", func() {
		data, err := json.Marshal(entities.IdentityParams{})
		s.Require().NoError(err)
		s.JSONEq(`{}`, string(data))
	})
}

func (s *PrimaryNameTestSuite) TestAvatarCloneIsDeep() {
	a := &entities.Avatar{
		Appearance: entities.Appearance{KeyFeatures: []string{"scar"}},
		Heritage:   entities.Heritage{Mode: entities.HeritageSingle, Components: []entities.HeritageComponent{{Culture: entities.CultureCeltic, Weight: 1}}},
	}
	c := a.Clone()
	c.Appearance.KeyFeatures[0] = "halo"
	c.Heritage.Components[0].Weight = 0.5
	s.Equal("scar", a.Appearance.KeyFeatures[0])
	s.Equal(1.0, a.Heritage.Components[0].Weight)
}
