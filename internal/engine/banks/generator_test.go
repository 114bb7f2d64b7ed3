package banks_test

import (
	"slices"
	"testing"
	"unicode"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/oripheon-api/internal/engine/banks"
	"github.com/KirkDiggler/oripheon-api/internal/entities"
	"github.com/KirkDiggler/oripheon-api/internal/errors"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/rng"
)

type GeneratorTestSuite struct {
	suite.Suite
	gen      *banks.InMemory
	heritage entities.Heritage
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) SetupTest() {
	s.gen = banks.NewInMemory()
	s.heritage = entities.Heritage{
		Mode:       entities.HeritageSingle,
		Components: []entities.HeritageComponent{{Culture: entities.CultureCeltic, Weight: 1}},
	}
}

func (s *GeneratorTestSuite) TestCultureOnly() {
	src := rng.New(3)
	pool := banks.CultureNames(entities.CultureCeltic, entities.GenderFemale)
	for range 50 {
		name, err := s.gen.GivenName(src, banks.Request{Gender: entities.GenderFemale, Heritage: s.heritage})
		s.Require().NoError(err)
		s.Contains(pool, name)
	}
}

func (s *GeneratorTestSuite) TestOrderMononymsDominate() {
	src := rng.New(42)
	req := banks.Request{Gender: entities.GenderMale, Heritage: s.heritage, Order: entities.OrderAngel}
	fromOrder := 0
	for range 200 {
		name, err := s.gen.Mononym(src, req)
		s.Require().NoError(err)
		s.NotEmpty(name)
		s.True(unicode.IsUpper([]rune(name)[0]))
		if slices.Contains(banks.OrderMononyms(entities.OrderAngel), name) {
			fromOrder++
		}
	}
	s.Greater(fromOrder, 150)
}

func (s *GeneratorTestSuite) TestMixedHeritageDrawsBothCultures() {
	mixed := entities.Heritage{
		Mode: entities.HeritageMixed,
		Components: []entities.HeritageComponent{
			{Culture: entities.CultureArabic, Weight: 0.5},
			{Culture: entities.CultureNorseViking, Weight: 0.5},
		},
	}
	src := rng.New(8)
	seen := map[string]bool{}
	for range 100 {
		name, err := s.gen.Surname(src, banks.Request{Gender: entities.GenderMale, Heritage: mixed})
		s.Require().NoError(err)
		seen[name] = true
	}
	s.True(seen["Rahman"] || seen["Mirza"] || seen["Sarif"] || seen["al-Harith"])
	s.True(seen["Stormguard"] || seen["Ulfrik"] || seen["Ragnarsson"] || seen["Skeld"])
}

func (s *GeneratorTestSuite) TestTarotAndOrderTogether() {
	src := rng.New(21)
	req := banks.Request{
		Gender:   entities.GenderAndrogynous,
		Heritage: s.heritage,
		Order:    entities.OrderTrickster,
		Tarot:    entities.TarotFool,
	}
	for range 50 {
		name, err := s.gen.GivenName(src, req)
		s.Require().NoError(err)
		s.NotEmpty(name)
	}
}

func (s *GeneratorTestSuite) TestDeterministic() {
	req := banks.Request{Gender: entities.GenderFemale, Heritage: s.heritage, Order: entities.OrderFae}
	a, err := s.gen.Surname(rng.New(77), req)
	s.Require().NoError(err)
	b, err := s.gen.Surname(rng.New(77), req)
	s.Require().NoError(err)
	s.Equal(a, b)
}

func (s *GeneratorTestSuite) TestEmptyHeritage() {
	_, err := s.gen.GivenName(rng.New(1), banks.Request{Gender: entities.GenderMale})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
