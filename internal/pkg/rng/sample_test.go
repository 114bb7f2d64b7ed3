package rng_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/oripheon-api/internal/errors"
	"github.com/KirkDiggler/oripheon-api/internal/pkg/rng"
)

// fixedSource replays a scripted sequence of draws.
type fixedSource struct {
	values []float64
	pos    int
}

func (f *fixedSource) Next() float64 {
	v := f.values[f.pos%len(f.values)]
	f.pos++
	return v
}

type SampleTestSuite struct {
	suite.Suite
}

func TestSampleSuite(t *testing.T) {
	suite.Run(t, new(SampleTestSuite))
}

func (s *SampleTestSuite) TestStreamDeterminism() {
	a := rng.New(42)
	b := rng.New(42)
	c := rng.New(43)

	diverged := false
	for i := 0; i < 256; i++ {
		va, vb, vc := a.Next(), b.Next(), c.Next()
		s.Equal(va, vb)
		s.GreaterOrEqual(va, 0.0)
		s.Less(va, 1.0)
		if va != vc {
			diverged = true
		}
	}
	s.True(diverged, "different seeds should produce different streams")
	s.Equal(int64(42), a.Seed())
}

func (s *SampleTestSuite) TestInt() {
	s.Equal(1, rng.Int(&fixedSource{values: []float64{0}}, 1, 6))
	s.Equal(6, rng.Int(&fixedSource{values: []float64{0.9999}}, 1, 6))
	s.Equal(3, rng.Int(&fixedSource{values: []float64{0.4}}, 1, 6))

	stream := rng.New(7)
	for i := 0; i < 500; i++ {
		v := rng.Int(stream, -2, 2)
		s.GreaterOrEqual(v, -2)
		s.LessOrEqual(v, 2)
	}
}

func (s *SampleTestSuite) TestFloatAndBool() {
	s.InDelta(0.35+0.5*0.35, rng.Float(&fixedSource{values: []float64{0.5}}, 0.35, 0.7), 1e-9)
	s.True(rng.Bool(&fixedSource{values: []float64{0.39}}, 0.4))
	s.False(rng.Bool(&fixedSource{values: []float64{0.4}}, 0.4))
}

func (s *SampleTestSuite) TestChoice() {
	s.Run("picks by floor index", func() {
		v, err := rng.Choice(&fixedSource{values: []float64{0.5}}, []string{"a", "b", "c", "d"})
		s.Require().NoError(err)
		s.Equal("c", v)
	})

	s.Run("empty list fails with empty input", func() {
		_, err := rng.Choice(rng.New(42), []string{})
		s.Require().Error(err)
		s.True(errors.IsEmptyInput(err))
	})

	s.Run("must choice panics on empty", func() {
		s.Panics(func() { rng.MustChoice(rng.New(1), []int{}) })
	})
}

func (s *SampleTestSuite) TestWeightedChoice() {
	s.Run("all zero weights return last entry", func() {
		src := &fixedSource{values: []float64{0.1}}
		v, err := rng.WeightedChoice(src, []rng.Weighted[string]{
			{Item: "first", Weight: 0},
			{Item: "middle", Weight: 0},
			{Item: "last", Weight: 0},
		})
		s.Require().NoError(err)
		s.Equal("last", v)
		s.Equal(0, src.pos, "degenerate case should not consume a draw")
	})

	s.Run("threshold scan", func() {
		entries := []rng.Weighted[string]{
			{Item: "a", Weight: 1},
			{Item: "b", Weight: 2},
			{Item: "c", Weight: 1},
		}
		v, _ := rng.WeightedChoice(&fixedSource{values: []float64{0.2}}, entries)
		s.Equal("a", v)
		v, _ = rng.WeightedChoice(&fixedSource{values: []float64{0.5}}, entries)
		s.Equal("b", v)
		v, _ = rng.WeightedChoice(&fixedSource{values: []float64{0.9}}, entries)
		s.Equal("c", v)
	})

	s.Run("zero draw lands on a leading zero weight", func() {
		entries := []rng.Weighted[string]{
			{Item: "never", Weight: 0},
			{Item: "a", Weight: 1},
		}
		v, err := rng.WeightedChoice(&fixedSource{values: []float64{0}}, entries)
		s.Require().NoError(err)
		s.Equal("never", v)
	})

	s.Run("empty list fails", func() {
		_, err := rng.WeightedChoice(rng.New(1), []rng.Weighted[int]{})
		s.True(errors.IsEmptyInput(err))
	})
}

func (s *SampleTestSuite) TestShuffle() {
	input := []int{1, 2, 3, 4, 5, 6, 7, 8}
	original := append([]int(nil), input...)

	out := rng.Shuffle(rng.New(42), input)
	s.Equal(original, input, "input must not be mutated")
	s.ElementsMatch(original, out)
	s.Equal(out, rng.Shuffle(rng.New(42), input))

	s.Len(rng.Sample(rng.New(3), input, 3), 3)
	s.Len(rng.Sample(rng.New(3), input, 20), len(input))
}

func (s *SampleTestSuite) TestDiceRoller() {
	stream := rng.New(99)
	rolls, err := stream.RollN(50, 20)
	s.Require().NoError(err)
	s.Len(rolls, 50)
	for _, r := range rolls {
		s.GreaterOrEqual(r, 1)
		s.LessOrEqual(r, 20)
	}

	_, err = stream.Roll(0)
	s.True(errors.IsInvalidArgument(err))
}
