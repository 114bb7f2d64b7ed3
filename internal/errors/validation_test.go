package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/oripheon-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorOrdersFields() {
	ve := errors.NewValidationError()
	ve.AddFieldError("seed", "must be positive")
	ve.AddFieldError("archetype", "is required")

	s.True(ve.HasErrors())
	s.Equal("validation failed: archetype: is required; seed: must be positive", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestBuilder() {
	s.Run("collects", func() {
		vb := errors.NewValidationBuilder()
		vb.RequiredField("Repository").
			InvalidField("nameMode", "unknown topology").
			Fieldf("limit", "must be at most %d", 100)

		err := vb.Build()
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "Repository: is required")
	})

	s.Run("clean build is nil", func() {
		s.NoError(errors.NewValidationBuilder().Build())
	})
}

func (s *ValidationTestSuite) TestValidators() {
	testCases := []struct {
		name      string
		validate  func(vb *errors.ValidationBuilder)
		shouldErr bool
	}{
		{"required ok", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("id", "av_1", vb) }, false},
		{"required blank", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("id", "  ", vb) }, true},
		{"range ok", func(vb *errors.ValidationBuilder) { errors.ValidateRange("limit", 20, 1, 100, vb) }, false},
		{"range low", func(vb *errors.ValidationBuilder) { errors.ValidateRange("limit", 0, 1, 100, vb) }, true},
		{"enum ok", func(vb *errors.ValidationBuilder) {
			errors.ValidateEnum("format", "convai", []string{"inworld", "convai"}, vb)
		}, false},
		{"enum bad", func(vb *errors.ValidationBuilder) {
			errors.ValidateEnum("format", "json", []string{"inworld", "convai"}, vb)
		}, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.validate(vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}
