package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuildWithoutFieldsIsNil() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestBuildCollectsFields() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("name").
		InvalidField("slug", "must be lowercase letters, digits and single hyphens").
		InvalidField("level", "must be between 0 and 9")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	var customErr *errors.Error
	s.Require().ErrorAs(err, &customErr)
	s.Len(customErr.Fields, 3)
	s.Equal([]string{"is required"}, customErr.Fields["name"])
	s.Equal(
		"validation failed: level: is invalid: must be between 0 and 9; "+
			"name: is required; "+
			"slug: is invalid: must be lowercase letters, digits and single hyphens",
		customErr.Message)
}

func (s *ValidationTestSuite) TestRepeatedFieldKeepsEveryReason() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("lang")
	vb.InvalidField("lang", "must be ru or en")

	var customErr *errors.Error
	s.Require().ErrorAs(vb.Build(), &customErr)
	s.Equal([]string{"is required", "is invalid: must be ru or en"}, customErr.Fields["lang"])
}

func (s *ValidationTestSuite) TestWrapKeepsFields() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("name")

	wrapped := errors.Wrapf(vb.Build(), "failed to create monster")
	s.True(errors.IsInvalidArgument(wrapped))
	s.Equal([]string{"is required"}, wrapped.Fields["name"])
}
