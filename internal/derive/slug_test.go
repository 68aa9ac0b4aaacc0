package derive_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/vladmesh/dnd-helper-sub000/internal/derive"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type SlugTestSuite struct {
	suite.Suite
}

func TestSlugSuite(t *testing.T) {
	suite.Run(t, new(SlugTestSuite))
}

func (s *SlugTestSuite) TestSlugify() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple name", input: "Goblin", expected: "goblin"},
		{name: "spaces", input: "Adult Red Dragon", expected: "adult-red-dragon"},
		{name: "punctuation runs collapse", input: "Tasha's  Hideous -- Laughter", expected: "tasha-s-hideous-laughter"},
		{name: "leading and trailing trimmed", input: "  (Fireball)!  ", expected: "fireball"},
		{name: "digits kept", input: "Level 3 Spell", expected: "level-3-spell"},
		{name: "non latin letters become separators", input: "Гоблин Boss", expected: "boss"},
		{name: "only symbols", input: "!!!", expected: ""},
		{name: "empty", input: "", expected: ""},
		{name: "already a slug", input: "mage-armor", expected: "mage-armor"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, derive.Slugify(tc.input))
		})
	}
}

func (s *SlugTestSuite) TestSlugifyIsIdempotent() {
	inputs := []string{
		"Goblin", "Mind Flayer Arcanist", "  --Wish--  ", "Bigby's Hand", "Ölbaum 12", "Гоблин", "a__b..c", "",
	}

	for _, input := range inputs {
		s.Run(input, func() {
			once := derive.Slugify(input)
			s.Equal(once, derive.Slugify(once))
			if once != "" {
				s.Regexp(slugShape, once)
			}
		})
	}
}
