package localization_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	"github.com/vladmesh/dnd-helper-sub000/internal/localization"
	enumlabel "github.com/vladmesh/dnd-helper-sub000/internal/repositories/enum_label"
	enumlabelmock "github.com/vladmesh/dnd-helper-sub000/internal/repositories/enum_label/mock"
)

type LabelResolverTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *enumlabelmock.MockRepository
	resolver *localization.LabelResolver
	ctx      context.Context
}

func TestLabelResolverSuite(t *testing.T) {
	suite.Run(t, new(LabelResolverTestSuite))
}

func (s *LabelResolverTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = enumlabelmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	resolver, err := localization.NewLabelResolver(&localization.LabelResolverConfig{
		Repository: s.mockRepo,
	})
	s.Require().NoError(err)
	s.resolver = resolver
}

func (s *LabelResolverTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func label(enumType, code string, lang dnd5e.Lang, text string) *dnd5e.EnumLabel {
	return &dnd5e.EnumLabel{EnumType: enumType, Code: code, Lang: lang, Label: text}
}

func (s *LabelResolverTestSuite) TestNewLabelResolver() {
	_, err := localization.NewLabelResolver(nil)
	s.Error(err)

	_, err = localization.NewLabelResolver(&localization.LabelResolverConfig{})
	s.Error(err)
	s.Contains(err.Error(), "Repository")
}

func (s *LabelResolverTestSuite) TestEmptyInputSkipsStorage() {
	// no EXPECT: any repository call fails the test
	for _, input := range []map[string][]string{
		nil,
		{},
		{dnd5e.EnumTypeSpellSchool: {}},
		{dnd5e.EnumTypeSpellSchool: {""}},
		{"": {"evocation"}},
	} {
		result, err := s.resolver.ResolveLabels(s.ctx, input, dnd5e.LangRU)
		s.NoError(err)
		s.Empty(result)
	}
}

func (s *LabelResolverTestSuite) TestFirstFetchCompleteSkipsFallback() {
	s.mockRepo.EXPECT().
		ListByCodes(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input enumlabel.ListByCodesInput) (*enumlabel.ListByCodesOutput, error) {
			s.Equal(dnd5e.LangRU, input.Lang)
			s.Len(input.CodesByType, 2)
			return &enumlabel.ListByCodesOutput{Labels: []*dnd5e.EnumLabel{
				label(dnd5e.EnumTypeSpellSchool, "evocation", dnd5e.LangRU, "Воплощение"),
				label(dnd5e.EnumTypeDamageType, "fire", dnd5e.LangRU, "Огонь"),
			}}, nil
		}).
		Times(1)

	result, err := s.resolver.ResolveLabels(s.ctx, map[string][]string{
		dnd5e.EnumTypeSpellSchool: {"evocation", "evocation"},
		dnd5e.EnumTypeDamageType:  {"fire"},
	}, dnd5e.LangRU)

	s.Require().NoError(err)
	s.Equal(map[localization.LabelKey]string{
		{EnumType: dnd5e.EnumTypeSpellSchool, Code: "evocation"}: "Воплощение",
		{EnumType: dnd5e.EnumTypeDamageType, Code: "fire"}:       "Огонь",
	}, result)
}

func (s *LabelResolverTestSuite) TestFallbackFetchesOnlyMissingPairs() {
	gomock.InOrder(
		s.mockRepo.EXPECT().
			ListByCodes(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input enumlabel.ListByCodesInput) (*enumlabel.ListByCodesOutput, error) {
				s.Equal(dnd5e.LangEN, input.Lang)
				return &enumlabel.ListByCodesOutput{Labels: []*dnd5e.EnumLabel{
					label(dnd5e.EnumTypeCreatureSize, "large", dnd5e.LangEN, "Large"),
				}}, nil
			}).
			Times(1),
		s.mockRepo.EXPECT().
			ListByCodes(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input enumlabel.ListByCodesInput) (*enumlabel.ListByCodesOutput, error) {
				s.Equal(dnd5e.LangRU, input.Lang)
				s.NotContains(input.CodesByType, dnd5e.EnumTypeCreatureSize)
				codes := input.CodesByType[dnd5e.EnumTypeCreatureType]
				sort.Strings(codes)
				s.Equal([]string{"dragon", "ooze"}, codes)
				return &enumlabel.ListByCodesOutput{Labels: []*dnd5e.EnumLabel{
					label(dnd5e.EnumTypeCreatureType, "dragon", dnd5e.LangRU, "Дракон"),
					// already resolved in the requested language, must be ignored
					label(dnd5e.EnumTypeCreatureSize, "large", dnd5e.LangRU, "Большой"),
				}}, nil
			}).
			Times(1),
	)

	result, err := s.resolver.ResolveLabels(s.ctx, map[string][]string{
		dnd5e.EnumTypeCreatureSize: {"large"},
		dnd5e.EnumTypeCreatureType: {"dragon", "ooze"},
	}, dnd5e.LangEN)

	s.Require().NoError(err)
	s.Equal(map[localization.LabelKey]string{
		{EnumType: dnd5e.EnumTypeCreatureSize, Code: "large"}:  "Large",
		{EnumType: dnd5e.EnumTypeCreatureType, Code: "dragon"}: "Дракон",
	}, result)
}

func (s *LabelResolverTestSuite) TestIgnoresUnrequestedRows() {
	s.mockRepo.EXPECT().
		ListByCodes(s.ctx, gomock.Any()).
		Return(&enumlabel.ListByCodesOutput{Labels: []*dnd5e.EnumLabel{
			label(dnd5e.EnumTypeAbility, "dex", dnd5e.LangRU, "Ловкость"),
			label(dnd5e.EnumTypeAbility, "str", dnd5e.LangRU, "Сила"),
			nil,
		}}, nil).
		Times(1)

	result, err := s.resolver.ResolveLabels(s.ctx, map[string][]string{
		dnd5e.EnumTypeAbility: {"dex"},
	}, dnd5e.LangRU)

	s.Require().NoError(err)
	s.Len(result, 1)
	s.Equal("Ловкость", result[localization.LabelKey{EnumType: dnd5e.EnumTypeAbility, Code: "dex"}])
}

func (s *LabelResolverTestSuite) TestPropagatesStorageErrors() {
	storageErr := errors.Internal("connection reset")
	s.mockRepo.EXPECT().
		ListByCodes(s.ctx, gomock.Any()).
		Return(nil, storageErr)

	result, err := s.resolver.ResolveLabels(s.ctx, map[string][]string{
		dnd5e.EnumTypeAbility: {"dex"},
	}, dnd5e.LangRU)

	s.Nil(result)
	s.Same(storageErr, err)
}
