package enumlabel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	enumlabel "github.com/vladmesh/dnd-helper-sub000/internal/repositories/enum_label"
	"github.com/vladmesh/dnd-helper-sub000/internal/sqlite"
	"github.com/vladmesh/dnd-helper-sub000/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() (enumlabel.Repository, func())
	repo    enumlabel.Repository
	cleanup func()
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (enumlabel.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := enumlabel.NewRedis(&enumlabel.RedisConfig{Client: client})
			if err != nil {
				t.Fatal(err)
			}
			return repo, cleanup
		},
	})
}

func TestSQLiteRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (enumlabel.Repository, func()) {
			db, err := sqlite.OpenMemory(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			repo, err := enumlabel.NewSQLite(&enumlabel.SQLiteConfig{DB: db})
			if err != nil {
				t.Fatal(err)
			}
			return repo, func() { _ = db.Close() }
		},
	})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.cleanup = s.newRepo()

	for _, label := range []*dnd5e.EnumLabel{
		testutils.CreateTestEnumLabel(dnd5e.EnumTypeSpellSchool, "evocation", dnd5e.LangRU, "Воплощение"),
		testutils.CreateTestEnumLabel(dnd5e.EnumTypeSpellSchool, "abjuration", dnd5e.LangRU, "Ограждение"),
		testutils.CreateTestEnumLabel(dnd5e.EnumTypeSpellSchool, "evocation", dnd5e.LangEN, "Evocation"),
		testutils.CreateTestEnumLabel(dnd5e.EnumTypeDamageType, "fire", dnd5e.LangRU, "Огонь"),
	} {
		_, err := s.repo.Upsert(s.ctx, enumlabel.UpsertInput{Label: label})
		s.Require().NoError(err)
	}
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) TestListByCodesAcrossTypes() {
	out, err := s.repo.ListByCodes(s.ctx, enumlabel.ListByCodesInput{
		CodesByType: map[string][]string{
			dnd5e.EnumTypeSpellSchool: {"evocation", "necromancy"},
			dnd5e.EnumTypeDamageType:  {"fire"},
			dnd5e.EnumTypeAbility:     {"dex"},
		},
		Lang: dnd5e.LangRU,
	})
	s.Require().NoError(err)

	got := make(map[string]string)
	for _, label := range out.Labels {
		got[label.EnumType+"/"+label.Code] = label.Label
	}
	s.Equal(map[string]string{
		dnd5e.EnumTypeSpellSchool + "/evocation": "Воплощение",
		dnd5e.EnumTypeDamageType + "/fire":       "Огонь",
	}, got)
}

func (s *RepositoryTestSuite) TestListByCodesEmpty() {
	out, err := s.repo.ListByCodes(s.ctx, enumlabel.ListByCodesInput{Lang: dnd5e.LangEN})
	s.Require().NoError(err)
	s.Empty(out.Labels)
}

func (s *RepositoryTestSuite) TestListByType() {
	out, err := s.repo.ListByType(s.ctx, enumlabel.ListByTypeInput{
		EnumType: dnd5e.EnumTypeSpellSchool,
		Lang:     dnd5e.LangRU,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Labels, 2)
	s.Equal("abjuration", out.Labels[0].Code)
	s.Equal("evocation", out.Labels[1].Code)
}

func (s *RepositoryTestSuite) TestUpsertReplaces() {
	label := testutils.CreateTestEnumLabel(dnd5e.EnumTypeDamageType, "fire", dnd5e.LangRU, "Огненный")
	label.Synonyms = []string{"пламя"}
	_, err := s.repo.Upsert(s.ctx, enumlabel.UpsertInput{Label: label})
	s.Require().NoError(err)

	out, err := s.repo.ListByType(s.ctx, enumlabel.ListByTypeInput{
		EnumType: dnd5e.EnumTypeDamageType,
		Lang:     dnd5e.LangRU,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Labels, 1)
	s.Equal("Огненный", out.Labels[0].Label)
	s.Equal([]string{"пламя"}, out.Labels[0].Synonyms)
}

func (s *RepositoryTestSuite) TestValidation() {
	_, err := s.repo.Upsert(s.ctx, enumlabel.UpsertInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Upsert(s.ctx, enumlabel.UpsertInput{
		Label: &dnd5e.EnumLabel{EnumType: dnd5e.EnumTypeAbility, Lang: dnd5e.LangRU},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.ListByCodes(s.ctx, enumlabel.ListByCodesInput{Lang: dnd5e.Lang("fr")})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.ListByType(s.ctx, enumlabel.ListByTypeInput{Lang: dnd5e.LangRU})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisListByCodesIsOneRoundTrip(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedis(t)
	defer cleanup()

	repo, err := enumlabel.NewRedis(&enumlabel.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	_, err = repo.Upsert(ctx, enumlabel.UpsertInput{
		Label: testutils.CreateTestEnumLabel(dnd5e.EnumTypeAbility, "dex", dnd5e.LangEN, "Dexterity"),
	})
	if err != nil {
		t.Fatal(err)
	}

	before := mr.CommandCount()
	out, err := repo.ListByCodes(ctx, enumlabel.ListByCodesInput{
		CodesByType: map[string][]string{
			dnd5e.EnumTypeAbility:     {"dex", "str"},
			dnd5e.EnumTypeSpellSchool: {"evocation"},
		},
		Lang: dnd5e.LangEN,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := mr.CommandCount() - before; got != 1 {
		t.Fatalf("expected one redis command, got %d", got)
	}
	if len(out.Labels) != 1 {
		t.Fatalf("expected 1 label, got %d", len(out.Labels))
	}
}
