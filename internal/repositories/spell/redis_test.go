package spell_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/spell"
	"github.com/vladmesh/dnd-helper-sub000/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    spell.Repository
	cleanup func()
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	repo, err := spell.NewRedis(&spell.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.cleanup = cleanup
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestRoundTripKeepsDerivedFields() {
	sp := testutils.CreateTestSpell("s1")
	sp.Slug = "fireball"
	code := "action"
	sp.CastingTime = &code
	attack := false
	sp.AttackRoll = &attack

	_, err := s.repo.Create(s.ctx, spell.CreateInput{Spell: sp})
	s.Require().NoError(err)

	got, err := s.repo.GetBySlug(s.ctx, spell.GetBySlugInput{Slug: "fireball"})
	s.Require().NoError(err)
	s.Equal("s1", got.Spell.ID)
	s.Require().NotNil(got.Spell.CastingTime)
	s.Equal("action", *got.Spell.CastingTime)
	s.Require().NotNil(got.Spell.AttackRoll)
	s.False(*got.Spell.AttackRoll)
	s.Nil(got.Spell.IsConcentration)
}

func (s *RedisRepositoryTestSuite) TestSlugUniqueness() {
	first := testutils.CreateTestSpell("s1")
	first.Slug = "fireball"
	_, err := s.repo.Create(s.ctx, spell.CreateInput{Spell: first})
	s.Require().NoError(err)

	second := testutils.CreateTestSpell("s2")
	second.Slug = "fireball"
	_, err = s.repo.Create(s.ctx, spell.CreateInput{Spell: second})
	s.True(errors.IsAlreadyExists(err))

	// re-saving with its own slug is fine
	_, err = s.repo.Update(s.ctx, spell.UpdateInput{Spell: first})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestListAndDelete() {
	for id, slug := range map[string]string{"s1": "shield", "s2": "bless", "s3": "fireball"} {
		sp := testutils.CreateTestSpell(id)
		sp.Slug = slug
		_, err := s.repo.Create(s.ctx, spell.CreateInput{Spell: sp})
		s.Require().NoError(err)
	}

	_, err := s.repo.Delete(s.ctx, spell.DeleteInput{ID: "s3"})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, spell.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Spells, 2)
	s.Equal("bless", out.Spells[0].Slug)
	s.Equal("shield", out.Spells[1].Slug)
}

func (s *RedisRepositoryTestSuite) TestNotFound() {
	_, err := s.repo.Get(s.ctx, spell.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, spell.DeleteInput{ID: "nope"})
	s.True(errors.IsNotFound(err))
}
