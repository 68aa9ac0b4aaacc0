package translation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	"github.com/vladmesh/dnd-helper-sub000/internal/pkg/clock"
	"github.com/vladmesh/dnd-helper-sub000/internal/repositories/translation"
	"github.com/vladmesh/dnd-helper-sub000/internal/sqlite"
	"github.com/vladmesh/dnd-helper-sub000/internal/testutils"
)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

// RepositoryTestSuite runs the same behavior checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() (translation.Repository, func())
	repo    translation.Repository
	cleanup func()
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (translation.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := translation.NewRedis(&translation.RedisConfig{
				Client: client,
				Clock:  &clock.Fixed{T: fixedNow},
			})
			if err != nil {
				t.Fatal(err)
			}
			return repo, cleanup
		},
	})
}

func TestSQLiteRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (translation.Repository, func()) {
			db, err := sqlite.OpenMemory(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			repo, err := translation.NewSQLite(&translation.SQLiteConfig{
				DB:    db,
				Clock: &clock.Fixed{T: fixedNow},
			})
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
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) upsert(t *dnd5e.Translation) {
	_, err := s.repo.Upsert(s.ctx, translation.UpsertInput{Translation: t})
	s.Require().NoError(err)
}

func (s *RepositoryTestSuite) TestUpsertAndGet() {
	t := testutils.CreateTestTranslation(dnd5e.EntityTypeMonster, "m1", dnd5e.LangRU, "Красный дракон")
	t.Traits = []dnd5e.TextBlock{{Name: "Legendary Resistance", Description: "3/day"}}

	out, err := s.repo.Upsert(s.ctx, translation.UpsertInput{Translation: t})
	s.Require().NoError(err)
	s.Equal(fixedNow, out.Translation.UpdatedAt)

	got, err := s.repo.Get(s.ctx, translation.GetInput{
		EntityType: dnd5e.EntityTypeMonster,
		EntityID:   "m1",
		Lang:       dnd5e.LangRU,
	})
	s.Require().NoError(err)
	s.Equal("Красный дракон", got.Translation.Name)
	s.Equal(t.Traits, got.Translation.Traits)
	s.True(fixedNow.Equal(got.Translation.UpdatedAt))
}

func (s *RepositoryTestSuite) TestUpsertReplaces() {
	s.upsert(testutils.CreateTestTranslation(dnd5e.EntityTypeSpell, "s1", dnd5e.LangEN, "Fireball"))
	s.upsert(testutils.CreateTestTranslation(dnd5e.EntityTypeSpell, "s1", dnd5e.LangEN, "Fire Ball"))

	got, err := s.repo.Get(s.ctx, translation.GetInput{
		EntityType: dnd5e.EntityTypeSpell,
		EntityID:   "s1",
		Lang:       dnd5e.LangEN,
	})
	s.Require().NoError(err)
	s.Equal("Fire Ball", got.Translation.Name)
}

func (s *RepositoryTestSuite) TestGetNotFound() {
	s.upsert(testutils.CreateTestTranslation(dnd5e.EntityTypeSpell, "s1", dnd5e.LangEN, "Fireball"))

	_, err := s.repo.Get(s.ctx, translation.GetInput{
		EntityType: dnd5e.EntityTypeSpell,
		EntityID:   "s1",
		Lang:       dnd5e.LangRU,
	})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestValidation() {
	_, err := s.repo.Get(s.ctx, translation.GetInput{EntityType: dnd5e.EntityTypeSpell, Lang: dnd5e.LangRU})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Upsert(s.ctx, translation.UpsertInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Upsert(s.ctx, translation.UpsertInput{
		Translation: testutils.CreateTestTranslation(dnd5e.EntityTypeSpell, "s1", dnd5e.Lang("de"), "Feuerball"),
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.ListByEntityIDs(s.ctx, translation.ListByEntityIDsInput{Lang: dnd5e.LangRU})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestListByEntityIDs() {
	s.upsert(testutils.CreateTestTranslation(dnd5e.EntityTypeMonster, "a", dnd5e.LangRU, "А"))
	s.upsert(testutils.CreateTestTranslation(dnd5e.EntityTypeMonster, "b", dnd5e.LangEN, "B"))
	s.upsert(testutils.CreateTestTranslation(dnd5e.EntityTypeMonster, "c", dnd5e.LangRU, "В"))
	s.upsert(testutils.CreateTestTranslation(dnd5e.EntityTypeSpell, "a", dnd5e.LangRU, "spell a"))

	out, err := s.repo.ListByEntityIDs(s.ctx, translation.ListByEntityIDsInput{
		EntityType: dnd5e.EntityTypeMonster,
		EntityIDs:  []string{"a", "b", "c", "missing", ""},
		Lang:       dnd5e.LangRU,
	})
	s.Require().NoError(err)

	names := make(map[string]string)
	for _, t := range out.Translations {
		s.Equal(dnd5e.EntityTypeMonster, t.EntityType)
		s.Equal(dnd5e.LangRU, t.Lang)
		names[t.EntityID] = t.Name
	}
	s.Equal(map[string]string{"a": "А", "c": "В"}, names)
}

func (s *RepositoryTestSuite) TestListByEntityIDsEmpty() {
	out, err := s.repo.ListByEntityIDs(s.ctx, translation.ListByEntityIDsInput{
		EntityType: dnd5e.EntityTypeMonster,
		Lang:       dnd5e.LangRU,
	})
	s.Require().NoError(err)
	s.Empty(out.Translations)
}

func (s *RepositoryTestSuite) TestDelete() {
	s.upsert(testutils.CreateTestTranslation(dnd5e.EntityTypeMonster, "m1", dnd5e.LangRU, "Гоблин"))
	s.upsert(testutils.CreateTestTranslation(dnd5e.EntityTypeMonster, "m1", dnd5e.LangEN, "Goblin"))
	s.upsert(testutils.CreateTestTranslation(dnd5e.EntityTypeMonster, "m2", dnd5e.LangEN, "Orc"))

	out, err := s.repo.Delete(s.ctx, translation.DeleteInput{EntityType: dnd5e.EntityTypeMonster, EntityID: "m1"})
	s.Require().NoError(err)
	s.Equal(int64(2), out.Deleted)

	_, err = s.repo.Get(s.ctx, translation.GetInput{EntityType: dnd5e.EntityTypeMonster, EntityID: "m1", Lang: dnd5e.LangEN})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, translation.GetInput{EntityType: dnd5e.EntityTypeMonster, EntityID: "m2", Lang: dnd5e.LangEN})
	s.NoError(err)
}

func TestRedisListByEntityIDsIsOneRoundTrip(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedis(t)
	defer cleanup()

	repo, err := translation.NewRedis(&translation.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		_, err := repo.Upsert(ctx, translation.UpsertInput{
			Translation: testutils.CreateTestTranslation(dnd5e.EntityTypeSpell, id, dnd5e.LangEN, id),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	before := mr.CommandCount()
	out, err := repo.ListByEntityIDs(ctx, translation.ListByEntityIDsInput{
		EntityType: dnd5e.EntityTypeSpell,
		EntityIDs:  []string{"a", "b", "c", "d"},
		Lang:       dnd5e.LangEN,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := mr.CommandCount() - before; got != 1 {
		t.Fatalf("expected one redis command, got %d", got)
	}
	if len(out.Translations) != 3 {
		t.Fatalf("expected 3 translations, got %d", len(out.Translations))
	}
}

func TestRedisStorageErrorIsReturned(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedis(t)
	defer cleanup()

	repo, err := translation.NewRedis(&translation.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}
	mr.SetError("ERR injected failure")
	defer mr.SetError("")

	_, err = repo.ListByEntityIDs(context.Background(), translation.ListByEntityIDsInput{
		EntityType: dnd5e.EntityTypeSpell,
		EntityIDs:  []string{"a"},
		Lang:       dnd5e.LangEN,
	})
	if err == nil || errors.IsNotFound(err) {
		t.Fatalf("expected a storage error, got %v", err)
	}
}
