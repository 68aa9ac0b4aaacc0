package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vladmesh/dnd-helper-sub000/internal/entities/dnd5e"
	"github.com/vladmesh/dnd-helper-sub000/internal/errors"
	"github.com/vladmesh/dnd-helper-sub000/internal/handlers/catalog/v1alpha1"
	"github.com/vladmesh/dnd-helper-sub000/internal/localization"
	"github.com/vladmesh/dnd-helper-sub000/internal/orchestrators/catalog"
	catalogmock "github.com/vladmesh/dnd-helper-sub000/internal/orchestrators/catalog/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCatalog *catalogmock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = catalogmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CatalogService: s.mockCatalog,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(code, st.Code())
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Error(err)

	_, err = v1alpha1.NewHandler(nil)
	s.Error(err)
}

func (s *HandlerTestSuite) TestCreateMonster() {
	s.mockCatalog.EXPECT().
		CreateMonster(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *catalog.CreateMonsterInput) (*catalog.CreateMonsterOutput, error) {
			s.Equal("Goblin", in.Monster.Name)
			s.Equal(map[string]any{"darkvision": float64(60)}, in.Monster.Senses)

			out := *in.Monster
			out.ID = "monster_1"
			out.Slug = "goblin"
			return &catalog.CreateMonsterOutput{Monster: &out}, nil
		})

	resp, err := s.handler.CreateMonster(s.ctx, s.request(map[string]any{
		"monster": map[string]any{
			"name":   "Goblin",
			"senses": map[string]any{"darkvision": 60},
		},
	}))
	s.Require().NoError(err)

	monster := resp.AsMap()["monster"].(map[string]any)
	s.Equal("monster_1", monster["id"])
	s.Equal("goblin", monster["slug"])
}

func (s *HandlerTestSuite) TestCreateMonsterUnknownField() {
	_, err := s.handler.CreateMonster(s.ctx, s.request(map[string]any{
		"monstr": map[string]any{"name": "Goblin"},
	}))
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestCreateMonsterMapsDomainErrors() {
	s.mockCatalog.EXPECT().
		CreateMonster(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExists("monster with slug goblin already exists"))

	_, err := s.handler.CreateMonster(s.ctx, s.request(map[string]any{
		"monster": map[string]any{"name": "Goblin"},
	}))
	s.requireCode(err, codes.AlreadyExists)
}

func (s *HandlerTestSuite) TestGetMonsterEnvelope() {
	s.mockCatalog.EXPECT().
		GetMonster(s.ctx, &catalog.GetMonsterInput{ID: "monster_1", Lang: "en"}).
		Return(&catalog.GetMonsterOutput{
			Envelope: &catalog.MonsterEnvelope{
				Monster: &dnd5e.Monster{ID: "monster_1", Name: "Goblin", Size: "small"},
				Translation: &dnd5e.Translation{
					EntityType: dnd5e.EntityTypeMonster,
					EntityID:   "monster_1",
					Lang:       dnd5e.LangEN,
					Name:       "Goblin",
				},
				Labels: map[string]localization.LabeledCode{
					"size": {Code: "small", Label: "Small"},
				},
			},
		}, nil)

	resp, err := s.handler.GetMonster(s.ctx, s.request(map[string]any{
		"id":   "monster_1",
		"lang": "en",
	}))
	s.Require().NoError(err)

	body := resp.AsMap()
	s.Equal("Goblin", body["entity"].(map[string]any)["name"])
	s.Equal("en", body["translation"].(map[string]any)["lang"])
	s.Equal(map[string]any{"code": "small", "label": "Small"}, body["labels"].(map[string]any)["size"])
}

func (s *HandlerTestSuite) TestGetMonsterRequiresID() {
	_, err := s.handler.GetMonster(s.ctx, s.request(map[string]any{}))
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestGetMonsterNotFound() {
	s.mockCatalog.EXPECT().
		GetMonster(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("monster not found"))

	_, err := s.handler.GetMonster(s.ctx, s.request(map[string]any{"id": "missing"}))
	s.requireCode(err, codes.NotFound)
}

func (s *HandlerTestSuite) TestGetSpellBySlug() {
	s.mockCatalog.EXPECT().
		GetSpellBySlug(s.ctx, &catalog.GetSpellBySlugInput{Slug: "fireball"}).
		Return(&catalog.GetSpellOutput{
			Envelope: &catalog.SpellEnvelope{
				Spell:  &dnd5e.Spell{ID: "spell_1", Name: "Fireball", Level: 3},
				Labels: map[string]localization.LabeledCode{},
			},
		}, nil)

	resp, err := s.handler.GetSpellBySlug(s.ctx, s.request(map[string]any{"slug": "fireball"}))
	s.Require().NoError(err)

	body := resp.AsMap()
	s.Equal("Fireball", body["entity"].(map[string]any)["name"])
	s.Nil(body["translation"])
}

func (s *HandlerTestSuite) TestListMonstersPassesFilterAndPage() {
	s.mockCatalog.EXPECT().
		ListMonsters(s.ctx, &catalog.ListMonstersInput{
			Lang:   "ru",
			Filter: catalog.MonsterFilter{IsFlying: boolPtr(true)},
			Page:   catalog.Page{Limit: 10, Offset: 20},
		}).
		Return(&catalog.ListMonstersOutput{Total: 21}, nil)

	resp, err := s.handler.ListMonsters(s.ctx, s.request(map[string]any{
		"lang":   "ru",
		"filter": map[string]any{"is_flying": true},
		"limit":  10,
		"offset": 20,
	}))
	s.Require().NoError(err)
	s.EqualValues(21, resp.AsMap()["total"])
}

func (s *HandlerTestSuite) TestListSpellsPassesFilter() {
	s.mockCatalog.EXPECT().
		ListSpells(s.ctx, &catalog.ListSpellsInput{
			Filter: catalog.SpellFilter{
				Level:       intPtr(0),
				SaveAbility: "dex",
				CastingTime: "action",
			},
		}).
		Return(&catalog.ListSpellsOutput{
			Envelopes: []*catalog.SpellEnvelope{
				{Spell: &dnd5e.Spell{ID: "spell_1", Name: "Acid Splash"}},
			},
			Total: 1,
		}, nil)

	resp, err := s.handler.ListSpells(s.ctx, s.request(map[string]any{
		"filter": map[string]any{
			"level":        0,
			"save_ability": "dex",
			"casting_time": "action",
		},
	}))
	s.Require().NoError(err)

	items := resp.AsMap()["items"].([]any)
	s.Require().Len(items, 1)
	s.Equal("Acid Splash", items[0].(map[string]any)["entity"].(map[string]any)["name"])
}

func (s *HandlerTestSuite) TestDeleteSpell() {
	s.mockCatalog.EXPECT().
		DeleteSpell(s.ctx, &catalog.DeleteSpellInput{ID: "spell_1"}).
		Return(&catalog.DeleteSpellOutput{}, nil)

	resp, err := s.handler.DeleteSpell(s.ctx, s.request(map[string]any{"id": "spell_1"}))
	s.Require().NoError(err)
	s.Empty(resp.AsMap())
}

func (s *HandlerTestSuite) TestRollMonsterHitPoints() {
	s.mockCatalog.EXPECT().
		RollMonsterHitPoints(s.ctx, &catalog.RollMonsterHitPointsInput{ID: "monster_1"}).
		Return(&catalog.RollMonsterHitPointsOutput{
			Expression: "2d6",
			Rolls:      []int{4, 3},
			Total:      7,
		}, nil)

	resp, err := s.handler.RollMonsterHitPoints(s.ctx, s.request(map[string]any{"id": "monster_1"}))
	s.Require().NoError(err)

	body := resp.AsMap()
	s.Equal("2d6", body["expression"])
	s.Equal([]any{float64(4), float64(3)}, body["rolls"])
	s.EqualValues(7, body["total"])
}

func (s *HandlerTestSuite) TestRollMonsterHitPointsWithoutDice() {
	s.mockCatalog.EXPECT().
		RollMonsterHitPoints(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("monster has no hit dice"))

	_, err := s.handler.RollMonsterHitPoints(s.ctx, s.request(map[string]any{"id": "monster_1"}))
	s.requireCode(err, codes.FailedPrecondition)
}

func (s *HandlerTestSuite) TestUpsertTranslation() {
	s.mockCatalog.EXPECT().
		UpsertTranslation(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *catalog.UpsertTranslationInput) (*catalog.UpsertTranslationOutput, error) {
			s.Equal(dnd5e.LangRU, in.Translation.Lang)
			s.Equal("Гоблин", in.Translation.Name)
			return &catalog.UpsertTranslationOutput{Translation: in.Translation}, nil
		})

	resp, err := s.handler.UpsertTranslation(s.ctx, s.request(map[string]any{
		"translation": map[string]any{
			"entity_type": "monster",
			"entity_id":   "monster_1",
			"lang":        "ru",
			"name":        "Гоблин",
		},
	}))
	s.Require().NoError(err)
	s.Equal("Гоблин", resp.AsMap()["translation"].(map[string]any)["name"])
}

func (s *HandlerTestSuite) TestListEnumLabels() {
	s.mockCatalog.EXPECT().
		ListEnumLabels(s.ctx, &catalog.ListEnumLabelsInput{EnumType: "creature_size", Lang: "ru"}).
		Return(&catalog.ListEnumLabelsOutput{
			Labels: []*dnd5e.EnumLabel{
				{EnumType: "creature_size", Code: "small", Lang: dnd5e.LangRU, Label: "Маленький"},
			},
		}, nil)

	resp, err := s.handler.ListEnumLabels(s.ctx, s.request(map[string]any{
		"enum_type": "creature_size",
		"lang":      "ru",
	}))
	s.Require().NoError(err)

	labels := resp.AsMap()["labels"].([]any)
	s.Require().Len(labels, 1)
	s.Equal("Маленький", labels[0].(map[string]any)["label"])
}

// TestClientRoundTrip drives the registered service over an in-memory
// connection so the descriptor and error mapping are exercised on the wire.
func (s *HandlerTestSuite) TestClientRoundTrip() {
	listener := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	v1alpha1.RegisterCatalogServiceServer(server, s.handler)
	go func() {
		_ = server.Serve(listener)
	}()
	defer server.Stop()

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	client := v1alpha1.NewClient(conn)

	s.mockCatalog.EXPECT().
		GetMonsterBySlug(gomock.Any(), &catalog.GetMonsterBySlugInput{Slug: "goblin", Lang: "ru"}).
		Return(&catalog.GetMonsterOutput{
			Envelope: &catalog.MonsterEnvelope{
				Monster: &dnd5e.Monster{ID: "monster_1", Name: "Goblin"},
			},
		}, nil)

	body, err := client.Call(s.ctx, "GetMonsterBySlug", map[string]any{"slug": "goblin", "lang": "ru"})
	s.Require().NoError(err)
	s.Equal("monster_1", body["entity"].(map[string]any)["id"])

	s.mockCatalog.EXPECT().
		DeleteMonster(gomock.Any(), &catalog.DeleteMonsterInput{ID: "missing"}).
		Return(nil, errors.NotFound("monster not found"))

	_, err = client.Call(s.ctx, "DeleteMonster", map[string]any{"id": "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }
