package delve_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/delve-vitals/internal/domain/damage"
	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/domain/rest"
	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
	"github.com/KirkDiggler/delve-vitals/internal/errors"
	"github.com/KirkDiggler/delve-vitals/internal/handlers/discord/delve"
	"github.com/KirkDiggler/delve-vitals/internal/services/turn"
	mockturn "github.com/KirkDiggler/delve-vitals/internal/services/turn/mock"
)

type HandlersTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mockturn.MockService
	ctx     context.Context
	now     time.Time
}

func (s *HandlersTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mockturn.NewMockService(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *HandlersTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) adventurer(id, name string, updated time.Duration) *player.Player {
	p := player.New(player.Config{ID: id, OwnerID: "user-1", Name: name, MaxHP: 30, MaxMana: 10})
	p.UpdatedAt = s.now.Add(updated)
	return p
}

func (s *HandlersTestSuite) TestRest_PicksMostRecentLivingPlayer() {
	old := s.adventurer("p1", "Old", 0)
	recent := s.adventurer("p2", "Recent", time.Hour)
	dead := s.adventurer("p3", "Dead", 2*time.Hour)
	dead.Vitals.MarkDead("a dragon")

	s.service.EXPECT().ListByOwner(s.ctx, "user-1").Return([]*player.Player{old, dead, recent}, nil)
	s.service.EXPECT().Rest(s.ctx, "p2", rest.RestComplete).Return(&turn.RestReport{
		PlayerID: "p2",
		Code:     rest.RestComplete,
		Turns:    40,
		End:      rest.EndCompleted,
		Before:   turn.Snapshot{HP: 10, MaxHP: 30, Mana: 2, MaxMana: 10},
		After:    turn.Snapshot{HP: 30, MaxHP: 30, Mana: 10, MaxMana: 10},
	}, nil)

	h := delve.NewRestHandler(&delve.RestHandlerConfig{TurnService: s.service})
	embed, err := h.Rest(s.ctx, &delve.RestRequest{OwnerID: "user-1", Mode: "&"})
	s.Require().NoError(err)

	s.Contains(embed.Title, "Recent")
	s.Contains(embed.Description, "Rested 40 turns")
	s.Equal("HP +20, SP +8", embed.Fields[2].Value)
}

func (s *HandlersTestSuite) TestRest_Repeat() {
	p := s.adventurer("p1", "Beren", 0)

	s.service.EXPECT().ListByOwner(s.ctx, "user-1").Return([]*player.Player{p}, nil)
	s.service.EXPECT().RepeatRest(s.ctx, "p1").Return(&turn.RestReport{
		PlayerID:    "p1",
		Code:        5,
		Turns:       2,
		End:         rest.EndDisturbed,
		Interrupted: true,
		Hits:        1,
		Messages:    []string{"*** LOW HITPOINT WARNING! ***"},
	}, nil)

	h := delve.NewRestHandler(&delve.RestHandlerConfig{TurnService: s.service})
	embed, err := h.Rest(s.ctx, &delve.RestRequest{OwnerID: "user-1", Mode: delve.ModeRepeat})
	s.Require().NoError(err)

	s.Contains(embed.Description, "Disturbed after 2 turns")
	last := embed.Fields[len(embed.Fields)-1]
	s.Equal("📜 Log", last.Name)
	s.Contains(last.Value, "LOW HITPOINT")
}

func (s *HandlersTestSuite) TestRest_InvalidModeSkipsService() {
	h := delve.NewRestHandler(&delve.RestHandlerConfig{TurnService: s.service})

	_, err := h.Rest(s.ctx, &delve.RestRequest{OwnerID: "user-1", Mode: "nap"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlersTestSuite) TestRest_NoPlayers() {
	s.service.EXPECT().ListByOwner(s.ctx, "user-1").Return(nil, nil)

	h := delve.NewRestHandler(&delve.RestHandlerConfig{TurnService: s.service})
	_, err := h.Rest(s.ctx, &delve.RestRequest{OwnerID: "user-1", Turns: 5, HasTurns: true})
	s.True(errors.IsNotFound(err))
	s.Contains(delve.ErrorContent(err), "/delve new")
}

func (s *HandlersTestSuite) TestVitals_Dead() {
	p := s.adventurer("p1", "Beren", 0)
	p.Vitals.MarkDead("a balrog")

	s.service.EXPECT().ListByOwner(s.ctx, "user-1").Return([]*player.Player{p}, nil)
	s.service.EXPECT().Status(s.ctx, "p1").Return(&turn.VitalsReport{
		PlayerID: "p1",
		Name:     "Beren",
		Status:   shared.PlayerStatusDead,
		DiedFrom: "a balrog",
		Vitals:   turn.Snapshot{HP: -4, MaxHP: 30},
	}, nil)

	h := delve.NewVitalsHandler(&delve.VitalsHandlerConfig{TurnService: s.service})
	embed, err := h.Vitals(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Contains(embed.Description, "Killed by a balrog")
}

func (s *HandlersTestSuite) TestVitals_Resting() {
	p := s.adventurer("p1", "Beren", 0)

	s.service.EXPECT().ListByOwner(s.ctx, "user-1").Return([]*player.Player{p}, nil)
	s.service.EXPECT().Status(s.ctx, "p1").Return(&turn.VitalsReport{
		PlayerID:    "p1",
		Name:        "Beren",
		Status:      shared.PlayerStatusActive,
		Vitals:      turn.Snapshot{HP: 20, MaxHP: 30, Mana: 1, MaxMana: 10},
		Resting:     true,
		Count:       rest.RestAllPoints,
		RepeatCount: rest.RestAllPoints,
	}, nil)

	h := delve.NewVitalsHandler(&delve.VitalsHandlerConfig{TurnService: s.service})
	embed, err := h.Vitals(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Contains(embed.Description, "until HP and SP are full")
	s.Len(embed.Fields, 3)
}

func (s *HandlersTestSuite) TestHit_DefaultCause() {
	p := s.adventurer("p1", "Beren", 0)

	s.service.EXPECT().ListByOwner(s.ctx, "user-1").Return([]*player.Player{p}, nil)
	s.service.EXPECT().ApplyDamage(s.ctx, "p1", 7, "a mysterious force").Return(&turn.DamageReport{
		PlayerID: "p1",
		Cause:    "a mysterious force",
		Outcome:  damage.Outcome{Applied: 7},
		After:    turn.Snapshot{HP: 23, MaxHP: 30},
	}, nil)

	h := delve.NewHitHandler(&delve.HitHandlerConfig{TurnService: s.service})
	embed, err := h.Hit(s.ctx, &delve.HitRequest{OwnerID: "user-1", Damage: 7})
	s.Require().NoError(err)
	s.Equal("Took 7 damage.", embed.Description)
}

func (s *HandlersTestSuite) TestHit_GameOver() {
	p := s.adventurer("p1", "Beren", 0)
	gameOver := errors.GameOverf("Beren died from a balrog")

	s.service.EXPECT().ListByOwner(s.ctx, "user-1").Return([]*player.Player{p}, nil)
	s.service.EXPECT().ApplyDamage(s.ctx, "p1", 3, "an orc").Return(nil, gameOver)

	h := delve.NewHitHandler(&delve.HitHandlerConfig{TurnService: s.service})
	_, err := h.Hit(s.ctx, &delve.HitRequest{OwnerID: "user-1", Damage: 3, Cause: "an orc"})
	s.True(errors.IsGameOver(err))
	s.Contains(delve.ErrorContent(err), "start again")
}

func (s *HandlersTestSuite) TestCast() {
	p := s.adventurer("p1", "Beren", 0)

	s.service.EXPECT().ListByOwner(s.ctx, "user-1").Return([]*player.Player{p}, nil)
	s.service.EXPECT().SpendMana(s.ctx, "p1", 4).Return(&turn.VitalsReport{
		PlayerID: "p1",
		Name:     "Beren",
		Status:   shared.PlayerStatusActive,
		Vitals:   turn.Snapshot{HP: 30, MaxHP: 30, Mana: 6, MaxMana: 10},
	}, nil)

	h := delve.NewCastHandler(&delve.CastHandlerConfig{TurnService: s.service})
	embed, err := h.Cast(s.ctx, &delve.CastRequest{OwnerID: "user-1", Mana: 4})
	s.Require().NoError(err)
	s.Contains(embed.Fields[1].Value, "6/10")
}

func (s *HandlersTestSuite) TestCreate_WithTrait() {
	s.service.EXPECT().Create(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, input *turn.CreateInput) (*player.Player, error) {
		s.Equal("user-1", input.OwnerID)
		s.Equal([]shared.Trait{shared.TraitMeditation}, input.Traits)
		return player.New(player.Config{ID: "p1", OwnerID: input.OwnerID, Name: input.Name, MaxHP: 20, MaxMana: 10}), nil
	})

	h := delve.NewCreateHandler(&delve.CreateHandlerConfig{TurnService: s.service})
	embed, err := h.Create(s.ctx, &delve.CreateRequest{OwnerID: "user-1", Name: "Luthien", Trait: "meditation"})
	s.Require().NoError(err)
	s.Contains(embed.Title, "Luthien")
}

func (s *HandlersTestSuite) TestErrorContent_HidesInternalErrors() {
	s.Equal("❌ Something went wrong, please try again.", delve.ErrorContent(errors.Internalf("redis down")))
}
