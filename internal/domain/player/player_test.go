package player_test

import (
	"testing"

	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/domain/rest"
	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
	mockshared "github.com/KirkDiggler/delve-vitals/internal/domain/shared/mock"
	"github.com/KirkDiggler/delve-vitals/internal/domain/vitals"
	"github.com/KirkDiggler/delve-vitals/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPlayer(t *testing.T) (*player.Player, *events.Recorder) {
	t.Helper()
	rec := events.NewRecorder(nil)
	p := player.New(player.Config{
		ID:      "p1",
		OwnerID: "owner",
		Name:    "Beren",
		Level:   20,
		MaxHP:   100,
		MaxMana: 50,
	})
	p.Events = rec
	return p, rec
}

func TestNew_Defaults(t *testing.T) {
	p := player.New(player.Config{ID: "x", MaxHP: 30})

	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 30, p.Vitals.HP.Current)
	assert.Equal(t, player.ShapeNormal, p.Shape)
	assert.Equal(t, player.DefaultHitpointWarn, p.Options.HitpointWarn)
	require.NotNil(t, p.Rest)
	assert.False(t, p.Rest.IsResting())
	assert.NotPanics(t, func() { p.Disturb() })
}

func TestAdjustHP_RequestsRedrawOnVisibleChange(t *testing.T) {
	p, _ := newPlayer(t)
	p.Vitals.HP.Current = 40

	p.AdjustHP(vitals.One / 2)
	assert.False(t, p.Upkeep.Redraw.Has(player.RedrawHP))

	p.AdjustHP(vitals.One / 2)
	assert.True(t, p.Upkeep.Redraw.Has(player.RedrawHP))
	assert.Equal(t, 41, p.Vitals.HP.Current)
}

func TestDisturb_Resting(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := mockshared.NewMockCommandQueue(ctrl)

	p, rec := newPlayer(t)
	p.Commands = cmds
	require.Equal(t, rest.Started, p.BeginRest(rest.RestAllPoints))
	p.Upkeep.ClearTurn()

	cmds.EXPECT().CancelRepeat().Times(2)

	p.Disturb()
	assert.False(t, p.Rest.IsResting())
	assert.True(t, p.Rest.Interrupted())
	assert.True(t, p.Upkeep.Redraw.Has(player.RedrawState))
	assert.Equal(t, 1, rec.Count(events.EventTypeRestInterrupted))

	// second call in the same turn does nothing new beyond flushing input
	p.Disturb()
	assert.Equal(t, 1, rec.Count(events.EventTypeRestInterrupted))
	assert.Equal(t, 2, rec.Count(events.EventTypeInputFlush))
}

func TestDisturb_Running(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := mockshared.NewMockCommandQueue(ctrl)

	p, rec := newPlayer(t)
	p.Commands = cmds
	p.Upkeep.Running = 12

	cmds.EXPECT().CancelRepeat().Times(2)
	cmds.EXPECT().Flush().Times(1)

	p.Disturb()
	p.Disturb()

	assert.Zero(t, p.Upkeep.Running)
	assert.True(t, p.Upkeep.Update.Has(player.UpdateTorch))
	assert.Equal(t, 1, rec.Count(events.EventTypePlayerMoved))
	assert.Equal(t, 1, rec.Count(events.EventTypeMapRedraw))
	assert.Equal(t, 2, rec.Count(events.EventTypeInputFlush))
}

func TestRestStep(t *testing.T) {
	p, rec := newPlayer(t)
	p.BeginRest(2)

	res := p.RestStep()
	assert.True(t, res.Counted)
	assert.False(t, res.Finished)
	assert.Equal(t, player.MoveEnergy, p.Upkeep.EnergyUse)
	assert.True(t, p.Upkeep.Redraw.Has(player.RedrawState))

	res = p.RestStep()
	assert.True(t, res.Finished)
	assert.Equal(t, 2, p.RestingTurn)
	assert.False(t, p.Rest.IsResting())
	assert.Equal(t, 1, rec.Count(events.EventTypeRestCompleted))

	assert.Equal(t, rest.StepResult{}, p.RestStep())
	assert.Equal(t, 2, p.RestingTurn)
}

func TestCompleteRest(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		setup   func(p *player.Player)
		want    bool
		resting bool
	}{
		{
			name: "all points reached",
			code: rest.RestAllPoints,
			want: true,
		},
		{
			name:    "all points missing hp",
			code:    rest.RestAllPoints,
			setup:   func(p *player.Player) { p.Vitals.HP.Current = 99 },
			resting: true,
		},
		{
			name:    "complete waits for status",
			code:    rest.RestComplete,
			setup:   func(p *player.Player) { p.Timed.Set(shared.TimedConfused, 3) },
			resting: true,
		},
		{
			name:    "complete waits for recall",
			code:    rest.RestComplete,
			setup:   func(p *player.Player) { p.WordRecall = 15 },
			resting: true,
		},
		{
			name: "complete with combat regen ignores mana",
			code: rest.RestComplete,
			setup: func(p *player.Player) {
				p.Traits = shared.NewTraits(shared.TraitCombatRegen)
				p.Vitals.Mana.Current = 0
			},
			want: true,
		},
		{
			name: "fixed count never completes early",
			code: 10,
			setup: func(p *player.Player) {
				p.Vitals.HP.Current = 100
			},
			resting: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, rec := newPlayer(t)
			p.BeginRest(tt.code)
			if tt.setup != nil {
				tt.setup(p)
			}

			assert.Equal(t, tt.want, p.CompleteRest(1, 10000))
			assert.Equal(t, tt.resting, p.Rest.IsResting())
			if tt.want {
				assert.Equal(t, rest.EndCompleted, p.Rest.LastEnd())
				assert.False(t, p.Rest.Interrupted(), "completion must not swallow the next rest")
				assert.Equal(t, 1, rec.Count(events.EventTypeRestCompleted))
				assert.Equal(t, 1, rec.Count(events.EventTypeInputFlush))
				assert.Zero(t, rec.Count(events.EventTypeRestInterrupted))
			}
		})
	}
}

func TestSpeedBoostCap(t *testing.T) {
	p, _ := newPlayer(t)

	p.AddSpeedBoost(10)
	assert.Equal(t, 10, p.SpeedBoost)
	assert.True(t, p.Upkeep.Update.Has(player.UpdateBonus))

	p.AddSpeedBoost(100)
	assert.Equal(t, 25+3*20/2, p.SpeedBoost)
}

func TestHeightenPowerCap(t *testing.T) {
	p, _ := newPlayer(t)
	p.AddHeightenPower(500)
	assert.Equal(t, 60+5*20/2, p.HeightenPower)
}

func TestChannelingBoost(t *testing.T) {
	p, _ := newPlayer(t)

	// full mana: (45 + 40) * 1 = 85, (85 + 5) / 10 = 9
	assert.Equal(t, 9, p.ChannelingBoost())

	p.Vitals.Mana.Current = 25
	// 85 / 4 = 21, (21 + 5) / 10 = 2
	assert.Equal(t, 2, p.ChannelingBoost())

	p.Vitals.Mana = vitals.Pool{}
	assert.Equal(t, 0, p.ChannelingBoost())
}

func TestEnergyPerMove(t *testing.T) {
	tests := []struct {
		moves int
		want  int
	}{
		{moves: 0, want: 100},
		{moves: 1, want: 50},
		{moves: 3, want: 25},
		{moves: -1, want: 150},
		{moves: -2, want: 166},
	}

	for _, tt := range tests {
		p, _ := newPlayer(t)
		p.NumMoves = tt.moves
		assert.Equal(t, tt.want, p.EnergyPerMove(), "moves %d", tt.moves)
	}
}
