package player_test

import (
	"testing"

	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
	mockshared "github.com/KirkDiggler/delve-vitals/internal/domain/shared/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUpdateLight(t *testing.T) {
	tests := []struct {
		name      string
		fuel      int
		flags     []shared.ObjectFlag
		daytime   bool
		blind     bool
		wantFuel  int
		wantMsg   []string
		wantBurnt bool
	}{
		{name: "burns a turn", fuel: 500, wantFuel: 499},
		{name: "daylight outdoors saves fuel", fuel: 500, daytime: true, wantFuel: 500},
		{name: "no fuel light", fuel: 500, flags: []shared.ObjectFlag{shared.FlagNoFuel}, wantFuel: 500},
		{name: "growing faint", fuel: 41, wantFuel: 40, wantMsg: []string{"Your light is growing faint."}},
		{name: "goes out", fuel: 1, wantFuel: 0, wantMsg: []string{"Your light has gone out!"}},
		{name: "blind keeps a turn", fuel: 1, blind: true, wantFuel: 1},
		{
			name:      "torch burns out",
			fuel:      1,
			flags:     []shared.ObjectFlag{shared.FlagBurnsOut},
			wantMsg:   []string{"Your light has gone out!"},
			wantBurnt: true,
		},
		{name: "empty light does nothing", fuel: 0, wantFuel: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			world := mockshared.NewMockWorld(ctrl)
			world.EXPECT().IsOutdoorsAndDaytime().Return(tt.daytime).AnyTimes()

			p, rec := newPlayer(t)
			light := &shared.Light{Name: "Wooden Torch", Turns: tt.fuel, Flags: tt.flags}
			p.Light = light
			if tt.blind {
				p.Timed.Set(shared.TimedBlind, 10)
			}

			burnt := p.UpdateLight(world)

			assert.Equal(t, tt.wantBurnt, burnt)
			assert.Equal(t, tt.wantMsg, rec.Messages())
			assert.True(t, p.Upkeep.Update.Has(player.UpdateTorch))
			if tt.wantBurnt {
				assert.Nil(t, p.Light)
				return
			}
			assert.Equal(t, tt.wantFuel, light.Turns)
		})
	}
}

func TestUpdateLight_DimmingDisturbsRest(t *testing.T) {
	p, _ := newPlayer(t)
	p.Light = &shared.Light{Turns: 21}
	p.BeginRest(100)

	p.UpdateLight(nil)

	assert.False(t, p.Rest.IsResting())
	assert.True(t, p.Rest.Interrupted())
}

func TestUpdateLight_NoLight(t *testing.T) {
	p, rec := newPlayer(t)
	assert.False(t, p.UpdateLight(nil))
	assert.Empty(t, rec.Events())
	assert.True(t, p.Upkeep.Update.Has(player.UpdateTorch))
}
