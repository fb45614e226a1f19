package damage

import (
	"github.com/KirkDiggler/delve-vitals/internal/dice"
	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
)

// Terrain describes the grid the player stands on
type Terrain struct {
	Name    string
	Fiery   bool
	DieMsg  string // cause of death if it kills
	HurtMsg string
}

// Lava is the stock fiery terrain
var Lava = Terrain{
	Name:    "lava",
	Fiery:   true,
	DieMsg:  "burning to a cinder in lava",
	HurtMsg: "The lava burns you!",
}

// TerrainDamage is how much damage standing on t would do this turn
func (r *Resolver) TerrainDamage(p *player.Player, t Terrain) int {
	if !t.Fiery {
		return 0
	}

	base := 100 + dice.Randint1(r.roller, 100)
	dam := p.Resist.AdjustDamage(shared.ElementFire, base)

	// feather fall makes one lightfooted
	if p.HasFlag(shared.FlagFeather) {
		p.LearnFlag(shared.FlagFeather)
		dam /= 2
	}
	return dam
}

// TakeTerrainDamage hurts the player for standing on t
func (r *Resolver) TakeTerrainDamage(p *player.Player, t Terrain) Outcome {
	dam := r.TerrainDamage(p, t)
	if dam == 0 {
		return Outcome{}
	}

	out := r.TakeHit(p, dam, t.DieMsg)
	if t.Fiery && t.HurtMsg != "" {
		p.Msg(t.HurtMsg)
	}
	return out
}
