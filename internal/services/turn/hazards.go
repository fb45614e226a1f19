package turn

import (
	"github.com/KirkDiggler/delve-vitals/internal/dice"
	"github.com/KirkDiggler/delve-vitals/internal/domain/damage"
	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
)

// Hit is one source of harm landing on the player during a turn
type Hit struct {
	Damage  int
	Cause   string
	Terrain *damage.Terrain // deals terrain damage instead of Damage when set
}

// Hazards decides what strikes a player on a given turn of a rest
type Hazards interface {
	Strike(p *player.Player, turn int) []Hit
}

// HazardsFunc adapts a function to Hazards
type HazardsFunc func(p *player.Player, turn int) []Hit

// Strike implements Hazards
func (f HazardsFunc) Strike(p *player.Player, turn int) []Hit {
	return f(p, turn)
}

// WanderingMonsters attacks with a percent chance each turn
type WanderingMonsters struct {
	Roller dice.Roller
	Chance int // percent per turn
	Count  int
	Sides  int
	Cause  string
}

// Strike implements Hazards
func (w *WanderingMonsters) Strike(_ *player.Player, _ int) []Hit {
	if w.Chance <= 0 || !dice.PercentChance(w.Roller, w.Chance) {
		return nil
	}
	dam := dice.Damroll(w.Roller, w.Count, w.Sides)
	if dam <= 0 {
		return nil
	}
	return []Hit{{Damage: dam, Cause: w.Cause}}
}

// Standing burns the player every turn they occupy a damaging grid
type Standing struct {
	Terrain damage.Terrain
}

// Strike implements Hazards
func (s *Standing) Strike(_ *player.Player, _ int) []Hit {
	if !s.Terrain.Fiery {
		return nil
	}
	return []Hit{{Terrain: &s.Terrain}}
}
