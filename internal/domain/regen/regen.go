// Package regen computes per-turn natural regeneration of hit points and spell points.
package regen

import (
	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
	"github.com/KirkDiggler/delve-vitals/internal/domain/vitals"
)

// Rates are in 1/65536ths of max per turn
const (
	RateNormal = 197
	RateWeak   = 98
	RateFaint  = 33

	// HPBase and ManaBase are added to every positive gain
	HPBase   vitals.Fixed = 1442
	ManaBase vitals.Fixed = 524
)

// Tuning holds the nourishment breakpoints
type Tuning struct {
	FoodWeak   int
	FoodFaint  int
	FoodStarve int
	FoodMax    int
	// FoodValue is how much nourishment one food unit is worth
	FoodValue int
}

// DefaultTuning returns the stock nourishment table
func DefaultTuning() Tuning {
	return Tuning{
		FoodWeak:   1000,
		FoodFaint:  500,
		FoodStarve: 100,
		FoodMax:    15000,
		FoodValue:  150,
	}
}

// Calculator applies natural regeneration
type Calculator struct {
	tuning Tuning
}

// New creates a calculator
func New(tuning Tuning) *Calculator {
	if tuning.FoodValue <= 0 {
		tuning.FoodValue = DefaultTuning().FoodValue
	}
	return &Calculator{tuning: tuning}
}

func (c *Calculator) baseRate(food int) int {
	switch {
	case food >= c.tuning.FoodWeak:
		return RateNormal
	case food >= c.tuning.FoodFaint:
		return RateWeak
	case food >= c.tuning.FoodStarve:
		return RateFaint
	default:
		return 0
	}
}

// HPRate is the hit point regeneration percentage for this turn
func (c *Calculator) HPRate(p *player.Player) int {
	food := p.Timed.Duration(shared.TimedFood)
	percent := c.baseRate(food)

	// better fed players regenerate up to a third faster
	fedPct := food / c.tuning.FoodValue
	percent *= 100 + fedPct/3
	percent /= 100

	if p.HasFlag(shared.FlagRegen) {
		percent *= 2
	}
	if p.Rest.CanRegenerate() {
		percent *= 2
	}
	if p.Has(shared.TraitRegeneration) {
		percent *= 2
	}

	if p.HasFlag(shared.FlagImpairHP) {
		percent /= 2
	}

	if shared.AnyActive(p.Timed, shared.HealingBlockers) {
		percent = 0
	}
	return percent
}

// HPGain is the fixed-point hit point gain for this turn
func (c *Calculator) HPGain(p *player.Player) vitals.Fixed {
	return vitals.Saturate(int64(p.Vitals.HP.Max)*int64(c.HPRate(p)) + int64(HPBase))
}

// RegenHP applies one turn of hit point regeneration
func (c *Calculator) RegenHP(p *player.Player) vitals.Change {
	if p.IsDead() {
		return vitals.Change{}
	}

	change := p.AdjustHP(c.HPGain(p))
	if change.Changed() {
		p.LearnFlag(shared.FlagRegen)
		p.LearnFlag(shared.FlagImpairHP)
	}
	return change
}

// ManaRate is the spell point regeneration percentage for this turn.
// It is negative for combat-regen characters, whose mana decays.
func (c *Calculator) ManaRate(p *player.Player) int {
	percent := c.baseRate(p.Timed.Duration(shared.TimedFood))
	combatRegen := p.Has(shared.TraitCombatRegen)

	// healthy combat-regen characters get no bonuses
	if !(combatRegen && p.Vitals.HP.Current > p.Vitals.HP.Max/2) {
		if p.HasFlag(shared.FlagRegen) {
			percent *= 2
		}
		if p.Rest.CanRegenerate() {
			percent *= 2
		}
		if p.Has(shared.TraitMeditation) {
			percent *= 2
		}
	}

	if combatRegen {
		percent /= -2
	} else if p.HasFlag(shared.FlagImpairMana) {
		percent /= 2
	}
	return percent
}

// ManaGain is the fixed-point spell point gain for this turn
func (c *Calculator) ManaGain(p *player.Player) vitals.Fixed {
	percent := c.ManaRate(p)
	gain := int64(p.Vitals.Mana.Max) * int64(percent)
	if percent > 0 {
		gain += int64(ManaBase)
	}
	return vitals.Saturate(gain)
}

// RegenMana applies one turn of spell point regeneration. Mana lost by a
// combat-regen character is turned into healing.
func (c *Calculator) RegenMana(p *player.Player) vitals.Change {
	if p.IsDead() {
		return vitals.Change{}
	}

	change := p.AdjustMana(c.ManaGain(p))

	// decaying mana heals at double the efficiency of casting
	if change.Precise < 0 && p.Has(shared.TraitCombatRegen) {
		ConvertManaToHP(p, vitals.Saturate(-int64(change.Precise)<<2))
	}

	if change.Changed() {
		p.LearnFlag(shared.FlagRegen)
		p.LearnFlag(shared.FlagImpairMana)
	}
	return change
}

// ConvertManaToHP heals part of the hit point deficit in exchange for spent mana.
// Draining half the mana pool or more heals at most a quarter of the deficit.
func ConvertManaToHP(p *player.Player, manaLost vitals.Fixed) vitals.Change {
	if manaLost <= 0 || p.Vitals.Mana.Max == 0 || p.Vitals.HPFull() {
		return vitals.Change{}
	}

	deficit := int64(p.Vitals.HPDeficit())

	ratio := (int64(max(10, p.Vitals.Mana.Max)) << vitals.FracBits) * 2 / int64(manaLost)
	if ratio < 4 {
		ratio = 4
	}

	return p.AdjustHP(vitals.Saturate(deficit / ratio))
}
