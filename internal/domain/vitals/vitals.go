package vitals

import "math"

// Pool is a depletable resource stored as the (integer, fraction) pair the
// save format expects. Arithmetic always goes through the combined Fixed value.
type Pool struct {
	Current int    `json:"current"`
	Max     int    `json:"max"`
	Frac    uint16 `json:"frac"`
}

// NewPool creates a full pool
func NewPool(max int) Pool {
	return Pool{Current: max, Max: max}
}

// Fixed recombines the pool into a single fixed-point value
func (p Pool) Fixed() Fixed {
	return FromParts(p.Current, p.Frac)
}

// Full reports whether the pool is at its maximum
func (p Pool) Full() bool {
	return p.Current == p.Max
}

// adjust applies gain and clamps. floor controls whether the pool may go below zero.
// The max clamp is checked against the unsaturated sum.
func (p *Pool) adjust(gain Fixed, floor bool) Change {
	oldWhole := p.Current
	oldWide := p.wide()
	sum := oldWide + int64(gain)

	switch {
	case sum >= int64(p.Max)<<FracBits:
		p.Current = p.Max
		p.Frac = 0
	case floor && sum < 0:
		p.Current = 0
		p.Frac = 0
	default:
		sum = max(sum, math.MinInt32)
		p.Current, p.Frac = int(sum>>FracBits), uint16(sum&0xFFFF)
	}

	return Change{
		Delta:   p.Current - oldWhole,
		Precise: Saturate(p.wide() - oldWide),
	}
}

func (p Pool) wide() int64 {
	return int64(p.Current)<<FracBits + int64(p.Frac)
}

// Change is what an adjustment actually did after clamping
type Change struct {
	// Delta is the visible integer change; zero when only the fraction moved
	Delta int
	// Precise is the realised fixed-point change
	Precise Fixed
}

// Changed reports whether the integer part moved
func (c Change) Changed() bool {
	return c.Delta != 0
}

// Vitals holds a player's hit points and spell points.
// Once Dead is set, nothing in this package mutates it again.
type Vitals struct {
	HP       Pool   `json:"hp"`
	Mana     Pool   `json:"mana"`
	Dead     bool   `json:"dead"`
	DiedFrom string `json:"died_from,omitempty"`
}

// New creates full vitals
func New(maxHP, maxMana int) Vitals {
	return Vitals{
		HP:   NewPool(maxHP),
		Mana: NewPool(maxMana),
	}
}

// AdjustHP adds a fixed-point gain to hit points.
// HP is clamped to max but has no floor: negative HP is how death is signalled.
func (v *Vitals) AdjustHP(gain Fixed) Change {
	if v.Dead {
		return Change{}
	}
	return v.HP.adjust(gain, false)
}

// AdjustMana adds a fixed-point gain to spell points, clamped to [0, max]
func (v *Vitals) AdjustMana(gain Fixed) Change {
	if v.Dead || gain == 0 {
		return Change{}
	}
	return v.Mana.adjust(gain, true)
}

// Damage removes whole hit points. The fraction is left alone.
func (v *Vitals) Damage(amount int) {
	if v.Dead {
		return
	}
	v.HP.Current -= amount
}

// MarkDead is the one-way transition to death
func (v *Vitals) MarkDead(cause string) {
	if v.Dead {
		return
	}
	v.Dead = true
	v.DiedFrom = cause
}

// HPFull reports whether hit points are at max
func (v *Vitals) HPFull() bool {
	return v.HP.Full()
}

// ManaFull reports whether spell points are at max
func (v *Vitals) ManaFull() bool {
	return v.Mana.Full()
}

// HPDeficit is the fixed-point distance from current HP to max HP
func (v *Vitals) HPDeficit() Fixed {
	return Saturate(int64(v.HP.Max-v.HP.Current)<<FracBits - int64(v.HP.Frac))
}
