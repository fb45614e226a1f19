package damage

//go:generate mockgen -destination=mock/mock_confirmer.go -package=mockdamage -source=resolver.go Confirmer

import (
	"github.com/KirkDiggler/delve-vitals/internal/dice"
	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
	"github.com/KirkDiggler/delve-vitals/internal/domain/vitals"
	"github.com/KirkDiggler/delve-vitals/internal/events"
)

// Causes that never feed combat regeneration
const (
	CausePoison     = "poison"
	CauseFatalWound = "a fatal wound"
	CauseStarvation = "starvation"
	CauseOverExert  = "over-exertion"
)

// DefaultInvulnBypass is the damage at which invulnerability stops helping
const DefaultInvulnBypass = 9000

const (
	msgBloodlust    = "Your lust for blood keeps you alive!"
	msgMormegil1    = "So great was his prowess and skill in warfare, the Elves said: "
	msgMormegil2    = "'The Mormegil cannot be slain, save by mischance.'"
	msgDie          = "You die."
	msgHitpointWarn = "*** LOW HITPOINT WARNING! ***"
	promptDie       = "Die? "
)

// Confirmer asks the player a yes/no question
type Confirmer interface {
	Confirm(prompt string) bool
}

// Tuning holds resolver constants
type Tuning struct {
	InvulnBypass int
}

// Config configures a Resolver
type Config struct {
	Roller dice.Roller
	// Confirmer answers the cheat-death prompt. Nil always accepts death.
	Confirmer Confirmer
	Tuning    Tuning
}

// Resolver applies damage and decides death
type Resolver struct {
	roller    dice.Roller
	confirmer Confirmer
	tuning    Tuning
}

// NewResolver creates a resolver, filling in defaults
func NewResolver(cfg Config) *Resolver {
	if cfg.Roller == nil {
		cfg.Roller = dice.NewRandomRoller()
	}
	if cfg.Tuning.InvulnBypass <= 0 {
		cfg.Tuning.InvulnBypass = DefaultInvulnBypass
	}
	return &Resolver{
		roller:    cfg.Roller,
		confirmer: cfg.Confirmer,
		tuning:    cfg.Tuning,
	}
}

// Outcome is what a hit did
type Outcome struct {
	// Applied is the damage after reduction; zero means the hit did nothing
	Applied   int
	Killed    bool
	Reprieved bool // survived negative HP via bloodlust or cheat death
	Warned    bool
}

// IsExempt reports whether a cause is excluded from combat regeneration
func IsExempt(cause string) bool {
	switch cause {
	case CausePoison, CauseFatalWound, CauseStarvation:
		return true
	}
	return false
}

// TakeHit applies dam hit points of damage from cause
func (r *Resolver) TakeHit(p *player.Player, dam int, cause string) Outcome {
	var out Outcome
	oldHP := p.Vitals.HP.Current
	maxHP := max(p.Vitals.HP.Max, 1)
	warning := p.Vitals.HP.Max * p.Options.HitpointWarn / 10

	if p.IsDead() {
		return out
	}

	if p.Timed.Active(shared.TimedInvuln) && dam < r.tuning.InvulnBypass {
		return out
	}

	dam -= p.DamageReduction
	if p.PercentDamageReduction != 0 {
		dam -= (dam * p.PercentDamageReduction) / 100
	}
	if dam <= 0 {
		return out
	}
	out.Applied = dam

	p.Disturb()

	p.Vitals.Damage(dam)

	if p.Has(shared.TraitFury) {
		p.AddSpeedBoost(1 + (dam*70)/maxHP)
	}

	// lose X% of hit points, get X% of spell points
	if p.Has(shared.TraitCombatRegen) && !IsExempt(cause) {
		gain := (int64(max(p.Vitals.Mana.Max, 10)) << vitals.FracBits) / int64(maxHP) * int64(dam)
		p.AdjustMana(vitals.Saturate(gain))
	}

	p.Upkeep.Redraw |= player.RedrawHP

	if p.Vitals.HP.Current < 0 {
		bloodlust := p.Timed.Duration(shared.TimedBloodlust)
		switch {
		case bloodlust > 0 && p.Vitals.HP.Current+bloodlust+p.Level >= 0:
			out.Reprieved = true
			if dice.Randint0(r.roller, 10) != 0 {
				p.Msg(msgBloodlust)
			} else {
				p.Msg(msgMormegil1)
				p.Msg(msgMormegil2)
			}
		case (p.Wizard || p.Options.CheatLive) && !r.confirm(promptDie):
			out.Reprieved = true
			p.Emit(events.EventTypeCheatDeath, map[string]any{"cause": cause})
		default:
			p.Msg(msgDie)
			p.Emit(events.EventTypeMessageFlush, nil)

			p.Vitals.MarkDead(cause)
			p.TotalWinner = false
			p.Emit(events.EventTypeDeath, map[string]any{"cause": cause})

			out.Killed = true
			return out
		}
	}

	if p.Vitals.HP.Current < warning {
		// bell on first notice
		if oldHP > warning {
			p.Emit(events.EventTypeBell, map[string]any{"text": "Low hitpoint warning!"})
		}
		p.Msg(msgHitpointWarn)
		p.Emit(events.EventTypeMessageFlush, nil)
		p.Emit(events.EventTypeHitpointWarning, map[string]any{"hp": p.Vitals.HP.Current, "warning": warning})
		out.Warned = true
	}
	return out
}

func (r *Resolver) confirm(prompt string) bool {
	if r.confirmer == nil {
		return true
	}
	return r.confirmer.Confirm(prompt)
}
