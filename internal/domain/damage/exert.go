package damage

import (
	"github.com/KirkDiggler/delve-vitals/internal/dice"
	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
	"github.com/KirkDiggler/delve-vitals/internal/events"
)

// Exertion is a set of side effects of pushing past the player's limits
type Exertion uint16

const (
	ExertCon Exertion = 1 << iota
	ExertFaint
	ExertScramble
	ExertCut
	ExertConf
	ExertHallu
	ExertSlow
	ExertHP
)

// OverExert rolls each requested side effect against chance percent.
// amount bounds the duration or damage of each effect.
func (r *Resolver) OverExert(p *player.Player, flags Exertion, chance, amount int) {
	if chance <= 0 {
		return
	}

	if flags&ExertCon != 0 && r.percent(chance) {
		// only permanent with a high chance, e.g. casting without mana
		perm := r.percent(chance/2) && chance >= 50
		p.Msg("You have damaged your health!")
		p.Emit(events.EventTypeStatDrain, map[string]any{"stat": "con", "permanent": perm})
	}

	if flags&ExertFaint != 0 && r.percent(chance) {
		p.Msg("You faint from the effort!")
		p.Timed.Inc(shared.TimedParalyzed, dice.Randint1(r.roller, amount))
	}

	if flags&ExertScramble != 0 && r.percent(chance) {
		p.Timed.Inc(shared.TimedScramble, dice.Randint1(r.roller, amount))
	}

	if flags&ExertCut != 0 && r.percent(chance) {
		p.Msg("Wounds appear on your body!")
		p.Timed.Inc(shared.TimedCut, dice.Randint1(r.roller, amount))
	}

	if flags&ExertConf != 0 && r.percent(chance) {
		p.Timed.Inc(shared.TimedConfused, dice.Randint1(r.roller, amount))
	}

	if flags&ExertHallu != 0 && r.percent(chance) {
		p.Timed.Inc(shared.TimedImage, dice.Randint1(r.roller, amount))
	}

	if flags&ExertSlow != 0 && r.percent(chance) {
		p.Msg("You feel suddenly lethargic.")
		p.Timed.Inc(shared.TimedSlow, dice.Randint1(r.roller, amount))
	}

	if flags&ExertHP != 0 && r.percent(chance) {
		p.Msg("You cry out in sudden pain!")
		r.TakeHit(p, dice.Randint1(r.roller, amount), CauseOverExert)
	}
}

func (r *Resolver) percent(chance int) bool {
	return dice.Randint0(r.roller, 100) < chance
}
