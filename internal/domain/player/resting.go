package player

import (
	"github.com/KirkDiggler/delve-vitals/internal/domain/rest"
	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
	"github.com/KirkDiggler/delve-vitals/internal/events"
)

// BeginRest asks the rest machine to start a session
func (p *Player) BeginRest(code int) rest.BeginResult {
	res := p.Rest.Begin(code)
	if res == rest.Started && p.Rest.IsResting() {
		p.Upkeep.Redraw |= RedrawState
		p.Emit(events.EventTypeRestStarted, map[string]any{
			"code": code,
			"mode": string(p.Rest.Mode()),
		})
	}
	return res
}

// RestStep spends one turn resting
func (p *Player) RestStep() rest.StepResult {
	if !p.Rest.IsResting() {
		return rest.StepResult{}
	}

	res := p.Rest.Step()
	if res.Counted {
		p.Upkeep.Redraw |= RedrawState
	}

	p.Upkeep.EnergyUse = MoveEnergy
	p.RestingTurn++

	if res.Finished {
		p.Emit(events.EventTypeRestCompleted, map[string]any{"mode": string(rest.ModeFixed)})
	}
	return res
}

// RestStatus gathers what the completion predicates need
func (p *Player) RestStatus(turn int64, dayLength int) rest.Status {
	return rest.Status{
		HPFull:         p.Vitals.HPFull(),
		ManaFull:       p.Vitals.ManaFull(),
		CombatRegen:    p.Has(shared.TraitCombatRegen),
		Blocked:        shared.AnyActive(p.Timed, shared.RestBlockers),
		RecallPending:  p.WordRecall > 0,
		DescentPending: p.DeepDescent > 0,
		Turn:           turn,
		DayLength:      dayLength,
	}
}

// CompleteRest ends a special-mode rest whose goal has been reached.
// It reports whether the session ended. The trailing Disturb flushes input and
// cancels command repeats; the session is already finished, so it is not an interrupt.
func (p *Player) CompleteRest(turn int64, dayLength int) bool {
	if !rest.IsSpecial(p.Rest.Count()) {
		return false
	}
	if !p.Rest.ShouldStop(p.RestStatus(turn, dayLength)) {
		return false
	}

	mode := p.Rest.Mode()
	p.Rest.Finish()
	p.Upkeep.Redraw |= RedrawState
	p.Emit(events.EventTypeRestCompleted, map[string]any{"mode": string(mode)})

	p.Disturb()
	return true
}
