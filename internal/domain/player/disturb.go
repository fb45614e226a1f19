package player

import "github.com/KirkDiggler/delve-vitals/internal/events"

// Disturb interrupts whatever multi-turn action the player is doing.
// Calling it again in the same turn only repeats the redraw requests.
func (p *Player) Disturb() {
	p.Commands.CancelRepeat()

	if p.Rest.IsResting() {
		p.Rest.Cancel(true)
		p.Upkeep.Redraw |= RedrawState
		p.Emit(events.EventTypeRestInterrupted, nil)
	}

	if p.Upkeep.Running != 0 {
		p.Upkeep.Running = 0
		p.Commands.Flush()

		p.Emit(events.EventTypePlayerMoved, nil)
		p.Upkeep.Update |= UpdateTorch
		p.Emit(events.EventTypeMapRedraw, nil)
	}

	p.Emit(events.EventTypeInputFlush, nil)
}
