package player

import "github.com/KirkDiggler/delve-vitals/internal/domain/shared"

// UpdateLight burns a turn of fuel from the wielded light.
// It reports whether a torch burnt out and was removed.
func (p *Player) UpdateLight(world shared.World) bool {
	burntOut := false

	if light := p.Light; light != nil {
		burn := true
		if world != nil && world.IsOutdoorsAndDaytime() {
			burn = false
		}
		if light.HasFlag(shared.FlagNoFuel) {
			burn = false
		}

		if burn && light.Fuel() > 0 {
			fuel := light.Fuel() - 1

			if fuel < 100 || fuel%100 == 0 {
				p.Upkeep.Redraw |= RedrawEquip
			}

			switch {
			case p.Timed.Active(shared.TimedBlind):
				// save some light for later
				if fuel == 0 {
					fuel++
				}
				light.SetFuel(fuel)
			case fuel == 0:
				light.SetFuel(fuel)
				p.Disturb()
				p.Msg("Your light has gone out!")
				if light.HasFlag(shared.FlagBurnsOut) {
					p.Light = nil
					burntOut = true
				}
			case fuel < 50 && fuel%20 == 0:
				light.SetFuel(fuel)
				p.Disturb()
				p.Msg("Your light is growing faint.")
			default:
				light.SetFuel(fuel)
			}
		}
	}

	p.Upkeep.Update |= UpdateTorch
	return burntOut
}
