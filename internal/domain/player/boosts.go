package player

// AddSpeedBoost raises the short term speed boost, capped by level
func (p *Player) AddSpeedBoost(value int) {
	maxBoost := 25 + (3*p.Level)/2
	p.SpeedBoost = min(p.SpeedBoost+value, maxBoost)
	p.Upkeep.Update |= UpdateBonus
}

// AddHeightenPower raises the short term heighten power, capped by level
func (p *Player) AddHeightenPower(value int) {
	maxPower := 60 + (5*p.Level)/2
	p.HeightenPower = min(p.HeightenPower+value, maxPower)
}

// ChannelingBoost is the spell level boost from a full mana pool
func (p *Player) ChannelingBoost() int {
	maxChanneling := int64(45 + 2*p.Level)
	var channeling int64

	csp := int64(p.Vitals.Mana.Current)
	msp := int64(p.Vitals.Mana.Max)
	if msp > 0 {
		channeling = (maxChanneling * csp * csp) / (msp * msp)
	}
	return (int(channeling) + 5) / 10
}

// EnergyPerMove is the energy a single step costs given extra moves
func (p *Player) EnergyPerMove() int {
	num := p.NumMoves
	abs := num
	if abs < 0 {
		abs = -abs
	}
	return (MoveEnergy * (1 + abs - num)) / (1 + abs)
}
