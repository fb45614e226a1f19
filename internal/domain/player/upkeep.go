package player

// Redraw flags request parts of the display to be repainted
type Redraw uint32

const (
	RedrawHP Redraw = 1 << iota
	RedrawMana
	RedrawState
	RedrawEquip
	RedrawTitle
	RedrawMisc
)

// Update flags request derived state to be recalculated
type Update uint32

const (
	UpdateTorch Update = 1 << iota
	UpdateBonus
)

// Upkeep is per-turn bookkeeping consumed by the game loop
type Upkeep struct {
	Running   int    `json:"running"`
	Redraw    Redraw `json:"-"`
	Update    Update `json:"-"`
	EnergyUse int    `json:"-"`
}

// Has reports whether every bit in r is requested
func (r Redraw) Has(flags Redraw) bool {
	return r&flags == flags
}

// Has reports whether every bit in u is requested
func (u Update) Has(flags Update) bool {
	return u&flags == flags
}

// ClearTurn drops the per-turn requests once the loop has handled them
func (u *Upkeep) ClearTurn() {
	u.Redraw = 0
	u.Update = 0
	u.EnergyUse = 0
}
