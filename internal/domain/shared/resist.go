package shared

// Element is a damage element
type Element string

const (
	ElementFire   Element = "fire"
	ElementCold   Element = "cold"
	ElementAcid   Element = "acid"
	ElementElec   Element = "elec"
	ElementPoison Element = "poison"
)

// Resistance levels. Lower is better; vulnerability sits above the base level.
const (
	ResLevelMax    = -3 // immune
	ResLevelStrong = -2
	ResLevelEffect = -1
	ResLevelBase   = 0
)

// Resistances maps elements to resistance levels. Missing elements are at base.
type Resistances map[Element]int

// Level returns the level for an element
func (r Resistances) Level(el Element) int {
	return r[el]
}

// IsVulnerable reports a level above base
func (r Resistances) IsVulnerable(el Element) bool {
	return r.Level(el) > ResLevelBase
}

// Resists reports any resistance
func (r Resistances) Resists(el Element) bool {
	return r.Level(el) < ResLevelBase
}

// ResistsEffects reports resistance strong enough to ignore side effects
func (r Resistances) ResistsEffects(el Element) bool {
	return r.Level(el) <= ResLevelEffect
}

// ResistsStrongly reports strong resistance or better
func (r Resistances) ResistsStrongly(el Element) bool {
	return r.Level(el) <= ResLevelStrong
}

// IsImmune reports full immunity
func (r Resistances) IsImmune(el Element) bool {
	return r.Level(el) == ResLevelMax
}

// AdjustDamage scales damage by resistance level:
// immune takes none, each resistance step divides by a further 3, vulnerability adds a third.
func (r Resistances) AdjustDamage(el Element, dam int) int {
	level := r.Level(el)
	switch {
	case level <= ResLevelMax:
		return 0
	case level < ResLevelBase:
		for i := level; i < ResLevelBase; i++ {
			dam /= 3
		}
		return dam
	case level > ResLevelBase:
		return dam * 4 / 3
	default:
		return dam
	}
}
