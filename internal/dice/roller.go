package dice

import "log"

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// Randint1 returns 1..n, or 0 when n is not a valid die
func Randint1(r Roller, n int) int {
	if n < 1 {
		return 0
	}
	result, err := r.Roll(1, n, 0)
	if err != nil {
		log.Printf("dice: d%d failed: %v", n, err)
		return 0
	}
	return result.Total
}

// Randint0 returns 0..n-1
func Randint0(r Roller, n int) int {
	if n < 1 {
		return 0
	}
	return Randint1(r, n) - 1
}

// Damroll returns the total of count dice of the given size
func Damroll(r Roller, count, sides int) int {
	if count < 1 || sides < 1 {
		return 0
	}
	result, err := r.Roll(count, sides, 0)
	if err != nil {
		log.Printf("dice: %dd%d failed: %v", count, sides, err)
		return 0
	}
	return result.Total
}

// PercentChance reports whether a d100 roll lands under chance
func PercentChance(r Roller, chance int) bool {
	if chance <= 0 {
		return false
	}
	return Randint0(r, 100) < chance
}
