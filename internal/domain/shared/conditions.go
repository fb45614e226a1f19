package shared

// TimedEffect is a status that counts down in game turns
type TimedEffect string

const (
	TimedFood      TimedEffect = "food"
	TimedParalyzed TimedEffect = "paralyzed"
	TimedPoisoned  TimedEffect = "poisoned"
	TimedStun      TimedEffect = "stun"
	TimedCut       TimedEffect = "cut"
	TimedBlind     TimedEffect = "blind"
	TimedConfused  TimedEffect = "confused"
	TimedAfraid    TimedEffect = "afraid"
	TimedTerror    TimedEffect = "terror"
	TimedSlow      TimedEffect = "slow"
	TimedImage     TimedEffect = "image" // hallucination
	TimedInvuln    TimedEffect = "invuln"
	TimedBloodlust TimedEffect = "bloodlust"
	TimedScramble  TimedEffect = "scramble"
	TimedAttVamp   TimedEffect = "att_vamp"
)

// StatusReader exposes remaining durations of timed effects
type StatusReader interface {
	Duration(effect TimedEffect) int
}

// HealingBlockers stop natural hit point regeneration outright
var HealingBlockers = []TimedEffect{
	TimedParalyzed,
	TimedPoisoned,
	TimedStun,
	TimedCut,
}

// RestBlockers keep a "rest as needed" session going until they wear off
var RestBlockers = []TimedEffect{
	TimedBlind,
	TimedConfused,
	TimedPoisoned,
	TimedAfraid,
	TimedTerror,
	TimedStun,
	TimedCut,
	TimedSlow,
	TimedParalyzed,
	TimedImage,
}

// TimedEffects is the in-memory duration table
type TimedEffects map[TimedEffect]int

// Duration implements StatusReader
func (t TimedEffects) Duration(effect TimedEffect) int {
	if t == nil {
		return 0
	}
	return t[effect]
}

// Active reports whether the effect has turns left
func (t TimedEffects) Active(effect TimedEffect) bool {
	return t.Duration(effect) > 0
}

// Set overwrites a duration; non-positive values clear it
func (t TimedEffects) Set(effect TimedEffect, turns int) {
	if turns <= 0 {
		delete(t, effect)
		return
	}
	t[effect] = turns
}

// Inc extends a duration
func (t TimedEffects) Inc(effect TimedEffect, turns int) {
	if turns <= 0 {
		return
	}
	t[effect] += turns
}

// Dec shortens a duration, never below zero
func (t TimedEffects) Dec(effect TimedEffect, turns int) {
	t.Set(effect, t[effect]-turns)
}

// AnyActive reports whether any of the listed effects is running
func AnyActive(status StatusReader, effects []TimedEffect) bool {
	for _, effect := range effects {
		if status.Duration(effect) > 0 {
			return true
		}
	}
	return false
}
