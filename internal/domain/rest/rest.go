package rest

// Request codes. Positive values rest for that many turns.
const (
	RestAllPoints  = -1 // until HP and mana are both full
	RestComplete   = -2 // until fully recovered
	RestSomePoints = -3 // until HP or mana is full
	RestSunlight   = -4 // until the next sunrise or sunset
)

// MaxCount caps a fixed-count rest
const MaxCount = 9999

// RequiredForRegen is how many consecutive turns of rest unlock the regeneration bonus
const RequiredForRegen = 5

// IsSpecial reports whether code is one of the "rest until" modes
func IsSpecial(code int) bool {
	switch code {
	case RestAllPoints, RestComplete, RestSomePoints, RestSunlight:
		return true
	}
	return false
}

// Mode is the kind of rest in progress
type Mode string

const (
	ModeIdle       Mode = "idle"
	ModeFixed      Mode = "fixed"
	ModeAllPoints  Mode = "all_points"
	ModeComplete   Mode = "complete"
	ModeSomePoints Mode = "some_points"
	ModeSunlight   Mode = "sunlight"
)

// ModeFor maps a request code to its mode
func ModeFor(code int) Mode {
	switch {
	case code > 0:
		return ModeFixed
	case code == RestAllPoints:
		return ModeAllPoints
	case code == RestComplete:
		return ModeComplete
	case code == RestSomePoints:
		return ModeSomePoints
	case code == RestSunlight:
		return ModeSunlight
	default:
		return ModeIdle
	}
}

// End records how the last session finished
type End string

const (
	EndNone      End = ""
	EndCompleted End = "completed"
	EndDisturbed End = "disturbed"
	EndCancelled End = "cancelled"
)

// BeginResult is the outcome of a rest request
type BeginResult int

const (
	Started BeginResult = iota
	// Swallowed means a pending interruption consumed the request
	Swallowed
	// Rejected means the code was negative and not a special mode
	Rejected
)

// Preferences outlive a single rest session
type Preferences struct {
	RepeatCount int `json:"repeat_count"`
}

// Status is everything the completion predicates look at
type Status struct {
	HPFull         bool
	ManaFull       bool
	CombatRegen    bool
	Blocked        bool // any of the statuses that keep a complete rest going
	RecallPending  bool
	DescentPending bool
	Turn           int64
	DayLength      int
}

// StepResult reports the bookkeeping of one resting turn
type StepResult struct {
	// Counted is set when a fixed count was decremented
	Counted bool
	// Finished is set when the fixed count ran out on this step
	Finished bool
}
