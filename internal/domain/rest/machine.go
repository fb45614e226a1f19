package rest

// Machine tracks a resting session: Idle -> Resting(mode) -> Idle.
// The zero value is an idle machine ready for use.
type Machine struct {
	count       int
	turnsRested int
	interrupted bool
	lastEnd     End
	prefs       Preferences
}

// State is the persisted form of a Machine
type State struct {
	Count       int         `json:"count"`
	TurnsRested int         `json:"turns_rested"`
	Interrupted bool        `json:"interrupted"`
	LastEnd     End         `json:"last_end,omitempty"`
	Preferences Preferences `json:"preferences"`
}

// NewMachine restores a machine from persisted state
func NewMachine(state State) *Machine {
	return &Machine{
		count:       state.Count,
		turnsRested: state.TurnsRested,
		interrupted: state.Interrupted,
		lastEnd:     state.LastEnd,
		prefs:       state.Preferences,
	}
}

// State returns the persisted form
func (m *Machine) State() State {
	return State{
		Count:       m.count,
		TurnsRested: m.turnsRested,
		Interrupted: m.interrupted,
		LastEnd:     m.lastEnd,
		Preferences: m.prefs,
	}
}

// Begin starts resting with a turn count or one of the Rest* codes
func (m *Machine) Begin(code int) BeginResult {
	if m.interrupted {
		m.count = 0
		m.interrupted = false
		return Swallowed
	}

	if code < 0 && !IsSpecial(code) {
		m.count = 0
		return Rejected
	}

	if code > MaxCount {
		code = MaxCount
	}
	m.count = code
	m.turnsRested = 0
	m.lastEnd = EndNone
	if code != 0 {
		m.prefs.RepeatCount = code
	}
	return Started
}

// IsResting reports whether a session is active
func (m *Machine) IsResting() bool {
	return m.count > 0 || IsSpecial(m.count)
}

// Count returns the remaining turns or the special code
func (m *Machine) Count() int {
	return m.count
}

// Mode returns the current mode
func (m *Machine) Mode() Mode {
	return ModeFor(m.count)
}

// TurnsRested is the number of turns in the current session
func (m *Machine) TurnsRested() int {
	return m.turnsRested
}

// Interrupted reports a pending interruption that will swallow the next Begin
func (m *Machine) Interrupted() bool {
	return m.interrupted
}

// ClearInterrupt drops a pending interruption
func (m *Machine) ClearInterrupt() {
	m.interrupted = false
}

// LastEnd reports how the previous session ended
func (m *Machine) LastEnd() End {
	return m.lastEnd
}

// Preferences returns the long-lived settings
func (m *Machine) Preferences() Preferences {
	return m.prefs
}

// RepeatCount is the last successfully requested rest code
func (m *Machine) RepeatCount() int {
	return m.prefs.RepeatCount
}

// SetRepeatCount overrides the remembered rest code
func (m *Machine) SetRepeatCount(code int) {
	m.prefs.RepeatCount = code
}

// CanRegenerate reports whether the rest regeneration bonus applies
func (m *Machine) CanRegenerate() bool {
	return m.turnsRested >= RequiredForRegen || IsSpecial(m.count)
}

// Step does the bookkeeping for one turn of rest. The caller spends the energy.
func (m *Machine) Step() StepResult {
	var res StepResult
	if !m.IsResting() {
		return res
	}

	if m.count > 0 {
		m.count--
		res.Counted = true
	}
	m.turnsRested++

	if res.Counted && m.count == 0 {
		m.turnsRested = 0
		m.lastEnd = EndCompleted
		res.Finished = true
	}
	return res
}

// Cancel ends the session. A disturbed cancel leaves an interruption pending.
func (m *Machine) Cancel(disturbed bool) {
	m.count = 0
	m.turnsRested = 0
	m.interrupted = disturbed
	if disturbed {
		m.lastEnd = EndDisturbed
	} else {
		m.lastEnd = EndCancelled
	}
}

// Finish ends a special-mode session that met its goal
func (m *Machine) Finish() {
	m.count = 0
	m.turnsRested = 0
	m.lastEnd = EndCompleted
}

// ShouldStop evaluates the completion predicate for the active special mode
func (m *Machine) ShouldStop(s Status) bool {
	switch m.count {
	case RestAllPoints:
		return s.HPFull && s.ManaFull
	case RestComplete:
		return s.HPFull &&
			(s.ManaFull || s.CombatRegen) &&
			!s.Blocked &&
			!s.RecallPending &&
			!s.DescentPending
	case RestSomePoints:
		return s.HPFull || s.ManaFull
	case RestSunlight:
		return IsSunlightChange(s.Turn, s.DayLength)
	}
	return false
}

// IsSunlightChange reports whether turn sits on a sunrise or sunset boundary.
// The turn is rounded down to a multiple of 10 so the check cannot skip the boundary.
func IsSunlightChange(turn int64, dayLength int) bool {
	half := int64(10*dayLength) / 2
	if half <= 0 {
		return false
	}
	ttest := (turn / 10) * 10
	return ttest%half == 0
}
