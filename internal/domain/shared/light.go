package shared

// Light is a wielded light source with a fuel counter
type Light struct {
	Name  string       `json:"name"`
	Turns int          `json:"turns"`
	Flags []ObjectFlag `json:"flags,omitempty"`
}

// Fuel implements LightSource
func (l *Light) Fuel() int {
	return l.Turns
}

// SetFuel implements LightSource
func (l *Light) SetFuel(turns int) {
	l.Turns = turns
}

// HasFlag implements LightSource
func (l *Light) HasFlag(flag ObjectFlag) bool {
	for _, f := range l.Flags {
		if f == flag {
			return true
		}
	}
	return false
}
