package shared

//go:generate mockgen -destination=mock/mock_flags.go -package=mockshared -source=flags.go

// ObjectFlag is a property granted by worn equipment
type ObjectFlag string

const (
	FlagRegen      ObjectFlag = "regen"
	FlagImpairHP   ObjectFlag = "impair_hp"
	FlagImpairMana ObjectFlag = "impair_mana"
	FlagFeather    ObjectFlag = "feather"
	FlagNoFuel     ObjectFlag = "no_fuel"
	FlagBurnsOut   ObjectFlag = "burns_out"
)

// Equipment answers flag queries against everything the player wears.
// LearnFlag is called when an effect of the flag became visible to the player.
type Equipment interface {
	HasFlag(flag ObjectFlag) bool
	LearnFlag(flag ObjectFlag)
}

// FlagSet is a simple Equipment backed by a set
type FlagSet struct {
	Flags   map[ObjectFlag]bool `json:"flags,omitempty"`
	Learned map[ObjectFlag]bool `json:"learned,omitempty"`
}

// NewFlagSet creates a set with the given flags
func NewFlagSet(flags ...ObjectFlag) *FlagSet {
	fs := &FlagSet{Flags: make(map[ObjectFlag]bool, len(flags))}
	for _, f := range flags {
		fs.Flags[f] = true
	}
	return fs
}

// HasFlag implements Equipment
func (fs *FlagSet) HasFlag(flag ObjectFlag) bool {
	return fs != nil && fs.Flags[flag]
}

// LearnFlag implements Equipment. Only flags actually present are learned.
func (fs *FlagSet) LearnFlag(flag ObjectFlag) {
	if !fs.HasFlag(flag) {
		return
	}
	if fs.Learned == nil {
		fs.Learned = make(map[ObjectFlag]bool)
	}
	fs.Learned[flag] = true
}

// Knows reports whether the flag has been learned
func (fs *FlagSet) Knows(flag ObjectFlag) bool {
	return fs != nil && fs.Learned[flag]
}
