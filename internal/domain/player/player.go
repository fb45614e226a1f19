package player

import (
	"time"

	"github.com/KirkDiggler/delve-vitals/internal/domain/rest"
	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
	"github.com/KirkDiggler/delve-vitals/internal/domain/vitals"
	"github.com/KirkDiggler/delve-vitals/internal/events"
)

// MoveEnergy is the energy one normal-speed move costs
const MoveEnergy = 100

// DefaultHitpointWarn is the default low hit point warning level, in tenths of max HP
const DefaultHitpointWarn = 3

// Options are the per-player game options the vitals core reads
type Options struct {
	// HitpointWarn is the warning threshold in tenths of max HP (0 disables)
	HitpointWarn int  `json:"hitpoint_warn"`
	CheatLive    bool `json:"cheat_live"`
}

// Player is the aggregate the vitals core operates on
type Player struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	Level   int    `json:"level"`

	Vitals vitals.Vitals `json:"vitals"`
	Rest   *rest.Machine `json:"-"`

	Timed     shared.TimedEffects `json:"timed"`
	Traits    shared.Traits       `json:"traits"`
	Equipment shared.Equipment    `json:"-"`
	Light     shared.LightSource  `json:"-"`
	Resist    shared.Resistances  `json:"resist"`

	DamageReduction        int `json:"damage_reduction"`
	PercentDamageReduction int `json:"percent_damage_reduction"`
	SpeedBoost             int `json:"speed_boost"`
	HeightenPower          int `json:"heighten_power"`
	NumMoves               int `json:"num_moves"`

	Wizard      bool `json:"wizard"`
	TotalWinner bool `json:"total_winner"`
	WordRecall  int  `json:"word_recall"`
	DeepDescent int  `json:"deep_descent"`

	Shape string `json:"shape"`

	// RestingTurn counts every turn ever spent resting
	RestingTurn int   `json:"resting_turn"`
	GameTurn    int64 `json:"game_turn"`

	Options Options `json:"options"`
	Upkeep  Upkeep  `json:"upkeep"`

	Commands shared.CommandQueue `json:"-"`
	Events   events.Emitter      `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Config holds what is needed to create a fresh player
type Config struct {
	ID      string
	OwnerID string
	Name    string
	Level   int
	MaxHP   int
	MaxMana int
	Traits  []shared.Trait
}

// New creates a player at full health with safe collaborators wired in
func New(cfg Config) *Player {
	level := cfg.Level
	if level < 1 {
		level = 1
	}

	p := &Player{
		ID:      cfg.ID,
		OwnerID: cfg.OwnerID,
		Name:    cfg.Name,
		Level:   level,
		Vitals:  vitals.New(cfg.MaxHP, cfg.MaxMana),
		Traits:  shared.NewTraits(cfg.Traits...),
		Shape:   ShapeNormal,
		Options: Options{HitpointWarn: DefaultHitpointWarn},
	}
	p.EnsureDefaults()
	return p
}

// EnsureDefaults fills nil collaborators and maps, e.g. after loading from storage
func (p *Player) EnsureDefaults() {
	if p.Rest == nil {
		p.Rest = &rest.Machine{}
	}
	if p.Timed == nil {
		p.Timed = make(shared.TimedEffects)
	}
	if p.Traits == nil {
		p.Traits = make(shared.Traits)
	}
	if p.Resist == nil {
		p.Resist = make(shared.Resistances)
	}
	if p.Equipment == nil {
		p.Equipment = shared.NewFlagSet()
	}
	if p.Commands == nil {
		p.Commands = noCommands{}
	}
	if p.Events == nil {
		p.Events = events.Discard
	}
	if p.Shape == "" {
		p.Shape = ShapeNormal
	}
}

// Has reports an innate trait
func (p *Player) Has(trait shared.Trait) bool {
	return p.Traits.Has(trait)
}

// HasFlag reports an equipment flag
func (p *Player) HasFlag(flag shared.ObjectFlag) bool {
	return p.Equipment != nil && p.Equipment.HasFlag(flag)
}

// LearnFlag marks an equipment flag as noticed
func (p *Player) LearnFlag(flag shared.ObjectFlag) {
	if p.Equipment != nil {
		p.Equipment.LearnFlag(flag)
	}
}

// IsDead reports the terminal state
func (p *Player) IsDead() bool {
	return p.Vitals.Dead
}

// Status is the lifecycle state shown to the owner
func (p *Player) Status() shared.PlayerStatus {
	if p.IsDead() {
		return shared.PlayerStatusDead
	}
	return shared.PlayerStatusActive
}

// AdjustHP applies a precise hit point gain and requests an HP redraw on a visible change
func (p *Player) AdjustHP(gain vitals.Fixed) vitals.Change {
	change := p.Vitals.AdjustHP(gain)
	if change.Changed() {
		p.Upkeep.Redraw |= RedrawHP
	}
	return change
}

// AdjustMana applies a precise spell point gain and requests a mana redraw on a visible change
func (p *Player) AdjustMana(gain vitals.Fixed) vitals.Change {
	change := p.Vitals.AdjustMana(gain)
	if change.Changed() {
		p.Upkeep.Redraw |= RedrawMana
	}
	return change
}

// Emit sends an event tagged with this player
func (p *Player) Emit(eventType events.EventType, payload map[string]any) {
	p.Events.Emit(events.Event{Type: eventType, PlayerID: p.ID, Payload: payload})
}

// Msg sends a message event
func (p *Player) Msg(text string) {
	p.Events.Emit(events.NewMessage(p.ID, text))
}

type noCommands struct{}

func (noCommands) CancelRepeat() {}
func (noCommands) Flush()        {}
