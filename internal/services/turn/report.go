package turn

import (
	"github.com/KirkDiggler/delve-vitals/internal/domain/damage"
	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/domain/rest"
	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
	"github.com/KirkDiggler/delve-vitals/internal/events"
)

// Snapshot is a point-in-time view of a player's pools
type Snapshot struct {
	HP       int
	MaxHP    int
	HPFrac   uint16
	Mana     int
	MaxMana  int
	ManaFrac uint16
	GameTurn int64
}

// TurnSnapshot is what one resting turn did
type TurnSnapshot struct {
	Turn      int
	Snapshot  Snapshot
	Resting   bool
	Count     int
	HPGain    int
	ManaGain  int
	Struck    bool
	LightOut  bool
	Completed bool
}

// VitalsReport summarises a player for display
type VitalsReport struct {
	PlayerID    string
	Name        string
	Status      shared.PlayerStatus
	DiedFrom    string
	Vitals      Snapshot
	Resting     bool
	Mode        rest.Mode
	Count       int
	TurnsRested int
	RepeatCount int
	LowHP       bool // under the hit point warning threshold
	Messages    []string
}

// DamageReport is the result of a single hit
type DamageReport struct {
	PlayerID string
	Cause    string
	Outcome  damage.Outcome
	Before   Snapshot
	After    Snapshot
	Messages []string
}

// RestReport is the result of a rest command
type RestReport struct {
	PlayerID    string
	Code        int
	Mode        rest.Mode
	Begin       rest.BeginResult
	Turns       int
	Before      Snapshot
	After       Snapshot
	End         rest.End
	Capped      bool // a special mode ran out of turns before its goal was met
	Interrupted bool
	Dead        bool
	DiedFrom    string
	Hits        int
	Messages    []string
}

func snapshot(p *player.Player) Snapshot {
	return Snapshot{
		HP:       p.Vitals.HP.Current,
		MaxHP:    p.Vitals.HP.Max,
		HPFrac:   p.Vitals.HP.Frac,
		Mana:     p.Vitals.Mana.Current,
		MaxMana:  p.Vitals.Mana.Max,
		ManaFrac: p.Vitals.Mana.Frac,
		GameTurn: p.GameTurn,
	}
}

func newVitalsReport(p *player.Player, rec *events.Recorder) *VitalsReport {
	report := &VitalsReport{
		PlayerID:    p.ID,
		Name:        p.Name,
		Status:      p.Status(),
		DiedFrom:    p.Vitals.DiedFrom,
		Vitals:      snapshot(p),
		Resting:     p.Rest.IsResting(),
		Mode:        p.Rest.Mode(),
		Count:       p.Rest.Count(),
		TurnsRested: p.Rest.TurnsRested(),
		RepeatCount: p.Rest.RepeatCount(),
		LowHP:       p.Vitals.HP.Current < p.Vitals.HP.Max*p.Options.HitpointWarn/10,
	}
	if rec != nil {
		report.Messages = rec.Messages()
	}
	return report
}
