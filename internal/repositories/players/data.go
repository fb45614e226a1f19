package players

import (
	"sort"
	"time"

	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/domain/rest"
	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
	"github.com/KirkDiggler/delve-vitals/internal/domain/vitals"
)

// Data is the stored form of a player
type Data struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	Level   int    `json:"level"`

	Vitals vitals.Vitals `json:"vitals"`
	Rest   rest.State    `json:"rest"`

	Timed     shared.TimedEffects `json:"timed,omitempty"`
	Traits    []shared.Trait      `json:"traits,omitempty"`
	Equipment *shared.FlagSet     `json:"equipment,omitempty"`
	Light     *shared.Light       `json:"light,omitempty"`
	Resist    shared.Resistances  `json:"resist,omitempty"`

	DamageReduction        int `json:"damage_reduction"`
	PercentDamageReduction int `json:"percent_damage_reduction"`
	SpeedBoost             int `json:"speed_boost"`
	HeightenPower          int `json:"heighten_power"`
	NumMoves               int `json:"num_moves"`

	Wizard      bool   `json:"wizard"`
	TotalWinner bool   `json:"total_winner"`
	WordRecall  int    `json:"word_recall"`
	DeepDescent int    `json:"deep_descent"`
	Shape       string `json:"shape"`
	Running     int    `json:"running"`

	RestingTurn int   `json:"resting_turn"`
	GameTurn    int64 `json:"game_turn"`

	Options player.Options `json:"options"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toPlayerData(p *player.Player) *Data {
	if p == nil {
		return nil
	}

	data := &Data{
		ID:                     p.ID,
		OwnerID:                p.OwnerID,
		Name:                   p.Name,
		Level:                  p.Level,
		Vitals:                 p.Vitals,
		Timed:                  p.Timed,
		Resist:                 p.Resist,
		DamageReduction:        p.DamageReduction,
		PercentDamageReduction: p.PercentDamageReduction,
		SpeedBoost:             p.SpeedBoost,
		HeightenPower:          p.HeightenPower,
		NumMoves:               p.NumMoves,
		Wizard:                 p.Wizard,
		TotalWinner:            p.TotalWinner,
		WordRecall:             p.WordRecall,
		DeepDescent:            p.DeepDescent,
		Shape:                  p.Shape,
		Running:                p.Upkeep.Running,
		RestingTurn:            p.RestingTurn,
		GameTurn:               p.GameTurn,
		Options:                p.Options,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}

	if p.Rest != nil {
		data.Rest = p.Rest.State()
	}
	if traits := sortedTraits(p.Traits); len(traits) > 0 {
		data.Traits = traits
	}
	if fs, ok := p.Equipment.(*shared.FlagSet); ok && fs != nil {
		data.Equipment = fs
	}
	if light, ok := p.Light.(*shared.Light); ok && light != nil {
		data.Light = light
	}

	return data
}

func toPlayer(data *Data) *player.Player {
	if data == nil {
		return nil
	}

	p := &player.Player{
		ID:                     data.ID,
		OwnerID:                data.OwnerID,
		Name:                   data.Name,
		Level:                  data.Level,
		Vitals:                 data.Vitals,
		Rest:                   rest.NewMachine(data.Rest),
		Timed:                  data.Timed,
		Traits:                 shared.NewTraits(data.Traits...),
		Resist:                 data.Resist,
		DamageReduction:        data.DamageReduction,
		PercentDamageReduction: data.PercentDamageReduction,
		SpeedBoost:             data.SpeedBoost,
		HeightenPower:          data.HeightenPower,
		NumMoves:               data.NumMoves,
		Wizard:                 data.Wizard,
		TotalWinner:            data.TotalWinner,
		WordRecall:             data.WordRecall,
		DeepDescent:            data.DeepDescent,
		Shape:                  data.Shape,
		RestingTurn:            data.RestingTurn,
		GameTurn:               data.GameTurn,
		Options:                data.Options,
		Upkeep:                 player.Upkeep{Running: data.Running},
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}

	if data.Equipment != nil {
		p.Equipment = data.Equipment
	}
	if data.Light != nil {
		p.Light = data.Light
	}

	p.EnsureDefaults()
	return p
}

func sortedTraits(traits shared.Traits) []shared.Trait {
	out := make([]shared.Trait, 0, len(traits))
	for trait, ok := range traits {
		if ok {
			out = append(out, trait)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
