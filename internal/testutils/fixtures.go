package testutils

import (
	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
)

// WoundedPlayer creates a well-fed player at the given hit points and spell points
func WoundedPlayer(id, ownerID string, hp, maxHP, mana, maxMana int, traits ...shared.Trait) *player.Player {
	p := player.New(player.Config{
		ID:      id,
		OwnerID: ownerID,
		Name:    "Test Adventurer",
		Level:   10,
		MaxHP:   maxHP,
		MaxMana: maxMana,
		Traits:  traits,
	})
	p.Vitals.HP.Current = hp
	p.Vitals.Mana.Current = mana
	p.Timed.Set(shared.TimedFood, 2000)
	return p
}

// TorchBearer gives the player a torch with fuel turns left
func TorchBearer(p *player.Player, fuel int) *player.Player {
	p.Light = &shared.Light{
		Name:  "Wooden Torch",
		Turns: fuel,
		Flags: []shared.ObjectFlag{shared.FlagBurnsOut},
	}
	return p
}
