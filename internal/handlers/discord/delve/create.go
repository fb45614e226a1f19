package delve

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
	"github.com/KirkDiggler/delve-vitals/internal/services/turn"
)

// Trait option values offered at creation
var traitChoices = map[string]shared.Trait{
	"regeneration": shared.TraitRegeneration,
	"meditation":   shared.TraitMeditation,
	"combat_regen": shared.TraitCombatRegen,
	"fury":         shared.TraitFury,
}

type CreateRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	OwnerID     string
	Name        string
	MaxHP       int
	MaxMana     int
	Trait       string
}

type CreateHandler struct {
	service turn.Service
}

type CreateHandlerConfig struct {
	TurnService turn.Service
}

func NewCreateHandler(cfg *CreateHandlerConfig) *CreateHandler {
	return &CreateHandler{service: cfg.TurnService}
}

func (h *CreateHandler) Handle(req *CreateRequest) error {
	return reply(req.Session, req.Interaction, func() (*discordgo.MessageEmbed, error) {
		return h.Create(context.Background(), req)
	})
}

// Create makes a new adventurer for the owner
func (h *CreateHandler) Create(ctx context.Context, req *CreateRequest) (*discordgo.MessageEmbed, error) {
	input := &turn.CreateInput{
		OwnerID: req.OwnerID,
		Name:    req.Name,
		MaxHP:   req.MaxHP,
		MaxMana: req.MaxMana,
	}
	if trait, ok := traitChoices[req.Trait]; ok {
		input.Traits = []shared.Trait{trait}
	}

	p, err := h.service.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🧝 %s enters the dungeon", p.Name),
		Description: "Use `/delve rest` to recover and `/delve vitals` to check on yourself.",
		Color:       colorInfo,
		Fields: poolFields(turn.Snapshot{
			HP:      p.Vitals.HP.Current,
			MaxHP:   p.Vitals.HP.Max,
			Mana:    p.Vitals.Mana.Current,
			MaxMana: p.Vitals.Mana.Max,
		}),
	}
	return embed, nil
}
