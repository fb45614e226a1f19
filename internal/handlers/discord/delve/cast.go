package delve

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/delve-vitals/internal/services/turn"
)

type CastRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	OwnerID     string
	Mana        int
}

type CastHandler struct {
	service turn.Service
}

type CastHandlerConfig struct {
	TurnService turn.Service
}

func NewCastHandler(cfg *CastHandlerConfig) *CastHandler {
	return &CastHandler{service: cfg.TurnService}
}

func (h *CastHandler) Handle(req *CastRequest) error {
	return reply(req.Session, req.Interaction, func() (*discordgo.MessageEmbed, error) {
		return h.Cast(context.Background(), req)
	})
}

// Cast spends spell points for the owner's active player
func (h *CastHandler) Cast(ctx context.Context, req *CastRequest) (*discordgo.MessageEmbed, error) {
	p, err := activePlayer(ctx, h.service, req.OwnerID)
	if err != nil {
		return nil, err
	}

	report, err := h.service.SpendMana(ctx, p.ID, req.Mana)
	if err != nil {
		return nil, err
	}
	return VitalsEmbed(report), nil
}
