package delve

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/delve-vitals/internal/services/turn"
)

type VitalsRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	OwnerID     string
}

type VitalsHandler struct {
	service turn.Service
}

type VitalsHandlerConfig struct {
	TurnService turn.Service
}

func NewVitalsHandler(cfg *VitalsHandlerConfig) *VitalsHandler {
	return &VitalsHandler{service: cfg.TurnService}
}

func (h *VitalsHandler) Handle(req *VitalsRequest) error {
	return reply(req.Session, req.Interaction, func() (*discordgo.MessageEmbed, error) {
		return h.Vitals(context.Background(), req.OwnerID)
	})
}

// Vitals renders the owner's active player
func (h *VitalsHandler) Vitals(ctx context.Context, ownerID string) (*discordgo.MessageEmbed, error) {
	p, err := activePlayer(ctx, h.service, ownerID)
	if err != nil {
		return nil, err
	}

	report, err := h.service.Status(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return VitalsEmbed(report), nil
}
