package delve

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/delve-vitals/internal/services/turn"
)

type RestRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	OwnerID     string
	Mode        string
	Turns       int
	HasTurns    bool
}

type RestHandler struct {
	service turn.Service
}

type RestHandlerConfig struct {
	TurnService turn.Service
}

func NewRestHandler(cfg *RestHandlerConfig) *RestHandler {
	return &RestHandler{service: cfg.TurnService}
}

func (h *RestHandler) Handle(req *RestRequest) error {
	return reply(req.Session, req.Interaction, func() (*discordgo.MessageEmbed, error) {
		return h.Rest(context.Background(), req)
	})
}

// Rest runs the rest for the owner's active player and renders the result
func (h *RestHandler) Rest(ctx context.Context, req *RestRequest) (*discordgo.MessageEmbed, error) {
	choice, err := ParseRestChoice(req.Mode, req.Turns, req.HasTurns)
	if err != nil {
		return nil, err
	}

	p, err := activePlayer(ctx, h.service, req.OwnerID)
	if err != nil {
		return nil, err
	}

	var report *turn.RestReport
	if choice.Repeat {
		report, err = h.service.RepeatRest(ctx, p.ID)
	} else {
		report, err = h.service.Rest(ctx, p.ID, choice.Code)
	}
	if err != nil {
		return nil, err
	}

	return RestEmbed(p.Name, report), nil
}
