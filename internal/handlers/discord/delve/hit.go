package delve

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/delve-vitals/internal/services/turn"
)

const defaultCause = "a mysterious force"

type HitRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	OwnerID     string
	Damage      int
	Cause       string
}

type HitHandler struct {
	service turn.Service
}

type HitHandlerConfig struct {
	TurnService turn.Service
}

func NewHitHandler(cfg *HitHandlerConfig) *HitHandler {
	return &HitHandler{service: cfg.TurnService}
}

func (h *HitHandler) Handle(req *HitRequest) error {
	return reply(req.Session, req.Interaction, func() (*discordgo.MessageEmbed, error) {
		return h.Hit(context.Background(), req)
	})
}

// Hit applies damage to the owner's active player
func (h *HitHandler) Hit(ctx context.Context, req *HitRequest) (*discordgo.MessageEmbed, error) {
	p, err := activePlayer(ctx, h.service, req.OwnerID)
	if err != nil {
		return nil, err
	}

	cause := strings.TrimSpace(req.Cause)
	if cause == "" {
		cause = defaultCause
	}

	report, err := h.service.ApplyDamage(ctx, p.ID, req.Damage, cause)
	if err != nil {
		return nil, err
	}
	return DamageEmbed(p.Name, report), nil
}
