package delve

import (
	"context"

	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/errors"
	"github.com/KirkDiggler/delve-vitals/internal/services/turn"
)

// activePlayer picks the owner's most recently played living character,
// falling back to the most recent dead one so its fate can be shown
func activePlayer(ctx context.Context, svc turn.Service, ownerID string) (*player.Player, error) {
	list, err := svc.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, errors.NotFound("you have no adventurer yet, use `/delve new` to make one")
	}

	var alive, dead *player.Player
	for _, p := range list {
		if p.IsDead() {
			if dead == nil || p.UpdatedAt.After(dead.UpdatedAt) {
				dead = p
			}
			continue
		}
		if alive == nil || p.UpdatedAt.After(alive.UpdatedAt) {
			alive = p
		}
	}
	if alive != nil {
		return alive, nil
	}
	return dead, nil
}
