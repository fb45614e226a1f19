package players

//go:generate mockgen -destination=mock/mock_repository.go -package=mockplayers -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
)

// Repository defines the interface for player storage
type Repository interface {
	// Create stores a new player
	Create(ctx context.Context, p *player.Player) error

	// Get retrieves a player by ID
	Get(ctx context.Context, id string) (*player.Player, error)

	// Update replaces an existing player
	Update(ctx context.Context, p *player.Player) error

	// Delete removes a player
	Delete(ctx context.Context, id string) error

	// ListByOwner retrieves every player owned by a Discord user
	ListByOwner(ctx context.Context, ownerID string) ([]*player.Player, error)
}
