package services

import (
	"github.com/KirkDiggler/delve-vitals/internal/config"
	"github.com/KirkDiggler/delve-vitals/internal/dice"
	"github.com/KirkDiggler/delve-vitals/internal/domain/damage"
	"github.com/KirkDiggler/delve-vitals/internal/events"
	"github.com/KirkDiggler/delve-vitals/internal/repositories/players"
	"github.com/KirkDiggler/delve-vitals/internal/services/turn"
)

// Provider holds all service instances
type Provider struct {
	TurnService turn.Service
	EventBus    *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	PlayerRepository players.Repository
	Game             *config.GameConfig
	Roller           dice.Roller
	Hazards          turn.Hazards
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	repo := cfg.PlayerRepository
	if repo == nil {
		repo = players.NewInMemoryRepository()
	}

	game := config.DefaultGame()
	if cfg.Game != nil {
		game = *cfg.Game
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	bus := events.NewBus()

	turnService := turn.NewService(&turn.ServiceConfig{
		Repository: repo,
		Resolver: damage.NewResolver(damage.Config{
			Roller: roller,
			Tuning: damage.Tuning{InvulnBypass: game.InvulnBypass},
		}),
		Hazards: cfg.Hazards,
		Emitter: bus,
		Game:    &game,
	})

	return &Provider{
		TurnService: turnService,
		EventBus:    bus,
	}
}
