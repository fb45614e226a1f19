package turn

//go:generate mockgen -destination=mock/mock_service.go -package=mockturn -source=service.go

import (
	"context"
	"strings"
	"sync"

	"github.com/KirkDiggler/delve-vitals/internal/config"
	"github.com/KirkDiggler/delve-vitals/internal/domain/damage"
	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/domain/regen"
	"github.com/KirkDiggler/delve-vitals/internal/domain/shared"
	"github.com/KirkDiggler/delve-vitals/internal/domain/vitals"
	"github.com/KirkDiggler/delve-vitals/internal/errors"
	"github.com/KirkDiggler/delve-vitals/internal/events"
	"github.com/KirkDiggler/delve-vitals/internal/repositories/players"
	"github.com/KirkDiggler/delve-vitals/internal/uuid"
)

// Repository is an alias for the player repository interface
type Repository = players.Repository

// Service runs player turns against stored players
type Service interface {
	// Create stores a new player at full health
	Create(ctx context.Context, input *CreateInput) (*player.Player, error)

	// Get retrieves a player by ID
	Get(ctx context.Context, playerID string) (*player.Player, error)

	// Status reports current vitals and rest state
	Status(ctx context.Context, playerID string) (*VitalsReport, error)

	// ApplyDamage resolves a single hit against the player
	ApplyDamage(ctx context.Context, playerID string, dam int, cause string) (*DamageReport, error)

	// SpendMana drains spell points as a cast would
	SpendMana(ctx context.Context, playerID string, amount int) (*VitalsReport, error)

	// Rest runs turns until the rest session ends
	Rest(ctx context.Context, playerID string, code int) (*RestReport, error)

	// RepeatRest rests again with the last requested code
	RepeatRest(ctx context.Context, playerID string) (*RestReport, error)

	// ListByOwner lists every player of an owner
	ListByOwner(ctx context.Context, ownerID string) ([]*player.Player, error)
}

// CreateInput contains data for creating a player
type CreateInput struct {
	OwnerID string
	Name    string
	Level   int
	MaxHP   int // Optional, defaults to the configured starting HP
	MaxMana int // Optional, defaults to the configured starting mana
	Traits  []shared.Trait
	Wizard  bool
}

// Observer is told about every turn a rest spends
type Observer func(playerID string, snap TurnSnapshot)

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository         // Required
	UUIDGenerator uuid.Generator     // Optional, will use default if nil
	Calculator    *regen.Calculator  // Optional, built from Game if nil
	Resolver      *damage.Resolver   // Optional, built from Game if nil
	Hazards       Hazards            // Optional, nothing strikes if nil
	World         shared.World       // Optional, always underground if nil
	Emitter       events.Emitter     // Optional, events are only recorded into reports if nil
	Observer      Observer           // Optional
	Game          *config.GameConfig // Optional, will use defaults if nil
}

type service struct {
	repository    Repository
	uuidGenerator uuid.Generator
	calculator    *regen.Calculator
	resolver      *damage.Resolver
	hazards       Hazards
	world         shared.World
	emitter       events.Emitter
	observer      Observer
	game          config.GameConfig

	mu    sync.Mutex
	locks map[string]*playerLock
}

// playerLock is dropped from the map once no caller holds or waits on it
type playerLock struct {
	mu   sync.Mutex
	refs int
}

// NewService creates a new turn service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	game := config.DefaultGame()
	if cfg.Game != nil {
		game = *cfg.Game
	}

	svc := &service{
		repository:    cfg.Repository,
		uuidGenerator: cfg.UUIDGenerator,
		calculator:    cfg.Calculator,
		resolver:      cfg.Resolver,
		hazards:       cfg.Hazards,
		world:         cfg.World,
		emitter:       cfg.Emitter,
		observer:      cfg.Observer,
		game:          game,
		locks:         make(map[string]*playerLock),
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.calculator == nil {
		svc.calculator = regen.New(regen.Tuning{
			FoodWeak:   game.FoodWeak,
			FoodFaint:  game.FoodFaint,
			FoodStarve: game.FoodStarve,
			FoodMax:    game.FoodMax,
			FoodValue:  game.FoodValue,
		})
	}
	if svc.resolver == nil {
		svc.resolver = damage.NewResolver(damage.Config{
			Tuning: damage.Tuning{InvulnBypass: game.InvulnBypass},
		})
	}
	if svc.emitter == nil {
		svc.emitter = events.Discard
	}

	return svc
}

// lock serialises turns for one player
func (s *service) lock(playerID string) func() {
	s.mu.Lock()
	l, ok := s.locks[playerID]
	if !ok {
		l = &playerLock{}
		s.locks[playerID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, playerID)
		}
		s.mu.Unlock()
	}
}

// load fetches a player and points its events at a fresh recorder
func (s *service) load(ctx context.Context, playerID string) (*player.Player, *events.Recorder, error) {
	if strings.TrimSpace(playerID) == "" {
		return nil, nil, errors.InvalidArgument("player ID is required")
	}

	p, err := s.repository.Get(ctx, playerID)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to load player %s", playerID)
	}

	rec := events.NewRecorder(s.emitter)
	p.Events = rec
	return p, rec, nil
}

func (s *service) loadAlive(ctx context.Context, playerID string) (*player.Player, *events.Recorder, error) {
	p, rec, err := s.load(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	if p.IsDead() {
		return nil, nil, errors.GameOverf("%s died from %s", p.Name, p.Vitals.DiedFrom).
			WithMeta("player_id", playerID)
	}
	return p, rec, nil
}

func (s *service) save(ctx context.Context, p *player.Player) error {
	p.Upkeep.ClearTurn()
	if err := s.repository.Update(ctx, p); err != nil {
		return errors.Wrapf(err, "failed to save player %s", p.ID)
	}
	return nil
}

// Create stores a new player at full health
func (s *service) Create(ctx context.Context, input *CreateInput) (*player.Player, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.OwnerID) == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument("name is required")
	}
	if input.MaxHP < 0 || input.MaxMana < 0 {
		return nil, errors.InvalidArgumentf("max HP and mana cannot be negative (got %d/%d)", input.MaxHP, input.MaxMana)
	}
	if input.MaxHP > vitals.MaxWhole || input.MaxMana > vitals.MaxWhole {
		return nil, errors.InvalidArgumentf("max HP and mana cannot exceed %d (got %d/%d)", vitals.MaxWhole, input.MaxHP, input.MaxMana)
	}

	maxHP := input.MaxHP
	if maxHP == 0 {
		maxHP = s.game.StartHP
	}
	maxMana := input.MaxMana
	if maxMana == 0 {
		maxMana = s.game.StartMana
	}

	p := player.New(player.Config{
		ID:      s.uuidGenerator.New(),
		OwnerID: input.OwnerID,
		Name:    name,
		Level:   input.Level,
		MaxHP:   maxHP,
		MaxMana: maxMana,
		Traits:  input.Traits,
	})
	p.Wizard = input.Wizard
	p.Options.HitpointWarn = s.game.HitpointWarn
	p.Options.CheatLive = s.game.CheatLive
	// start well fed
	p.Timed.Set(shared.TimedFood, s.game.FoodWeak*2)

	if err := s.repository.Create(ctx, p); err != nil {
		return nil, errors.Wrap(err, "failed to create player")
	}

	return p, nil
}

// Get retrieves a player by ID
func (s *service) Get(ctx context.Context, playerID string) (*player.Player, error) {
	p, _, err := s.load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Status reports current vitals and rest state
func (s *service) Status(ctx context.Context, playerID string) (*VitalsReport, error) {
	p, _, err := s.load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return newVitalsReport(p, nil), nil
}

// ApplyDamage resolves a single hit against the player
func (s *service) ApplyDamage(ctx context.Context, playerID string, dam int, cause string) (*DamageReport, error) {
	if dam < 0 {
		return nil, errors.InvalidArgumentf("damage cannot be negative (got %d)", dam)
	}
	cause = strings.TrimSpace(cause)
	if cause == "" {
		return nil, errors.InvalidArgument("cause is required")
	}

	unlock := s.lock(playerID)
	defer unlock()

	p, rec, err := s.loadAlive(ctx, playerID)
	if err != nil {
		return nil, err
	}

	before := snapshot(p)
	out := s.resolver.TakeHit(p, dam, cause)

	if err := s.save(ctx, p); err != nil {
		return nil, err
	}

	return &DamageReport{
		PlayerID: p.ID,
		Cause:    cause,
		Outcome:  out,
		Before:   before,
		After:    snapshot(p),
		Messages: rec.Messages(),
	}, nil
}

// SpendMana drains spell points as a cast would
func (s *service) SpendMana(ctx context.Context, playerID string, amount int) (*VitalsReport, error) {
	if amount <= 0 {
		return nil, errors.InvalidArgumentf("mana to spend must be positive (got %d)", amount)
	}

	unlock := s.lock(playerID)
	defer unlock()

	p, rec, err := s.loadAlive(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if p.Vitals.Mana.Current < amount {
		return nil, errors.InvalidArgumentf("%s has only %d mana", p.Name, p.Vitals.Mana.Current).
			WithMeta("player_id", playerID)
	}

	spent := vitals.FromInt(amount)
	p.AdjustMana(-spent)
	if p.Has(shared.TraitCombatRegen) {
		regen.ConvertManaToHP(p, spent)
	}

	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	return newVitalsReport(p, rec), nil
}

// ListByOwner lists every player of an owner
func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]*player.Player, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	list, err := s.repository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list players for %s", ownerID)
	}
	return list, nil
}
