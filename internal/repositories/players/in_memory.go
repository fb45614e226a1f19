package players

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage.
// Players are kept in their stored form so callers never share state with the store.
type inMemoryRepository struct {
	mu           sync.RWMutex
	players      map[string][]byte
	owners       map[string]map[string]bool
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory player repository
func NewInMemoryRepository() Repository {
	return NewInMemoryRepositoryWithTime(RealTimeProvider())
}

// NewInMemoryRepositoryWithTime creates an in-memory repository with a custom clock
func NewInMemoryRepositoryWithTime(timeProvider TimeProvider) Repository {
	return &inMemoryRepository{
		players:      make(map[string][]byte),
		owners:       make(map[string]map[string]bool),
		timeProvider: timeProvider,
	}
}

func (r *inMemoryRepository) store(p *player.Player) error {
	jsonData, err := json.Marshal(toPlayerData(p))
	if err != nil {
		return errors.Wrap(err, "failed to marshal player data")
	}
	r.players[p.ID] = jsonData
	return nil
}

func (r *inMemoryRepository) load(id string) (*player.Player, error) {
	jsonData, exists := r.players[id]
	if !exists {
		return nil, errors.NotFoundf("player not found: %s", id).WithMeta("player_id", id)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal player data")
	}
	return toPlayer(&data), nil
}

// Create stores a new player
func (r *inMemoryRepository) Create(ctx context.Context, p *player.Player) error {
	if err := validate(p); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[p.ID]; exists {
		return errors.AlreadyExistsf("player with ID %s already exists", p.ID)
	}

	now := r.timeProvider.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := r.store(p); err != nil {
		return err
	}

	if r.owners[p.OwnerID] == nil {
		r.owners[p.OwnerID] = make(map[string]bool)
	}
	r.owners[p.OwnerID][p.ID] = true

	return nil
}

// Get retrieves a player by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.load(id)
}

// Update replaces an existing player
func (r *inMemoryRepository) Update(ctx context.Context, p *player.Player) error {
	if err := validate(p); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[p.ID]; !exists {
		return errors.NotFoundf("player not found: %s", p.ID).WithMeta("player_id", p.ID)
	}

	p.UpdatedAt = r.timeProvider.Now()
	return r.store(p)
}

// Delete removes a player
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.load(id)
	if err != nil {
		return err
	}

	delete(r.players, id)
	delete(r.owners[p.OwnerID], id)

	return nil
}

// ListByOwner retrieves every player owned by ownerID, sorted by ID
func (r *inMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.owners[ownerID]))
	for id := range r.owners[ownerID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*player.Player, 0, len(ids))
	for _, id := range ids {
		p, err := r.load(id)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}
