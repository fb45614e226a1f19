package players

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/delve-vitals/internal/domain/player"
	"github.com/KirkDiggler/delve-vitals/internal/errors"
)

const (
	// Key patterns
	playerKeyPrefix = "player:"
	ownerPlayersKey = "owner:%s:players"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// NewRedisRepository creates a new Redis-backed player repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = RealTimeProvider()
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
	}
}

func playerKey(id string) string {
	return playerKeyPrefix + id
}

func (r *redisRepo) marshal(p *player.Player) (string, error) {
	jsonData, err := json.Marshal(toPlayerData(p))
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal player data")
	}
	return string(jsonData), nil
}

// Create stores a new player, failing if the ID is taken
func (r *redisRepo) Create(ctx context.Context, p *player.Player) error {
	if err := validate(p); err != nil {
		return err
	}

	now := r.timeProvider.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	jsonData, err := r.marshal(p)
	if err != nil {
		return err
	}

	created, err := r.client.SetNX(ctx, playerKey(p.ID), jsonData, 0).Result()
	if err != nil {
		return errors.Wrap(err, "failed to create player in Redis")
	}
	if !created {
		return errors.AlreadyExistsf("player with ID %s already exists", p.ID)
	}

	if err := r.client.SAdd(ctx, fmt.Sprintf(ownerPlayersKey, p.OwnerID), p.ID).Err(); err != nil {
		return errors.Wrap(err, "failed to index player by owner")
	}

	return nil
}

// Get retrieves a player by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*player.Player, error) {
	jsonData, err := r.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player not found: %s", id).WithMeta("player_id", id)
		}
		return nil, errors.Wrap(err, "failed to get player from Redis")
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal player data")
	}

	return toPlayer(&data), nil
}

// Update replaces an existing player
func (r *redisRepo) Update(ctx context.Context, p *player.Player) error {
	if err := validate(p); err != nil {
		return err
	}

	p.UpdatedAt = r.timeProvider.Now()

	jsonData, err := r.marshal(p)
	if err != nil {
		return err
	}

	updated, err := r.client.SetXX(ctx, playerKey(p.ID), jsonData, 0).Result()
	if err != nil {
		return errors.Wrap(err, "failed to update player in Redis")
	}
	if !updated {
		return errors.NotFoundf("player not found: %s", p.ID).WithMeta("player_id", p.ID)
	}

	return nil
}

// Delete removes a player and its owner index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	p, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, playerKey(id))
	pipe.SRem(ctx, fmt.Sprintf(ownerPlayersKey, p.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to delete player from Redis")
	}

	return nil
}

// ListByOwner loads every player of an owner concurrently
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*player.Player, error) {
	playerIDs, err := r.client.SMembers(ctx, fmt.Sprintf(ownerPlayersKey, ownerID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get owner players from Redis")
	}

	found := make([]*player.Player, len(playerIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range playerIDs {
		i, id := i, id
		g.Go(func() error {
			p, err := r.Get(ctx, id)
			if err != nil {
				if errors.IsNotFound(err) {
					// index points at a deleted player
					log.Printf("players: dropping stale index entry %s for owner %s", id, ownerID)
					return nil
				}
				return errors.Wrapf(err, "failed to get player %s", id)
			}
			found[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return compact(found), nil
}

func validate(p *player.Player) error {
	if p == nil {
		return errors.InvalidArgument("player cannot be nil")
	}
	if p.ID == "" {
		return errors.InvalidArgument("player ID cannot be empty")
	}
	if p.OwnerID == "" {
		return errors.InvalidArgument("player owner cannot be empty")
	}
	return nil
}

func compact(list []*player.Player) []*player.Player {
	out := list[:0]
	for _, p := range list {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}
