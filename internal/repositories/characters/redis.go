package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/nft-game-bot/internal/entities"
	apperr "github.com/KirkDiggler/nft-game-bot/internal/errors"
	"github.com/KirkDiggler/nft-game-bot/internal/uuid"
)

const ownersKey = "nft:owners"

// SnapshotData is the serialized form of a snapshot in Redis
type SnapshotData struct {
	ID        string              `json:"id"`
	Owner     string              `json:"owner"`
	Character *entities.Character `json:"character"`
	Meta      entities.Properties `json:"meta,omitempty"`
	FetchedAt time.Time           `json:"fetched_at"`
}

type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
	ttl           time.Duration
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
	TTL           time.Duration // How long a snapshot stays fresh (default: 5 minutes)
}

// NewRedisRepository creates a new Redis-backed snapshot repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = systemTime{}
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
		ttl:           ttl,
	}
}

func (r *redisRepo) key(owner string) string {
	return fmt.Sprintf("nft:character:%s", owner)
}

func (r *redisRepo) Put(ctx context.Context, snapshot *entities.CharacterSnapshot) error {
	if err := validateSnapshot(snapshot); err != nil {
		return err
	}

	if snapshot.ID == "" {
		snapshot.ID = r.uuidGenerator.New()
	}
	if snapshot.FetchedAt.IsZero() {
		snapshot.FetchedAt = r.timeProvider.Now()
	}

	jsonData, err := json.Marshal(toSnapshotData(snapshot))
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(snapshot.Owner), string(jsonData), r.ttl)
	pipe.SAdd(ctx, ownersKey, snapshot.Owner)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, owner string) (*entities.CharacterSnapshot, error) {
	if owner == "" {
		return nil, apperr.InvalidArgument("owner is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(owner)).Bytes()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("no snapshot for owner '%s'", owner).
			WithMeta("owner", owner)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var data SnapshotData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return fromSnapshotData(&data), nil
}

func (r *redisRepo) GetMany(ctx context.Context, owners []string) ([]*entities.CharacterSnapshot, error) {
	found := make([]*entities.CharacterSnapshot, len(owners))

	g, ctx := errgroup.WithContext(ctx)
	for i, owner := range owners {
		g.Go(func() error {
			snapshot, err := r.Get(ctx, owner)
			if apperr.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get snapshot %s: %w", owner, err)
			}
			found[i] = snapshot
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return compact(found), nil
}

func (r *redisRepo) Delete(ctx context.Context, owner string) error {
	if owner == "" {
		return apperr.InvalidArgument("owner is required")
	}

	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, r.key(owner))
	pipe.SRem(ctx, ownersKey, owner)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	if del.Val() == 0 {
		return apperr.NotFoundf("no snapshot for owner '%s'", owner).
			WithMeta("owner", owner)
	}
	return nil
}

func (r *redisRepo) ListOwners(ctx context.Context) ([]string, error) {
	owners, err := r.client.SMembers(ctx, ownersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}
	sort.Strings(owners)
	return owners, nil
}

func toSnapshotData(snapshot *entities.CharacterSnapshot) *SnapshotData {
	return &SnapshotData{
		ID:        snapshot.ID,
		Owner:     snapshot.Owner,
		Character: snapshot.Character,
		Meta:      snapshot.Meta,
		FetchedAt: snapshot.FetchedAt,
	}
}

func fromSnapshotData(data *SnapshotData) *entities.CharacterSnapshot {
	return &entities.CharacterSnapshot{
		ID:        data.ID,
		Owner:     data.Owner,
		Character: data.Character,
		Meta:      data.Meta,
		FetchedAt: data.FetchedAt,
	}
}
