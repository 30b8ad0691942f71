package characters

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/nft-game-bot/internal/entities"
	apperr "github.com/KirkDiggler/nft-game-bot/internal/errors"
	"github.com/KirkDiggler/nft-game-bot/internal/uuid"
)

// DefaultTTL is how long a snapshot is served before the chain is read again
const DefaultTTL = 5 * time.Minute

// NewRedis creates a new Redis-backed snapshot repository
func NewRedis(client redis.UniversalClient, ttl time.Duration) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client:        client,
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
		TTL:           ttl,
	})
}

func validateSnapshot(snapshot *entities.CharacterSnapshot) error {
	if snapshot == nil {
		return apperr.InvalidArgument("snapshot cannot be nil")
	}
	if snapshot.Owner == "" {
		return apperr.InvalidArgument("snapshot owner is required")
	}
	if snapshot.Character == nil {
		return apperr.InvalidArgument("snapshot character is required")
	}
	return nil
}

func compact(snapshots []*entities.CharacterSnapshot) []*entities.CharacterSnapshot {
	out := make([]*entities.CharacterSnapshot, 0, len(snapshots))
	for _, s := range snapshots {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
