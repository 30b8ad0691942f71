package characters

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/nft-game-bot/internal/entities"
	apperr "github.com/KirkDiggler/nft-game-bot/internal/errors"
	"github.com/KirkDiggler/nft-game-bot/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the snapshot repository
// Useful for testing and development
type InMemoryRepository struct {
	mu            sync.RWMutex
	entries       map[string]memoryEntry
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
	ttl           time.Duration
}

type memoryEntry struct {
	snapshot  entities.CharacterSnapshot
	expiresAt time.Time
}

// InMemoryConfig holds optional collaborators for the in-memory repository
type InMemoryConfig struct {
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
	TTL           time.Duration
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository(cfg *InMemoryConfig) *InMemoryRepository {
	if cfg == nil {
		cfg = &InMemoryConfig{}
	}

	repo := &InMemoryRepository{
		entries:       make(map[string]memoryEntry),
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
		ttl:           cfg.TTL,
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.timeProvider == nil {
		repo.timeProvider = systemTime{}
	}
	if repo.ttl == 0 {
		repo.ttl = DefaultTTL
	}
	return repo
}

func (r *InMemoryRepository) Put(ctx context.Context, snapshot *entities.CharacterSnapshot) error {
	if err := validateSnapshot(snapshot); err != nil {
		return err
	}

	now := r.timeProvider.Now()
	if snapshot.ID == "" {
		snapshot.ID = r.uuidGenerator.New()
	}
	if snapshot.FetchedAt.IsZero() {
		snapshot.FetchedAt = now
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[snapshot.Owner] = memoryEntry{
		snapshot:  copySnapshot(snapshot),
		expiresAt: now.Add(r.ttl),
	}
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, owner string) (*entities.CharacterSnapshot, error) {
	if owner == "" {
		return nil, apperr.InvalidArgument("owner is required")
	}

	r.mu.RLock()
	entry, exists := r.entries[owner]
	r.mu.RUnlock()

	if !exists || !r.timeProvider.Now().Before(entry.expiresAt) {
		return nil, apperr.NotFoundf("no snapshot for owner '%s'", owner).
			WithMeta("owner", owner)
	}

	// Return a copy to avoid external modifications
	out := copySnapshot(&entry.snapshot)
	return &out, nil
}

func (r *InMemoryRepository) GetMany(ctx context.Context, owners []string) ([]*entities.CharacterSnapshot, error) {
	result := make([]*entities.CharacterSnapshot, 0, len(owners))
	for _, owner := range owners {
		snapshot, err := r.Get(ctx, owner)
		if apperr.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, snapshot)
	}
	return result, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, owner string) error {
	if owner == "" {
		return apperr.InvalidArgument("owner is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.entries[owner]
	delete(r.entries, owner)
	if !exists || !r.timeProvider.Now().Before(entry.expiresAt) {
		return apperr.NotFoundf("no snapshot for owner '%s'", owner).
			WithMeta("owner", owner)
	}
	return nil
}

// ListOwners mirrors the Redis index set, which keeps owners whose
// snapshot has expired until they are deleted
func (r *InMemoryRepository) ListOwners(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owners := make([]string, 0, len(r.entries))
	for owner := range r.entries {
		owners = append(owners, owner)
	}
	sort.Strings(owners)
	return owners, nil
}

func copySnapshot(in *entities.CharacterSnapshot) entities.CharacterSnapshot {
	out := *in
	if in.Character != nil {
		charCopy := *in.Character
		out.Character = &charCopy
	}
	out.Meta = in.Meta.Clone()
	return out
}
