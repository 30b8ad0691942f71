package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/nft-game-bot/internal/entities"
)

// Repository caches display snapshots keyed by checksummed owner address
type Repository interface {
	// Put stores a snapshot, replacing any previous one for the owner
	Put(ctx context.Context, snapshot *entities.CharacterSnapshot) error

	// Get retrieves the snapshot for an owner
	Get(ctx context.Context, owner string) (*entities.CharacterSnapshot, error)

	// GetMany retrieves snapshots for several owners. Owners without a
	// cached snapshot are skipped.
	GetMany(ctx context.Context, owners []string) ([]*entities.CharacterSnapshot, error)

	// Delete removes the snapshot for an owner
	Delete(ctx context.Context, owner string) error

	// ListOwners returns every owner with a snapshot on record
	ListOwners(ctx context.Context) ([]string, error)
}

// TimeProvider supplies the clock used for FetchedAt and expiry
type TimeProvider interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now().UTC() }
