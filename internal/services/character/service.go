package character

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/nft-game-bot/internal/clients/chain"
	"github.com/KirkDiggler/nft-game-bot/internal/contract"
	"github.com/KirkDiggler/nft-game-bot/internal/entities"
	apperr "github.com/KirkDiggler/nft-game-bot/internal/errors"
	"github.com/KirkDiggler/nft-game-bot/internal/repositories/characters"
	"github.com/KirkDiggler/nft-game-bot/internal/uuid"
)

// defaultBatchConcurrency bounds parallel lookups in GetCharacters
const defaultBatchConcurrency = 4

// Service turns contract reads into display characters
type Service interface {
	// GetCharacter returns the owner's character, served from cache when fresh
	GetCharacter(ctx context.Context, owner string) (*entities.CharacterSnapshot, error)

	// Refresh reads the owner's character from chain, bypassing the cache
	Refresh(ctx context.Context, owner string) (*entities.CharacterSnapshot, error)

	// GetCharacters looks up several owners concurrently. Owners without a
	// character are left out of the result.
	GetCharacters(ctx context.Context, owners []string) ([]*entities.CharacterSnapshot, error)

	// ListDefaultCharacters returns the mintable templates. One bad record
	// fails the whole call.
	ListDefaultCharacters(ctx context.Context) ([]*entities.Character, error)

	// GetBoss returns the shared boss
	GetBoss(ctx context.Context) (*entities.Character, error)

	// ContractAddress is the game contract the service reads from
	ContractAddress() string
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	ChainClient      chain.Client          // Required
	Repository       characters.Repository // Required
	ContractAddress  string                // Defaults to contract.Address
	BatchConcurrency int
	UUIDGenerator    uuid.Generator
	TimeProvider     characters.TimeProvider

	// StrictCache makes Refresh fail when the snapshot cannot be written
	// back. Readers leave it off so a cache outage never hides the chain.
	StrictCache bool
}

type service struct {
	chainClient      chain.Client
	repository       characters.Repository
	contractAddress  string
	batchConcurrency int
	uuidGenerator    uuid.Generator
	timeProvider     characters.TimeProvider
	strictCache      bool
}

// NewService creates a new NFT character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.ChainClient == nil {
		panic("chain client is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		chainClient:      cfg.ChainClient,
		repository:       cfg.Repository,
		contractAddress:  cfg.ContractAddress,
		batchConcurrency: cfg.BatchConcurrency,
		uuidGenerator:    cfg.UUIDGenerator,
		timeProvider:     cfg.TimeProvider,
		strictCache:      cfg.StrictCache,
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.timeProvider == nil {
		svc.timeProvider = systemClock{}
	}
	if svc.contractAddress == "" {
		svc.contractAddress = contract.Address
	}
	if svc.batchConcurrency <= 0 {
		svc.batchConcurrency = defaultBatchConcurrency
	}
	return svc
}

func (s *service) ContractAddress() string {
	return s.contractAddress
}

func (s *service) GetCharacter(ctx context.Context, owner string) (*entities.CharacterSnapshot, error) {
	addr, err := contract.ParseAddress(owner)
	if err != nil {
		return nil, err
	}
	key := addr.Hex()

	cached, err := s.repository.Get(ctx, key)
	switch {
	case err == nil:
		if cached.Meta == nil {
			cached.Meta = entities.Properties{}
		}
		cached.Meta.Set(entities.MetaCached, entities.BoolValue(true))
		return cached, nil
	case !apperr.IsNotFound(err):
		// cache trouble should not hide the chain
		log.Printf("Failed to read cached character for %s: %v", key, err)
	}

	return s.Refresh(ctx, key)
}

func (s *service) Refresh(ctx context.Context, owner string) (*entities.CharacterSnapshot, error) {
	addr, err := contract.ParseAddress(owner)
	if err != nil {
		return nil, err
	}

	nft, err := s.chainClient.GetUserNFT(ctx, addr)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to read character for '%s'", addr.Hex()).
			WithMeta("owner", addr.Hex())
	}

	char, err := entities.TransformCharacterData(nft)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to transform character for '%s'", addr.Hex()).
			WithMeta("owner", addr.Hex())
	}

	snapshot := &entities.CharacterSnapshot{
		ID:        s.uuidGenerator.New(),
		Owner:     addr.Hex(),
		Character: char,
		Meta:      s.readMeta(ctx),
		FetchedAt: s.timeProvider.Now(),
	}

	if err := s.repository.Put(ctx, snapshot); err != nil {
		if s.strictCache {
			return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to cache character").
				WithMeta("owner", snapshot.Owner)
		}
		log.Printf("Failed to cache character for %s: %v", snapshot.Owner, err)
	}

	return snapshot, nil
}

func (s *service) GetCharacters(ctx context.Context, owners []string) ([]*entities.CharacterSnapshot, error) {
	for _, owner := range owners {
		if err := contract.ValidateAddress(owner); err != nil {
			return nil, err
		}
	}

	results := make([]*entities.CharacterSnapshot, len(owners))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	for i, owner := range owners {
		g.Go(func() error {
			snapshot, err := s.GetCharacter(ctx, owner)
			if apperr.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			results[i] = snapshot
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	found := make([]*entities.CharacterSnapshot, 0, len(results))
	for _, snapshot := range results {
		if snapshot != nil {
			found = append(found, snapshot)
		}
	}
	return found, nil
}

func (s *service) ListDefaultCharacters(ctx context.Context) ([]*entities.Character, error) {
	nfts, err := s.chainClient.GetAllDefaultCharacters(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to read default characters")
	}

	out := make([]*entities.Character, 0, len(nfts))
	for i, nft := range nfts {
		char, err := entities.TransformCharacterData(nft)
		if err != nil {
			return nil, apperr.Wrapf(err, "failed to transform default character %d", i).
				WithMeta("index", i)
		}
		out = append(out, char)
	}
	return out, nil
}

func (s *service) GetBoss(ctx context.Context) (*entities.Character, error) {
	nft, err := s.chainClient.GetBigBoss(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to read boss")
	}

	boss, err := entities.TransformCharacterData(nft)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to transform boss")
	}
	return boss, nil
}

// readMeta records where a snapshot came from. The block number is best
// effort and omitted when the node does not answer.
func (s *service) readMeta(ctx context.Context) entities.Properties {
	meta := entities.Properties{
		entities.MetaContract: entities.StringValue(s.contractAddress),
		entities.MetaCached:   entities.BoolValue(false),
	}

	block, err := s.chainClient.BlockNumber(ctx)
	if err != nil {
		log.Printf("Failed to read block number: %v", err)
		return meta
	}
	if block <= uint64(entities.MaxSafeInteger) {
		meta.Set(entities.MetaBlock, entities.NumberValue(int64(block)))
	}
	return meta
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }
