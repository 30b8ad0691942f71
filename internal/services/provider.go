package services

import (
	"time"

	"github.com/KirkDiggler/nft-game-bot/internal/clients/chain"
	"github.com/KirkDiggler/nft-game-bot/internal/repositories/characters"
	characterService "github.com/KirkDiggler/nft-game-bot/internal/services/character"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	ChainClient         chain.Client
	CharacterRepository characters.Repository
	ContractAddress     string
	CacheTTL            time.Duration

	// StrictCache surfaces cache write failures from Refresh
	StrictCache bool
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository(&characters.InMemoryConfig{
			TTL: cfg.CacheTTL,
		})
	}

	charService := characterService.NewService(&characterService.ServiceConfig{
		ChainClient:     cfg.ChainClient,
		Repository:      charRepo,
		ContractAddress: cfg.ContractAddress,
		StrictCache:     cfg.StrictCache,
	})

	return &Provider{
		CharacterService: charService,
	}
}
