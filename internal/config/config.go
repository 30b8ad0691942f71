package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/nft-game-bot/internal/contract"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	Chain   ChainConfig
	HTTP    HTTPConfig
	Cache   CacheConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// Enabled reports whether the Discord bot should start
func (d DiscordConfig) Enabled() bool {
	return d.Token != ""
}

// RedisConfig holds Redis-specific configuration. URL wins over Addr.
type RedisConfig struct {
	URL      string `env:"REDIS_URL"`
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Enabled reports whether a Redis server was configured
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Addr != ""
}

// DefaultRedisURL is where the operator tools look when nothing is configured
const DefaultRedisURL = "redis://localhost:6379/0"

// Options builds client options. URL wins over Addr.
func (r RedisConfig) Options() (*redis.Options, error) {
	if r.URL != "" {
		opts, err := redis.ParseURL(r.URL)
		if err != nil {
			return nil, fmt.Errorf("REDIS_URL is invalid: %w", err)
		}
		return opts, nil
	}
	if r.Addr == "" {
		return nil, fmt.Errorf("one of REDIS_URL or REDIS_ADDR is required")
	}
	return &redis.Options{
		Addr:     r.Addr,
		Password: r.Password,
		DB:       r.DB,
	}, nil
}

// ChainConfig holds the RPC endpoint and game contract
type ChainConfig struct {
	RPCURL          string `env:"CHAIN_RPC_URL"`
	ContractAddress string `env:"CHAIN_CONTRACT_ADDRESS"`
}

// HTTPConfig holds the JSON API listener
type HTTPConfig struct {
	Addr        string `env:"HTTP_ADDR"`
	IPFSGateway string `env:"IPFS_GATEWAY" envDefault:"https://ipfs.io/ipfs/"`
}

// CacheConfig holds snapshot cache settings
type CacheConfig struct {
	TTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validateChain(&cfg.Chain); err != nil {
		return nil, err
	}
	if cfg.Discord.Enabled() && cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required when DISCORD_TOKEN is set")
	}
	if !cfg.Discord.Enabled() && cfg.HTTP.Addr == "" {
		return nil, fmt.Errorf("at least one of DISCORD_TOKEN or HTTP_ADDR is required")
	}
	if err := validateCache(cfg.Cache); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MaintenanceConfig is the subset the operator tools read
type MaintenanceConfig struct {
	Redis RedisConfig
	Chain ChainConfig
	Cache CacheConfig
}

// LoadMaintenance loads the chain, Redis and cache settings shared with the
// bot. Redis falls back to DefaultRedisURL.
func LoadMaintenance() (*MaintenanceConfig, error) {
	cfg := &MaintenanceConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validateChain(&cfg.Chain); err != nil {
		return nil, err
	}
	if err := validateCache(cfg.Cache); err != nil {
		return nil, err
	}
	if !cfg.Redis.Enabled() {
		cfg.Redis.URL = DefaultRedisURL
	}

	return cfg, nil
}

// LoadRedis loads only the Redis settings, falling back to DefaultRedisURL
func LoadRedis() (*RedisConfig, error) {
	cfg := &RedisConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if !cfg.Enabled() {
		cfg.URL = DefaultRedisURL
	}
	return cfg, nil
}

func validateChain(cfg *ChainConfig) error {
	if cfg.ContractAddress == "" {
		cfg.ContractAddress = contract.Address
	}
	if cfg.RPCURL == "" {
		return fmt.Errorf("CHAIN_RPC_URL is required")
	}
	if err := contract.ValidateAddress(cfg.ContractAddress); err != nil {
		return fmt.Errorf("CHAIN_CONTRACT_ADDRESS is invalid: %w", err)
	}
	return nil
}

func validateCache(cfg CacheConfig) error {
	if cfg.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", cfg.TTL)
	}
	return nil
}
