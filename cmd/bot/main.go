package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/nft-game-bot/internal/api"
	"github.com/KirkDiggler/nft-game-bot/internal/clients/chain"
	"github.com/KirkDiggler/nft-game-bot/internal/config"
	"github.com/KirkDiggler/nft-game-bot/internal/contract"
	"github.com/KirkDiggler/nft-game-bot/internal/handlers/discord"
	"github.com/KirkDiggler/nft-game-bot/internal/repositories/characters"
	"github.com/KirkDiggler/nft-game-bot/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	contractAddress, err := contract.ParseAddress(cfg.Chain.ContractAddress)
	if err != nil {
		log.Fatalf("Invalid contract address: %v", err)
	}

	dialCtx, cancelDial := context.WithTimeout(context.Background(), 10*time.Second)
	chainClient, eth, err := chain.Dial(dialCtx, cfg.Chain.RPCURL, contractAddress)
	cancelDial()
	if err != nil {
		log.Fatalf("Failed to connect to chain: %v", err)
	}
	defer eth.Close()
	log.Printf("Reading game contract %s", contractAddress.Hex())

	providerConfig := &services.ProviderConfig{
		ChainClient:     chainClient,
		ContractAddress: contractAddress.Hex(),
		CacheTTL:        cfg.Cache.TTL,
	}

	// Keep Redis client for cleanup
	redisClient := connectRedis(cfg.Redis)
	if redisClient != nil {
		providerConfig.CharacterRepository = characters.NewRedis(redisClient, cfg.Cache.TTL)
		log.Println("Using Redis for snapshot cache")
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Failed to close Redis connection: %v", err)
			}
		}()
	}

	serviceProvider := services.NewProvider(providerConfig)

	if cfg.Discord.Enabled() {
		dg, err := startDiscord(cfg.Discord, cfg.HTTP.IPFSGateway, serviceProvider)
		if err != nil {
			log.Printf("Failed to start Discord bot: %v", err)
			return
		}
		defer func() {
			if err := dg.Close(); err != nil {
				log.Printf("Failed to close Discord connection: %v", err)
			}
		}()
	}

	var server *http.Server
	if cfg.HTTP.Addr != "" {
		server = &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           api.NewRouter(&api.RouterConfig{ServiceProvider: serviceProvider}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Printf("HTTP API listening on %s", cfg.HTTP.Addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("HTTP server stopped: %v", err)
			}
		}()
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	if server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Failed to shut down HTTP server: %v", err)
		}
	}
}

// connectRedis returns nil when Redis is not configured or unreachable, in
// which case the provider falls back to the in-memory cache
func connectRedis(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled() {
		log.Println("No Redis configured, using in-memory snapshot cache")
		return nil
	}

	opts, err := cfg.Options()
	if err != nil {
		log.Printf("Failed to build Redis options: %v", err)
		log.Println("Falling back to in-memory snapshot cache")
		return nil
	}

	log.Printf("Connecting to Redis at: %s", opts.Addr)
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory snapshot cache")
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}

func startDiscord(cfg config.DiscordConfig, gateway string, provider *services.Provider) (*discordgo.Session, error) {
	log.Printf("Application ID: %s", cfg.AppID)
	if cfg.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.GuildID)
	}

	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: provider,
		IPFSGateway:     gateway,
	})
	dg.AddHandler(discord.RecoverMiddleware("interaction", handler.HandleInteraction))

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.GuildID); err != nil {
		_ = dg.Close()
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	if cfg.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}
	return dg, nil
}
