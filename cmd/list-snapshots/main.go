package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/nft-game-bot/internal/config"
	"github.com/KirkDiggler/nft-game-bot/internal/entities"
	"github.com/KirkDiggler/nft-game-bot/internal/repositories/characters"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	redisCfg, err := config.LoadRedis()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	opts, err := redisCfg.Options()
	if err != nil {
		log.Fatalf("Failed to build Redis options: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	repo := characters.NewRedis(client, characters.DefaultTTL)

	owners, err := repo.ListOwners(ctx)
	if err != nil {
		log.Fatalf("Failed to list owners: %v", err)
	}

	snapshots, err := repo.GetMany(ctx, owners)
	if err != nil {
		log.Fatalf("Failed to load snapshots: %v", err)
	}

	fmt.Printf("Found %d owners, %d with a live snapshot:\n", len(owners), len(snapshots))
	for _, s := range snapshots {
		fmt.Printf("  %s: %s HP %d/%d ATK %d (block %d, fetched %s ago)\n",
			s.Owner,
			s.Character.Name,
			s.Character.Hp,
			s.Character.MaxHp,
			s.Character.AttackDamage,
			s.Meta.GetNumberOrDefault(entities.MetaBlock, 0),
			time.Since(s.FetchedAt).Round(time.Second),
		)
	}

	if expired := len(owners) - len(snapshots); expired > 0 {
		fmt.Printf("\n%d owners have expired snapshots (run refresh-snapshots to reload them)\n", expired)
	}
}
