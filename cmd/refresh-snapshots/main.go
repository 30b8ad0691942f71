package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/nft-game-bot/internal/clients/chain"
	"github.com/KirkDiggler/nft-game-bot/internal/config"
	"github.com/KirkDiggler/nft-game-bot/internal/contract"
	"github.com/KirkDiggler/nft-game-bot/internal/repositories/characters"
)

func main() {
	var (
		owner  = flag.String("owner", "", "Refresh a single owner instead of every cached one")
		prune  = flag.Bool("prune", false, "Delete cached owners that no longer hold a character")
		dryRun = flag.Bool("dry-run", false, "Read the chain and show what would change without writing")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadMaintenance()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	contractAddress, err := contract.ParseAddress(cfg.Chain.ContractAddress)
	if err != nil {
		log.Fatalf("Invalid contract address: %v", err)
	}

	opts, err := cfg.Redis.Options()
	if err != nil {
		log.Fatalf("Failed to build Redis options: %v", err)
	}
	client := redis.NewClient(opts)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	chainClient, eth, err := chain.Dial(ctx, cfg.Chain.RPCURL, contractAddress)
	if err != nil {
		log.Fatalf("Failed to connect to chain: %v", err)
	}
	defer eth.Close()

	repo := characters.NewRedis(client, cfg.Cache.TTL)

	owners := []string{*owner}
	if *owner == "" {
		owners, err = repo.ListOwners(ctx)
		if err != nil {
			log.Fatalf("Failed to list owners: %v", err)
		}
	}

	mode := ""
	if *dryRun {
		mode = " (dry run)"
	}
	fmt.Printf("Refreshing %d owners against %s%s\n", len(owners), contractAddress.Hex(), mode)

	sum := newRefresher(&refresherConfig{
		ChainClient:     chainClient,
		Repository:      repo,
		ContractAddress: contractAddress.Hex(),
		Prune:           *prune,
		DryRun:          *dryRun,
		Out:             os.Stdout,
	}).Run(ctx, owners)

	fmt.Printf("\nRefreshed %d, unchanged %d, pruned %d, missing %d, failed %d\n",
		sum.Refreshed, sum.Unchanged, sum.Pruned, sum.Missing, sum.Failed)
	if sum.Failed > 0 {
		cancel()
		eth.Close()
		_ = client.Close()
		os.Exit(1)
	}
}
