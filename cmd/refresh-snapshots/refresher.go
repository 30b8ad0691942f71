package main

import (
	"context"
	"fmt"
	"io"

	"github.com/KirkDiggler/nft-game-bot/internal/clients/chain"
	"github.com/KirkDiggler/nft-game-bot/internal/contract"
	"github.com/KirkDiggler/nft-game-bot/internal/entities"
	apperr "github.com/KirkDiggler/nft-game-bot/internal/errors"
	"github.com/KirkDiggler/nft-game-bot/internal/repositories/characters"
	"github.com/KirkDiggler/nft-game-bot/internal/services"
	characterService "github.com/KirkDiggler/nft-game-bot/internal/services/character"
)

type refresherConfig struct {
	ChainClient     chain.Client          // Required
	Repository      characters.Repository // Required
	ContractAddress string
	Prune           bool
	DryRun          bool
	Out             io.Writer
}

type summary struct {
	Refreshed int
	Unchanged int
	Pruned    int
	Missing   int
	Failed    int
}

type refresher struct {
	characters characterService.Service
	repo       characters.Repository
	prune      bool
	dryRun     bool
	out        io.Writer
}

func newRefresher(cfg *refresherConfig) *refresher {
	providerCfg := &services.ProviderConfig{
		ChainClient:     cfg.ChainClient,
		ContractAddress: cfg.ContractAddress,
	}
	if !cfg.DryRun {
		// a refresh that cannot write back has not done its job
		providerCfg.CharacterRepository = cfg.Repository
		providerCfg.StrictCache = true
	}

	return &refresher{
		characters: services.NewProvider(providerCfg).CharacterService,
		repo:       cfg.Repository,
		prune:      cfg.Prune,
		dryRun:     cfg.DryRun,
		out:        cfg.Out,
	}
}

func (r *refresher) Run(ctx context.Context, owners []string) summary {
	var sum summary
	for _, owner := range owners {
		r.refreshOne(ctx, owner, &sum)
	}
	return sum
}

func (r *refresher) refreshOne(ctx context.Context, owner string, sum *summary) {
	snapshot, err := r.characters.Refresh(ctx, owner)
	switch {
	case err == nil:
		r.reportFresh(ctx, snapshot, sum)
	case apperr.IsNotFound(err) && r.prune:
		if r.dryRun {
			sum.Pruned++
			fmt.Fprintf(r.out, "  - %s: no character, would prune\n", owner)
			return
		}
		if delErr := r.repo.Delete(ctx, cacheKey(owner)); delErr != nil && !apperr.IsNotFound(delErr) {
			sum.Failed++
			fmt.Fprintf(r.out, "  ✗ %s: prune failed: %v\n", owner, delErr)
			return
		}
		sum.Pruned++
		fmt.Fprintf(r.out, "  - %s: no character, pruned\n", owner)
	case apperr.IsNotFound(err):
		sum.Missing++
		fmt.Fprintf(r.out, "  ? %s: no character (use -prune to drop it)\n", owner)
	default:
		sum.Failed++
		fmt.Fprintf(r.out, "  ✗ %s: %v\n", owner, err)
	}
}

func (r *refresher) reportFresh(ctx context.Context, snapshot *entities.CharacterSnapshot, sum *summary) {
	fresh := snapshot.Character
	if !r.dryRun {
		sum.Refreshed++
		fmt.Fprintf(r.out, "  ✓ %s: %s\n", snapshot.Owner, describe(fresh))
		return
	}

	cached, err := r.repo.Get(ctx, snapshot.Owner)
	switch {
	case err == nil && cached.Character != nil && *cached.Character == *fresh:
		sum.Unchanged++
		fmt.Fprintf(r.out, "  = %s: %s\n", snapshot.Owner, describe(fresh))
	case err == nil && cached.Character != nil:
		sum.Refreshed++
		fmt.Fprintf(r.out, "  ~ %s: would update %s -> %s\n", snapshot.Owner, describe(cached.Character), describe(fresh))
	default:
		sum.Refreshed++
		fmt.Fprintf(r.out, "  + %s: would cache %s\n", snapshot.Owner, describe(fresh))
	}
}

// cacheKey matches the checksummed form the cache is keyed by
func cacheKey(owner string) string {
	if addr, err := contract.ParseAddress(owner); err == nil {
		return addr.Hex()
	}
	return owner
}

func describe(c *entities.Character) string {
	return fmt.Sprintf("%s HP %d/%d ATK %d", c.Name, c.Hp, c.MaxHp, c.AttackDamage)
}
