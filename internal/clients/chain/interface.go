package chain

//go:generate mockgen -destination=mock/mock_client.go -package=mockchain . Client

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/KirkDiggler/nft-game-bot/internal/entities"
)

// Client reads character data from the game contract. All calls are
// eth_call reads; nothing is signed or sent.
type Client interface {
	// GetUserNFT returns the character minted by owner. Owners without a
	// character get a not found error.
	GetUserNFT(ctx context.Context, owner common.Address) (*entities.CharacterNFT, error)

	// GetAllDefaultCharacters returns the mintable character templates
	GetAllDefaultCharacters(ctx context.Context) ([]*entities.CharacterNFT, error)

	// GetBigBoss returns the shared boss every character fights
	GetBigBoss(ctx context.Context) (*entities.CharacterNFT, error)

	// BlockNumber returns the latest block the node knows about
	BlockNumber(ctx context.Context) (uint64, error)
}
