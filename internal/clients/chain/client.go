package chain

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	internal "github.com/KirkDiggler/nft-game-bot/internal"
	"github.com/KirkDiggler/nft-game-bot/internal/contract"
	"github.com/KirkDiggler/nft-game-bot/internal/entities"
	apperr "github.com/KirkDiggler/nft-game-bot/internal/errors"
)

// Backend is the node surface the client needs. *ethclient.Client
// satisfies it.
type Backend interface {
	bind.ContractCaller
	BlockNumber(ctx context.Context) (uint64, error)
}

type Config struct {
	Backend Backend

	// Address of the game contract; defaults to contract.Address
	Address common.Address
}

type client struct {
	backend  Backend
	address  common.Address
	contract *bind.BoundContract
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.Backend == nil {
		return nil, internal.NewMissingParamError("cfg.Backend")
	}

	address := cfg.Address
	if address == (common.Address{}) {
		address = contract.EthAddress()
	}

	parsed, err := abi.JSON(strings.NewReader(gameABI))
	if err != nil {
		return nil, apperr.Wrap(err, "failed to parse game ABI")
	}

	return &client{
		backend:  cfg.Backend,
		address:  address,
		contract: bind.NewBoundContract(address, parsed, cfg.Backend, nil, nil),
	}, nil
}

// Dial connects to an RPC endpoint and returns a client for the game contract
func Dial(ctx context.Context, rpcURL string, address common.Address) (Client, *ethclient.Client, error) {
	if rpcURL == "" {
		return nil, nil, internal.NewMissingParamError("rpcURL")
	}

	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to dial chain RPC")
	}

	c, err := New(&Config{Backend: eth, Address: address})
	if err != nil {
		eth.Close()
		return nil, nil, err
	}
	return c, eth, nil
}

func (c *client) call(ctx context.Context, from common.Address, method string) ([]interface{}, error) {
	var out []interface{}
	opts := &bind.CallOpts{Context: ctx, From: from}
	if err := c.contract.Call(opts, &out, method); err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "contract call "+method+" failed").
			WithMeta("contract", c.address.Hex()).
			WithMeta("method", method)
	}
	if len(out) == 0 {
		return nil, apperr.Internalf("contract call %s returned no values", method)
	}
	return out, nil
}

func (c *client) GetUserNFT(ctx context.Context, owner common.Address) (*entities.CharacterNFT, error) {
	out, err := c.call(ctx, owner, methodCheckIfUserHasNFT)
	if err != nil {
		return nil, err
	}

	attrs, err := convert[characterAttributes](out[0])
	if err != nil {
		return nil, err
	}

	// The contract answers with a zero-value struct for wallets that never minted
	if attrs.Name == "" {
		return nil, apperr.NotFoundf("no character NFT for owner %s", owner.Hex()).
			WithMeta("owner", owner.Hex())
	}

	return attributesToCharacterNFT(attrs), nil
}

func (c *client) GetAllDefaultCharacters(ctx context.Context) ([]*entities.CharacterNFT, error) {
	out, err := c.call(ctx, common.Address{}, methodGetAllDefaultCharacters)
	if err != nil {
		return nil, err
	}

	list, err := convert[[]characterAttributes](out[0])
	if err != nil {
		return nil, err
	}

	characters := make([]*entities.CharacterNFT, 0, len(*list))
	for i := range *list {
		characters = append(characters, attributesToCharacterNFT(&(*list)[i]))
	}
	return characters, nil
}

func (c *client) GetBigBoss(ctx context.Context) (*entities.CharacterNFT, error) {
	out, err := c.call(ctx, common.Address{}, methodGetBigBoss)
	if err != nil {
		return nil, err
	}

	boss, err := convert[bigBoss](out[0])
	if err != nil {
		return nil, err
	}
	return bigBossToCharacterNFT(boss), nil
}

func (c *client) BlockNumber(ctx context.Context) (uint64, error) {
	n, err := c.backend.BlockNumber(ctx)
	if err != nil {
		return 0, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to read block number")
	}
	return n, nil
}

// convert maps an ABI-decoded anonymous struct onto T. abi.ConvertType
// panics on shape mismatch, which we turn into an internal error.
func convert[T any](in interface{}) (out *T, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = apperr.Internalf("unexpected ABI output shape %T: %v", in, r)
		}
	}()
	return abi.ConvertType(in, new(T)).(*T), nil
}
