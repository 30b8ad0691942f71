package testutils

import (
	"math/big"

	"github.com/KirkDiggler/nft-game-bot/internal/contract"
	"github.com/KirkDiggler/nft-game-bot/internal/entities"
)

// CreateTestCharacterNFT creates an on-chain character record
func CreateTestCharacterNFT(name string, hp, maxHp, attackDamage int64) *entities.CharacterNFT {
	return &entities.CharacterNFT{
		Name:         name,
		ImageURI:     "ipfs://" + name,
		Hp:           big.NewInt(hp),
		MaxHp:        big.NewInt(maxHp),
		AttackDamage: big.NewInt(attackDamage),
	}
}

// CreateTestCharacter creates a display character
func CreateTestCharacter(name string, hp, maxHp, attackDamage int64) *entities.Character {
	return &entities.Character{
		Name:         name,
		ImageURI:     "ipfs://" + name,
		Hp:           hp,
		MaxHp:        maxHp,
		AttackDamage: attackDamage,
	}
}

// CreateTestSnapshot creates a snapshot for owner tagged with the game contract
func CreateTestSnapshot(owner, name string) *entities.CharacterSnapshot {
	return &entities.CharacterSnapshot{
		Owner:     owner,
		Character: CreateTestCharacter(name, 100, 100, 15),
		Meta: entities.Properties{
			entities.MetaContract: entities.StringValue(contract.Address),
			entities.MetaBlock:    entities.NumberValue(1),
		},
	}
}
