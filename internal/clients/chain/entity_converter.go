package chain

import (
	"math/big"

	"github.com/KirkDiggler/nft-game-bot/internal/entities"
)

func attributesToCharacterNFT(input *characterAttributes) *entities.CharacterNFT {
	if input == nil {
		return nil
	}

	return &entities.CharacterNFT{
		Name:         input.Name,
		ImageURI:     input.ImageURI,
		Hp:           copyBig(input.Hp),
		MaxHp:        copyBig(input.MaxHp),
		AttackDamage: copyBig(input.AttackDamage),
	}
}

func bigBossToCharacterNFT(input *bigBoss) *entities.CharacterNFT {
	if input == nil {
		return nil
	}

	return &entities.CharacterNFT{
		Name:         input.Name,
		ImageURI:     input.ImageURI,
		Hp:           copyBig(input.Hp),
		MaxHp:        copyBig(input.MaxHp),
		AttackDamage: copyBig(input.AttackDamage),
	}
}

func copyBig(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}
