package entities

import (
	"math/big"

	apperr "github.com/KirkDiggler/nft-game-bot/internal/errors"
)

// MaxSafeInteger is the largest integer a float64-backed display number
// holds exactly (2^53 - 1).
const MaxSafeInteger int64 = 1<<53 - 1

var maxSafeBig = big.NewInt(MaxSafeInteger)

// CharacterNFT is a character's attributes as returned by a contract read.
// Numeric fields are uint256 on chain.
type CharacterNFT struct {
	Name         string
	ImageURI     string
	Hp           *big.Int
	MaxHp        *big.Int
	AttackDamage *big.Int
}

// Character is the display form of a CharacterNFT
type Character struct {
	Name         string `json:"name"`
	ImageURI     string `json:"imageURI"`
	Hp           int64  `json:"hp"`
	MaxHp        int64  `json:"maxHp"`
	AttackDamage int64  `json:"attackDamage"`
}

// IsAlive reports whether the character has any HP left
func (c *Character) IsAlive() bool {
	return c.Hp > 0
}

// ToNumber narrows v to a display number. Values outside
// [0, MaxSafeInteger] are rejected rather than rounded.
func ToNumber(v *big.Int) (int64, error) {
	if v == nil {
		return 0, apperr.InvalidArgument("value is nil")
	}
	if v.Sign() < 0 {
		return 0, apperr.OutOfRangef("value %s is negative", v.String()).
			WithMeta("value", v.String())
	}
	if v.Cmp(maxSafeBig) > 0 {
		return 0, apperr.OutOfRangef("value %s exceeds max safe integer %d", v.String(), MaxSafeInteger).
			WithMeta("value", v.String())
	}
	return v.Int64(), nil
}

// TransformCharacterData projects an on-chain character into its display
// form. The input is not modified and every call returns a new Character.
func TransformCharacterData(nft *CharacterNFT) (*Character, error) {
	if nft == nil {
		return nil, apperr.InvalidArgument("character data cannot be nil")
	}

	hp, err := toField("hp", nft.Hp)
	if err != nil {
		return nil, err
	}
	maxHp, err := toField("maxHp", nft.MaxHp)
	if err != nil {
		return nil, err
	}
	attackDamage, err := toField("attackDamage", nft.AttackDamage)
	if err != nil {
		return nil, err
	}

	return &Character{
		Name:         nft.Name,
		ImageURI:     nft.ImageURI,
		Hp:           hp,
		MaxHp:        maxHp,
		AttackDamage: attackDamage,
	}, nil
}

func toField(field string, v *big.Int) (int64, error) {
	n, err := ToNumber(v)
	if err != nil {
		return 0, apperr.Wrapf(err, "convert %s", field).WithMeta("field", field)
	}
	return n, nil
}
