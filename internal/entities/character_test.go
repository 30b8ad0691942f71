package entities

import (
	"math/big"
	"sync"
	"testing"

	apperr "github.com/KirkDiggler/nft-game-bot/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func knight() *CharacterNFT {
	return &CharacterNFT{
		Name:         "Knight",
		ImageURI:     "ipfs://abc",
		Hp:           big.NewInt(100),
		MaxHp:        big.NewInt(100),
		AttackDamage: big.NewInt(15),
	}
}

func TestTransformCharacterData_Knight(t *testing.T) {
	got, err := TransformCharacterData(knight())
	require.NoError(t, err)

	assert.Equal(t, &Character{
		Name:         "Knight",
		ImageURI:     "ipfs://abc",
		Hp:           100,
		MaxHp:        100,
		AttackDamage: 15,
	}, got)
}

func TestTransformCharacterData_FieldsMatchConversion(t *testing.T) {
	inputs := []*CharacterNFT{
		knight(),
		{Name: "", ImageURI: "", Hp: big.NewInt(0), MaxHp: big.NewInt(0), AttackDamage: big.NewInt(0)},
		{Name: "Wizard 🧙", ImageURI: "https://i.imgur.com/x.png", Hp: big.NewInt(7), MaxHp: big.NewInt(300), AttackDamage: big.NewInt(MaxSafeInteger)},
	}

	for _, in := range inputs {
		got, err := TransformCharacterData(in)
		require.NoError(t, err)

		assert.Equal(t, in.Name, got.Name)
		assert.Equal(t, in.ImageURI, got.ImageURI)
		assert.Equal(t, in.Hp.Int64(), got.Hp)
		assert.Equal(t, in.MaxHp.Int64(), got.MaxHp)
		assert.Equal(t, in.AttackDamage.Int64(), got.AttackDamage)
	}
}

func TestTransformCharacterData_RepeatableAndIndependent(t *testing.T) {
	in := knight()

	first, err := TransformCharacterData(in)
	require.NoError(t, err)
	second, err := TransformCharacterData(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)

	first.Hp = 1
	assert.Equal(t, int64(100), second.Hp)
}

func TestTransformCharacterData_DoesNotMutateInput(t *testing.T) {
	in := knight()
	in.Hp = new(big.Int).Add(big.NewInt(MaxSafeInteger), big.NewInt(1))
	hpBefore := new(big.Int).Set(in.Hp)

	_, _ = TransformCharacterData(in)
	_, _ = TransformCharacterData(knight())

	assert.Equal(t, "Knight", in.Name)
	assert.Equal(t, "ipfs://abc", in.ImageURI)
	assert.Equal(t, 0, hpBefore.Cmp(in.Hp))
	assert.Equal(t, int64(100), in.MaxHp.Int64())
	assert.Equal(t, int64(15), in.AttackDamage.Int64())
}

func TestTransformCharacterData_SafeIntegerBoundary(t *testing.T) {
	atBoundary := knight()
	atBoundary.MaxHp = big.NewInt(MaxSafeInteger)

	got, err := TransformCharacterData(atBoundary)
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740991), got.MaxHp)

	pastBoundary := knight()
	pastBoundary.MaxHp = new(big.Int).Add(big.NewInt(MaxSafeInteger), big.NewInt(1))

	got, err = TransformCharacterData(pastBoundary)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, apperr.IsOutOfRange(err))

	meta := apperr.GetMeta(err)
	assert.Equal(t, "maxHp", meta["field"])
	assert.Equal(t, "9007199254740992", meta["value"])
}

func TestTransformCharacterData_Rejects(t *testing.T) {
	uint256Max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	tests := []struct {
		name   string
		mutate func(*CharacterNFT)
		field  string
		check  func(error) bool
	}{
		{
			name:   "uint256 max attack damage",
			mutate: func(c *CharacterNFT) { c.AttackDamage = uint256Max },
			field:  "attackDamage",
			check:  apperr.IsOutOfRange,
		},
		{
			name:   "negative hp",
			mutate: func(c *CharacterNFT) { c.Hp = big.NewInt(-1) },
			field:  "hp",
			check:  apperr.IsOutOfRange,
		},
		{
			name:   "nil max hp",
			mutate: func(c *CharacterNFT) { c.MaxHp = nil },
			field:  "maxHp",
			check:  apperr.IsInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := knight()
			tt.mutate(in)

			_, err := TransformCharacterData(in)
			require.Error(t, err)
			assert.True(t, tt.check(err))
			assert.Equal(t, tt.field, apperr.GetMeta(err)["field"])
		})
	}
}

func TestTransformCharacterData_NilInput(t *testing.T) {
	_, err := TransformCharacterData(nil)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestTransformCharacterData_Concurrent(t *testing.T) {
	in := knight()
	want, err := TransformCharacterData(in)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*Character, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = TransformCharacterData(in)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestToNumber(t *testing.T) {
	n, err := ToNumber(big.NewInt(42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	_, err = ToNumber(nil)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestCharacter_IsAlive(t *testing.T) {
	assert.True(t, (&Character{Hp: 1}).IsAlive())
	assert.False(t, (&Character{Hp: 0}).IsAlive())
}
