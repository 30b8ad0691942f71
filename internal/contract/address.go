// Package contract identifies the deployed game contract on chain.
package contract

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	apperr "github.com/KirkDiggler/nft-game-bot/internal/errors"
)

// Address is the EIP-55 checksummed address of the deployed game contract.
const Address = "0x1D33fc00b70AE9ab5B338CBeEA9f660122Cfb69b"

// EthAddress returns Address as a go-ethereum address
func EthAddress() common.Address {
	return common.HexToAddress(Address)
}

// ValidateAddress checks that s is 0x followed by 40 hex characters. Mixed
// case input must carry a valid EIP-55 checksum; all-lower and all-upper
// hex are accepted unchecked.
func ValidateAddress(s string) error {
	if !strings.HasPrefix(s, "0x") || len(s) != 2+2*common.AddressLength {
		return apperr.InvalidArgumentf("address %q must be 0x followed by 40 hex characters", s).
			WithMeta("address", s)
	}
	if !common.IsHexAddress(s) {
		return apperr.InvalidArgumentf("address %q is not hexadecimal", s).
			WithMeta("address", s)
	}

	body := s[2:]
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return nil
	}
	if common.HexToAddress(s).Hex() != s {
		return apperr.InvalidArgumentf("address %q has an invalid checksum", s).
			WithMeta("address", s)
	}
	return nil
}

// ParseAddress validates s and returns the parsed address
func ParseAddress(s string) (common.Address, error) {
	if err := ValidateAddress(s); err != nil {
		return common.Address{}, err
	}
	return common.HexToAddress(s), nil
}
