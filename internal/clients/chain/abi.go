package chain

import "math/big"

const (
	methodCheckIfUserHasNFT       = "checkIfUserHasNFT"
	methodGetAllDefaultCharacters = "getAllDefaultCharacters"
	methodGetBigBoss              = "getBigBoss"
)

// gameABI covers the read-only surface of the game contract
const gameABI = `[
  {
    "inputs": [],
    "name": "checkIfUserHasNFT",
    "outputs": [
      {
        "components": [
          {"internalType": "uint256", "name": "characterIndex", "type": "uint256"},
          {"internalType": "string", "name": "name", "type": "string"},
          {"internalType": "string", "name": "imageURI", "type": "string"},
          {"internalType": "uint256", "name": "hp", "type": "uint256"},
          {"internalType": "uint256", "name": "maxHp", "type": "uint256"},
          {"internalType": "uint256", "name": "attackDamage", "type": "uint256"}
        ],
        "internalType": "struct MyEpicGame.CharacterAttributes",
        "name": "",
        "type": "tuple"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "getAllDefaultCharacters",
    "outputs": [
      {
        "components": [
          {"internalType": "uint256", "name": "characterIndex", "type": "uint256"},
          {"internalType": "string", "name": "name", "type": "string"},
          {"internalType": "string", "name": "imageURI", "type": "string"},
          {"internalType": "uint256", "name": "hp", "type": "uint256"},
          {"internalType": "uint256", "name": "maxHp", "type": "uint256"},
          {"internalType": "uint256", "name": "attackDamage", "type": "uint256"}
        ],
        "internalType": "struct MyEpicGame.CharacterAttributes[]",
        "name": "",
        "type": "tuple[]"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "getBigBoss",
    "outputs": [
      {
        "components": [
          {"internalType": "string", "name": "name", "type": "string"},
          {"internalType": "string", "name": "imageURI", "type": "string"},
          {"internalType": "uint256", "name": "hp", "type": "uint256"},
          {"internalType": "uint256", "name": "maxHp", "type": "uint256"},
          {"internalType": "uint256", "name": "attackDamage", "type": "uint256"}
        ],
        "internalType": "struct MyEpicGame.BigBoss",
        "name": "",
        "type": "tuple"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  }
]`

// characterAttributes mirrors the CharacterAttributes tuple. Field order
// must match the ABI components.
type characterAttributes struct {
	CharacterIndex *big.Int
	Name           string
	ImageURI       string
	Hp             *big.Int
	MaxHp          *big.Int
	AttackDamage   *big.Int
}

// bigBoss mirrors the BigBoss tuple
type bigBoss struct {
	Name         string
	ImageURI     string
	Hp           *big.Int
	MaxHp        *big.Int
	AttackDamage *big.Int
}
