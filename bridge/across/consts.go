package across

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var SpokePoolABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      {
        "internalType": "address",
        "name": "depositor",
        "type": "address"
      },
      {
        "internalType": "address",
        "name": "recipient",
        "type": "address"
      },
      {
        "internalType": "address",
        "name": "inputToken",
        "type": "address"
      },
      {
        "internalType": "address",
        "name": "outputToken",
        "type": "address"
      },
      {
        "internalType": "uint256",
        "name": "inputAmount",
        "type": "uint256"
      },
      {
        "internalType": "uint256",
        "name": "outputAmount",
        "type": "uint256"
      },
      {
        "internalType": "uint256",
        "name": "destinationChainId",
        "type": "uint256"
      },
      {
        "internalType": "address",
        "name": "exclusiveRelayer",
        "type": "address"
      },
      {
        "internalType": "uint32",
        "name": "quoteTimestamp",
        "type": "uint32"
      },
      {
        "internalType": "uint32",
        "name": "fillDeadline",
        "type": "uint32"
      },
      {
        "internalType": "uint32",
        "name": "exclusivityDeadline",
        "type": "uint32"
      },
      {
        "internalType": "bytes",
        "name": "message",
        "type": "bytes"
      }
    ],
    "name": "depositV3",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  }
]
`))

// SpokePools are the V3 spoke pool deployments per chain ID.
var SpokePools = map[uint64]common.Address{
	1:     common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5"),
	10:    common.HexToAddress("0x6f26Bf09B1C792e3228e5467807a900A503c0281"),
	137:   common.HexToAddress("0x9295ee1d8C5b022Be115A2AD3c30C72E34e7F096"),
	8453:  common.HexToAddress("0x09aea4b2242abC8bb4BB78D537A67a245A7bEC64"),
	42161: common.HexToAddress("0xe35e9842fceaCA96570B734083f4a58e8F7C5f2A"),
	59144: common.HexToAddress("0x7E63A5f1a8F0B4d0934B2f2327DAED3F6bb2ee75"),
}
