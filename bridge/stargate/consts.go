package stargate

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var RouterABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      {
        "internalType": "uint16",
        "name": "_dstChainId",
        "type": "uint16"
      },
      {
        "internalType": "uint256",
        "name": "_srcPoolId",
        "type": "uint256"
      },
      {
        "internalType": "uint256",
        "name": "_dstPoolId",
        "type": "uint256"
      },
      {
        "internalType": "address payable",
        "name": "_refundAddress",
        "type": "address"
      },
      {
        "internalType": "uint256",
        "name": "_amountLD",
        "type": "uint256"
      },
      {
        "internalType": "uint256",
        "name": "_minAmountLD",
        "type": "uint256"
      },
      {
        "components": [
          {
            "internalType": "uint256",
            "name": "dstGasForCall",
            "type": "uint256"
          },
          {
            "internalType": "uint256",
            "name": "dstNativeAmount",
            "type": "uint256"
          },
          {
            "internalType": "bytes",
            "name": "dstNativeAddr",
            "type": "bytes"
          }
        ],
        "internalType": "struct IStargateRouter.lzTxObj",
        "name": "_lzTxParams",
        "type": "tuple"
      },
      {
        "internalType": "bytes",
        "name": "_to",
        "type": "bytes"
      },
      {
        "internalType": "bytes",
        "name": "_payload",
        "type": "bytes"
      }
    ],
    "name": "swap",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  }
]
`))

// Routers are the Stargate router deployments per chain ID.
var Routers = map[uint64]common.Address{
	1:     common.HexToAddress("0x77b2043768d28E9C9aB44E1aBfC95944bcE57931"),
	10:    common.HexToAddress("0xB0D502E938ed5f4df2E681fE6E419ff29631d62b"),
	56:    common.HexToAddress("0x4a364f8c717cAAD9A442737Eb7b8A55cc6cf18D8"),
	137:   common.HexToAddress("0x45A01E4e04F14f7A4a6702c74187c5F6222033cd"),
	8453:  common.HexToAddress("0x45f1A95A4D3f3836523F5c83673c797f4d4d263B"),
	42161: common.HexToAddress("0x53Bf833A5d6c4ddA888F69c22C88C9f356a41614"),
	59144: common.HexToAddress("0x2F6F07CDcf3588944Bf4C42aC74ff24bF56e7590"),
}

// PoolIDs identify the liquidity pool for each token per chain ID.
var PoolIDs = map[uint64]map[string]int64{
	1: {
		"USDC": 1,
		"USDT": 2,
		"ETH":  13,
		"WETH": 13,
	},
	10: {
		"USDC": 1,
		"ETH":  13,
	},
	56: {
		"USDT": 2,
		"BUSD": 5,
	},
	137: {
		"USDC": 1,
		"USDT": 2,
	},
	8453: {
		"USDC": 1,
		"ETH":  13,
	},
	42161: {
		"USDC": 1,
		"USDT": 2,
		"ETH":  13,
		"WETH": 13,
	},
}

// EndpointIDs map chain IDs to LayerZero V1 endpoint IDs.
var EndpointIDs = map[uint64]uint16{
	1:     101,
	10:    111,
	56:    102,
	137:   109,
	8453:  184,
	42161: 110,
	59144: 183,
}

func ChainIDByEndpoint(endpointID uint64) uint64 {
	for chainID, id := range EndpointIDs {
		if uint64(id) == endpointID {
			return chainID
		}
	}
	return 0
}
