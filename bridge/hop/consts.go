package hop

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// L1BridgeABI covers deposits from mainnet into a rollup.
var L1BridgeABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      {
        "internalType": "uint256",
        "name": "chainId",
        "type": "uint256"
      },
      {
        "internalType": "address",
        "name": "recipient",
        "type": "address"
      },
      {
        "internalType": "uint256",
        "name": "amount",
        "type": "uint256"
      },
      {
        "internalType": "uint256",
        "name": "amountOutMin",
        "type": "uint256"
      },
      {
        "internalType": "uint256",
        "name": "deadline",
        "type": "uint256"
      },
      {
        "internalType": "address",
        "name": "relayer",
        "type": "address"
      },
      {
        "internalType": "uint256",
        "name": "relayerFee",
        "type": "uint256"
      }
    ],
    "name": "sendToL2",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  }
]
`))

// AmmWrapperABI covers rollup-to-rollup and rollup-to-mainnet transfers.
var AmmWrapperABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      {
        "internalType": "uint256",
        "name": "chainId",
        "type": "uint256"
      },
      {
        "internalType": "address",
        "name": "recipient",
        "type": "address"
      },
      {
        "internalType": "uint256",
        "name": "amount",
        "type": "uint256"
      },
      {
        "internalType": "uint256",
        "name": "bonderFee",
        "type": "uint256"
      },
      {
        "internalType": "uint256",
        "name": "amountOutMin",
        "type": "uint256"
      },
      {
        "internalType": "uint256",
        "name": "deadline",
        "type": "uint256"
      },
      {
        "internalType": "uint256",
        "name": "destinationAmountOutMin",
        "type": "uint256"
      },
      {
        "internalType": "uint256",
        "name": "destinationDeadline",
        "type": "uint256"
      }
    ],
    "name": "swapAndSend",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  }
]
`))

// BridgeAddresses map chain ID and token symbol to the L1 bridge or L2 AMM
// wrapper deployment.
var BridgeAddresses = map[uint64]map[string]common.Address{
	1: {
		"ETH":   common.HexToAddress("0xb8901acB165ed027E32754E0FFe830802919727f"),
		"USDC":  common.HexToAddress("0x3666f603Cc164936C1b87e207F36BEBa4AC5f18a"),
		"USDT":  common.HexToAddress("0x3E4a3a4796d16c0Cd582C382691998f7c06420B6"),
		"DAI":   common.HexToAddress("0x3d4Cc8A61c7528Fd86C55cfe061a78dCBA48EDd1"),
		"MATIC": common.HexToAddress("0x22B1Cbb8D98a01a3B71D034BB899775A76Eb1cc2"),
	},
	10: {
		"ETH":  common.HexToAddress("0x86cA30bEF97fB651b8d866D45503684b90cb3312"),
		"USDC": common.HexToAddress("0x2ad09850b0CA4c7c1B33f5AcD6cBAbCFB1dEa0d3"),
		"USDT": common.HexToAddress("0x46ae9BaB8CEA96610807a275EBD36f8e916b5C61"),
		"DAI":  common.HexToAddress("0xb3C68a491608952Cb1257FC9909a537a0173b63B"),
	},
	137: {
		"ETH":   common.HexToAddress("0xb98454270065A31D71Bf635F6F7Ee6A518dFb849"),
		"USDC":  common.HexToAddress("0x76b22b8C1079A44F1211c807996254e9F1d0c1ea"),
		"USDT":  common.HexToAddress("0x8741Ba6225A6BF91f9D73531A98A89807857a2B3"),
		"DAI":   common.HexToAddress("0xEcf268Be00308980B5b3fcd0975D47C4C8e1382a"),
		"MATIC": common.HexToAddress("0x553bC791D746767166fA3888432038193cEED5E2"),
	},
	42161: {
		"ETH":  common.HexToAddress("0x33ceb27b39d2Bb7D2e61F7564d3Df29344020417"),
		"USDC": common.HexToAddress("0xe22D2beDb3Eca35E6397e0C6D62857094aA26F52"),
		"USDT": common.HexToAddress("0xCB0a4177E0A60247C0ad18Be87f8eDfF6DD30283"),
		"DAI":  common.HexToAddress("0x7aC115536FE3A185100B2c4DE4cb328bf3A58Ba6"),
	},
}

// ChainSlugs are the chain identifiers the Hop API expects.
var ChainSlugs = map[uint64]string{
	1:     "ethereum",
	10:    "optimism",
	137:   "polygon",
	42161: "arbitrum",
}
