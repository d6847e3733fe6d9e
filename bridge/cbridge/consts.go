package cbridge

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var BridgeABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      {
        "internalType": "address",
        "name": "_receiver",
        "type": "address"
      },
      {
        "internalType": "address",
        "name": "_token",
        "type": "address"
      },
      {
        "internalType": "uint256",
        "name": "_amount",
        "type": "uint256"
      },
      {
        "internalType": "uint64",
        "name": "_dstChainId",
        "type": "uint64"
      },
      {
        "internalType": "uint64",
        "name": "_nonce",
        "type": "uint64"
      },
      {
        "internalType": "uint32",
        "name": "_maxSlippage",
        "type": "uint32"
      }
    ],
    "name": "send",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      {
        "internalType": "address",
        "name": "_receiver",
        "type": "address"
      },
      {
        "internalType": "uint256",
        "name": "_amount",
        "type": "uint256"
      },
      {
        "internalType": "uint64",
        "name": "_dstChainId",
        "type": "uint64"
      },
      {
        "internalType": "uint64",
        "name": "_nonce",
        "type": "uint64"
      },
      {
        "internalType": "uint32",
        "name": "_maxSlippage",
        "type": "uint32"
      }
    ],
    "name": "sendNative",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  }
]
`))

// Contracts are the liquidity bridge deployments per chain ID.
var Contracts = map[uint64]common.Address{
	1:     common.HexToAddress("0x5427FEFA711Eff984124bFBB1AB6fbf5E3DA1820"),
	10:    common.HexToAddress("0x9D39Fc627A6d9d9F8C831c16995b209548cc3401"),
	56:    common.HexToAddress("0xdd90E5E87A2081Dcf0391920868eBc2FFB81a1aF"),
	137:   common.HexToAddress("0x88DCDC47D2f83a99CF0000FDF667A468bB958a78"),
	8453:  common.HexToAddress("0x7d43AABC515C356145049227CeE54B608342c0ad"),
	42161: common.HexToAddress("0x1619DE6B6B20eD217a58d00f37B9d47C7663feca"),
}
