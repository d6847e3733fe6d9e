package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

type TokenConfig struct {
	Address  common.Address
	Decimals uint8
}

type TokenStore struct {
	Tokens map[uint64]map[string]TokenConfig
}

func (s *TokenStore) ConfigByAddress(chainID uint64, address common.Address) (string, TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return "", TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	for symbol, c := range tokens {
		if c.Address == address {
			return symbol, c, nil
		}
	}

	return "", TokenConfig{}, fmt.Errorf("no symbol for address %s", address.Hex())
}

func (s *TokenStore) ConfigBySymbol(chainID uint64, symbol string) (TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	c, ok := tokens[symbol]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no config for token %s", symbol)
	}

	return c, nil
}

// DefaultTokenStore covers the canonical stablecoin and wrapped ether
// deployments on the supported chains.
func DefaultTokenStore() TokenStore {
	return TokenStore{
		Tokens: map[uint64]map[string]TokenConfig{
			1: {
				"USDC": {Address: common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), Decimals: 6},
				"USDT": {Address: common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7"), Decimals: 6},
				"WETH": {Address: common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), Decimals: 18},
			},
			10: {
				"USDC": {Address: common.HexToAddress("0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85"), Decimals: 6},
				"USDT": {Address: common.HexToAddress("0x94b008aA00579c1307B0EF2c499aD98a8ce58e58"), Decimals: 6},
				"WETH": {Address: common.HexToAddress("0x4200000000000000000000000000000000000006"), Decimals: 18},
			},
			137: {
				"USDC": {Address: common.HexToAddress("0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359"), Decimals: 6},
				"USDT": {Address: common.HexToAddress("0xc2132D05D31c914a87C6611C10748AEb04B58e8F"), Decimals: 6},
				"WETH": {Address: common.HexToAddress("0x7ceB23fD6bC0adD59E62ac25578270cFf1b9f619"), Decimals: 18},
			},
			8453: {
				"USDC": {Address: common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"), Decimals: 6},
				"WETH": {Address: common.HexToAddress("0x4200000000000000000000000000000000000006"), Decimals: 18},
			},
			42161: {
				"USDC": {Address: common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831"), Decimals: 6},
				"USDT": {Address: common.HexToAddress("0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9"), Decimals: 6},
				"WETH": {Address: common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"), Decimals: 18},
			},
			59144: {
				"USDC": {Address: common.HexToAddress("0x176211869cA2b568f2A7D4EE941E073a821EE1ff"), Decimals: 6},
				"WETH": {Address: common.HexToAddress("0xe5D7C2a44FfDDf6b295A15c148167daaAf5Cf34f"), Decimals: 18},
			},
			56: {
				"USDC": {Address: common.HexToAddress("0x8AC76a51cc950d9822D68b83fE1Ad97B32Cd580d"), Decimals: 18},
				"USDT": {Address: common.HexToAddress("0x55d398326f99059fF775485246999027B3197955"), Decimals: 18},
			},
		},
	}
}
