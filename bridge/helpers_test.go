package bridge_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/sweeplabs/sweep-bridging/bridge"
)

type HelpersTestSuite struct {
	suite.Suite
}

func TestRunHelpersTestSuite(t *testing.T) {
	suite.Run(t, new(HelpersTestSuite))
}

func (s *HelpersTestSuite) Test_ApplySlippage() {
	amount := big.NewInt(1000000)

	s.Equal(big.NewInt(995000), bridge.ApplySlippage(amount, 0.005))
	s.Equal(big.NewInt(990000), bridge.ApplySlippage(amount, 0.01))
	s.Equal(big.NewInt(1000000), bridge.ApplySlippage(amount, 0))
}

func (s *HelpersTestSuite) Test_ApplySlippage_TruncatesToBasisPoints() {
	amount := big.NewInt(1000000)

	// 0.00123 truncates to 12 bps
	s.Equal(big.NewInt(998800), bridge.ApplySlippage(amount, 0.00123))
}

func (s *HelpersTestSuite) Test_QuoteID_Deterministic() {
	calldata := []byte{0x01, 0x02, 0x03}

	first := bridge.QuoteID(bridge.ProviderAcross, 1, 10, calldata)
	second := bridge.QuoteID(bridge.ProviderAcross, 1, 10, calldata)
	s.Equal(first, second)

	s.NotEqual(first, bridge.QuoteID(bridge.ProviderHop, 1, 10, calldata))
	s.NotEqual(first, bridge.QuoteID(bridge.ProviderAcross, 1, 10, []byte{0x04}))
}

func (s *HelpersTestSuite) Test_IsNativeToken() {
	s.True(bridge.IsNativeToken(bridge.NativeTokenAddress))
	s.False(bridge.IsNativeToken(common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")))
}
