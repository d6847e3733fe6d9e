package hop_test

import (
	"bytes"
	"context"
	"io"
	"math/big"
	"net/http"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/sweeplabs/sweep-bridging/bridge"
	"github.com/sweeplabs/sweep-bridging/bridge/hop"
	"github.com/sweeplabs/sweep-bridging/config"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

type HopProviderTestSuite struct {
	suite.Suite

	api      *hop.HopAPI
	provider *hop.HopProvider
}

func TestRunHopProviderTestSuite(t *testing.T) {
	suite.Run(t, new(HopProviderTestSuite))
}

func (s *HopProviderTestSuite) SetupTest() {
	s.api = hop.NewHopAPI()
	s.provider = hop.NewHopProvider(s.api, config.DefaultTokenStore())
}

func (s *HopProviderTestSuite) stubResponse(response string) {
	s.api.HTTPClient.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader([]byte(response))),
			Header:     make(http.Header),
		}, nil
	})
}

func (s *HopProviderTestSuite) Test_SupportsRoute_NativeEther() {
	s.True(s.provider.SupportsRoute(1, 10, bridge.NativeTokenAddress))
}

func (s *HopProviderTestSuite) Test_SupportsRoute_UnknownChain() {
	s.False(s.provider.SupportsRoute(1, 999, bridge.NativeTokenAddress))
}

func (s *HopProviderTestSuite) Test_GetQuote_RollupExitUsesAmmWrapper() {
	s.stubResponse(`{"amountOut": "995000", "amountOutMin": "990000", "bonderFee": "2500", "destinationTxFee": "500", "deadline": 1890000000}`)

	quote, err := s.provider.GetQuote(context.Background(), &bridge.QuoteRequest{
		SourceChainID:      10,
		DestinationChainID: 42161,
		SourceToken:        common.HexToAddress("0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85"),
		DestinationToken:   common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831"),
		Sender:             common.HexToAddress("0x5c1F5d74Fc1B46444ef1574b1b31e0fdBAA921c3"),
		Recipient:          common.HexToAddress("0x5c1F5d74Fc1B46444ef1574b1b31e0fdBAA921c3"),
		Amount:             big.NewInt(1000000),
	})

	s.Nil(err)
	s.NotNil(quote)
	s.Equal(bridge.ProviderHop, quote.Provider)
	s.Equal(big.NewInt(995000), quote.OutputAmount)
	s.Equal(big.NewInt(990000), quote.MinOutputAmount)
	s.Equal(big.NewInt(2500), quote.Fees.BridgeFee)
	s.Equal(hop.ESTIMATED_TIME, quote.EstimatedTime)
	s.NotEmpty(quote.Call.Data)
	s.NotNil(quote.Approval)
}

func (s *HopProviderTestSuite) Test_GetQuote_ZeroOutput() {
	s.stubResponse(`{"amountOut": "0", "amountOutMin": "0", "bonderFee": "2500"}`)

	quote, err := s.provider.GetQuote(context.Background(), &bridge.QuoteRequest{
		SourceChainID:      10,
		DestinationChainID: 42161,
		SourceToken:        common.HexToAddress("0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85"),
		DestinationToken:   common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831"),
		Amount:             big.NewInt(1000000),
	})

	s.Nil(err)
	s.Nil(quote)
}

func (s *HopProviderTestSuite) Test_GetStatus_Bonded() {
	s.stubResponse(`{"bonded": true, "bondTransactionHash": "0x2222222222222222222222222222222222222222222222222222222222222222", "transactionHash": "0x01", "destinationChainId": 42161, "amount": "1000000", "receivedTimestamp": 1719000500}`)

	receipt, err := s.provider.GetStatus(context.Background(), common.HexToHash("0x01"), 10)

	s.Nil(err)
	s.Equal(bridge.StatusCompleted, receipt.Status)
	s.Equal(uint64(42161), receipt.DestinationChainID)
	s.Equal(big.NewInt(1000000), receipt.InputAmount)
	s.Equal(time.Unix(1719000500, 0), receipt.CompletedAt)
}

func (s *HopProviderTestSuite) Test_GetStatus_InFlight() {
	s.stubResponse(`{"bonded": false, "transactionHash": "0x01", "destinationChainId": 42161}`)

	receipt, err := s.provider.GetStatus(context.Background(), common.HexToHash("0x01"), 10)

	s.Nil(err)
	s.Equal(bridge.StatusBridging, receipt.Status)
}

func (s *HopProviderTestSuite) Test_GetStatus_Unknown() {
	s.stubResponse(`{}`)

	receipt, err := s.provider.GetStatus(context.Background(), common.HexToHash("0x01"), 10)

	s.Nil(err)
	s.Equal(bridge.StatusPending, receipt.Status)
}
