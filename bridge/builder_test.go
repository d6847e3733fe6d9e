package bridge_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sweeplabs/sweep-bridging/bridge"
	mock_bridge "github.com/sweeplabs/sweep-bridging/bridge/mock"
)

type BuilderTestSuite struct {
	suite.Suite

	provider *mock_bridge.MockProvider
	quotes   *mock_bridge.MockQuoteStore
	builder  *bridge.Builder
}

func TestRunBuilderTestSuite(t *testing.T) {
	suite.Run(t, new(BuilderTestSuite))
}

func (s *BuilderTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.provider = mock_bridge.NewMockProvider(ctrl)
	s.provider.EXPECT().Name().Return(bridge.ProviderAcross).AnyTimes()
	s.quotes = mock_bridge.NewMockQuoteStore(ctrl)
	s.builder = bridge.NewBuilder([]bridge.Provider{s.provider}, s.quotes)
}

func (s *BuilderTestSuite) quote(provider bridge.ProviderName) *bridge.Quote {
	return &bridge.Quote{
		ID:       "across-1-10-abc",
		Provider: provider,
		SourceToken: bridge.Token{
			ChainID: 1,
		},
		DestinationToken: bridge.Token{
			ChainID: 10,
		},
		Call: &bridge.ContractCall{
			To:       common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5"),
			Data:     []byte{0x01, 0x02},
			Value:    big.NewInt(0),
			GasLimit: 200000,
		},
		ExpiresAt: time.Now().Add(bridge.QuoteTTL),
	}
}

func (s *BuilderTestSuite) Test_BuildTransaction_QuoteNotFound() {
	s.quotes.EXPECT().Quote("missing").Return(nil, bridge.ErrQuoteNotFound)

	_, err := s.builder.BuildTransaction(context.Background(), "missing")

	s.NotNil(err)
	s.True(errors.Is(err, bridge.ErrQuoteNotFound))
}

func (s *BuilderTestSuite) Test_Build_ExpiredQuote() {
	quote := s.quote(bridge.ProviderAcross)
	quote.ExpiresAt = time.Now().Add(-time.Minute)

	_, err := s.builder.Build(context.Background(), quote)

	s.NotNil(err)
	s.True(errors.Is(err, bridge.ErrQuoteExpired))
}

func (s *BuilderTestSuite) Test_Build_UnknownProvider() {
	quote := s.quote(bridge.ProviderStargate)

	_, err := s.builder.Build(context.Background(), quote)

	s.NotNil(err)
	s.True(errors.Is(err, bridge.ErrUnknownProvider))
}

func (s *BuilderTestSuite) Test_Build_ProviderError() {
	quote := s.quote(bridge.ProviderAcross)
	s.provider.EXPECT().BuildTransaction(gomock.Any(), quote).Return(nil, errors.New("provider mismatch"))

	_, err := s.builder.Build(context.Background(), quote)

	s.NotNil(err)
}

func (s *BuilderTestSuite) Test_BuildTransaction_Success() {
	quote := s.quote(bridge.ProviderAcross)
	expected := &bridge.BridgeTransaction{
		ID:       "tx-across-1-10-abc",
		Provider: bridge.ProviderAcross,
		QuoteID:  quote.ID,
		To:       quote.Call.To,
		Data:     quote.Call.Data,
		GasLimit: quote.Call.GasLimit,
	}

	s.quotes.EXPECT().Quote(quote.ID).Return(quote, nil)
	s.provider.EXPECT().BuildTransaction(gomock.Any(), quote).Return(expected, nil)

	tx, err := s.builder.BuildTransaction(context.Background(), quote.ID)

	s.Nil(err)
	s.Equal(expected, tx)
}
