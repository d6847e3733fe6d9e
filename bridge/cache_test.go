package bridge_test

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/sweeplabs/sweep-bridging/bridge"
)

type QuoteCacheTestSuite struct {
	suite.Suite

	cache *bridge.QuoteCache
	req   *bridge.QuoteRequest
}

func TestRunQuoteCacheTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteCacheTestSuite))
}

func (s *QuoteCacheTestSuite) SetupTest() {
	s.cache = bridge.NewQuoteCache()
	s.req = &bridge.QuoteRequest{
		SourceChainID:      1,
		DestinationChainID: 10,
		SourceToken:        common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"),
		DestinationToken:   common.HexToAddress("0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85"),
		Amount:             big.NewInt(1000000),
	}
}

func (s *QuoteCacheTestSuite) TearDownTest() {
	s.cache.Stop()
}

func (s *QuoteCacheTestSuite) Test_Routes_Miss() {
	quotes, ok := s.cache.Routes(s.req)

	s.False(ok)
	s.Nil(quotes)
}

func (s *QuoteCacheTestSuite) Test_StoreRoutes_ServesSameRequest() {
	stored := []*bridge.Quote{
		{
			ID:        "across-1-10-abc",
			Provider:  bridge.ProviderAcross,
			ExpiresAt: time.Now().Add(bridge.QuoteTTL),
		},
	}
	s.cache.StoreRoutes(s.req, stored)

	quotes, ok := s.cache.Routes(s.req)
	s.True(ok)
	s.Len(quotes, 1)
	s.Equal("across-1-10-abc", quotes[0].ID)
}

func (s *QuoteCacheTestSuite) Test_StoreRoutes_DifferentAmountMisses() {
	s.cache.StoreRoutes(s.req, []*bridge.Quote{
		{
			ID:        "across-1-10-abc",
			ExpiresAt: time.Now().Add(bridge.QuoteTTL),
		},
	})

	other := *s.req
	other.Amount = big.NewInt(2000000)

	_, ok := s.cache.Routes(&other)
	s.False(ok)
}

func (s *QuoteCacheTestSuite) Test_Quote_ByID() {
	s.cache.StoreRoutes(s.req, []*bridge.Quote{
		{
			ID:        "across-1-10-abc",
			ExpiresAt: time.Now().Add(bridge.QuoteTTL),
		},
	})

	quote, err := s.cache.Quote("across-1-10-abc")
	s.Nil(err)
	s.Equal("across-1-10-abc", quote.ID)
}

func (s *QuoteCacheTestSuite) Test_Quote_NotFound() {
	_, err := s.cache.Quote("missing")

	s.NotNil(err)
	s.True(errors.Is(err, bridge.ErrQuoteNotFound))
}
