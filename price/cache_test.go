package price_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sweeplabs/sweep-bridging/price"
)

type countingPricer struct {
	calls int
	price float64
	err   error
}

func (p *countingPricer) TokenPrice(symbol string) (float64, error) {
	p.calls++
	return p.price, p.err
}

type CachedPricerTestSuite struct {
	suite.Suite

	upstream *countingPricer
	pricer   *price.CachedPricer
}

func TestRunCachedPricerTestSuite(t *testing.T) {
	suite.Run(t, new(CachedPricerTestSuite))
}

func (s *CachedPricerTestSuite) SetupTest() {
	s.upstream = &countingPricer{price: 2500}
	s.pricer = price.NewCachedPricer(s.upstream)
}

func (s *CachedPricerTestSuite) TearDownTest() {
	s.pricer.Stop()
}

func (s *CachedPricerTestSuite) TestTokenPrice_CachesUpstreamValue() {
	p, err := s.pricer.TokenPrice("ETH")
	s.Nil(err)
	s.Equal(float64(2500), p)

	p, err = s.pricer.TokenPrice("ETH")
	s.Nil(err)
	s.Equal(float64(2500), p)
	s.Equal(1, s.upstream.calls)
}

func (s *CachedPricerTestSuite) TestTokenPrice_ErrorsNotCached() {
	s.upstream.err = fmt.Errorf("rate limited")

	_, err := s.pricer.TokenPrice("ETH")
	s.NotNil(err)

	_, err = s.pricer.TokenPrice("ETH")
	s.NotNil(err)
	s.Equal(2, s.upstream.calls)
}
