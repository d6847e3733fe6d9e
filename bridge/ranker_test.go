package bridge_test

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sweeplabs/sweep-bridging/bridge"
)

type RankerTestSuite struct {
	suite.Suite

	quotes []*bridge.Quote
}

func TestRunRankerTestSuite(t *testing.T) {
	suite.Run(t, new(RankerTestSuite))
}

func (s *RankerTestSuite) SetupTest() {
	expiry := time.Now().Add(time.Minute)
	s.quotes = []*bridge.Quote{
		{
			ID:            "hop-quote",
			Provider:      bridge.ProviderHop,
			OutputAmount:  big.NewInt(995000),
			Fees:          bridge.Fees{TotalUSD: 0.5},
			EstimatedTime: time.Minute * 3,
			ExpiresAt:     expiry,
		},
		{
			ID:            "across-quote",
			Provider:      bridge.ProviderAcross,
			OutputAmount:  big.NewInt(990000),
			Fees:          bridge.Fees{TotalUSD: 2},
			EstimatedTime: time.Minute,
			ExpiresAt:     expiry,
		},
		{
			ID:            "cbridge-quote",
			Provider:      bridge.ProviderCbridge,
			OutputAmount:  big.NewInt(998000),
			Fees:          bridge.Fees{TotalUSD: 5},
			EstimatedTime: time.Minute * 4,
			ExpiresAt:     expiry,
		},
	}
}

func (s *RankerTestSuite) Test_Rank_ByCost() {
	ranked, err := bridge.Rank(s.quotes, bridge.PriorityCost)

	s.Nil(err)
	s.Equal("hop-quote", ranked[0].ID)
	s.Equal("across-quote", ranked[1].ID)
	s.Equal("cbridge-quote", ranked[2].ID)
}

func (s *RankerTestSuite) Test_Rank_ByCost_FeesBeatOutputAmount() {
	quotes := []*bridge.Quote{
		{
			ID:           "across-quote",
			Provider:     bridge.ProviderAcross,
			OutputAmount: big.NewInt(1000000),
			Fees:         bridge.Fees{TotalUSD: 15},
			ExpiresAt:    time.Now().Add(time.Minute),
		},
		{
			ID:           "hop-quote",
			Provider:     bridge.ProviderHop,
			OutputAmount: big.NewInt(1000000),
			Fees:         bridge.Fees{TotalUSD: 12},
			ExpiresAt:    time.Now().Add(time.Minute),
		},
		{
			ID:           "cbridge-quote",
			Provider:     bridge.ProviderCbridge,
			OutputAmount: big.NewInt(1000000),
			ExpiresAt:    time.Now().Add(time.Minute),
		},
	}

	ranked, err := bridge.Rank(quotes, bridge.PriorityCost)

	s.Nil(err)
	s.Equal("cbridge-quote", ranked[0].ID)
	s.Equal("hop-quote", ranked[1].ID)
	s.Equal("across-quote", ranked[2].ID)
}

func (s *RankerTestSuite) Test_Rank_ByCost_EqualFeesTieBreakOnOutput() {
	quotes := []*bridge.Quote{
		{
			ID:           "across-quote",
			Provider:     bridge.ProviderAcross,
			OutputAmount: big.NewInt(990000),
			Fees:         bridge.Fees{TotalUSD: 1},
			ExpiresAt:    time.Now().Add(time.Minute),
		},
		{
			ID:           "cbridge-quote",
			Provider:     bridge.ProviderCbridge,
			OutputAmount: big.NewInt(998000),
			Fees:         bridge.Fees{TotalUSD: 1},
			ExpiresAt:    time.Now().Add(time.Minute),
		},
	}

	ranked, err := bridge.Rank(quotes, bridge.PriorityCost)

	s.Nil(err)
	s.Equal("cbridge-quote", ranked[0].ID)
}

func (s *RankerTestSuite) Test_Rank_BySpeed() {
	ranked, err := bridge.Rank(s.quotes, bridge.PrioritySpeed)

	s.Nil(err)
	s.Equal("across-quote", ranked[0].ID)
	s.Equal("hop-quote", ranked[1].ID)
	s.Equal("cbridge-quote", ranked[2].ID)
}

func (s *RankerTestSuite) Test_Rank_ByReliability() {
	ranked, err := bridge.Rank(s.quotes, bridge.PriorityReliability)

	s.Nil(err)
	s.Equal("across-quote", ranked[0].ID)
}

func (s *RankerTestSuite) Test_Rank_DefaultsToCost() {
	ranked, err := bridge.Rank(s.quotes, "")

	s.Nil(err)
	s.Equal("hop-quote", ranked[0].ID)
}

func (s *RankerTestSuite) Test_Rank_DoesNotMutateInput() {
	_, err := bridge.Rank(s.quotes, bridge.PriorityCost)

	s.Nil(err)
	s.Equal("hop-quote", s.quotes[0].ID)
}

func (s *RankerTestSuite) Test_Rank_FiltersExpiredQuotes() {
	s.quotes[0].ExpiresAt = time.Now().Add(-time.Second)

	ranked, err := bridge.Rank(s.quotes, bridge.PriorityCost)

	s.Nil(err)
	s.Len(ranked, 2)
	s.Equal("across-quote", ranked[0].ID)
}

func (s *RankerTestSuite) Test_Rank_AllExpired() {
	expired := time.Now().Add(-time.Second)
	for _, q := range s.quotes {
		q.ExpiresAt = expired
	}

	_, err := bridge.Rank(s.quotes, bridge.PriorityCost)

	s.True(errors.Is(err, bridge.ErrNoViableRoute))
}

func (s *RankerTestSuite) Test_Rank_EmptyInput() {
	ranked, err := bridge.Rank([]*bridge.Quote{}, bridge.PriorityCost)

	s.Nil(err)
	s.Len(ranked, 0)
}

func (s *RankerTestSuite) Test_Rank_TiesFallBackToReliability() {
	quotes := []*bridge.Quote{
		{
			ID:           "socket-quote",
			Provider:     bridge.ProviderSocket,
			OutputAmount: big.NewInt(1000),
			ExpiresAt:    time.Now().Add(time.Minute),
		},
		{
			ID:           "across-quote",
			Provider:     bridge.ProviderAcross,
			OutputAmount: big.NewInt(1000),
			ExpiresAt:    time.Now().Add(time.Minute),
		},
	}

	ranked, err := bridge.Rank(quotes, bridge.PriorityCost)

	s.Nil(err)
	s.Equal("across-quote", ranked[0].ID)
}

func (s *RankerTestSuite) Test_Tag() {
	bridge.Tag(s.quotes)

	s.Contains(s.quotes[0].Tags, bridge.TagBestPrice)
	s.Contains(s.quotes[1].Tags, bridge.TagFastest)
	s.Contains(s.quotes[1].Tags, bridge.TagMostReliable)
	s.Empty(s.quotes[2].Tags)
}

func (s *RankerTestSuite) Test_Tag_NoDuplicates() {
	bridge.Tag(s.quotes)
	bridge.Tag(s.quotes)

	s.Len(s.quotes[0].Tags, 1)
}
