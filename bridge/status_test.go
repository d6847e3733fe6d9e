package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sweeplabs/sweep-bridging/bridge"
)

type StatusTestSuite struct {
	suite.Suite
}

func TestRunStatusTestSuite(t *testing.T) {
	suite.Run(t, new(StatusTestSuite))
}

func (s *StatusTestSuite) Test_Merge_AdvancesProgress() {
	status := bridge.StatusPending.Merge(bridge.StatusBridging)
	s.Equal(bridge.StatusBridging, status)

	status = status.Merge(bridge.StatusCompleted)
	s.Equal(bridge.StatusCompleted, status)
}

func (s *StatusTestSuite) Test_Merge_IgnoresRegression() {
	status := bridge.StatusBridging.Merge(bridge.StatusPendingSource)
	s.Equal(bridge.StatusBridging, status)
}

func (s *StatusTestSuite) Test_Merge_SameRankReplaces() {
	status := bridge.StatusBridging.Merge(bridge.StatusBridging)
	s.Equal(bridge.StatusBridging, status)
}

func (s *StatusTestSuite) Test_Merge_TerminalLatches() {
	status := bridge.StatusCompleted.Merge(bridge.StatusFailed)
	s.Equal(bridge.StatusCompleted, status)

	status = bridge.StatusFailed.Merge(bridge.StatusBridging)
	s.Equal(bridge.StatusFailed, status)

	status = bridge.StatusRefunded.Merge(bridge.StatusCompleted)
	s.Equal(bridge.StatusRefunded, status)
}

func (s *StatusTestSuite) Test_Terminal() {
	s.False(bridge.StatusPending.Terminal())
	s.False(bridge.StatusPendingSource.Terminal())
	s.False(bridge.StatusSourceConfirmed.Terminal())
	s.False(bridge.StatusBridging.Terminal())
	s.False(bridge.StatusPendingDest.Terminal())

	s.True(bridge.StatusCompleted.Terminal())
	s.True(bridge.StatusFailed.Terminal())
	s.True(bridge.StatusRefunded.Terminal())
	s.True(bridge.StatusExpired.Terminal())
}
