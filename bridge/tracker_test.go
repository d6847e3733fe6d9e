package bridge_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/sweeplabs/sweep-bridging/bridge"
	mock_bridge "github.com/sweeplabs/sweep-bridging/bridge/mock"
)

type TrackerTestSuite struct {
	suite.Suite

	provider *mock_bridge.MockProvider
	store    *mock_bridge.MockReceiptStore
	tracker  *bridge.Tracker

	txHash common.Hash
}

func TestRunTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackerTestSuite))
}

func (s *TrackerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.provider = mock_bridge.NewMockProvider(ctrl)
	s.provider.EXPECT().Name().Return(bridge.ProviderAcross).AnyTimes()
	s.store = mock_bridge.NewMockReceiptStore(ctrl)
	s.tracker = bridge.NewTracker([]bridge.Provider{s.provider}, s.store).
		WithPollPolicy(time.Millisecond, 3, 2)

	s.txHash = common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")
}

func (s *TrackerTestSuite) receipt(status bridge.Status) *bridge.BridgeReceipt {
	return &bridge.BridgeReceipt{
		Provider:      bridge.ProviderAcross,
		Status:        status,
		SourceTxHash:  s.txHash,
		SourceChainID: 1,
	}
}

func (s *TrackerTestSuite) Test_Status_UnknownProvider() {
	_, err := s.tracker.Status(context.Background(), bridge.ProviderHop, s.txHash, 1)

	s.NotNil(err)
	s.True(errors.Is(err, bridge.ErrUnknownProvider))
}

func (s *TrackerTestSuite) Test_Status_MergesWithStoredReceipt() {
	s.provider.EXPECT().GetStatus(gomock.Any(), s.txHash, uint64(1)).Return(s.receipt(bridge.StatusPendingSource), nil)
	s.store.EXPECT().Receipt(s.txHash, uint64(1)).Return(s.receipt(bridge.StatusBridging), nil)
	s.store.EXPECT().StoreReceipt(gomock.Any()).Return(nil)

	receipt, err := s.tracker.Status(context.Background(), bridge.ProviderAcross, s.txHash, 1)

	s.Nil(err)
	s.Equal(bridge.StatusBridging, receipt.Status)
}

func (s *TrackerTestSuite) Test_Status_ProviderErrorFallsBackToStored() {
	s.provider.EXPECT().GetStatus(gomock.Any(), s.txHash, uint64(1)).Return(nil, errors.New("timeout"))
	s.store.EXPECT().Receipt(s.txHash, uint64(1)).Return(s.receipt(bridge.StatusBridging), nil)

	receipt, err := s.tracker.Status(context.Background(), bridge.ProviderAcross, s.txHash, 1)

	s.Nil(err)
	s.Equal(bridge.StatusBridging, receipt.Status)
}

func (s *TrackerTestSuite) Test_Status_ProviderErrorWithoutStoredReceipt() {
	s.provider.EXPECT().GetStatus(gomock.Any(), s.txHash, uint64(1)).Return(nil, errors.New("timeout"))
	s.store.EXPECT().Receipt(s.txHash, uint64(1)).Return(nil, errors.New("not found"))

	_, err := s.tracker.Status(context.Background(), bridge.ProviderAcross, s.txHash, 1)

	s.NotNil(err)
}

func (s *TrackerTestSuite) Test_Status_EmptyProviderProbesAll() {
	s.store.EXPECT().Receipt(s.txHash, uint64(1)).Return(nil, errors.New("not found")).Times(2)
	s.provider.EXPECT().GetStatus(gomock.Any(), s.txHash, uint64(1)).Return(s.receipt(bridge.StatusBridging), nil)
	s.store.EXPECT().StoreReceipt(gomock.Any()).Return(nil)

	receipt, err := s.tracker.Status(context.Background(), "", s.txHash, 1)

	s.Nil(err)
	s.Equal(bridge.StatusBridging, receipt.Status)
}

func (s *TrackerTestSuite) Test_Status_EmptyProviderNotFound() {
	s.store.EXPECT().Receipt(s.txHash, uint64(1)).Return(nil, errors.New("not found"))
	s.provider.EXPECT().GetStatus(gomock.Any(), s.txHash, uint64(1)).Return(s.receipt(bridge.StatusPending), nil)

	_, err := s.tracker.Status(context.Background(), "", s.txHash, 1)

	s.NotNil(err)
	s.True(errors.Is(err, bridge.ErrTransferNotFound))
}

func (s *TrackerTestSuite) Test_Watch_ReturnsOnTerminalStatus() {
	gomock.InOrder(
		s.provider.EXPECT().GetStatus(gomock.Any(), s.txHash, uint64(1)).Return(s.receipt(bridge.StatusBridging), nil),
		s.provider.EXPECT().GetStatus(gomock.Any(), s.txHash, uint64(1)).Return(s.receipt(bridge.StatusCompleted), nil),
	)
	s.store.EXPECT().Receipt(s.txHash, uint64(1)).Return(nil, errors.New("not found")).Times(2)
	s.store.EXPECT().StoreReceipt(gomock.Any()).Return(nil).Times(2)

	receipt, err := s.tracker.Watch(context.Background(), bridge.ProviderAcross, s.txHash, 1)

	s.Nil(err)
	s.Equal(bridge.StatusCompleted, receipt.Status)
	s.False(receipt.CompletedAt.IsZero())
}

func (s *TrackerTestSuite) Test_Watch_ErrorBudgetExhausted() {
	s.provider.EXPECT().GetStatus(gomock.Any(), s.txHash, uint64(1)).Return(nil, errors.New("timeout")).Times(2)
	s.store.EXPECT().StoreReceipt(gomock.Any()).Return(nil)

	receipt, err := s.tracker.Watch(context.Background(), bridge.ProviderAcross, s.txHash, 1)

	s.Nil(err)
	s.Equal(bridge.StatusFailed, receipt.Status)
	s.NotEmpty(receipt.Error)
}

func (s *TrackerTestSuite) Test_Watch_PollBudgetExhausted() {
	s.provider.EXPECT().GetStatus(gomock.Any(), s.txHash, uint64(1)).Return(s.receipt(bridge.StatusBridging), nil).Times(3)
	s.store.EXPECT().Receipt(s.txHash, uint64(1)).Return(nil, errors.New("not found")).Times(3)
	s.store.EXPECT().StoreReceipt(gomock.Any()).Return(nil).Times(4)

	receipt, err := s.tracker.Watch(context.Background(), bridge.ProviderAcross, s.txHash, 1)

	s.Nil(err)
	s.Equal(bridge.StatusExpired, receipt.Status)
	s.Equal(bridge.TrackingExpiredNote, receipt.Error)
}

func (s *TrackerTestSuite) Test_Watch_ContextCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.provider.EXPECT().GetStatus(gomock.Any(), s.txHash, uint64(1)).Return(s.receipt(bridge.StatusBridging), nil).MaxTimes(1)
	s.store.EXPECT().Receipt(s.txHash, uint64(1)).Return(nil, errors.New("not found")).MaxTimes(1)
	s.store.EXPECT().StoreReceipt(gomock.Any()).Return(nil).MaxTimes(1)

	_, err := s.tracker.Watch(ctx, bridge.ProviderAcross, s.txHash, 1)

	s.NotNil(err)
}
