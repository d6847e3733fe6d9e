package store_test

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/sweeplabs/sweep-bridging/bridge"
	"github.com/sweeplabs/sweep-bridging/store"
	"github.com/sweeplabs/sweep-bridging/sweep"
)

type memoryKV struct {
	data map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (kv *memoryKV) GetByKey(key []byte) ([]byte, error) {
	value, ok := kv.data[string(key)]
	if !ok {
		return nil, leveldb.ErrNotFound
	}
	return value, nil
}

func (kv *memoryKV) SetByKey(key []byte, value []byte) error {
	kv.data[string(key)] = value
	return nil
}

type BridgeStoreTestSuite struct {
	suite.Suite

	store *store.BridgeStore
}

func TestRunBridgeStoreTestSuite(t *testing.T) {
	suite.Run(t, new(BridgeStoreTestSuite))
}

func (s *BridgeStoreTestSuite) SetupTest() {
	s.store = store.NewBridgeStore(newMemoryKV())
}

func (s *BridgeStoreTestSuite) Test_Receipt_NotFound() {
	_, err := s.store.Receipt(common.HexToHash("0x01"), 1)

	s.NotNil(err)
	s.True(errors.Is(err, store.ErrNotFound))
}

func (s *BridgeStoreTestSuite) Test_Receipt_RoundTrip() {
	receipt := &bridge.BridgeReceipt{
		Provider:      bridge.ProviderAcross,
		Status:        bridge.StatusBridging,
		SourceTxHash:  common.HexToHash("0x01"),
		SourceChainID: 10,
	}

	err := s.store.StoreReceipt(receipt)
	s.Nil(err)

	stored, err := s.store.Receipt(common.HexToHash("0x01"), 10)
	s.Nil(err)
	s.Equal(receipt.Provider, stored.Provider)
	s.Equal(receipt.Status, stored.Status)
	s.Equal(receipt.SourceTxHash, stored.SourceTxHash)
}

func (s *BridgeStoreTestSuite) Test_Receipt_KeyedByChain() {
	receipt := &bridge.BridgeReceipt{
		Provider:      bridge.ProviderAcross,
		Status:        bridge.StatusBridging,
		SourceTxHash:  common.HexToHash("0x01"),
		SourceChainID: 10,
	}

	err := s.store.StoreReceipt(receipt)
	s.Nil(err)

	_, err = s.store.Receipt(common.HexToHash("0x01"), 1)
	s.True(errors.Is(err, store.ErrNotFound))
}

func (s *BridgeStoreTestSuite) Test_Plan_NotFound() {
	_, err := s.store.Plan("missing")

	s.NotNil(err)
	s.True(errors.Is(err, store.ErrNotFound))
}

func (s *BridgeStoreTestSuite) Test_Plan_RoundTrip() {
	plan := &sweep.Plan{
		ID:                 "plan-1",
		UserID:             "user-1",
		DestinationChainID: 8453,
		Bridges: []sweep.PlannedBridge{
			{SourceChainID: 10, DestinationChainID: 8453, Priority: 0, ValueUSD: 50},
		},
	}

	err := s.store.StorePlan(plan)
	s.Nil(err)

	stored, err := s.store.Plan("plan-1")
	s.Nil(err)
	s.Equal(plan.UserID, stored.UserID)
	s.Equal(plan.DestinationChainID, stored.DestinationChainID)
	s.Len(stored.Bridges, 1)
}
