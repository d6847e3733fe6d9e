package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/store"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/sweeplabs/sweep-bridging/bridge"
	"github.com/sweeplabs/sweep-bridging/sweep"
)

var ErrNotFound = errors.New("not found")

// BridgeStore persists receipts and sweep plans in LevelDB so tracking
// survives restarts.
type BridgeStore struct {
	db store.KeyValueReaderWriter
}

func NewBridgeStore(db store.KeyValueReaderWriter) *BridgeStore {
	return &BridgeStore{
		db: db,
	}
}

func (s *BridgeStore) StoreReceipt(receipt *bridge.BridgeReceipt) error {
	key := receiptKey(receipt.SourceTxHash, receipt.SourceChainID)
	value, err := json.Marshal(receipt)
	if err != nil {
		return err
	}

	return s.db.SetByKey(key, value)
}

func (s *BridgeStore) Receipt(srcTxHash common.Hash, srcChainID uint64) (*bridge.BridgeReceipt, error) {
	value, err := s.db.GetByKey(receiptKey(srcTxHash, srcChainID))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	receipt := new(bridge.BridgeReceipt)
	if err := json.Unmarshal(value, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (s *BridgeStore) StorePlan(plan *sweep.Plan) error {
	value, err := json.Marshal(plan)
	if err != nil {
		return err
	}

	return s.db.SetByKey(planKey(plan.ID), value)
}

func (s *BridgeStore) Plan(id string) (*sweep.Plan, error) {
	value, err := s.db.GetByKey(planKey(id))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	plan := new(sweep.Plan)
	if err := json.Unmarshal(value, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func receiptKey(srcTxHash common.Hash, srcChainID uint64) []byte {
	return []byte(fmt.Sprintf("receipt:%d:%s", srcChainID, srcTxHash.Hex()))
}

func planKey(id string) []byte {
	return []byte(fmt.Sprintf("plan:%s", id))
}
