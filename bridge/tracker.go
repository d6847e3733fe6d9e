package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

const (
	DefaultPollInterval = time.Second * 10
	// DefaultMaxPolls bounds tracking to one hour at the default interval.
	DefaultMaxPolls     = 360
	DefaultErrorBudget  = 10
	TrackingExpiredNote = "bridge tracking timed out"
)

type ReceiptStore interface {
	StoreReceipt(receipt *BridgeReceipt) error
	Receipt(srcTxHash common.Hash, srcChainID uint64) (*BridgeReceipt, error)
}

// Tracker polls providers for transfer progress and persists the merged
// receipt so status survives restarts.
type Tracker struct {
	providers map[ProviderName]Provider
	store     ReceiptStore

	pollInterval time.Duration
	maxPolls     int
	errorBudget  int
}

func NewTracker(providers []Provider, store ReceiptStore) *Tracker {
	byName := make(map[ProviderName]Provider)
	for _, p := range providers {
		byName[p.Name()] = p
	}

	return &Tracker{
		providers:    byName,
		store:        store,
		pollInterval: DefaultPollInterval,
		maxPolls:     DefaultMaxPolls,
		errorBudget:  DefaultErrorBudget,
	}
}

// WithPollPolicy overrides the polling schedule and budgets.
func (t *Tracker) WithPollPolicy(pollInterval time.Duration, maxPolls int, errorBudget int) *Tracker {
	t.pollInterval = pollInterval
	t.maxPolls = maxPolls
	t.errorBudget = errorBudget
	return t
}

// Status fetches the current transfer state once and merges it into the
// stored receipt. Provider errors fall back to the last stored receipt when
// one exists. An empty provider name probes every provider for the transfer.
func (t *Tracker) Status(ctx context.Context, provider ProviderName, srcTxHash common.Hash, srcChainID uint64) (*BridgeReceipt, error) {
	if provider == "" {
		return t.statusAny(ctx, srcTxHash, srcChainID)
	}

	p, ok := t.providers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}

	receipt, err := p.GetStatus(ctx, srcTxHash, srcChainID)
	if err != nil {
		stored, storeErr := t.store.Receipt(srcTxHash, srcChainID)
		if storeErr != nil {
			return nil, err
		}

		log.Warn().Msgf("Status fetch for %s failed, serving stored receipt: %s", srcTxHash.Hex(), err)
		return stored, nil
	}

	return t.merge(receipt)
}

// statusAny asks every provider about the transfer and keeps the first answer
// that shows any progress beyond pending.
func (t *Tracker) statusAny(ctx context.Context, srcTxHash common.Hash, srcChainID uint64) (*BridgeReceipt, error) {
	stored, err := t.store.Receipt(srcTxHash, srcChainID)
	if err == nil && stored.Provider != "" {
		return t.Status(ctx, stored.Provider, srcTxHash, srcChainID)
	}

	for name, p := range t.providers {
		receipt, err := p.GetStatus(ctx, srcTxHash, srcChainID)
		if err != nil {
			log.Debug().Msgf("Provider %s has no status for %s: %s", name, srcTxHash.Hex(), err)
			continue
		}
		if receipt.Status == StatusPending {
			continue
		}

		return t.merge(receipt)
	}

	return nil, fmt.Errorf("%w: %s", ErrTransferNotFound, srcTxHash.Hex())
}

// Watch polls the provider until the transfer reaches a terminal state or a
// budget runs out. Transient errors double the next delay; too many in a row
// fail the transfer, while exhausting the poll budget without a terminal
// state expires it.
func (t *Tracker) Watch(ctx context.Context, provider ProviderName, srcTxHash common.Hash, srcChainID uint64) (*BridgeReceipt, error) {
	p, ok := t.providers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}

	delay := t.pollInterval
	consecutiveErrors := 0
	var receipt *BridgeReceipt

	for poll := 0; poll < t.maxPolls; poll++ {
		fetched, err := p.GetStatus(ctx, srcTxHash, srcChainID)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return receipt, err
			}

			consecutiveErrors++
			log.Warn().Msgf("Polling %s status for %s failed (%d in a row): %s", provider, srcTxHash.Hex(), consecutiveErrors, err)
			if consecutiveErrors >= t.errorBudget {
				return t.finalize(receipt, provider, srcTxHash, srcChainID, StatusFailed,
					fmt.Sprintf("status polling failed %d times in a row: %s", consecutiveErrors, err))
			}

			delay *= 2
		} else {
			consecutiveErrors = 0
			delay = t.pollInterval

			receipt, err = t.merge(fetched)
			if err != nil {
				return nil, err
			}
			if receipt.Status.Terminal() {
				return receipt, nil
			}
		}

		select {
		case <-ctx.Done():
			return receipt, ctx.Err()
		case <-time.After(delay):
		}
	}

	return t.finalize(receipt, provider, srcTxHash, srcChainID, StatusExpired, TrackingExpiredNote)
}

func (t *Tracker) merge(fetched *BridgeReceipt) (*BridgeReceipt, error) {
	stored, err := t.store.Receipt(fetched.SourceTxHash, fetched.SourceChainID)
	if err == nil {
		fetched.Status = stored.Status.Merge(fetched.Status)
		if fetched.InitiatedAt.IsZero() {
			fetched.InitiatedAt = stored.InitiatedAt
		}
	}

	if fetched.Status.Terminal() && fetched.CompletedAt.IsZero() {
		fetched.CompletedAt = time.Now()
	}

	if err := t.store.StoreReceipt(fetched); err != nil {
		return nil, err
	}
	return fetched, nil
}

func (t *Tracker) finalize(receipt *BridgeReceipt, provider ProviderName, srcTxHash common.Hash, srcChainID uint64, status Status, note string) (*BridgeReceipt, error) {
	if receipt == nil {
		receipt = &BridgeReceipt{
			Provider:      provider,
			SourceTxHash:  srcTxHash,
			SourceChainID: srcChainID,
		}
	}

	receipt.Status = receipt.Status.Merge(status)
	receipt.Error = note
	receipt.CompletedAt = time.Now()
	if err := t.store.StoreReceipt(receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}
