package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/sweeplabs/sweep-bridging/bridge"
)

const (
	// TrackingInitialDelay leaves the source chain time to confirm before the
	// first status poll.
	TrackingInitialDelay = time.Second * 10
)

// BridgeJobKey is the idempotency key for one bridge leg of a plan.
func BridgeJobKey(planID string, srcChainID uint64) string {
	return fmt.Sprintf("bridge-%s-%d", planID, srcChainID)
}

type Watcher interface {
	Watch(ctx context.Context, provider bridge.ProviderName, srcTxHash common.Hash, srcChainID uint64) (*bridge.BridgeReceipt, error)
}

type SettlementMetrics interface {
	StartTracking(txHash string)
	EndTracking(txHash string)
}

// TrackingJobs deduplicates concurrent tracking of the same transfer.
// Re-enqueueing a transfer already being watched is a no-op.
type TrackingJobs struct {
	watcher Watcher
	metrics SettlementMetrics
	delay   time.Duration

	mu     sync.Mutex
	active map[string]struct{}
}

func NewTrackingJobs(watcher Watcher) *TrackingJobs {
	return &TrackingJobs{
		watcher: watcher,
		delay:   TrackingInitialDelay,
		active:  make(map[string]struct{}),
	}
}

// WithMetrics enables settlement time instrumentation.
func (j *TrackingJobs) WithMetrics(metrics SettlementMetrics) *TrackingJobs {
	j.metrics = metrics
	return j
}

// WithInitialDelay overrides the confirmation delay before the first poll.
func (j *TrackingJobs) WithInitialDelay(delay time.Duration) *TrackingJobs {
	j.delay = delay
	return j
}

// Enqueue starts watching a transfer after the initial confirmation delay.
func (j *TrackingJobs) Enqueue(ctx context.Context, key string, provider bridge.ProviderName, srcTxHash common.Hash, srcChainID uint64) {
	j.mu.Lock()
	if _, ok := j.active[key]; ok {
		j.mu.Unlock()
		log.Debug().Msgf("Tracking job %s already running", key)
		return
	}
	j.active[key] = struct{}{}
	j.mu.Unlock()

	go func() {
		defer func() {
			j.mu.Lock()
			delete(j.active, key)
			j.mu.Unlock()
		}()

		select {
		case <-ctx.Done():
			return
		case <-time.After(j.delay):
		}

		if j.metrics != nil {
			j.metrics.StartTracking(srcTxHash.Hex())
		}
		receipt, err := j.watcher.Watch(ctx, provider, srcTxHash, srcChainID)
		if err != nil {
			log.Warn().Msgf("Tracking job %s stopped: %s", key, err)
			return
		}
		if j.metrics != nil {
			j.metrics.EndTracking(srcTxHash.Hex())
		}
		log.Info().Msgf("Tracking job %s finished with status %s", key, receipt.Status)
	}()
}
