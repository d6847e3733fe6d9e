package metrics

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/metric"
)

const (
	TRACKING_TTL = time.Hour * 2
)

type BridgeMetrics struct {
	quoteRequestCounter  metric.Int64Counter
	routesServedCounter  metric.Int64Counter
	providerErrorCounter metric.Int64Counter

	settlementTimeHistogram metric.Float64Histogram
	trackingStartTimeCache  *ttlcache.Cache[string, time.Time]

	opts metric.MeasurementOption
}

// NewBridgeMetrics initializes metrics around quoting and transfer settlement
func NewBridgeMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*BridgeMetrics, error) {
	quoteRequestCounter, err := meter.Int64Counter(
		"bridge.QuoteRequests",
		metric.WithDescription("Total number of provider quote requests"),
	)
	if err != nil {
		return nil, err
	}
	routesServedCounter, err := meter.Int64Counter(
		"bridge.RoutesServed",
		metric.WithDescription("Total number of routes returned to callers"),
	)
	if err != nil {
		return nil, err
	}
	providerErrorCounter, err := meter.Int64Counter(
		"bridge.ProviderErrors",
		metric.WithDescription("Total number of failed provider quote requests"),
	)
	if err != nil {
		return nil, err
	}

	settlementTimeHistogram, err := meter.Float64Histogram("bridge.SettlementTime")
	if err != nil {
		return nil, err
	}

	return &BridgeMetrics{
		quoteRequestCounter:     quoteRequestCounter,
		routesServedCounter:     routesServedCounter,
		providerErrorCounter:    providerErrorCounter,
		settlementTimeHistogram: settlementTimeHistogram,
		trackingStartTimeCache: ttlcache.New(
			ttlcache.WithTTL[string, time.Time](TRACKING_TTL),
		),
		opts: opts,
	}, nil
}

func (m *BridgeMetrics) TrackQuoteRequest() {
	m.quoteRequestCounter.Add(context.Background(), 1, m.opts)
}

func (m *BridgeMetrics) TrackRoutesServed(count int) {
	m.routesServedCounter.Add(context.Background(), int64(count), m.opts)
}

func (m *BridgeMetrics) TrackProviderError() {
	m.providerErrorCounter.Add(context.Background(), 1, m.opts)
}

func (m *BridgeMetrics) StartTracking(txHash string) {
	m.trackingStartTimeCache.Set(txHash, time.Now(), ttlcache.DefaultTTL)
}

func (m *BridgeMetrics) EndTracking(txHash string) {
	startTime := m.trackingStartTimeCache.Get(txHash)
	if startTime == nil {
		log.Warn().Msgf("Tracking start time for %s not found", txHash)
		return
	}

	m.settlementTimeHistogram.Record(context.Background(), time.Since(startTime.Value()).Seconds())
}
