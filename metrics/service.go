package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type HostMetrics struct {
	startTimeGauge metric.Int64ObservableGauge
}

// NewHostMetrics initializes metrics related to the service host
func NewHostMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*HostMetrics, error) {
	startTime := time.Now().Unix()
	startTimeGauge, err := meter.Int64ObservableGauge(
		"bridge.StartTimeSeconds",
		metric.WithDescription("Start time of the service"),
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			result.Observe(startTime, opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return &HostMetrics{
		startTimeGauge: startTimeGauge,
	}, nil
}

type ServiceMetrics struct {
	*BridgeMetrics
	*HostMetrics
}

// NewServiceMetrics initializes the full metric set with environment and
// instance attributes attached to every measurement
func NewServiceMetrics(ctx context.Context, meter metric.Meter, env, id, version string) (*ServiceMetrics, error) {
	opts := metric.WithAttributeSet(attribute.NewSet(
		attribute.String("env", env),
		attribute.String("id", id),
		attribute.String("version", version),
	))

	bridgeMetrics, err := NewBridgeMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}

	hostMetrics, err := NewHostMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}

	return &ServiceMetrics{
		BridgeMetrics: bridgeMetrics,
		HostMetrics:   hostMetrics,
	}, nil
}
