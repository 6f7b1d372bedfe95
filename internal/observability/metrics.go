package observability

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	metricsOnce    sync.Once
	repoOpsCounter metric.Int64Counter
	relayCounter   metric.Int64Counter
)

func initMetrics() {
	meter := otel.Meter(tracerName)
	repoOpsCounter, _ = meter.Int64Counter(
		"datapusher.repository.operations",
		metric.WithDescription("Repository operations by entity, operation and outcome"),
	)
	relayCounter, _ = meter.Int64Counter(
		"datapusher.relay.attempts",
		metric.WithDescription("Relay attempts by HTTP method and outcome"),
	)
}

// RecordRepositoryOperation counts a single repository call outcome.
// Outcome is one of success, not_found, conflict, error.
func RecordRepositoryOperation(ctx context.Context, entity, operation, outcome string) {
	metricsOnce.Do(initMetrics)
	repoOpsCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("entity", entity),
			attribute.String("operation", operation),
			attribute.String("outcome", outcome),
		),
	)
}

// RecordRelayAttempt counts one relay attempt during fan-out.
// Outcome is one of success, failure, skipped.
func RecordRelayAttempt(ctx context.Context, method, outcome string) {
	metricsOnce.Do(initMetrics)
	relayCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("outcome", outcome),
		),
	)
}
