package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// StorageMetricsMeterName is the name used for the storage metrics meter
	StorageMetricsMeterName = "github.com/modelreg/model-registry-api/storage"

	// HealthMetricsMeterName is the name used for the health metrics meter
	HealthMetricsMeterName = "github.com/modelreg/model-registry-api/health"
)

// StorageMetrics holds the OpenTelemetry instruments for model storage metrics
type StorageMetrics struct {
	operationDuration metric.Float64Histogram
	modelsStored      metric.Int64Counter
}

// NewStorageMetrics creates a new StorageMetrics instance with the given meter provider.
// If provider is nil, it returns nil (no-op metrics).
func NewStorageMetrics(provider metric.MeterProvider) (*StorageMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(StorageMetricsMeterName)

	operationDuration, err := meter.Float64Histogram(
		"model_registry_storage_operation_duration_seconds",
		metric.WithDescription("Duration of model storage operations in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120),
	)
	if err != nil {
		return nil, err
	}

	modelsStored, err := meter.Int64Counter(
		"model_registry_models_stored_total",
		metric.WithDescription("Total number of model store operations"),
		metric.WithUnit("{model}"),
	)
	if err != nil {
		return nil, err
	}

	return &StorageMetrics{
		operationDuration: operationDuration,
		modelsStored:      modelsStored,
	}, nil
}

// RecordOperation records the duration and outcome of a storage operation
func (m *StorageMetrics) RecordOperation(ctx context.Context, operation string, duration time.Duration, success bool) {
	if m == nil || m.operationDuration == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("operation", operation),
		attribute.Bool("success", success),
	}

	m.operationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordModelStored records the outcome of a model store operation.
// Duplicate stores are recorded with stored=false so the counter
// distinguishes accepted uploads from refused ones.
func (m *StorageMetrics) RecordModelStored(ctx context.Context, database, collection string, stored bool) {
	if m == nil || m.modelsStored == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("database", database),
		attribute.String("collection", collection),
		attribute.Bool("stored", stored),
	}

	m.modelsStored.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// HealthMetrics holds the OpenTelemetry instruments for backend health metrics
type HealthMetrics struct {
	mongoUp metric.Int64Gauge
}

// NewHealthMetrics creates a new HealthMetrics instance with the given meter provider.
// If provider is nil, it returns nil (no-op metrics).
func NewHealthMetrics(provider metric.MeterProvider) (*HealthMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(HealthMetricsMeterName)

	mongoUp, err := meter.Int64Gauge(
		"model_registry_mongo_up",
		metric.WithDescription("Whether the MongoDB backend answers ping (1) or not (0)"),
	)
	if err != nil {
		return nil, err
	}

	return &HealthMetrics{
		mongoUp: mongoUp,
	}, nil
}

// RecordMongoUp records the current MongoDB reachability state
func (m *HealthMetrics) RecordMongoUp(ctx context.Context, up bool) {
	if m == nil || m.mongoUp == nil {
		return
	}

	value := int64(0)
	if up {
		value = 1
	}

	m.mongoUp.Record(ctx, value)
}
