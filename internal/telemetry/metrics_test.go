package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestNewStorageMetrics(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when provider is nil", func(t *testing.T) {
		t.Parallel()

		metrics, err := NewStorageMetrics(nil)
		require.NoError(t, err)
		assert.Nil(t, metrics)
	})

	t.Run("creates metrics with SDK provider", func(t *testing.T) {
		t.Parallel()

		mp := sdkmetric.NewMeterProvider()
		defer func() { _ = mp.Shutdown(context.Background()) }()

		metrics, err := NewStorageMetrics(mp)
		require.NoError(t, err)
		assert.NotNil(t, metrics)
		assert.NotNil(t, metrics.operationDuration)
		assert.NotNil(t, metrics.modelsStored)
	})
}

func TestStorageMetrics_RecordOperation(t *testing.T) {
	t.Parallel()

	t.Run("no-op when metrics is nil", func(t *testing.T) {
		t.Parallel()

		var metrics *StorageMetrics
		// Should not panic
		metrics.RecordOperation(context.Background(), "store", time.Second, true)
	})

	t.Run("records operation duration with attributes", func(t *testing.T) {
		t.Parallel()

		reader := sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		defer func() { _ = mp.Shutdown(context.Background()) }()

		metrics, err := NewStorageMetrics(mp)
		require.NoError(t, err)
		require.NotNil(t, metrics)

		metrics.RecordOperation(context.Background(), "store", 1500*time.Millisecond, true)
		metrics.RecordOperation(context.Background(), "delete", 500*time.Millisecond, false)

		var rm metricdata.ResourceMetrics
		err = reader.Collect(context.Background(), &rm)
		require.NoError(t, err)

		require.NotEmpty(t, rm.ScopeMetrics)

		var foundScope bool
		for _, scope := range rm.ScopeMetrics {
			if scope.Scope.Name == StorageMetricsMeterName {
				foundScope = true
				assert.NotEmpty(t, scope.Metrics)

				for _, m := range scope.Metrics {
					if m.Name == "model_registry_storage_operation_duration_seconds" {
						hist, ok := m.Data.(metricdata.Histogram[float64])
						require.True(t, ok, "expected histogram data type")
						assert.NotEmpty(t, hist.DataPoints)
					}
				}
			}
		}
		assert.True(t, foundScope, "expected to find storage metrics scope")
	})
}

func TestStorageMetrics_RecordModelStored(t *testing.T) {
	t.Parallel()

	t.Run("no-op when metrics is nil", func(t *testing.T) {
		t.Parallel()

		var metrics *StorageMetrics
		metrics.RecordModelStored(context.Background(), "model_registry", "llm", true)
	})

	t.Run("counts stored and refused uploads separately", func(t *testing.T) {
		t.Parallel()

		reader := sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		defer func() { _ = mp.Shutdown(context.Background()) }()

		metrics, err := NewStorageMetrics(mp)
		require.NoError(t, err)

		metrics.RecordModelStored(context.Background(), "model_registry", "llm", true)
		metrics.RecordModelStored(context.Background(), "model_registry", "llm", false)

		var rm metricdata.ResourceMetrics
		err = reader.Collect(context.Background(), &rm)
		require.NoError(t, err)

		var found bool
		for _, scope := range rm.ScopeMetrics {
			for _, m := range scope.Metrics {
				if m.Name == "model_registry_models_stored_total" {
					found = true
					sum, ok := m.Data.(metricdata.Sum[int64])
					require.True(t, ok, "expected sum data type")
					// One data point per attribute set (stored=true, stored=false)
					assert.Len(t, sum.DataPoints, 2)
				}
			}
		}
		assert.True(t, found, "expected to find models stored counter")
	})
}

func TestHealthMetrics_RecordMongoUp(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when provider is nil", func(t *testing.T) {
		t.Parallel()

		metrics, err := NewHealthMetrics(nil)
		require.NoError(t, err)
		assert.Nil(t, metrics)
	})

	t.Run("no-op when metrics is nil", func(t *testing.T) {
		t.Parallel()

		var metrics *HealthMetrics
		metrics.RecordMongoUp(context.Background(), true)
	})

	t.Run("records gauge value", func(t *testing.T) {
		t.Parallel()

		reader := sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		defer func() { _ = mp.Shutdown(context.Background()) }()

		metrics, err := NewHealthMetrics(mp)
		require.NoError(t, err)

		metrics.RecordMongoUp(context.Background(), true)

		var rm metricdata.ResourceMetrics
		err = reader.Collect(context.Background(), &rm)
		require.NoError(t, err)

		var found bool
		for _, scope := range rm.ScopeMetrics {
			if scope.Scope.Name == HealthMetricsMeterName {
				for _, m := range scope.Metrics {
					if m.Name == "model_registry_mongo_up" {
						found = true
						gauge, ok := m.Data.(metricdata.Gauge[int64])
						require.True(t, ok, "expected gauge data type")
						require.NotEmpty(t, gauge.DataPoints)
						assert.Equal(t, int64(1), gauge.DataPoints[0].Value)
					}
				}
			}
		}
		assert.True(t, found, "expected to find mongo up gauge")
	})
}
