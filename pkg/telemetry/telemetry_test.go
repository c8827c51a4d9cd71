package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDisabled(t *testing.T) {
	tel, err := Init(context.Background(), &Config{Enabled: false, ServiceName: "test-service"})
	require.NoError(t, err)
	require.NotNil(t, tel)

	// Disabled telemetry still hands out working no-op instruments
	ctx, span := StartSpan(context.Background(), "test.span")
	assert.NotNil(t, ctx)
	assert.NotNil(t, span)
	span.End()

	assert.NoError(t, tel.Shutdown(context.Background()))
}

func TestInitNilConfig(t *testing.T) {
	tel, err := Init(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, tel)
}

func TestGetMeterFallback(t *testing.T) {
	globalTelemetry = nil
	assert.NotNil(t, GetMeter())
}

func TestNewCounter(t *testing.T) {
	_, err := Init(context.Background(), &Config{Enabled: false, ServiceName: "test-service"})
	require.NoError(t, err)

	counter, err := NewCounter(MetricOpts{
		Name:        "test_counter_total",
		Description: "test counter",
		Unit:        "{item}",
	})
	require.NoError(t, err)

	// No-op add must not panic
	counter.Inc(context.Background(), RouteAttr("/test"))
	counter.Add(context.Background(), 5, StatusCodeAttr(200))
}

func TestNewHistogram(t *testing.T) {
	_, err := Init(context.Background(), &Config{Enabled: false, ServiceName: "test-service"})
	require.NoError(t, err)

	histogram, err := NewHistogram(MetricOpts{
		Name:        "test_duration_seconds",
		Description: "test histogram",
		Unit:        "s",
	})
	require.NoError(t, err)

	histogram.Record(context.Background(), 0.42, MethodAttr("GET"))
}
