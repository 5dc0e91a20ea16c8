package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *metric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestObservability_RecordsInstruments(t *testing.T) {
	reader := metric.NewManualReader()
	obs := NewWithReader("rejection-test", reader)
	ctx := context.Background()

	obs.RecordJobProcessed(ctx, "compose-rejection-email", "success")
	obs.RecordJobProcessed(ctx, "compose-rejection-email", "success")
	obs.RecordJobDuration(ctx, "compose-rejection-email", 12*time.Millisecond, "success")
	obs.RecordDraft(ctx, "not_ai_safety", false)

	metrics := collect(t, reader)

	processed, ok := metrics["jobs.processed"]
	require.True(t, ok)
	sum, ok := processed.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)

	_, ok = metrics["jobs.duration"]
	assert.True(t, ok)
	_, ok = metrics["rejection.drafts"]
	assert.True(t, ok)
}

func TestObservability_NilSafe(t *testing.T) {
	var obs *Observability
	ctx := context.Background()

	assert.NotPanics(t, func() {
		obs.RecordJobProcessed(ctx, "compose-rejection-email", "failed")
		obs.RecordJobDuration(ctx, "compose-rejection-email", time.Second, "failed")
		obs.RecordDraft(ctx, "", true)
		obs.Shutdown()
		(&Observability{}).RecordDraft(ctx, "x", false)
	})
}
