package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCache(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	ctx := context.Background()

	m.OnCacheHit(ctx, "conversion")
	m.OnCacheHit(ctx, "conversion")
	m.OnCacheMiss(ctx, "conversion")
	m.OnCacheSet(ctx, "conversion", 512)

	tests := []struct {
		result string
		want   float64
	}{
		{"hit", 2},
		{"miss", 1},
		{"set", 1},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(m.cacheOps.WithLabelValues("conversion", tt.result)); got != tt.want {
			t.Errorf("cache %s = %v, want %v", tt.result, got, tt.want)
		}
	}
	if got := testutil.ToFloat64(m.cacheBytes.WithLabelValues("conversion")); got != 512 {
		t.Errorf("cache bytes = %v, want 512", got)
	}
}

func TestMetricsStages(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	ctx := context.Background()

	m.OnParseComplete(ctx, "a.obo", 10, time.Millisecond, nil)
	m.OnTranslateComplete(ctx, "a", 40, 3, time.Millisecond, nil)
	m.OnTranslateComplete(ctx, "b", 0, 0, time.Millisecond, errors.New("boom"))
	m.OnSerializeComplete(ctx, "nt", 2048, time.Millisecond, nil)

	if got := testutil.ToFloat64(m.stageErrors.WithLabelValues("translate")); got != 1 {
		t.Errorf("translate errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.warnings); got != 3 {
		t.Errorf("warnings = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.outputBytes.WithLabelValues("nt")); got != 2048 {
		t.Errorf("output bytes = %v, want 2048", got)
	}
}

func TestMetricsHTTP(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.OnResponse(context.Background(), "POST", "/v1/convert", 200, time.Millisecond)
	m.OnResponse(context.Background(), "POST", "/v1/convert", 400, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("POST", "/v1/convert", "200")); got != 1 {
		t.Errorf("200 responses = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.requests); got != 2 {
		t.Errorf("request series = %d, want 2", got)
	}
}
