package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder_Counters(t *testing.T) {
	reg := prom.NewRegistry()
	rec := NewPrometheusRecorder(reg)

	rec.IncPagesRendered(3)
	rec.IncAssetsCopied(2)
	rec.IncWarnings("broken_link", 4)
	rec.IncRebuilds()
	rec.ObserveBuildDuration(250 * time.Millisecond)

	require.Equal(t, 3.0, testutil.ToFloat64(rec.pagesRendered))
	require.Equal(t, 2.0, testutil.ToFloat64(rec.assetsCopied))
	require.Equal(t, 4.0, testutil.ToFloat64(rec.warnings.WithLabelValues("broken_link")))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.rebuilds))
}

func TestNoopRecorder_Safe(t *testing.T) {
	var rec Recorder = NoopRecorder{}
	rec.ObserveBuildDuration(time.Second)
	rec.IncPagesRendered(1)
	rec.IncAssetsCopied(1)
	rec.IncWarnings("duplicate_id", 1)
	rec.IncRebuilds()
}
