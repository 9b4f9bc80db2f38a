package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	buildDuration prom.Histogram
	pagesRendered prom.Counter
	assetsCopied  prom.Counter
	warnings      *prom.CounterVec
	rebuilds      prom.Counter
}

// NewPrometheusRecorder constructs and registers the generation metrics on
// reg (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "docsmith",
			Name:      "build_duration_seconds",
			Help:      "Total site generation duration",
			Buckets:   prom.DefBuckets,
		}),
		pagesRendered: prom.NewCounter(prom.CounterOpts{
			Namespace: "docsmith",
			Name:      "pages_rendered_total",
			Help:      "Pages rendered across all builds",
		}),
		assetsCopied: prom.NewCounter(prom.CounterOpts{
			Namespace: "docsmith",
			Name:      "assets_copied_total",
			Help:      "Asset files copied across all builds",
		}),
		warnings: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docsmith",
			Name:      "warnings_total",
			Help:      "Advisory warnings by kind",
		}, []string{"kind"}),
		rebuilds: prom.NewCounter(prom.CounterOpts{
			Namespace: "docsmith",
			Name:      "watch_rebuilds_total",
			Help:      "Rebuilds triggered by source changes in serve mode",
		}),
	}
	reg.MustRegister(pr.buildDuration, pr.pagesRendered, pr.assetsCopied, pr.warnings, pr.rebuilds)
	return pr
}

func (pr *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	pr.buildDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncPagesRendered(n int) {
	pr.pagesRendered.Add(float64(n))
}

func (pr *PrometheusRecorder) IncAssetsCopied(n int) {
	pr.assetsCopied.Add(float64(n))
}

func (pr *PrometheusRecorder) IncWarnings(kind string, n int) {
	pr.warnings.WithLabelValues(kind).Add(float64(n))
}

func (pr *PrometheusRecorder) IncRebuilds() {
	pr.rebuilds.Inc()
}

// HTTPHandler returns an http.Handler serving Prometheus metrics for reg.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
