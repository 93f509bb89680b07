package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/matzehuels/wireframe/pkg/observability"
)

const metricsNamespace = appName

// metrics exports pipeline, cache and HTTP events to Prometheus. It is
// registered as the observability hooks by the serve command.
type metrics struct {
	batches       *prometheus.CounterVec
	batchDuration prometheus.Histogram
	pagesRendered prometheus.Counter
	pageDuration  prometheus.Histogram
	omitted       prometheus.Counter

	cacheEvents *prometheus.CounterVec
	cacheBytes  prometheus.Counter

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &metrics{
		batches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "batches_total",
			Help:      "Render batches by outcome.",
		}, []string{"status"}),
		batchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "batch_duration_seconds",
			Help:      "Wall time of render batches.",
			Buckets:   prometheus.DefBuckets,
		}),
		pagesRendered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "pages_rendered_total",
			Help:      "Pages rendered (cache hits excluded).",
		}),
		pageDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "page_render_seconds",
			Help:      "Time to render one page.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		omitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sections_omitted_total",
			Help:      "Sections dropped because they did not fit the canvas.",
		}),
		cacheEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "cache",
			Name:      "events_total",
			Help:      "Cache lookups and writes by key type and result.",
		}, []string{"key_type", "result"}),
		cacheBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "cache",
			Name:      "written_bytes_total",
			Help:      "Bytes written to the cache.",
		}),
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Preview server requests.",
		}, []string{"method", "route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Preview server latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// register installs m as the process-wide observability hooks.
func (m *metrics) register() {
	observability.SetPipelineHooks(m)
	observability.SetCacheHooks(m)
	observability.SetHTTPHooks(m)
}

func (m *metrics) OnBatchStart(context.Context, string, int) {}

func (m *metrics) OnBatchComplete(_ context.Context, _ string, _ int, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.batches.WithLabelValues(status).Inc()
	m.batchDuration.Observe(d.Seconds())
}

func (m *metrics) OnPageRendered(_ context.Context, _ string, _, omitted int, d time.Duration) {
	m.pagesRendered.Inc()
	m.pageDuration.Observe(d.Seconds())
	m.omitted.Add(float64(omitted))
}

func (m *metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "hit").Inc()
}

func (m *metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "miss").Inc()
}

func (m *metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.cacheEvents.WithLabelValues(keyType, "set").Inc()
	m.cacheBytes.Add(float64(size))
}

func (m *metrics) OnCacheError(_ context.Context, keyType string, _ error) {
	m.cacheEvents.WithLabelValues(keyType, "error").Inc()
}

func (m *metrics) OnRequest(_ context.Context, method, route string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

var (
	_ observability.PipelineHooks = (*metrics)(nil)
	_ observability.CacheHooks    = (*metrics)(nil)
	_ observability.HTTPHooks     = (*metrics)(nil)
)
