package cli

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/wireframe/pkg/cache"
	wfio "github.com/matzehuels/wireframe/pkg/io"
	"github.com/matzehuels/wireframe/pkg/observability"
	"github.com/matzehuels/wireframe/pkg/pipeline"
	"github.com/matzehuels/wireframe/pkg/render/wireframe"
)

func newTestServer(t *testing.T) (*httptest.Server, *metrics) {
	t.Helper()
	doc, err := wfio.ReadDocument(strings.NewReader(testDocument), wfio.FormatJSON)
	require.NoError(t, err)

	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(fc, nil, logger)

	opts := pipeline.Options{Logger: logger}
	require.NoError(t, opts.ValidateAndSetDefaults())

	reg := prometheus.NewRegistry()
	m := newMetrics(reg)
	m.register()
	t.Cleanup(observability.Reset)

	preview := newPreviewServer(doc, wireframe.ResolveNav(nil, doc), runner, opts, logger)
	srv := httptest.NewServer(preview.routes(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	t.Cleanup(srv.Close)
	return srv, m
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestServeIndex(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := get(t, srv.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, `href="/pages/home.svg"`)
	assert.Contains(t, body, `href="/pages/about-us-2.svg"`)
	assert.Contains(t, body, "Navigation (pages)")
}

func TestServePage(t *testing.T) {
	srv, m := newTestServer(t)

	resp, body := get(t, srv.URL+"/pages/about-us.svg")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))
	assert.True(t, strings.HasPrefix(body, "<svg"))

	resp, again := get(t, srv.URL+"/pages/about-us")
	assert.Equal(t, "HIT", resp.Header.Get("X-Cache"))
	assert.Equal(t, body, again)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.pagesRendered))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheEvents.WithLabelValues("artifact", "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/pages/{file}", "200")))
}

func TestServeNotFound(t *testing.T) {
	srv, m := newTestServer(t)

	resp, _ := get(t, srv.URL+"/pages/missing.svg")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/pages/{file}", "404")))
}

func TestServeBadPageName(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := get(t, srv.URL+"/pages/About.svg")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServeHealthAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", body)

	get(t, srv.URL+"/pages/home.svg")
	resp, body = get(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "wireframe_pages_rendered_total 1")
	assert.Contains(t, body, `wireframe_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}
