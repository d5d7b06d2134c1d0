package checkpoint

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab/synthgridgo/internal/ctxlog"
	"github.com/synthlab/synthgridgo/internal/metrics"
)

func testCtx() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

func newTestProber(t *testing.T, opts Options) (*Prober, *metrics.Metrics) {
	t.Helper()
	m := metrics.New(prometheus.NewRegistry())
	return New(opts, m), m
}

func TestVerifyNothingToDo(t *testing.T) {
	t.Parallel()

	p, _ := newTestProber(t, Options{})
	require.NoError(t, p.Verify(testCtx(), nil))
}

func TestVerifyLocalFiles(t *testing.T) {
	t.Parallel()

	// Arrange
	dir := t.TempDir()
	ckpt := filepath.Join(dir, "model.ckpt")
	require.NoError(t, os.WriteFile(ckpt, []byte("weights"), 0o644))
	missing := filepath.Join(dir, "gone.ckpt")

	p, _ := newTestProber(t, Options{})

	// Act + Assert
	require.NoError(t, p.Verify(testCtx(), []string{ckpt}))

	err := p.Verify(testCtx(), []string{missing})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checkpoint verification failed")
	assert.Contains(t, err.Error(), missing)
}

func TestVerifyRemotePaths(t *testing.T) {
	t.Parallel()

	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/good.ckpt" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p, _ := newTestProber(t, Options{})

	// Act + Assert
	require.NoError(t, p.Verify(testCtx(), []string{srv.URL + "/good.ckpt"}))

	err := p.Verify(testCtx(), []string{srv.URL + "/bad.ckpt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestVerifyResolvesGsPaths(t *testing.T) {
	t.Parallel()

	// Arrange: capture what a gs:// path turns into on the wire.
	var gotMethod, gotPath atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod.Store(r.Method)
		gotPath.Store(r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p, _ := newTestProber(t, Options{Endpoint: srv.URL})

	// Act
	err := p.Verify(testCtx(), []string{"gs://ddsp/crepe/model-tiny.ckpt"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.MethodHead, gotMethod.Load())
	assert.Equal(t, "/ddsp/crepe/model-tiny.ckpt", gotPath.Load())
}

func TestVerifyMalformedGsPath(t *testing.T) {
	t.Parallel()

	p, _ := newTestProber(t, Options{})

	err := p.Verify(testCtx(), []string{"gs://bucket-without-object"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed gs:// path")
}

func TestVerifyUnreachableHost(t *testing.T) {
	t.Parallel()

	// Arrange: a server that no longer accepts connections.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p, _ := newTestProber(t, Options{})

	// Act + Assert
	err := p.Verify(testCtx(), []string{url + "/model.ckpt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute request")
}

func TestVerifyReportsEveryFailure(t *testing.T) {
	t.Parallel()

	// Arrange: one reachable path and two broken ones.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	dir := t.TempDir()
	good := filepath.Join(dir, "present.ckpt")
	require.NoError(t, os.WriteFile(good, []byte("ok"), 0o644))
	missing := filepath.Join(dir, "absent.ckpt")
	forbidden := srv.URL + "/denied.ckpt"

	p, m := newTestProber(t, Options{Workers: 2})

	// Act
	err := p.Verify(testCtx(), []string{good, forbidden, missing})

	// Assert: both failures named, the good path not blamed.
	require.Error(t, err)
	assert.Contains(t, err.Error(), forbidden)
	assert.Contains(t, err.Error(), missing)
	assert.NotContains(t, err.Error(), good)

	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.CheckpointProbes.WithLabelValues("ok")))
	assert.Equal(t, 2.0, promtestutil.ToFloat64(m.CheckpointProbes.WithLabelValues("failed")))
}
