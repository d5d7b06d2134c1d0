package checkpoint

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/synthlab/synthgridgo/internal/ctxlog"
	"github.com/synthlab/synthgridgo/internal/metrics"
)

// gcsEndpoint is the public HTTPS front of Google Cloud Storage. A
// gs://bucket/object path maps to <endpoint>/bucket/object.
const gcsEndpoint = "https://storage.googleapis.com"

const (
	defaultTimeout = 10 * time.Second
	defaultWorkers = 4
)

// Options configures a Prober. Zero values fall back to defaults.
type Options struct {
	// Timeout bounds a single remote probe.
	Timeout time.Duration
	// Workers is the number of concurrent probes.
	Workers int
	// Endpoint overrides the storage endpoint gs:// paths resolve
	// against. Tests point it at a local server.
	Endpoint string
	// Client overrides the HTTP client used for remote probes.
	Client *http.Client
}

// Prober checks checkpoint paths for reachability.
type Prober struct {
	client   *http.Client
	endpoint string
	workers  int
	metrics  *metrics.Metrics
}

// New creates a Prober that records probe outcomes on m.
func New(opts Options, m *metrics.Metrics) *Prober {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = gcsEndpoint
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	return &Prober{
		client:   client,
		endpoint: strings.TrimSuffix(endpoint, "/"),
		workers:  workers,
		metrics:  m,
	}
}

// Verify probes every path concurrently and returns a single error
// listing all unreachable ones. A nil return means every checkpoint is
// reachable.
func (p *Prober) Verify(ctx context.Context, paths []string) error {
	logger := ctxlog.FromContext(ctx)
	if len(paths) == 0 {
		logger.Debug("No checkpoint paths to verify.")
		return nil
	}

	logger.Debug("Starting checkpoint probes.", "count", len(paths), "workers", p.workers)

	jobs := make(chan int, len(paths))
	failures := make([]error, len(paths))

	workers := p.workers
	if workers > len(paths) {
		workers = len(paths)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(workerID int) {
			defer wg.Done()
			for idx := range jobs {
				failures[idx] = p.probe(ctx, paths[idx], workerID)
			}
		}(i)
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var failed []string
	for i, err := range failures {
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", paths[i], err))
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("checkpoint verification failed:\n- %s", strings.Join(failed, "\n- "))
	}

	logger.Debug("All checkpoints reachable.", "count", len(paths))
	return nil
}

// probe checks one path and records the outcome.
func (p *Prober) probe(ctx context.Context, path string, workerID int) error {
	logger := ctxlog.FromContext(ctx).With("workerID", workerID, "checkpoint", path)

	start := time.Now()
	err := p.probeOne(ctx, path)
	elapsed := time.Since(start)

	p.metrics.RecordCheckpointProbe(err == nil, elapsed.Seconds())

	if err != nil {
		logger.Error("Checkpoint probe failed.", "elapsed", elapsed, "error", err)
		return err
	}
	logger.Debug("Checkpoint reachable.", "elapsed", elapsed)
	return nil
}

func (p *Prober) probeOne(ctx context.Context, path string) error {
	switch {
	case strings.HasPrefix(path, "gs://"):
		url, err := p.objectURL(path)
		if err != nil {
			return err
		}
		return p.head(ctx, url)
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		return p.head(ctx, path)
	default:
		return statFile(path)
	}
}

// objectURL maps gs://bucket/object to the HTTPS URL probed for it.
func (p *Prober) objectURL(path string) (string, error) {
	rest := strings.TrimPrefix(path, "gs://")
	bucket, object, found := strings.Cut(rest, "/")
	if !found || bucket == "" || object == "" {
		return "", fmt.Errorf("malformed gs:// path, want gs://bucket/object")
	}
	return p.endpoint + "/" + bucket + "/" + object, nil
}

func (p *Prober) head(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HEAD %s responded %s", url, resp.Status)
	}
	return nil
}

func statFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	return nil
}
