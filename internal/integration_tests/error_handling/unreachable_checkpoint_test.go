package integration_tests

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synthlab/synthgridgo/internal/app"
	"github.com/synthlab/synthgridgo/internal/testutil"
)

func TestErrorHandling_UnreachableCheckpointFailsLoad(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A live server that answers 404 for every probe stands in for a missing
	// remote checkpoint object.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	checkpointURL := srv.URL + "/crepe/model-tiny.ckpt"
	files := map[string]string{
		"model.hcl": fmt.Sprintf(`
			model "m" { root = "@PretrainedCREPEEmbeddingLoss" }

			bind "PretrainedCREPEEmbeddingLoss" {
				checkpoint = %q
			}
		`, checkpointURL),
	}

	// --- Act ---
	result := testutil.RunIntegrationTestWithConfig(t, files, "model.hcl", func(cfg *app.AppConfig) {
		cfg.SkipCheckpoints = false
	})

	// --- Assert ---
	require.Error(t, result.Err, "expected the run to fail on an unreachable checkpoint")
	require.Contains(t, result.Err.Error(), "checkpoint verification failed")
	require.Contains(t, result.Err.Error(), checkpointURL, "error should name the unreachable path")
}

func TestErrorHandling_MissingLocalCheckpointFailsLoad(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A bare path is probed as a local file.
	files := map[string]string{
		"model.hcl": `
			model "m" { root = "@PretrainedCREPEEmbeddingLoss" }

			bind "PretrainedCREPEEmbeddingLoss" {
				checkpoint = "checkpoints/never_written.ckpt"
			}
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTestWithConfig(t, files, "model.hcl", func(cfg *app.AppConfig) {
		cfg.SkipCheckpoints = false
	})

	// --- Assert ---
	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "checkpoint verification failed")
	require.Contains(t, result.Err.Error(), "checkpoints/never_written.ckpt")
}
