package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synthlab/synthgridgo/internal/testutil"
)

func TestErrorHandling_MissingModelBlock(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Bindings alone are not a loadable model; some file in the merge must
	// name the root.
	files := map[string]string{
		"model.hcl": `
			bind "SpectralLoss" {
				loss_type = "L1"
			}
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, "model.hcl")

	// --- Assert ---
	require.Error(t, result.Err, "expected the run to fail without a model block")
	require.Contains(t, result.Err.Error(), "no model block found")
}

func TestErrorHandling_MissingRootModelFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"other.hcl": `model "m" { root = "@SpectralLoss" }`,
	}

	// --- Act ---
	// The configured root file was never written.
	result := testutil.RunIntegrationTest(t, files, "model.hcl")

	// --- Assert ---
	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "cannot access binding path")
}
