package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synthlab/synthgridgo/internal/testutil"
)

func TestErrorHandling_UnknownParamIsRejected(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A typo in a param name must fail validation instead of being silently
	// dropped. "vlaue" is not in the SpectralLoss manifest.
	files := map[string]string{
		"model.hcl": `
			model "m" { root = "@SpectralLoss" }

			bind "SpectralLoss" {
				loss_type = "L2"
				vlaue     = 1.0
			}
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, "model.hcl")

	// --- Assert ---
	require.Error(t, result.Err, "expected the run to fail on an unknown param")
	require.Contains(t, result.Err.Error(), "component 'SpectralLoss' has no param 'vlaue'")
	require.Contains(t, result.Err.Error(), "model.hcl", "error should point at the offending file")
}
