package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/synthlab/synthgridgo/internal/testutil"
)

func TestErrorHandling_BindOnUnknownComponent(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// "Wobble" is not a registered component, so static validation must
	// reject the load even though the model root itself is fine.
	files := map[string]string{
		"model.hcl": `
			model "m" { root = "@SpectralLoss" }

			bind "Wobble" {
				amount = 3
			}
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, "model.hcl")

	// --- Assert ---
	require.Error(t, result.Err, "expected the run to fail on an unregistered component")
	require.Contains(t, result.Err.Error(), "unknown component 'Wobble'")
	require.Contains(t, result.Err.Error(), "Wobble.amount", "error should name the offending binding key")
}

func TestErrorHandling_RootOnUnknownComponent(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"model.hcl": `
			model "m" { root = "@Phantom" }
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, "model.hcl")

	// --- Assert ---
	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "model root @Phantom")
	require.Contains(t, result.Err.Error(), "unknown component 'Phantom'")
}

func TestErrorHandling_ReferenceToUnknownComponent(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The reference value itself names a component that does not exist. The
	// walk over bound values must catch it before any construction.
	files := map[string]string{
		"model.hcl": `
			model "m" { root = "@Autoencoder" }

			bind "Autoencoder" {
				decoder         = "@NoSuchDecoder"
				processor_group = "@ProcessorGroup"
			}
		`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, "model.hcl")

	// --- Assert ---
	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "references unknown component 'NoSuchDecoder'")
}
