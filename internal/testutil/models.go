package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// modelsDir locates the repository's models directory relative to this file.
func modelsDir() string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "models")
}

// ShippedModel reads one of the repository's shipped model binding files, so
// integration tests can exercise the real artifacts rather than copies that
// could drift.
func ShippedModel(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(modelsDir(), name))
	require.NoError(t, err, "failed to read shipped model file %s", name)
	return string(data)
}
