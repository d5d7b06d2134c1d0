// Package testutil provides the shared harness for integration tests: it
// materializes binding files on disk, runs them through a real app instance,
// and captures the outcome for assertions.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/synthlab/synthgridgo/internal/app"
	"github.com/synthlab/synthgridgo/internal/hcl_adapter"
	"github.com/synthlab/synthgridgo/internal/report"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// LogOutput is everything the app wrote: logs plus, unless quiet, the
	// operative configuration report.
	LogOutput string
	Err       error
	App       *app.App

	// TmpDir is the temporary directory the binding files were written to,
	// for normalizing absolute paths in output assertions.
	TmpDir string
}

// RunIntegrationTest writes the given binding files into a temporary
// directory, loads rootFile through a real app instance with the compiled-in
// component modules, and returns the captured outcome. Checkpoint probing is
// disabled so tests never touch the network; use RunIntegrationTestWithConfig
// to turn it back on against a local server.
func RunIntegrationTest(t *testing.T, files map[string]string, rootFile string) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithConfig(t, files, rootFile, nil)
}

// RunIntegrationTestWithConfig is RunIntegrationTest with a hook to adjust
// the app configuration before the run.
func RunIntegrationTestWithConfig(t *testing.T, files map[string]string, rootFile string, mutate func(*app.AppConfig)) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory for the test.
	tmpDir, err := os.MkdirTemp("", ".tmp-integration-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	// 2. Write all binding files to the temporary directory. The test
	//    provides relative paths (e.g. "models/base.hcl"), which naturally
	//    creates the subdirectory structure within the root tmpDir.
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig := &app.AppConfig{
		ModelPath:       filepath.Join(tmpDir, rootFile),
		LogLevel:        "debug",
		LogFormat:       "text",
		Workers:         4,
		ProbeTimeout:    5 * time.Second,
		SkipCheckpoints: true,
		ReportFormat:    report.FormatText,
	}
	if mutate != nil {
		mutate(appConfig)
	}

	logBuffer := &app.SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, appConfig, hcl_adapter.NewLoader())
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
			TmpDir:    tmpDir,
		}
	}

	runErr := testApp.Run(context.Background())

	if os.Getenv("SGGO_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
		TmpDir:    tmpDir,
	}
}
