package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/synthlab/synthgridgo/internal/app"
	"github.com/synthlab/synthgridgo/internal/report"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated AppConfig,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.AppConfig, bool, error) {
	flagSet := flag.NewFlagSet("synthgridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
SynthGridGo - A declarative configuration loader for neural audio synthesis models.

Usage:
  synthgridgo [options] [MODEL_PATH]

Arguments:
  MODEL_PATH
    Path to the root .hcl model binding file.

Options:
`)
		flagSet.PrintDefaults()
	}

	modelFlag := flagSet.String("model", "", "Path to the root model binding file.")
	mFlag := flagSet.String("m", "", "Path to the root model binding file (shorthand).")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 4, "Number of concurrent checkpoint probes.")
	probeTimeoutFlag := flagSet.Duration("probe-timeout", 10*time.Second, "Timeout for each checkpoint reachability probe.")
	skipCheckpointsFlag := flagSet.Bool("skip-checkpoints", false, "Skip checkpoint reachability verification.")
	formatFlag := flagSet.String("format", "text", "Operative configuration output format. Options: 'text' or 'yaml'.")
	quietFlag := flagSet.Bool("quiet", false, "Suppress the operative configuration output.")
	qFlag := flagSet.Bool("q", false, "Suppress the operative configuration output (shorthand).")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *modelFlag != "" {
		path = *modelFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *workersFlag < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid workers: must be at least 1"}
	}

	if *probeTimeoutFlag <= 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid probe-timeout: must be positive"}
	}

	reportFormat, err := report.ParseFormat(*formatFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &app.AppConfig{
		ModelPath:       path,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		Workers:         *workersFlag,
		ProbeTimeout:    *probeTimeoutFlag,
		SkipCheckpoints: *skipCheckpointsFlag,
		ReportFormat:    reportFormat,
		Quiet:           *quietFlag || *qFlag,
	}, false, nil
}
