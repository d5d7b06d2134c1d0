// Package report renders the operative configuration of a loaded model:
// every merged binding with its final value and the source location that
// last wrote it, in a deterministic order.
package report

import (
	"fmt"
	"io"

	"github.com/synthlab/synthgridgo/internal/config"
)

// Format selects the report output format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a flag value to a Format. The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "text":
		return FormatText, nil
	case "yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown report format %q (want text or yaml)", s)
	}
}

// Write renders the operative configuration of cfg to w.
func Write(w io.Writer, format Format, cfg *config.Model, conv config.Converter) error {
	switch format {
	case FormatYAML:
		return writeYAML(w, cfg, conv)
	default:
		return writeText(w, cfg)
	}
}
