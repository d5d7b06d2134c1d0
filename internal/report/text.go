package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/synthlab/synthgridgo/internal/config"
)

// writeText renders the operative configuration as commented binding
// lines. Each line is valid binding syntax, so the report doubles as a
// snapshot of what was actually in effect.
func writeText(w io.Writer, cfg *config.Model) error {
	keys := cfg.Bindings.Keys()

	fmt.Fprintf(w, "# Operative configuration for model %q\n", cfg.Name)
	fmt.Fprintf(w, "# root = %s\n", cfg.Root.Marker())
	fmt.Fprintf(w, "# %d file(s) merged, %d binding(s)\n", len(cfg.Files), len(keys))

	scope := ""
	for i, key := range keys {
		if i == 0 || key.Scope != scope {
			scope = key.Scope
			fmt.Fprintln(w)
			if scope != "" {
				fmt.Fprintf(w, "# scope %q\n", scope)
			}
		}

		b, ok := cfg.Bindings.Get(key)
		if !ok {
			continue
		}
		value := strings.TrimSpace(string(hclwrite.TokensForValue(b.Value).Bytes()))
		fmt.Fprintf(w, "%s = %s  # %s:%d\n", key, value, b.Range.Filename, b.Range.Start.Line)
	}
	return nil
}
