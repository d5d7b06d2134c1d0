package registry

import (
	"context"
	"fmt"

	"github.com/synthlab/synthgridgo/internal/ctxlog"
	"github.com/synthlab/synthgridgo/internal/hcl_adapter"
)

// LoadManifest parses one embedded manifest source and stores its component
// definitions. The filename is used in diagnostics only.
func (r *Registry) LoadManifest(ctx context.Context, filename string, src []byte) error {
	logger := ctxlog.FromContext(ctx)

	defs, err := hcl_adapter.ParseManifestSource(ctx, filename, src)
	if err != nil {
		return err
	}
	for _, def := range defs {
		if _, exists := r.DefinitionRegistry[def.Name]; exists {
			return fmt.Errorf("manifest %s: component '%s' already defined by another manifest", filename, def.Name)
		}
		r.DefinitionRegistry[def.Name] = def
	}

	logger.Debug("Manifest loaded.", "file", filename, "components", len(defs))
	return nil
}
