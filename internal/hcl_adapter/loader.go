package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/synthlab/synthgridgo/internal/bindkey"
	"github.com/synthlab/synthgridgo/internal/config"
	"github.com/synthlab/synthgridgo/internal/ctxlog"
	"github.com/synthlab/synthgridgo/internal/fsutil"
	"github.com/synthlab/synthgridgo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL binding file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// loadState carries the merge in progress across the include graph walk.
type loadState struct {
	parser *hclparse.Parser
	model  *config.Model

	// merged records files already folded in, keyed by absolute path, so a
	// file reachable through several include chains is merged exactly once.
	merged map[string]struct{}
}

// Load orchestrates the entire binding file loading process: it resolves the
// given paths, walks each file's includes depth-first, and merges every
// binding into a flat store with last-write-wins semantics.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no binding file given")
	}

	files, err := l.resolvePaths(paths)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Resolved binding files.", "count", len(files))

	st := &loadState{
		parser: hclparse.NewParser(),
		model:  &config.Model{Bindings: config.NewBindingSet()},
		merged: make(map[string]struct{}),
	}

	for _, file := range files {
		if err := st.mergeFile(ctx, file, nil); err != nil {
			return nil, nil, err
		}
	}

	if st.model.Root.Component == "" {
		return nil, nil, fmt.Errorf("no model block found after merging %d file(s)", len(files))
	}

	logger.Debug("HCL loading complete.",
		"model", st.model.Name,
		"root", st.model.Root.String(),
		"files", len(st.model.Files),
		"bindings", st.model.Bindings.Len(),
	)
	return st.model, NewConverter(), nil
}

// resolvePaths expands directory arguments into their .hcl files. Unlike an
// include, a missing top-level path is an immediate error.
func (l *Loader) resolvePaths(paths []string) ([]string, error) {
	var all []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access binding path %s: %w", path, err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, fmt.Errorf("cannot scan binding directory %s: %w", path, err)
			}
			if len(found) == 0 {
				return nil, fmt.Errorf("no .hcl binding files found in %s", path)
			}
			all = append(all, found...)
		} else {
			all = append(all, path)
		}
	}
	return all, nil
}

// mergeFile folds one binding file into the model: included files first, in
// block order, then the file's own bindings so they override what they
// include. The stack tracks the active include chain for cycle reporting.
func (st *loadState) mergeFile(ctx context.Context, path string, stack []string) error {
	logger := ctxlog.FromContext(ctx)

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("cannot resolve binding file path %s: %w", path, err)
	}
	for _, active := range stack {
		if active == abs {
			chain := append(stack[:len(stack):len(stack)], abs)
			return fmt.Errorf("include cycle detected: %s", strings.Join(chain, " -> "))
		}
	}
	if _, done := st.merged[abs]; done {
		logger.Debug("Binding file already merged, skipping.", "file", path)
		return nil
	}

	hclFile, diags := st.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse binding file %s: %w", path, diags)
	}

	var root schema.BindingFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode binding file %s: %w", path, diags)
	}

	for _, inc := range root.Includes {
		incPath := inc.Path
		if !filepath.IsAbs(incPath) {
			incPath = filepath.Join(filepath.Dir(path), incPath)
		}
		if _, err := os.Stat(incPath); err != nil {
			return fmt.Errorf("%s: include %q: %w", path, inc.Path, err)
		}
		if err := st.mergeFile(ctx, incPath, append(stack, abs)); err != nil {
			return err
		}
	}

	for _, m := range root.Models {
		if err := st.mergeModel(m, path); err != nil {
			return err
		}
	}
	for _, bind := range root.Binds {
		if err := st.mergeBind(ctx, "", bind, path); err != nil {
			return err
		}
	}
	for _, scope := range root.Scopes {
		if err := bindkey.ValidateScope(scope.Name); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, bind := range scope.Binds {
			if err := st.mergeBind(ctx, scope.Name, bind, path); err != nil {
				return err
			}
		}
	}

	st.merged[abs] = struct{}{}
	st.model.Files = append(st.model.Files, filepath.Clean(path))
	return nil
}

// mergeModel applies a model block; a later block replaces an earlier one,
// mirroring the binding store's last-write-wins rule.
func (st *loadState) mergeModel(m *schema.Model, path string) error {
	val, diags := m.Root.Value(nil)
	if diags.HasErrors() {
		return fmt.Errorf("%s: model %q: invalid root expression: %w", path, m.Name, diags)
	}
	if val.Type() != cty.String {
		return fmt.Errorf("%s: model %q: root must be a reference string, got %s",
			path, m.Name, val.Type().FriendlyName())
	}
	ref, err := bindkey.ParseRef(val.AsString())
	if err != nil {
		return fmt.Errorf("%s: model %q: root: %w", path, m.Name, err)
	}
	st.model.Name = m.Name
	st.model.Root = ref
	st.model.RootRange = m.Root.Range()
	return nil
}

// mergeBind folds a single bind block's attributes into the flat store.
func (st *loadState) mergeBind(ctx context.Context, scope string, bind *schema.Bind, path string) error {
	logger := ctxlog.FromContext(ctx)

	if err := bindkey.ValidateComponent(bind.Component); err != nil {
		return fmt.Errorf("%s: bind: %w", path, err)
	}

	attrs, diags := bind.Body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("%s: bind %q: %w", path, bind.Component, diags)
	}

	for name, attr := range attrs {
		if err := bindkey.ValidateParam(name); err != nil {
			return fmt.Errorf("%s: bind %q: %w", path, bind.Component, err)
		}
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			key := bindkey.Key{Scope: scope, Component: bind.Component, Param: name}
			return fmt.Errorf("%s: binding %s: %w", path, key.String(), diags)
		}
		key := bindkey.Key{Scope: scope, Component: bind.Component, Param: name}
		if prev, ok := st.model.Bindings.Get(key); ok {
			logger.Debug("Binding overrides earlier value.",
				"key", key.String(),
				"previous", prev.Range.String(),
				"now", attr.Range.String(),
			)
		}
		st.model.Bindings.Set(key, val, attr.Range)
	}
	return nil
}
