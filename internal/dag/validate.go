package dag

import (
	"context"
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/synthlab/synthgridgo/internal/bindkey"
	"github.com/synthlab/synthgridgo/internal/config"
	"github.com/synthlab/synthgridgo/internal/ctxlog"
	"github.com/synthlab/synthgridgo/internal/registry"
)

// ValidateStatic checks the merged binding store against the registry before
// any construction: every bound component and param must exist, and every
// "@..." reference value, including those nested inside lists and objects,
// must point at a registered component. Binds on components the selected
// root never reaches are checked all the same.
func ValidateStatic(ctx context.Context, cfg *config.Model, reg *registry.Registry) error {
	logger := ctxlog.FromContext(ctx)
	var errs []string

	if _, ok := reg.Definition(cfg.Root.Component); !ok {
		errs = append(errs, fmt.Sprintf("model root %s (%s): unknown component '%s'",
			cfg.Root.Marker(), cfg.RootRange.String(), cfg.Root.Component))
	}

	for _, key := range cfg.Bindings.Keys() {
		b, _ := cfg.Bindings.Get(key)

		def, ok := reg.Definition(key.Component)
		if !ok {
			errs = append(errs, fmt.Sprintf("binding %s (%s): unknown component '%s'",
				key.String(), b.Range.String(), key.Component))
			continue
		}
		paramDef, ok := def.Params[key.Param]
		if !ok {
			errs = append(errs, fmt.Sprintf("binding %s (%s): component '%s' has no param '%s'",
				key.String(), b.Range.String(), key.Component, key.Param))
			continue
		}

		if paramDef.Ref || paramDef.RefList {
			errs = append(errs, checkRefShape(key, b, paramDef)...)
		}
		errs = append(errs, checkEmbeddedRefs(reg, key, b)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("model validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Static validation passed.", "bindings", cfg.Bindings.Len())
	return nil
}

// checkRefShape ensures a reference-typed param is bound to "@..." strings,
// not to plain values that would only fail later during construction.
func checkRefShape(key bindkey.Key, b *config.Binding, def *config.ParamDefinition) []string {
	if b.Value.IsNull() {
		return nil
	}
	badShape := func() []string {
		return []string{fmt.Sprintf("binding %s (%s): param '%s' takes a \"@component\" reference",
			key.String(), b.Range.String(), key.Param)}
	}

	if def.Ref {
		if b.Value.Type() != cty.String || !bindkey.IsRef(b.Value.AsString()) {
			return badShape()
		}
		return nil
	}

	if !b.Value.Type().IsTupleType() && !b.Value.Type().IsListType() {
		return badShape()
	}
	var errs []string
	it := b.Value.ElementIterator()
	for it.Next() {
		_, elem := it.Element()
		if elem.IsNull() || elem.Type() != cty.String || !bindkey.IsRef(elem.AsString()) {
			errs = append(errs, badShape()...)
			break
		}
	}
	return errs
}

// checkEmbeddedRefs walks a bound value and verifies every "@..." string in
// it, wherever it is nested, names a registered component. This is what
// catches a misspelled processor reference deep inside a dag node list.
func checkEmbeddedRefs(reg *registry.Registry, key bindkey.Key, b *config.Binding) []string {
	var errs []string
	_ = cty.Walk(b.Value, func(path cty.Path, v cty.Value) (bool, error) {
		if v.IsNull() || !v.IsKnown() || v.Type() != cty.String {
			return true, nil
		}
		s := v.AsString()
		if !bindkey.IsRef(s) {
			return true, nil
		}
		ref, err := bindkey.ParseRef(s)
		if err != nil {
			errs = append(errs, fmt.Sprintf("binding %s (%s): %v", key.String(), b.Range.String(), err))
			return true, nil
		}
		if _, ok := reg.Definition(ref.Component); !ok {
			errs = append(errs, fmt.Sprintf("binding %s (%s): references unknown component '%s'",
				key.String(), b.Range.String(), ref.Component))
		}
		return true, nil
	})
	return errs
}
