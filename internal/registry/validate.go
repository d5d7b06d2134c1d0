package registry

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/synthlab/synthgridgo/internal/bindkey"
	"github.com/synthlab/synthgridgo/internal/config"
	"github.com/synthlab/synthgridgo/internal/ctxlog"
)

// ValidateRegistry performs a strict parity check between manifests and Go
// code. Every manifest needs a Go handler and vice versa, every manifest
// param needs a matching struct field, and the declared types must agree
// with the Go field types.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string

	for _, name := range r.Components() {
		if _, ok := r.HandlerRegistry[name]; !ok {
			errs = append(errs, fmt.Sprintf("component '%s': manifest has no registered Go handler", name))
		}
	}

	handlerNames := make([]string, 0, len(r.HandlerRegistry))
	for name := range r.HandlerRegistry {
		handlerNames = append(handlerNames, name)
	}
	sort.Strings(handlerNames)
	for _, name := range handlerNames {
		if _, ok := r.DefinitionRegistry[name]; !ok {
			errs = append(errs, fmt.Sprintf("component '%s': Go handler has no manifest", name))
		}
	}

	for _, name := range r.Components() {
		def := r.DefinitionRegistry[name]
		handler, ok := r.HandlerRegistry[name]
		if !ok {
			continue
		}
		errs = append(errs, validateParity(ctx, name, def, handler)...)
		errs = append(errs, r.validateRefDefaults(name, def)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// validateParity checks one component's manifest against its params struct.
func validateParity(ctx context.Context, name string, def *config.ComponentDefinition, handler *RegisteredComponent) []string {
	var errs []string

	if handler.ParamsType == nil {
		if len(def.Params) > 0 {
			errs = append(errs, fmt.Sprintf("component '%s': manifest declares params, but Go handler has no params struct", name))
		}
		return errs
	}

	goParams := make(map[string]reflect.StructField)
	for i := 0; i < handler.ParamsType.NumField(); i++ {
		field := handler.ParamsType.Field(i)
		if !field.IsExported() {
			continue
		}
		tagName := strings.Split(field.Tag.Get("sggo"), ",")[0]
		if tagName != "" && tagName != "-" {
			goParams[tagName] = field
		}
	}

	goNames := make([]string, 0, len(goParams))
	for pname := range goParams {
		goNames = append(goNames, pname)
	}
	sort.Strings(goNames)
	for _, pname := range goNames {
		if _, ok := def.Params[pname]; !ok {
			errs = append(errs, fmt.Sprintf("component '%s': Go struct has field for param '%s' which is not declared in the manifest", name, pname))
		}
	}

	defNames := make([]string, 0, len(def.Params))
	for pname := range def.Params {
		defNames = append(defNames, pname)
	}
	sort.Strings(defNames)
	for _, pname := range defNames {
		paramDef := def.Params[pname]
		goField, ok := goParams[pname]
		if !ok {
			errs = append(errs, fmt.Sprintf("component '%s': manifest declares param '%s' which is not found in the Go struct", name, pname))
			continue
		}
		if msg := checkParamType(ctx, name, paramDef, goField); msg != "" {
			errs = append(errs, msg)
		}
	}
	return errs
}

// checkParamType compares one declared param type with its Go field type.
// Reference params map to string fields; everything else goes through the
// implied cty type of the field.
func checkParamType(ctx context.Context, name string, def *config.ParamDefinition, goField reflect.StructField) string {
	logger := ctxlog.FromContext(ctx)
	switch {
	case def.Ref:
		if goField.Type.Kind() != reflect.String {
			return fmt.Sprintf("component '%s', param '%s': component-typed params need a string field, got %s", name, def.Name, goField.Type)
		}
		return ""
	case def.RefList:
		if goField.Type != reflect.TypeOf([]string(nil)) {
			return fmt.Sprintf("component '%s', param '%s': list(component) params need a []string field, got %s", name, def.Name, goField.Type)
		}
		return ""
	case def.Type.Equals(cty.DynamicPseudoType):
		logger.Warn("Manifest param uses 'type = any', which disables static type checking.", "component", name, "param", def.Name)
		return ""
	}

	goFieldType, err := gocty.ImpliedType(reflect.Zero(goField.Type).Interface())
	if err != nil {
		return fmt.Sprintf("component '%s', param '%s': could not imply cty type from Go field type %s: %v", name, def.Name, goField.Type, err)
	}
	if !def.Type.Equals(goFieldType) {
		return fmt.Sprintf("component '%s', param '%s': type mismatch, manifest requires '%s' but Go field '%s' provides '%s'",
			name, def.Name, def.Type.FriendlyName(), goField.Name, goFieldType.FriendlyName())
	}
	return ""
}

// validateRefDefaults checks that reference-typed defaults point at
// registered components. It can only run once every manifest is loaded.
func (r *Registry) validateRefDefaults(name string, def *config.ComponentDefinition) []string {
	var errs []string

	pnames := make([]string, 0, len(def.Params))
	for pname := range def.Params {
		pnames = append(pnames, pname)
	}
	sort.Strings(pnames)

	for _, pname := range pnames {
		paramDef := def.Params[pname]
		if paramDef.Default == nil || (!paramDef.Ref && !paramDef.RefList) {
			continue
		}
		var targets []string
		if paramDef.Ref {
			targets = append(targets, paramDef.Default.AsString())
		} else {
			it := paramDef.Default.ElementIterator()
			for it.Next() {
				_, elem := it.Element()
				targets = append(targets, elem.AsString())
			}
		}
		for _, target := range targets {
			ref, err := bindkey.ParseRef(target)
			if err != nil {
				errs = append(errs, fmt.Sprintf("component '%s', param '%s': %v", name, pname, err))
				continue
			}
			if _, ok := r.DefinitionRegistry[ref.Component]; !ok {
				errs = append(errs, fmt.Sprintf("component '%s', param '%s': default references unknown component '%s'", name, pname, ref.Component))
			}
		}
	}
	return errs
}
