package hcl_adapter

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/synthlab/synthgridgo/internal/bindkey"
	"github.com/synthlab/synthgridgo/internal/config"
	"github.com/synthlab/synthgridgo/internal/ctxlog"
)

// DecodeParams iterates through the fields of a component's params struct,
// finds the corresponding merged bindings, and uses the recursive `decode`
// helper to populate them. Bound values are converted to the manifest's
// declared type first, so a mismatch is reported against the qualified key
// with both type names.
func (c *Converter) DecodeParams(
	ctx context.Context,
	target any,
	bound map[string]*config.Binding,
	def *config.ComponentDefinition,
	instance bindkey.Ref,
) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding params.", "instance", instance.String())

	structVal := reflect.ValueOf(target)
	if structVal.Kind() != reflect.Ptr || structVal.IsNil() {
		return fmt.Errorf("params target must be a non-nil pointer")
	}
	structVal = structVal.Elem()
	structType := structVal.Type()

	for i := 0; i < structType.NumField(); i++ {
		fieldDef := structType.Field(i)
		fieldVal := structVal.Field(i)

		if !fieldDef.IsExported() || !fieldVal.CanSet() {
			continue
		}

		tagName := strings.Split(fieldDef.Tag.Get("sggo"), ",")[0]
		if tagName == "" || tagName == "-" {
			continue
		}

		paramDef, ok := def.Params[tagName]
		if !ok {
			continue
		}
		key := bindkey.Key{Scope: instance.Scope, Component: instance.Component, Param: tagName}

		var valueToDecode cty.Value
		if b, provided := bound[tagName]; provided {
			converted, err := convertBoundValue(b.Value, paramDef)
			if err != nil {
				return fmt.Errorf("binding %s (%s): %w", key.String(), b.Range.String(), err)
			}
			valueToDecode = converted
		} else {
			if paramDef.Default != nil {
				valueToDecode = *paramDef.Default
			} else if paramDef.Optional {
				continue
			} else {
				return fmt.Errorf("missing required binding %s", key.String())
			}
		}

		if err := validateRefValue(valueToDecode, paramDef); err != nil {
			return fmt.Errorf("binding %s: %w", key.String(), err)
		}

		if err := c.decode(ctx, valueToDecode, paramDef.Type, fieldVal.Addr().Interface()); err != nil {
			return fmt.Errorf("binding %s: %w", key.String(), err)
		}
	}

	logger.Debug("Finished decoding params.", "instance", instance.String())
	return nil
}

// convertBoundValue applies the manifest's declared type to a bound value.
func convertBoundValue(val cty.Value, def *config.ParamDefinition) (cty.Value, error) {
	if def.Type == cty.DynamicPseudoType {
		return val, nil
	}
	converted, err := convert.Convert(val, def.Type)
	if err != nil {
		return cty.NilVal, fmt.Errorf("cannot convert value of type %s to declared type %s: %w",
			val.Type().FriendlyName(), def.Type.FriendlyName(), err)
	}
	return converted, nil
}

// validateRefValue checks reference-typed values for "@..." syntax. Target
// existence is the static validation pass's concern.
func validateRefValue(val cty.Value, def *config.ParamDefinition) error {
	switch {
	case def.Ref:
		if val.IsNull() {
			return nil
		}
		if _, err := bindkey.ParseRef(val.AsString()); err != nil {
			return err
		}
	case def.RefList:
		if val.IsNull() {
			return nil
		}
		it := val.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			if _, err := bindkey.ParseRef(elem.AsString()); err != nil {
				return err
			}
		}
	}
	return nil
}
