// This file contains the logic for translating component manifest HCL into
// the format-agnostic definitions held by the registry.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/synthlab/synthgridgo/internal/bindkey"
	"github.com/synthlab/synthgridgo/internal/config"
	"github.com/synthlab/synthgridgo/internal/ctxlog"
	"github.com/synthlab/synthgridgo/internal/schema"
)

// ParseManifestSource parses one component manifest, usually embedded in the
// component's package, into format-agnostic definitions. The filename is
// used in diagnostics only.
func ParseManifestSource(ctx context.Context, filename string, src []byte) ([]*config.ComponentDefinition, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}

	var root schema.ManifestConfig
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", filename, diags)
	}

	defs := make([]*config.ComponentDefinition, 0, len(root.Components))
	for _, comp := range root.Components {
		def, err := translateComponentDefinition(ctx, comp)
		if err != nil {
			return nil, fmt.Errorf("manifest %s: %w", filename, err)
		}
		logger.Debug("Translated component manifest.", "component", def.Name, "params", len(def.Params))
		defs = append(defs, def)
	}
	return defs, nil
}

// translateComponentDefinition converts the HCL-specific component schema
// into the agnostic model.
func translateComponentDefinition(ctx context.Context, s *schema.ComponentDefinition) (*config.ComponentDefinition, error) {
	if err := bindkey.ValidateComponent(s.Name); err != nil {
		return nil, err
	}

	def := &config.ComponentDefinition{
		Name:        s.Name,
		Description: s.Description,
		Params:      make(map[string]*config.ParamDefinition),
	}
	for _, p := range s.Params {
		translated, err := translateParamDefinition(ctx, p, s.Name)
		if err != nil {
			return nil, err
		}
		if _, exists := def.Params[p.Name]; exists {
			return nil, fmt.Errorf("component '%s': param '%s' declared twice", s.Name, p.Name)
		}
		def.Params[p.Name] = translated
	}
	return def, nil
}

// translateParamDefinition processes a single param block, handling its type
// keyword, default value and optionality. Defaults are converted to the
// declared type here so a malformed manifest fails at startup rather than at
// first use.
func translateParamDefinition(ctx context.Context, in *schema.ParamDefinition, ownerName string) (*config.ParamDefinition, error) {
	if err := bindkey.ValidateParam(in.Name); err != nil {
		return nil, fmt.Errorf("component '%s': %w", ownerName, err)
	}

	parsedType, isRef, isRefList := refKindFromExpr(in.Type)
	if !isRef && !isRefList {
		var err error
		parsedType, err = typeExprToCtyType(ctx, in.Type)
		if err != nil {
			return nil, fmt.Errorf("component '%s', param '%s': %w", ownerName, in.Name, err)
		}
	}

	var defaultVal *cty.Value
	isOptional := in.Optional
	if in.Default != nil && !in.Default.IsNull() {
		val := *in.Default
		if parsedType != cty.DynamicPseudoType {
			converted, err := convert.Convert(val, parsedType)
			if err != nil {
				return nil, fmt.Errorf("component '%s', param '%s': default value does not match declared type %s: %w",
					ownerName, in.Name, parsedType.FriendlyName(), err)
			}
			val = converted
		}
		if err := validateRefDefault(val, isRef, isRefList); err != nil {
			return nil, fmt.Errorf("component '%s', param '%s': %w", ownerName, in.Name, err)
		}
		defaultVal = &val
		isOptional = true
	}

	return &config.ParamDefinition{
		Name:        in.Name,
		Type:        parsedType,
		Description: in.Description,
		Default:     defaultVal,
		Optional:    isOptional,
		Ref:         isRef,
		RefList:     isRefList,
	}, nil
}

// validateRefDefault checks that a reference-typed default is written in
// valid "@..." syntax. Whether the target exists is checked later, once the
// whole registry is populated.
func validateRefDefault(val cty.Value, isRef, isRefList bool) error {
	switch {
	case isRef:
		_, err := bindkey.ParseRef(val.AsString())
		return err
	case isRefList:
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
