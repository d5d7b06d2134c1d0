package config

import (
	"context"

	"github.com/zclconf/go-cty/cty"

	"github.com/synthlab/synthgridgo/internal/bindkey"
)

// Loader is the interface for a format-specific binding file loader.
type Loader interface {
	// Load reads one or more root binding files, walks their includes
	// depth-first, merges everything into the format-agnostic model with
	// last-write-wins semantics, and returns a matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter is the interface for a format-specific data binding and type
// conversion implementation. It acts as the bridge between merged binding
// values and the Go params structs consumed by component constructors.
type Converter interface {
	// DecodeParams decodes the merged bindings of a single component
	// instance into a target params struct, applying the manifest's types,
	// defaults and required-ness.
	DecodeParams(
		ctx context.Context,
		target any,
		bound map[string]*Binding,
		def *ComponentDefinition,
		instance bindkey.Ref,
	) error

	// ToNative converts an engine value into its plain Go equivalent, for
	// rendering into the operative report.
	ToNative(v cty.Value) (any, error)
}
