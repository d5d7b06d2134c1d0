package registry

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
)

// ConstructFunc validates a decoded params struct and returns the configured
// component object. The builder resolves any reference-typed params.
type ConstructFunc func(ctx context.Context, b Builder, params any) (any, error)

// RegisteredComponent holds the compiled Go parts of a component.
type RegisteredComponent struct {
	// NewParams returns a pointer to a fresh params struct for the decoder
	// to populate.
	NewParams func() any

	// ParamsType is the params struct type, used by the manifest parity
	// check at startup.
	ParamsType reflect.Type

	// Construct builds the component from its decoded params.
	Construct ConstructFunc
}

// RegisterComponent registers the Go side of a component. Registering the
// same name twice is a programmer error and panics.
func (r *Registry) RegisterComponent(name string, handler *RegisteredComponent) {
	if _, exists := r.HandlerRegistry[name]; exists {
		panic(fmt.Sprintf("component handler with name '%s' already registered", name))
	}
	slog.Debug("Registering component handler.", "name", name)
	r.HandlerRegistry[name] = handler
}
