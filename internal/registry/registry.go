package registry

import (
	"context"
	"sort"

	"github.com/synthlab/synthgridgo/internal/config"
)

// Module is the interface that all component packages implement to be
// registered. Register installs the Go handlers; Manifest returns the
// package's embedded component manifest source.
type Module interface {
	Register(r *Registry)
	Manifest() (filename string, src []byte)
}

// Builder resolves component references during the build phase. The dag
// package provides the implementation; constructors receive it so that
// reference-typed params can be materialized on demand.
type Builder interface {
	// Component returns the constructed instance named by a "@..."
	// reference, building it on first use.
	Component(ctx context.Context, ref string) (any, error)
}

// Registry holds all the registered component handlers and manifest
// definitions for a single application instance.
type Registry struct {
	HandlerRegistry    map[string]*RegisteredComponent
	DefinitionRegistry map[string]*config.ComponentDefinition
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		HandlerRegistry:    make(map[string]*RegisteredComponent),
		DefinitionRegistry: make(map[string]*config.ComponentDefinition),
	}
}

// Definition returns the manifest definition for a component name.
func (r *Registry) Definition(name string) (*config.ComponentDefinition, bool) {
	def, ok := r.DefinitionRegistry[name]
	return def, ok
}

// Handler returns the compiled Go side for a component name.
func (r *Registry) Handler(name string) (*RegisteredComponent, bool) {
	h, ok := r.HandlerRegistry[name]
	return h, ok
}

// Has reports whether a component name is registered at all, on either side.
func (r *Registry) Has(name string) bool {
	if _, ok := r.DefinitionRegistry[name]; ok {
		return true
	}
	_, ok := r.HandlerRegistry[name]
	return ok
}

// Components returns every component name with a manifest, sorted.
func (r *Registry) Components() []string {
	names := make([]string, 0, len(r.DefinitionRegistry))
	for name := range r.DefinitionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
