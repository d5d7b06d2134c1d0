package processors

import (
	_ "embed"
	"reflect"

	"github.com/synthlab/synthgridgo/internal/registry"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module implements the registry.Module interface for the routing
// processors.
type Module struct{}

// Register registers the package's components with the central registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent("ProcessorGroup", &registry.RegisteredComponent{
		NewParams:  func() any { return new(groupParams) },
		ParamsType: reflect.TypeOf(groupParams{}),
		Construct:  constructGroup,
	})
	r.RegisterComponent("Add", &registry.RegisteredComponent{
		NewParams:  func() any { return new(addParams) },
		ParamsType: reflect.TypeOf(addParams{}),
		Construct:  constructAdd,
	})
	r.RegisterComponent("Mix", &registry.RegisteredComponent{
		NewParams:  func() any { return new(mixParams) },
		ParamsType: reflect.TypeOf(mixParams{}),
		Construct:  constructMix,
	})
	r.RegisterComponent("Split", &registry.RegisteredComponent{
		NewParams:  func() any { return new(splitParams) },
		ParamsType: reflect.TypeOf(splitParams{}),
		Construct:  constructSplit,
	})
}

// Manifest returns the embedded component manifest.
func (m *Module) Manifest() (string, []byte) {
	return "components/processors/manifest.hcl", manifestSrc
}
