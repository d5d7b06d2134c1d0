package synths

import (
	_ "embed"
	"reflect"

	"github.com/synthlab/synthgridgo/internal/registry"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module implements the registry.Module interface for the synthesizers.
type Module struct{}

// Register registers the package's components with the central registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent("Additive", &registry.RegisteredComponent{
		NewParams:  func() any { return new(additiveParams) },
		ParamsType: reflect.TypeOf(additiveParams{}),
		Construct:  constructAdditive,
	})
	r.RegisterComponent("FilteredNoise", &registry.RegisteredComponent{
		NewParams:  func() any { return new(filteredNoiseParams) },
		ParamsType: reflect.TypeOf(filteredNoiseParams{}),
		Construct:  constructFilteredNoise,
	})
}

// Manifest returns the embedded component manifest.
func (m *Module) Manifest() (string, []byte) {
	return "components/synths/manifest.hcl", manifestSrc
}
