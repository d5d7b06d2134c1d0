package effects

import (
	_ "embed"
	"reflect"

	"github.com/synthlab/synthgridgo/internal/registry"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module implements the registry.Module interface for the effects.
type Module struct{}

// Register registers the package's components with the central registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent("Reverb", &registry.RegisteredComponent{
		NewParams:  func() any { return new(reverbParams) },
		ParamsType: reflect.TypeOf(reverbParams{}),
		Construct:  constructReverb,
	})
}

// Manifest returns the embedded component manifest.
func (m *Module) Manifest() (string, []byte) {
	return "components/effects/manifest.hcl", manifestSrc
}
