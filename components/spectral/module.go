package spectral

import (
	_ "embed"
	"reflect"

	"github.com/synthlab/synthgridgo/internal/registry"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module implements the registry.Module interface for the spectral
// frontends.
type Module struct{}

// Register registers the package's components with the central registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent("compute_logmel", &registry.RegisteredComponent{
		NewParams:  func() any { return new(logmelParams) },
		ParamsType: reflect.TypeOf(logmelParams{}),
		Construct:  constructLogmel,
	})
}

// Manifest returns the embedded component manifest.
func (m *Module) Manifest() (string, []byte) {
	return "components/spectral/manifest.hcl", manifestSrc
}
