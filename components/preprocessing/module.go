package preprocessing

import (
	_ "embed"
	"reflect"

	"github.com/synthlab/synthgridgo/internal/registry"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module implements the registry.Module interface for preprocessing.
type Module struct{}

// Register registers the package's components with the central registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent("DefaultPreprocessor", &registry.RegisteredComponent{
		NewParams:  func() any { return new(preprocessorParams) },
		ParamsType: reflect.TypeOf(preprocessorParams{}),
		Construct:  constructPreprocessor,
	})
}

// Manifest returns the embedded component manifest.
func (m *Module) Manifest() (string, []byte) {
	return "components/preprocessing/manifest.hcl", manifestSrc
}
