package autoencoder

import (
	_ "embed"
	"reflect"

	"github.com/synthlab/synthgridgo/internal/registry"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module implements the registry.Module interface for the autoencoder.
type Module struct{}

// Register registers the package's components with the central registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent("Autoencoder", &registry.RegisteredComponent{
		NewParams:  func() any { return new(autoencoderParams) },
		ParamsType: reflect.TypeOf(autoencoderParams{}),
		Construct:  constructAutoencoder,
	})
}

// Manifest returns the embedded component manifest.
func (m *Module) Manifest() (string, []byte) {
	return "components/autoencoder/manifest.hcl", manifestSrc
}
