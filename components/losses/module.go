package losses

import (
	_ "embed"
	"reflect"

	"github.com/synthlab/synthgridgo/internal/registry"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module implements the registry.Module interface for the losses.
type Module struct{}

// Register registers the package's components with the central registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent("SpectralLoss", &registry.RegisteredComponent{
		NewParams:  func() any { return new(spectralLossParams) },
		ParamsType: reflect.TypeOf(spectralLossParams{}),
		Construct:  constructSpectralLoss,
	})
	r.RegisterComponent("PretrainedCREPEEmbeddingLoss", &registry.RegisteredComponent{
		NewParams:  func() any { return new(crepeLossParams) },
		ParamsType: reflect.TypeOf(crepeLossParams{}),
		Construct:  constructCrepeLoss,
	})
}

// Manifest returns the embedded component manifest.
func (m *Module) Manifest() (string, []byte) {
	return "components/losses/manifest.hcl", manifestSrc
}
