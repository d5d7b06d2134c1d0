package decoders

import (
	_ "embed"
	"reflect"

	"github.com/synthlab/synthgridgo/internal/registry"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module implements the registry.Module interface for the decoders.
type Module struct{}

// Register registers the package's components with the central registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent("RnnFcDecoder", &registry.RegisteredComponent{
		NewParams:  func() any { return new(rnnFcDecoderParams) },
		ParamsType: reflect.TypeOf(rnnFcDecoderParams{}),
		Construct:  constructRnnFcDecoder,
	})
}

// Manifest returns the embedded component manifest.
func (m *Module) Manifest() (string, []byte) {
	return "components/decoders/manifest.hcl", manifestSrc
}
