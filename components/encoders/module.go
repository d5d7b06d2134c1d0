package encoders

import (
	_ "embed"
	"reflect"

	"github.com/synthlab/synthgridgo/internal/registry"
)

//go:embed manifest.hcl
var manifestSrc []byte

// Module implements the registry.Module interface for the encoders.
type Module struct{}

// Register registers the package's components with the central registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent("MfccTimeDistributedRnnEncoder", &registry.RegisteredComponent{
		NewParams:  func() any { return new(mfccEncoderParams) },
		ParamsType: reflect.TypeOf(mfccEncoderParams{}),
		Construct:  constructMfccEncoder,
	})
	r.RegisterComponent("ResnetF0Encoder", &registry.RegisteredComponent{
		NewParams:  func() any { return new(resnetF0EncoderParams) },
		ParamsType: reflect.TypeOf(resnetF0EncoderParams{}),
		Construct:  constructResnetF0Encoder,
	})
}

// Manifest returns the embedded component manifest.
func (m *Module) Manifest() (string, []byte) {
	return "components/encoders/manifest.hcl", manifestSrc
}
