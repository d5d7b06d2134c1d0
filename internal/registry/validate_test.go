package registry

import (
	"context"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab/synthgridgo/internal/ctxlog"
)

func testCtx() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

const reverbManifest = `
component "Reverb" {
  description = "Trainable FIR reverb applied to the mixed signal."

  param "name" {
    type    = string
    default = "reverb"
  }

  param "reverb_length" {
    type    = number
    default = 48000
  }

  param "add_dry" {
    type    = bool
    default = true
  }
}
`

type reverbParams struct {
	Name         string `sggo:"name"`
	ReverbLength int    `sggo:"reverb_length"`
	AddDry       bool   `sggo:"add_dry"`
}

func reverbHandler(params any) *RegisteredComponent {
	return &RegisteredComponent{
		NewParams:  func() any { return &reverbParams{} },
		ParamsType: reflect.TypeOf(params).Elem(),
		Construct: func(ctx context.Context, b Builder, p any) (any, error) {
			return p, nil
		},
	}
}

func TestValidateRegistryAcceptsMatchingSides(t *testing.T) {
	t.Parallel()

	// Arrange
	r := New()
	require.NoError(t, r.LoadManifest(testCtx(), "reverb.hcl", []byte(reverbManifest)))
	r.RegisterComponent("Reverb", reverbHandler(&reverbParams{}))

	// Act + Assert
	require.NoError(t, r.ValidateRegistry(testCtx()))
	assert.Equal(t, []string{"Reverb"}, r.Components())
}

func TestValidateRegistryManifestWithoutHandler(t *testing.T) {
	t.Parallel()

	r := New()
	require.NoError(t, r.LoadManifest(testCtx(), "reverb.hcl", []byte(reverbManifest)))

	err := r.ValidateRegistry(testCtx())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest has no registered Go handler")
}

func TestValidateRegistryHandlerWithoutManifest(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterComponent("Reverb", reverbHandler(&reverbParams{}))

	err := r.ValidateRegistry(testCtx())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Go handler has no manifest")
}

func TestValidateRegistryDetectsParamDrift(t *testing.T) {
	t.Parallel()

	type driftedParams struct {
		Name         string `sggo:"name"`
		ReverbLength int    `sggo:"reverb_length"`
		// add_dry is missing, wet_level is undeclared.
		WetLevel float64 `sggo:"wet_level"`
	}

	r := New()
	require.NoError(t, r.LoadManifest(testCtx(), "reverb.hcl", []byte(reverbManifest)))
	r.RegisterComponent("Reverb", &RegisteredComponent{
		NewParams:  func() any { return &driftedParams{} },
		ParamsType: reflect.TypeOf(driftedParams{}),
	})

	err := r.ValidateRegistry(testCtx())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "param 'add_dry' which is not found in the Go struct")
	assert.Contains(t, err.Error(), "param 'wet_level' which is not declared in the manifest")
}

func TestValidateRegistryDetectsTypeMismatch(t *testing.T) {
	t.Parallel()

	type mistypedParams struct {
		Name         string `sggo:"name"`
		ReverbLength string `sggo:"reverb_length"`
		AddDry       bool   `sggo:"add_dry"`
	}

	r := New()
	require.NoError(t, r.LoadManifest(testCtx(), "reverb.hcl", []byte(reverbManifest)))
	r.RegisterComponent("Reverb", &RegisteredComponent{
		NewParams:  func() any { return &mistypedParams{} },
		ParamsType: reflect.TypeOf(mistypedParams{}),
	})

	err := r.ValidateRegistry(testCtx())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type mismatch")
	assert.Contains(t, err.Error(), "reverb_length")
}

func TestValidateRegistryReferenceParamsNeedStringFields(t *testing.T) {
	t.Parallel()

	const manifest = `
component "Autoencoder" {
  param "decoder" {
    type = component
  }

  param "losses" {
    type    = list(component)
    default = []
  }
}

component "RnnFcDecoder" {
}
`
	type badParams struct {
		Decoder int   `sggo:"decoder"`
		Losses  []int `sggo:"losses"`
	}

	r := New()
	require.NoError(t, r.LoadManifest(testCtx(), "autoencoder.hcl", []byte(manifest)))
	r.RegisterComponent("Autoencoder", &RegisteredComponent{
		NewParams:  func() any { return &badParams{} },
		ParamsType: reflect.TypeOf(badParams{}),
	})
	r.RegisterComponent("RnnFcDecoder", &RegisteredComponent{})

	err := r.ValidateRegistry(testCtx())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "component-typed params need a string field")
	assert.Contains(t, err.Error(), "list(component) params need a []string field")
}

func TestValidateRegistryRefDefaultMustExist(t *testing.T) {
	t.Parallel()

	const manifest = `
component "MfccTimeDistributedRnnEncoder" {
  param "spectral_fn" {
    type    = component
    default = "@compute_logmel"
  }
}
`
	type encoderParams struct {
		SpectralFn string `sggo:"spectral_fn"`
	}

	r := New()
	require.NoError(t, r.LoadManifest(testCtx(), "encoders.hcl", []byte(manifest)))
	r.RegisterComponent("MfccTimeDistributedRnnEncoder", &RegisteredComponent{
		NewParams:  func() any { return &encoderParams{} },
		ParamsType: reflect.TypeOf(encoderParams{}),
	})

	// compute_logmel is not registered anywhere.
	err := r.ValidateRegistry(testCtx())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default references unknown component 'compute_logmel'")
}

func TestRegisterComponentTwicePanics(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterComponent("Reverb", &RegisteredComponent{})

	assert.Panics(t, func() {
		r.RegisterComponent("Reverb", &RegisteredComponent{})
	})
}

func TestLoadManifestRejectsDuplicateComponent(t *testing.T) {
	t.Parallel()

	r := New()
	require.NoError(t, r.LoadManifest(testCtx(), "a.hcl", []byte(`component "Reverb" {}`)))

	err := r.LoadManifest(testCtx(), "b.hcl", []byte(`component "Reverb" {}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already defined")
}
