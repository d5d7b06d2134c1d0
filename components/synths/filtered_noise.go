package synths

import (
	"context"
	"fmt"

	"github.com/synthlab/synthgridgo/internal/registry"
)

// FilteredNoise shapes white noise with a time-varying FIR filter derived
// from decoded magnitude controls.
type FilteredNoise struct {
	Name       string
	NSamples   int
	WindowSize int
	ScaleFn    string
}

// ProcessorName implements the processors naming contract.
func (f *FilteredNoise) ProcessorName() string {
	return f.Name
}

type filteredNoiseParams struct {
	Name       string `sggo:"name"`
	NSamples   int    `sggo:"n_samples"`
	WindowSize int    `sggo:"window_size"`
	ScaleFn    string `sggo:"scale_fn"`
}

func constructFilteredNoise(ctx context.Context, b registry.Builder, params any) (any, error) {
	p := params.(*filteredNoiseParams)

	if p.Name == "" {
		return nil, fmt.Errorf("name must not be empty")
	}
	if p.NSamples < 1 {
		return nil, fmt.Errorf("n_samples must be >= 1, got %d", p.NSamples)
	}
	// A zero window disables windowing of the filter impulse response.
	if p.WindowSize < 0 {
		return nil, fmt.Errorf("window_size must be >= 0, got %d", p.WindowSize)
	}
	if !validScaleFn(p.ScaleFn) {
		return nil, fmt.Errorf("scale_fn must be one of exp_sigmoid, sigmoid or none, got %q", p.ScaleFn)
	}

	return &FilteredNoise{
		Name:       p.Name,
		NSamples:   p.NSamples,
		WindowSize: p.WindowSize,
		ScaleFn:    p.ScaleFn,
	}, nil
}
