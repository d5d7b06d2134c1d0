// Package synths provides the oscillator-bank and noise synthesizer
// components that turn decoder controls into audio.
package synths

import (
	"context"
	"fmt"

	"github.com/synthlab/synthgridgo/internal/registry"
)

// Additive is a bank of sinusoidal oscillators driven by per-harmonic
// amplitudes and a fundamental frequency.
type Additive struct {
	Name                  string
	NSamples              int
	SampleRate            int
	NormalizeBelowNyquist bool
	ScaleFn               string
}

// ProcessorName implements the processors naming contract.
func (a *Additive) ProcessorName() string {
	return a.Name
}

type additiveParams struct {
	Name                  string `sggo:"name"`
	NSamples              int    `sggo:"n_samples"`
	SampleRate            int    `sggo:"sample_rate"`
	NormalizeBelowNyquist bool   `sggo:"normalize_below_nyquist"`
	ScaleFn               string `sggo:"scale_fn"`
}

func constructAdditive(ctx context.Context, b registry.Builder, params any) (any, error) {
	p := params.(*additiveParams)

	if p.Name == "" {
		return nil, fmt.Errorf("name must not be empty")
	}
	if p.NSamples < 1 {
		return nil, fmt.Errorf("n_samples must be >= 1, got %d", p.NSamples)
	}
	if p.SampleRate < 1 {
		return nil, fmt.Errorf("sample_rate must be >= 1, got %d", p.SampleRate)
	}
	if !validScaleFn(p.ScaleFn) {
		return nil, fmt.Errorf("scale_fn must be one of exp_sigmoid, sigmoid or none, got %q", p.ScaleFn)
	}

	return &Additive{
		Name:                  p.Name,
		NSamples:              p.NSamples,
		SampleRate:            p.SampleRate,
		NormalizeBelowNyquist: p.NormalizeBelowNyquist,
		ScaleFn:               p.ScaleFn,
	}, nil
}

func validScaleFn(s string) bool {
	switch s {
	case "exp_sigmoid", "sigmoid", "none":
		return true
	}
	return false
}
