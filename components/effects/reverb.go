// Package effects provides post-synthesis signal effects.
package effects

import (
	"context"
	"fmt"

	"github.com/synthlab/synthgridgo/internal/registry"
)

// Reverb convolves the signal with a learned room impulse response.
type Reverb struct {
	Name         string
	ReverbLength int
	AddDry       bool
}

// ProcessorName implements the processors naming contract.
func (r *Reverb) ProcessorName() string {
	return r.Name
}

type reverbParams struct {
	Name         string `sggo:"name"`
	ReverbLength int    `sggo:"reverb_length"`
	AddDry       bool   `sggo:"add_dry"`
}

func constructReverb(ctx context.Context, b registry.Builder, params any) (any, error) {
	p := params.(*reverbParams)

	if p.Name == "" {
		return nil, fmt.Errorf("name must not be empty")
	}
	if p.ReverbLength < 1 {
		return nil, fmt.Errorf("reverb_length must be >= 1, got %d", p.ReverbLength)
	}

	return &Reverb{
		Name:         p.Name,
		ReverbLength: p.ReverbLength,
		AddDry:       p.AddDry,
	}, nil
}
