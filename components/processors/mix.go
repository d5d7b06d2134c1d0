package processors

import (
	"context"
	"fmt"

	"github.com/synthlab/synthgridgo/internal/registry"
)

// Mix crossfades two input signals under an nn_out_mix_level control key.
type Mix struct {
	Name string
}

// ProcessorName implements the Processor interface.
func (m *Mix) ProcessorName() string {
	return m.Name
}

type mixParams struct {
	Name string `sggo:"name"`
}

func constructMix(ctx context.Context, b registry.Builder, params any) (any, error) {
	p := params.(*mixParams)
	if p.Name == "" {
		return nil, fmt.Errorf("name must not be empty")
	}
	return &Mix{Name: p.Name}, nil
}
