package processors

import (
	"context"
	"fmt"

	"github.com/synthlab/synthgridgo/internal/registry"
)

// Add sums its input signals.
type Add struct {
	Name string
}

// ProcessorName implements the Processor interface.
func (a *Add) ProcessorName() string {
	return a.Name
}

type addParams struct {
	Name string `sggo:"name"`
}

func constructAdd(ctx context.Context, b registry.Builder, params any) (any, error) {
	p := params.(*addParams)
	if p.Name == "" {
		return nil, fmt.Errorf("name must not be empty")
	}
	return &Add{Name: p.Name}, nil
}
