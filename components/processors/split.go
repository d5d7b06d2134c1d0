package processors

import (
	"context"
	"fmt"

	"github.com/synthlab/synthgridgo/internal/registry"
)

// Split slices a stacked control tensor into named parts.
type Split struct {
	Name   string
	Splits []SplitPart
}

// SplitPart names one slice of a split and its channel size.
type SplitPart struct {
	Name string `cty:"name"`
	Size int    `cty:"size"`
}

// ProcessorName implements the Processor interface.
func (s *Split) ProcessorName() string {
	return s.Name
}

type splitParams struct {
	Name   string      `sggo:"name"`
	Splits []SplitPart `sggo:"splits"`
}

func constructSplit(ctx context.Context, b registry.Builder, params any) (any, error) {
	p := params.(*splitParams)

	if p.Name == "" {
		return nil, fmt.Errorf("name must not be empty")
	}
	if len(p.Splits) == 0 {
		return nil, fmt.Errorf("splits must have at least one entry")
	}

	seen := make(map[string]struct{}, len(p.Splits))
	for i, part := range p.Splits {
		if part.Name == "" {
			return nil, fmt.Errorf("splits[%d]: name must not be empty", i)
		}
		if _, dup := seen[part.Name]; dup {
			return nil, fmt.Errorf("splits[%d]: duplicate name %q", i, part.Name)
		}
		seen[part.Name] = struct{}{}
		if part.Size < 1 {
			return nil, fmt.Errorf("splits[%d] (%s): size must be >= 1, got %d", i, part.Name, part.Size)
		}
	}

	return &Split{Name: p.Name, Splits: p.Splits}, nil
}
