// Package preprocessing provides the feature preprocessor that resamples
// conditioning features onto the model's time grid.
package preprocessing

import (
	"context"
	"fmt"

	"github.com/synthlab/synthgridgo/internal/registry"
)

// DefaultPreprocessor resamples loudness and f0 features to a fixed
// number of time steps.
type DefaultPreprocessor struct {
	TimeSteps int
}

type preprocessorParams struct {
	TimeSteps int `sggo:"time_steps"`
}

func constructPreprocessor(ctx context.Context, b registry.Builder, params any) (any, error) {
	p := params.(*preprocessorParams)

	if p.TimeSteps < 1 {
		return nil, fmt.Errorf("time_steps must be >= 1, got %d", p.TimeSteps)
	}

	return &DefaultPreprocessor{TimeSteps: p.TimeSteps}, nil
}
