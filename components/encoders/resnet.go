package encoders

import (
	"context"
	"fmt"

	"github.com/synthlab/synthgridgo/components/spectral"
	"github.com/synthlab/synthgridgo/internal/registry"
)

// ResnetF0Encoder estimates a fundamental-frequency distribution from a
// spectral frontend through a residual convolutional stack.
type ResnetF0Encoder struct {
	Size       string
	F0Bins     int
	SpectralFn *spectral.Logmel
}

// EncoderName implements the Encoder interface.
func (e *ResnetF0Encoder) EncoderName() string {
	return "resnet_f0_encoder"
}

type resnetF0EncoderParams struct {
	Size       string `sggo:"size"`
	F0Bins     int    `sggo:"f0_bins"`
	SpectralFn string `sggo:"spectral_fn"`
}

func constructResnetF0Encoder(ctx context.Context, b registry.Builder, params any) (any, error) {
	p := params.(*resnetF0EncoderParams)

	switch p.Size {
	case "small", "normal", "large":
	default:
		return nil, fmt.Errorf("size must be one of small, normal or large, got %q", p.Size)
	}
	if p.F0Bins < 1 {
		return nil, fmt.Errorf("f0_bins must be >= 1, got %d", p.F0Bins)
	}

	logmel, err := resolveSpectralFn(ctx, b, p.SpectralFn)
	if err != nil {
		return nil, err
	}

	return &ResnetF0Encoder{
		Size:       p.Size,
		F0Bins:     p.F0Bins,
		SpectralFn: logmel,
	}, nil
}
