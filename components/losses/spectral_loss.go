package losses

import (
	"context"
	"fmt"

	"github.com/synthlab/synthgridgo/internal/registry"
)

// SpectralLoss compares target and synthesized audio across a bank of
// multi-scale spectrograms.
type SpectralLoss struct {
	LossType         string
	FftSizes         []int
	MagWeight        float64
	DeltaTimeWeight  float64
	DeltaFreqWeight  float64
	CumsumFreqWeight float64
	LogmagWeight     float64
	LoudnessWeight   float64
}

// LossName implements the Loss interface.
func (l *SpectralLoss) LossName() string {
	return "spectral_loss"
}

type spectralLossParams struct {
	LossType         string  `sggo:"loss_type"`
	FftSizes         []int   `sggo:"fft_sizes"`
	MagWeight        float64 `sggo:"mag_weight"`
	DeltaTimeWeight  float64 `sggo:"delta_time_weight"`
	DeltaFreqWeight  float64 `sggo:"delta_freq_weight"`
	CumsumFreqWeight float64 `sggo:"cumsum_freq_weight"`
	LogmagWeight     float64 `sggo:"logmag_weight"`
	LoudnessWeight   float64 `sggo:"loudness_weight"`
}

func constructSpectralLoss(ctx context.Context, b registry.Builder, params any) (any, error) {
	p := params.(*spectralLossParams)

	switch p.LossType {
	case "L1", "L2", "COSINE":
	default:
		return nil, fmt.Errorf("loss_type must be one of L1, L2 or COSINE, got %q", p.LossType)
	}

	if len(p.FftSizes) == 0 {
		return nil, fmt.Errorf("fft_sizes must have at least one entry")
	}
	for i, size := range p.FftSizes {
		if size < 2 || !isPowerOfTwo(size) {
			return nil, fmt.Errorf("fft_sizes[%d] must be a power of two >= 2, got %d", i, size)
		}
	}

	weights := map[string]float64{
		"mag_weight":         p.MagWeight,
		"delta_time_weight":  p.DeltaTimeWeight,
		"delta_freq_weight":  p.DeltaFreqWeight,
		"cumsum_freq_weight": p.CumsumFreqWeight,
		"logmag_weight":      p.LogmagWeight,
		"loudness_weight":    p.LoudnessWeight,
	}
	for name, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%s must be >= 0, got %v", name, w)
		}
	}

	return &SpectralLoss{
		LossType:         p.LossType,
		FftSizes:         p.FftSizes,
		MagWeight:        p.MagWeight,
		DeltaTimeWeight:  p.DeltaTimeWeight,
		DeltaFreqWeight:  p.DeltaFreqWeight,
		CumsumFreqWeight: p.CumsumFreqWeight,
		LogmagWeight:     p.LogmagWeight,
		LoudnessWeight:   p.LoudnessWeight,
	}, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
