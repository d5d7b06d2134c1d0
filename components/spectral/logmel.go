// Package spectral provides the log-mel spectrogram frontend shared by
// the encoders. The mel filterbank itself comes from neurlang/gomel; the
// component carries a fully configured instance plus the framing
// parameters the encoders need.
package spectral

import (
	"context"
	"fmt"

	"github.com/neurlang/gomel/mel"

	"github.com/synthlab/synthgridgo/internal/registry"
)

// Logmel is a configured log-mel spectrogram transform.
type Logmel struct {
	LoHz       float64
	HiHz       float64
	Bins       int
	FftSize    int
	Overlap    float64
	PadEnd     bool
	SampleRate int

	// Mel is the underlying filterbank, configured from the params above.
	Mel *mel.Mel
}

type logmelParams struct {
	LoHz       float64 `sggo:"lo_hz"`
	HiHz       float64 `sggo:"hi_hz"`
	Bins       int     `sggo:"bins"`
	FftSize    int     `sggo:"fft_size"`
	Overlap    float64 `sggo:"overlap"`
	PadEnd     bool    `sggo:"pad_end"`
	SampleRate int     `sggo:"sample_rate"`
}

func constructLogmel(ctx context.Context, b registry.Builder, params any) (any, error) {
	p := params.(*logmelParams)

	if p.Bins < 1 {
		return nil, fmt.Errorf("bins must be >= 1, got %d", p.Bins)
	}
	if p.FftSize < 2 || !isPowerOfTwo(p.FftSize) {
		return nil, fmt.Errorf("fft_size must be a power of two >= 2, got %d", p.FftSize)
	}
	if p.Overlap < 0 || p.Overlap >= 1 {
		return nil, fmt.Errorf("overlap must be in [0, 1), got %v", p.Overlap)
	}
	if p.SampleRate < 1 {
		return nil, fmt.Errorf("sample_rate must be >= 1, got %d", p.SampleRate)
	}
	if p.LoHz < 0 {
		return nil, fmt.Errorf("lo_hz must be >= 0, got %v", p.LoHz)
	}
	if p.LoHz >= p.HiHz {
		return nil, fmt.Errorf("lo_hz must be below hi_hz, got %v >= %v", p.LoHz, p.HiHz)
	}
	nyquist := float64(p.SampleRate) / 2
	if p.HiHz > nyquist {
		return nil, fmt.Errorf("hi_hz %v exceeds the Nyquist frequency %v", p.HiHz, nyquist)
	}

	m := mel.NewMel()
	m.MelFmin = p.LoHz
	m.MelFmax = p.HiHz
	m.NumMels = p.Bins
	m.Window = p.FftSize
	m.Resolut = p.FftSize

	return &Logmel{
		LoHz:       p.LoHz,
		HiHz:       p.HiHz,
		Bins:       p.Bins,
		FftSize:    p.FftSize,
		Overlap:    p.Overlap,
		PadEnd:     p.PadEnd,
		SampleRate: p.SampleRate,
		Mel:        m,
	}, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
