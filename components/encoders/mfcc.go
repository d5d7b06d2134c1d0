package encoders

import (
	"context"
	"fmt"

	"github.com/synthlab/synthgridgo/components/spectral"
	"github.com/synthlab/synthgridgo/internal/registry"
)

// MfccTimeDistributedRnnEncoder encodes MFCC frames of the input audio
// into a z latent through a time-distributed RNN.
type MfccTimeDistributedRnnEncoder struct {
	RnnChannels int
	RnnType     string
	ZDims       int
	ZTimeSteps  int
	SpectralFn  *spectral.Logmel
}

// EncoderName implements the Encoder interface.
func (e *MfccTimeDistributedRnnEncoder) EncoderName() string {
	return "mfcc_time_distributed_rnn_encoder"
}

type mfccEncoderParams struct {
	RnnChannels int    `sggo:"rnn_channels"`
	RnnType     string `sggo:"rnn_type"`
	ZDims       int    `sggo:"z_dims"`
	ZTimeSteps  int    `sggo:"z_time_steps"`
	SpectralFn  string `sggo:"spectral_fn"`
}

func constructMfccEncoder(ctx context.Context, b registry.Builder, params any) (any, error) {
	p := params.(*mfccEncoderParams)

	if p.RnnChannels < 1 {
		return nil, fmt.Errorf("rnn_channels must be >= 1, got %d", p.RnnChannels)
	}
	if p.RnnType != "gru" && p.RnnType != "lstm" {
		return nil, fmt.Errorf("rnn_type must be gru or lstm, got %q", p.RnnType)
	}
	if p.ZDims < 1 {
		return nil, fmt.Errorf("z_dims must be >= 1, got %d", p.ZDims)
	}
	if p.ZTimeSteps < 1 {
		return nil, fmt.Errorf("z_time_steps must be >= 1, got %d", p.ZTimeSteps)
	}

	logmel, err := resolveSpectralFn(ctx, b, p.SpectralFn)
	if err != nil {
		return nil, err
	}

	return &MfccTimeDistributedRnnEncoder{
		RnnChannels: p.RnnChannels,
		RnnType:     p.RnnType,
		ZDims:       p.ZDims,
		ZTimeSteps:  p.ZTimeSteps,
		SpectralFn:  logmel,
	}, nil
}

// resolveSpectralFn materializes a spectral_fn reference and checks it
// names a log-mel frontend.
func resolveSpectralFn(ctx context.Context, b registry.Builder, ref string) (*spectral.Logmel, error) {
	obj, err := b.Component(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("spectral_fn: %w", err)
	}
	logmel, ok := obj.(*spectral.Logmel)
	if !ok {
		return nil, fmt.Errorf("spectral_fn must reference a compute_logmel component, got %T", obj)
	}
	return logmel, nil
}
