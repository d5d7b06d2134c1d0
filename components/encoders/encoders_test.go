package encoders

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthlab/synthgridgo/components/spectral"
)

type stubBuilder map[string]any

func (s stubBuilder) Component(ctx context.Context, ref string) (any, error) {
	obj, ok := s[ref]
	if !ok {
		return nil, fmt.Errorf("unknown reference %s", ref)
	}
	return obj, nil
}

func testLogmel() *spectral.Logmel {
	return &spectral.Logmel{LoHz: 80.0, HiHz: 7600.0, Bins: 64, FftSize: 2048, SampleRate: 16000}
}

func TestConstructMfccEncoder(t *testing.T) {
	t.Parallel()

	// Arrange
	b := stubBuilder{"@compute_logmel": testLogmel()}
	params := &mfccEncoderParams{
		RnnChannels: 512, RnnType: "gru", ZDims: 32, ZTimeSteps: 250,
		SpectralFn: "@compute_logmel",
	}

	// Act
	obj, err := constructMfccEncoder(context.Background(), b, params)

	// Assert
	require.NoError(t, err)
	encoder := obj.(*MfccTimeDistributedRnnEncoder)
	assert.Equal(t, "mfcc_time_distributed_rnn_encoder", encoder.EncoderName())
	assert.Same(t, b["@compute_logmel"], encoder.SpectralFn)
}

func TestConstructMfccEncoderValidation(t *testing.T) {
	t.Parallel()

	b := stubBuilder{"@compute_logmel": testLogmel(), "@NotSpectral": 42}

	testCases := []struct {
		name      string
		params    *mfccEncoderParams
		expectErr string
	}{
		{
			name: "bad rnn_type",
			params: &mfccEncoderParams{
				RnnChannels: 512, RnnType: "conv", ZDims: 32, ZTimeSteps: 250,
				SpectralFn: "@compute_logmel",
			},
			expectErr: "rnn_type must be gru or lstm",
		},
		{
			name: "zero z_dims",
			params: &mfccEncoderParams{
				RnnChannels: 512, RnnType: "gru", ZTimeSteps: 250,
				SpectralFn: "@compute_logmel",
			},
			expectErr: "z_dims must be >= 1",
		},
		{
			name: "spectral_fn is not a logmel",
			params: &mfccEncoderParams{
				RnnChannels: 512, RnnType: "gru", ZDims: 32, ZTimeSteps: 250,
				SpectralFn: "@NotSpectral",
			},
			expectErr: "must reference a compute_logmel component",
		},
		{
			name: "unresolvable spectral_fn",
			params: &mfccEncoderParams{
				RnnChannels: 512, RnnType: "gru", ZDims: 32, ZTimeSteps: 250,
				SpectralFn: "@f0_spectral/compute_logmel",
			},
			expectErr: "unknown reference",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := constructMfccEncoder(context.Background(), b, tc.params)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

func TestConstructResnetF0Encoder(t *testing.T) {
	t.Parallel()

	// Arrange: the f0 path reads a scoped spectral frontend.
	scoped := testLogmel()
	b := stubBuilder{"@f0_spectral/compute_logmel": scoped}
	params := &resnetF0EncoderParams{
		Size: "small", F0Bins: 384, SpectralFn: "@f0_spectral/compute_logmel",
	}

	// Act
	obj, err := constructResnetF0Encoder(context.Background(), b, params)

	// Assert
	require.NoError(t, err)
	encoder := obj.(*ResnetF0Encoder)
	assert.Equal(t, "resnet_f0_encoder", encoder.EncoderName())
	assert.Equal(t, 384, encoder.F0Bins)
	assert.Same(t, scoped, encoder.SpectralFn)
}

func TestConstructResnetF0EncoderRejectsBadSize(t *testing.T) {
	t.Parallel()

	b := stubBuilder{"@compute_logmel": testLogmel()}

	_, err := constructResnetF0Encoder(context.Background(), b, &resnetF0EncoderParams{
		Size: "huge", F0Bins: 384, SpectralFn: "@compute_logmel",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `size must be one of small, normal or large, got "huge"`)
}
