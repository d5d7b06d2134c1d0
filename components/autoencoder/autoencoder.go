// Package autoencoder provides the top-level model component that
// assembles the preprocessor, encoders, decoder, processor group and
// losses, and validates the signal routing between them.
package autoencoder

import (
	"context"
	"fmt"

	"github.com/synthlab/synthgridgo/components/decoders"
	"github.com/synthlab/synthgridgo/components/encoders"
	"github.com/synthlab/synthgridgo/components/losses"
	"github.com/synthlab/synthgridgo/components/preprocessing"
	"github.com/synthlab/synthgridgo/components/processors"
	"github.com/synthlab/synthgridgo/internal/registry"
)

// conditioningKey is routed into the processor group alongside the
// decoder outputs: the preprocessor passes the fundamental frequency
// through to the synthesizers.
const conditioningKey = "f0_hz"

// Autoencoder is the assembled analysis-by-synthesis model.
type Autoencoder struct {
	Preprocessor   *preprocessing.DefaultPreprocessor
	Encoder        encoders.Encoder
	F0Encoder      encoders.Encoder
	Decoder        decoders.Decoder
	ProcessorGroup *processors.Group
	Losses         []losses.Loss
}

// CheckpointRefs aggregates the checkpoint paths of all losses that
// carry one.
func (a *Autoencoder) CheckpointRefs() []string {
	var refs []string
	for _, loss := range a.Losses {
		if carrier, ok := loss.(interface{ CheckpointRefs() []string }); ok {
			refs = append(refs, carrier.CheckpointRefs()...)
		}
	}
	return refs
}

type autoencoderParams struct {
	Preprocessor   string   `sggo:"preprocessor"`
	Encoder        string   `sggo:"encoder"`
	F0Encoder      string   `sggo:"f0_encoder"`
	Decoder        string   `sggo:"decoder"`
	ProcessorGroup string   `sggo:"processor_group"`
	Losses         []string `sggo:"losses"`
}

func constructAutoencoder(ctx context.Context, b registry.Builder, params any) (any, error) {
	p := params.(*autoencoderParams)
	model := &Autoencoder{}

	obj, err := b.Component(ctx, p.Preprocessor)
	if err != nil {
		return nil, fmt.Errorf("preprocessor: %w", err)
	}
	preprocessor, ok := obj.(*preprocessing.DefaultPreprocessor)
	if !ok {
		return nil, fmt.Errorf("preprocessor must reference a preprocessor component, got %T", obj)
	}
	model.Preprocessor = preprocessor

	if p.Encoder != "" {
		if model.Encoder, err = resolveEncoder(ctx, b, "encoder", p.Encoder); err != nil {
			return nil, err
		}
	}
	if p.F0Encoder != "" {
		if model.F0Encoder, err = resolveEncoder(ctx, b, "f0_encoder", p.F0Encoder); err != nil {
			return nil, err
		}
	}

	obj, err = b.Component(ctx, p.Decoder)
	if err != nil {
		return nil, fmt.Errorf("decoder: %w", err)
	}
	decoder, ok := obj.(decoders.Decoder)
	if !ok {
		return nil, fmt.Errorf("decoder must reference a decoder component, got %T", obj)
	}
	model.Decoder = decoder

	obj, err = b.Component(ctx, p.ProcessorGroup)
	if err != nil {
		return nil, fmt.Errorf("processor_group: %w", err)
	}
	group, ok := obj.(*processors.Group)
	if !ok {
		return nil, fmt.Errorf("processor_group must reference a ProcessorGroup component, got %T", obj)
	}
	model.ProcessorGroup = group

	for i, ref := range p.Losses {
		obj, err := b.Component(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("losses[%d]: %w", i, err)
		}
		loss, ok := obj.(losses.Loss)
		if !ok {
			return nil, fmt.Errorf("losses[%d]: %s is not a loss component (got %T)", i, ref, obj)
		}
		model.Losses = append(model.Losses, loss)
	}

	// The decoder's output heads plus the conditioning f0 seed the
	// group's routing.
	seeded := append(decoder.OutputNames(), conditioningKey)
	if err := group.ValidateRouting(seeded); err != nil {
		return nil, fmt.Errorf("processor group routing: %w", err)
	}

	return model, nil
}

func resolveEncoder(ctx context.Context, b registry.Builder, param, ref string) (encoders.Encoder, error) {
	obj, err := b.Component(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", param, err)
	}
	encoder, ok := obj.(encoders.Encoder)
	if !ok {
		return nil, fmt.Errorf("%s must reference an encoder component, got %T", param, obj)
	}
	return encoder, nil
}
