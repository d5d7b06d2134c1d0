// Package decoders provides the decoder components that map latent
// features to synthesizer controls.
package decoders

import (
	"context"
	"fmt"

	"github.com/synthlab/synthgridgo/internal/registry"
)

// Decoder is implemented by decoder components. The output names seed
// the processor group's routing.
type Decoder interface {
	OutputNames() []string
}

// OutputSplit names one decoder output head and its channel size.
type OutputSplit struct {
	Name string `cty:"name"`
	Size int    `cty:"size"`
}

// RnnFcDecoder is a stack of fully connected layers around an RNN, with
// one named output head per split.
type RnnFcDecoder struct {
	RnnChannels    int
	RnnType        string
	Ch             int
	LayersPerStack int
	OutputSplits   []OutputSplit
}

// OutputNames implements the Decoder interface, in declared split order.
func (d *RnnFcDecoder) OutputNames() []string {
	names := make([]string, len(d.OutputSplits))
	for i, split := range d.OutputSplits {
		names[i] = split.Name
	}
	return names
}

type rnnFcDecoderParams struct {
	RnnChannels    int           `sggo:"rnn_channels"`
	RnnType        string        `sggo:"rnn_type"`
	Ch             int           `sggo:"ch"`
	LayersPerStack int           `sggo:"layers_per_stack"`
	OutputSplits   []OutputSplit `sggo:"output_splits"`
}

func constructRnnFcDecoder(ctx context.Context, b registry.Builder, params any) (any, error) {
	p := params.(*rnnFcDecoderParams)

	if p.RnnChannels < 1 {
		return nil, fmt.Errorf("rnn_channels must be >= 1, got %d", p.RnnChannels)
	}
	if p.RnnType != "gru" && p.RnnType != "lstm" {
		return nil, fmt.Errorf("rnn_type must be gru or lstm, got %q", p.RnnType)
	}
	if p.Ch < 1 {
		return nil, fmt.Errorf("ch must be >= 1, got %d", p.Ch)
	}
	if p.LayersPerStack < 1 {
		return nil, fmt.Errorf("layers_per_stack must be >= 1, got %d", p.LayersPerStack)
	}
	if len(p.OutputSplits) == 0 {
		return nil, fmt.Errorf("output_splits must have at least one entry")
	}

	seen := make(map[string]struct{}, len(p.OutputSplits))
	for i, split := range p.OutputSplits {
		if split.Name == "" {
			return nil, fmt.Errorf("output_splits[%d]: name must not be empty", i)
		}
		if _, dup := seen[split.Name]; dup {
			return nil, fmt.Errorf("output_splits[%d]: duplicate name %q", i, split.Name)
		}
		seen[split.Name] = struct{}{}
		if split.Size < 1 {
			return nil, fmt.Errorf("output_splits[%d] (%s): size must be >= 1, got %d", i, split.Name, split.Size)
		}
	}

	return &RnnFcDecoder{
		RnnChannels:    p.RnnChannels,
		RnnType:        p.RnnType,
		Ch:             p.Ch,
		LayersPerStack: p.LayersPerStack,
		OutputSplits:   p.OutputSplits,
	}, nil
}
