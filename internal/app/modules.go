package app

import (
	"github.com/synthlab/synthgridgo/components/autoencoder"
	"github.com/synthlab/synthgridgo/components/decoders"
	"github.com/synthlab/synthgridgo/components/effects"
	"github.com/synthlab/synthgridgo/components/encoders"
	"github.com/synthlab/synthgridgo/components/losses"
	"github.com/synthlab/synthgridgo/components/preprocessing"
	"github.com/synthlab/synthgridgo/components/processors"
	"github.com/synthlab/synthgridgo/components/spectral"
	"github.com/synthlab/synthgridgo/components/synths"
	"github.com/synthlab/synthgridgo/internal/registry"
)

// coreModules is the definitive list of all component modules that are
// compiled into the synthgridgo binary.
var coreModules = []registry.Module{
	&autoencoder.Module{},
	&decoders.Module{},
	&effects.Module{},
	&encoders.Module{},
	&losses.Module{},
	&preprocessing.Module{},
	&processors.Module{},
	&spectral.Module{},
	&synths.Module{},
}
