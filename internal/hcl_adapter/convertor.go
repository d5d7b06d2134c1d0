package hcl_adapter

import (
	"github.com/zclconf/go-cty/cty"
)

// Converter is the HCL-specific implementation of the config.Converter
// interface.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// ToNative converts an engine value into its plain Go equivalent, for
// rendering into the operative report.
func (c *Converter) ToNative(v cty.Value) (any, error) {
	return ctyToNative(v)
}
