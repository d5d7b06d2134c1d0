// Package config defines the format-agnostic configuration model for the
// engine, along with the core interfaces (Loader, Converter) for loading
// binding files and decoding bound values into Go types.
//
// The `config.Model` produced by a Loader is the single source of truth for
// the `dag`, `report` and `checkpoint` packages. Concrete implementations of
// the interfaces, such as for HCL, are provided in separate packages.
package config
