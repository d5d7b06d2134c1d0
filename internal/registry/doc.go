// Package registry provides the central glue between component manifests and
// compiled Go code.
//
// Every registered component has two halves: an HCL manifest declaring its
// parameter surface (names, types, defaults) and a compiled Go side (a params
// struct plus a constructor). The registry stores both, keyed by the
// component name that binding files refer to.
//
// During application startup the registry is populated from the embedded
// manifests and then validated, so that the Go structs and the public-facing
// manifests are always in sync. Any drift is a startup failure rather than a
// surprise during a model build.
package registry
