// Package dag materializes a merged binding model into a graph of
// constructed component instances.
//
// Construction starts from the model's root reference and walks depth-first
// through every reference-typed param. Each (scope, component) pair is
// constructed at most once per build; scopes are the only instancing
// mechanism, so two scopes referencing the same component yield two
// independent instances. Reference cycles are detected on the active
// construction path and reported with the full chain.
//
// Before any construction, ValidateStatic checks the whole binding store
// against the registry, including binds on components the selected root
// never reaches.
package dag
