// Package checkpoint verifies that checkpoint artifacts referenced by a
// model are reachable before the load is declared good.
//
// A gs://bucket/object path is probed with an HTTP HEAD request against
// the public storage endpoint, an http:// or https:// path is probed as
// given, and anything else is treated as a local file path. Probes run
// on a small worker pool and every unreachable path is reported in a
// single error.
package checkpoint
