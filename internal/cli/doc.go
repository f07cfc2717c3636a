// Package cli implements the emtp command line: a thin caller harness
// around the engine for deriving token sets from record files,
// validating key manifests, and intersecting token-set files.
//
// The CLI is deliberately outside the interoperability surface: it
// only loads files, calls the engine, and formats output. Nothing here
// may alter derivation semantics.
package cli
