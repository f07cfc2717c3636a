// Package harness runs end-to-end derivation vectors and pins their
// tuple and token output with golden files. A vector is a record plus
// engine options; its snapshot captures the rendered tuples and the
// token set under the published test key, so any change to
// canonicalization, the family catalogue, or the token computation
// shows up as a golden diff.
package harness
