// Package engine orchestrates the EMTP derivation pipeline.
//
// One call runs the whole thing: raw InputRecord -> field normalizers
// -> tuple builder -> token generator, under a caller-supplied set of
// active keys. The engine is purely functional and stateless across
// calls; the same record and keys always produce the byte-identical
// token set, and independent records may be derived concurrently.
//
// Within one record the four field normalizers (name, phone, address,
// id) have no data dependency on each other and fan out across
// goroutines, joining before the tuple builder. Nothing inside blocks,
// so there is nothing to cancel or retry: a failure is a malformed
// input or manifest, not a transient condition.
//
// The error taxonomy callers see is INVALID_DATE (field package),
// INVALID_KEY_LENGTH and NO_ACTIVE_KEYS (keyring package), and
// EMPTY_INPUT (here). This package re-exports Is* helpers for all four
// so callers can branch without importing the internals.
package engine
