// Package keyring decodes key manifests and selects the active key
// epoch.
//
// The engine never generates, stores, rotates, or logs key material;
// all of that belongs to the Key Server. This package only consumes an
// ordered manifest of {kid, key_b64, algorithm, not_before, not_after}
// entries, validates them (hmac-sha256, exactly 32 raw bytes,
// well-formed RFC 3339 window), and answers "which keys are active at
// time T" with inclusive bounds on both ends.
//
// No clock-skew tolerance exists here. Callers needing grace periods
// configure wider windows upstream; a hidden tolerance constant would
// be yet another way for two implementations to disagree.
//
// Selector wraps a manifest in an atomically swappable snapshot so a
// refresh never exposes a half-updated manifest to an in-flight
// derivation.
package keyring
