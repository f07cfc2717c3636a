package testutil

import (
	"bytes"
	"time"

	"github.com/emtp-protocol/emtp/internal/keyring"
)

// TestKID is the key id of the published test vector key.
const TestKID = "test-key-1"

// RefTime is the fixed reference time used by deterministic tests and
// golden vectors. It sits inside TestKey's validity window.
var RefTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// TestSecret returns the published 32-byte test vector secret
// (0x0b repeated). Fresh copy per call; tests may clobber it.
func TestSecret() []byte {
	return bytes.Repeat([]byte{0x0b}, keyring.KeyLength)
}

// TestKey returns a manifest entry for the published test key with a
// window comfortably containing RefTime.
func TestKey() keyring.Entry {
	return keyring.Entry{
		KID:       TestKID,
		Secret:    TestSecret(),
		NotBefore: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Manifest builds a manifest from entries, defaulting to just TestKey.
func Manifest(entries ...keyring.Entry) []keyring.Entry {
	if len(entries) == 0 {
		return []keyring.Entry{TestKey()}
	}
	return entries
}

// Key returns a manifest entry with the given id, fill byte, and
// validity window.
func Key(kid string, fill byte, notBefore, notAfter time.Time) keyring.Entry {
	return keyring.Entry{
		KID:       kid,
		Secret:    bytes.Repeat([]byte{fill}, keyring.KeyLength),
		NotBefore: notBefore,
		NotAfter:  notAfter,
	}
}
