package keyring

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// NoActiveKeysError reports an empty active-key set. Callers must treat
// this as fatal for token generation; deriving zero tokens silently
// would look exactly like a non-match.
type NoActiveKeysError struct {
	// At is the reference time of the failed selection.
	At time.Time

	// ManifestSize is how many entries were considered.
	ManifestSize int
}

// Error implements the error interface.
func (e *NoActiveKeysError) Error() string {
	if e.At.IsZero() {
		return "NO_ACTIVE_KEYS: empty active key set"
	}
	return fmt.Sprintf("NO_ACTIVE_KEYS: no key valid at %s (manifest has %d entries)",
		e.At.Format(time.RFC3339), e.ManifestSize)
}

// IsNoActiveKeys reports whether err is a NO_ACTIVE_KEYS error.
// Uses errors.As to handle wrapped errors.
func IsNoActiveKeys(err error) bool {
	var nk *NoActiveKeysError
	return errors.As(err, &nk)
}

// ActiveKeys returns every manifest entry whose validity window
// contains now, preserving manifest order. Both bounds are inclusive:
// not_after == now is still active, not_after == now-1s is not.
func ActiveKeys(manifest []Entry, now time.Time) ([]Entry, error) {
	var active []Entry
	for _, e := range manifest {
		if now.Before(e.NotBefore) || now.After(e.NotAfter) {
			continue
		}
		active = append(active, e)
	}
	if len(active) == 0 {
		return nil, &NoActiveKeysError{At: now, ManifestSize: len(manifest)}
	}
	return active, nil
}

// Selector holds an immutable manifest snapshot for concurrent readers.
//
// The snapshot is replaced wholesale by Replace and never partially
// mutated, so a derivation that grabbed a snapshot keeps a consistent
// view even while a refresh lands. This is the engine's only state
// across calls.
type Selector struct {
	snapshot atomic.Pointer[[]Entry]
}

// NewSelector creates a selector over an initial manifest. The manifest
// may be empty; selection will fail until a refresh supplies keys.
func NewSelector(manifest []Entry) *Selector {
	s := &Selector{}
	s.Replace(manifest)
	return s
}

// Replace swaps in a new manifest snapshot. The slice is copied so
// later caller-side mutation cannot reach in-flight readers.
func (s *Selector) Replace(manifest []Entry) {
	snap := make([]Entry, len(manifest))
	copy(snap, manifest)
	s.snapshot.Store(&snap)
}

// Snapshot returns the current manifest view.
func (s *Selector) Snapshot() []Entry {
	return *s.snapshot.Load()
}

// Active selects the keys valid at now from the current snapshot.
func (s *Selector) Active(now time.Time) ([]Entry, error) {
	return ActiveKeys(s.Snapshot(), now)
}
