package keyring

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(kid string, notBefore, notAfter time.Time) Entry {
	return Entry{
		KID:       kid,
		Secret:    bytes.Repeat([]byte{0x0b}, KeyLength),
		NotBefore: notBefore,
		NotAfter:  notAfter,
	}
}

func TestActiveKeysWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	manifest := []Entry{
		entry("expired", now.Add(-48*time.Hour), now.Add(-24*time.Hour)),
		entry("current", now.Add(-24*time.Hour), now.Add(24*time.Hour)),
		entry("overlap", now.Add(-time.Hour), now.Add(30*24*time.Hour)),
		entry("future", now.Add(24*time.Hour), now.Add(48*time.Hour)),
	}

	active, err := ActiveKeys(manifest, now)
	require.NoError(t, err)
	require.Len(t, active, 2)
	// Manifest order preserved.
	assert.Equal(t, "current", active[0].KID)
	assert.Equal(t, "overlap", active[1].KID)
}

// Both window bounds are inclusive; the one-second-past case is the
// classic off-by-one between implementations.
func TestActiveKeysBoundaries(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		e      Entry
		active bool
	}{
		{"not_after_equals_now", entry("k", now.Add(-time.Hour), now), true},
		{"not_before_equals_now", entry("k", now, now.Add(time.Hour)), true},
		{"point_window", entry("k", now, now), true},
		{"expired_one_second_ago", entry("k", now.Add(-time.Hour), now.Add(-time.Second)), false},
		{"starts_in_one_second", entry("k", now.Add(time.Second), now.Add(time.Hour)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, err := ActiveKeys([]Entry{tt.e}, now)
			if tt.active {
				require.NoError(t, err)
				assert.Len(t, active, 1)
			} else {
				require.Error(t, err)
				assert.True(t, IsNoActiveKeys(err))
			}
		})
	}
}

func TestActiveKeysEmpty(t *testing.T) {
	now := time.Now().UTC()

	_, err := ActiveKeys(nil, now)
	require.Error(t, err)
	assert.True(t, IsNoActiveKeys(err))

	var nk *NoActiveKeysError
	require.ErrorAs(t, err, &nk)
	assert.Equal(t, now, nk.At)
	assert.Zero(t, nk.ManifestSize)
}

func TestSelectorSnapshotSwap(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	old := []Entry{entry("old", now.Add(-time.Hour), now.Add(time.Hour))}
	s := NewSelector(old)

	before := s.Snapshot()
	require.Len(t, before, 1)

	s.Replace([]Entry{entry("new", now.Add(-time.Hour), now.Add(time.Hour))})

	// The earlier snapshot is untouched; the selector serves the new one.
	assert.Equal(t, "old", before[0].KID)
	after, err := s.Active(now)
	require.NoError(t, err)
	assert.Equal(t, "new", after[0].KID)
}

func TestSelectorCopiesOnReplace(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	manifest := []Entry{entry("k1", now.Add(-time.Hour), now.Add(time.Hour))}
	s := NewSelector(manifest)

	// Caller-side mutation after Replace must not reach readers.
	manifest[0] = entry("mutated", now.Add(-time.Hour), now.Add(time.Hour))
	assert.Equal(t, "k1", s.Snapshot()[0].KID)
}

func TestSelectorEmptyUntilRefresh(t *testing.T) {
	s := NewSelector(nil)
	_, err := s.Active(time.Now())
	assert.True(t, IsNoActiveKeys(err))
}
