package token

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	vectorKey1 = bytes.Repeat([]byte{0x0b}, 32)
	vectorKey2 = bytes.Repeat([]byte{0x0c}, 32)
)

// Fixed published vectors: HMAC-SHA256(key, "EMTP|v1|" + tuple). Any
// divergence here is a cross-implementation break, not a test nit.
func TestComputeVectors(t *testing.T) {
	tests := []struct {
		name   string
		secret []byte
		tuple  string
		want   string
	}{
		{
			"name_dob_key1",
			vectorKey1,
			"NAME=JRR TOLKIEN|DOB=1892-01-03",
			"1de4fe99c25ef4cc42124d309b79a9e5d1949975d04282f77a4119cb23ee2e8b",
		},
		{
			"smith_key1",
			vectorKey1,
			"NAME=JOHN SMITH|DOB=1970-05-01",
			"4883a2bf8e901aea798dc61bb50ff9769f320fc65eb9cc4c6c05d6861c9d7401",
		},
		{
			"phone_dob_key1",
			vectorKey1,
			"DOB=1970-05-01|PHONE=2125550100",
			"724ef838262d91a3314c98c91edf20109efe4e1ee03e6f3ebd141578d112e80c",
		},
		{
			"name_dob_key2",
			vectorKey2,
			"NAME=JRR TOLKIEN|DOB=1892-01-03",
			"69ce279dfa4ca67a412be080fb359da6fe41c82c16fb934f74a06bf32555cd32",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.secret, tt.tuple))
		})
	}
}

func TestComputeFormat(t *testing.T) {
	got := Compute(vectorKey1, "NAME=X")
	require.Len(t, got, 64)
	assert.Equal(t, strings.ToLower(got), got, "token hex must be lowercase")
	for _, r := range got {
		ok := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')
		require.True(t, ok, "non-hex rune %q", r)
	}
}

func TestDerive(t *testing.T) {
	keys := []Key{
		{ID: "k-2025", Secret: vectorKey2},
		{ID: "k-2024", Secret: vectorKey1},
	}
	tuples := []string{
		"NAME=JRR TOLKIEN|DOB=1892-01-03",
		"NAME=JOHN SMITH|DOB=1970-05-01",
	}

	set := Derive(tuples, keys)
	assert.Equal(t, SchemaID, set.SchemaID)
	require.Len(t, set.Tokens, 4)

	// Sorted by key id then hex regardless of input order.
	for i := 1; i < len(set.Tokens); i++ {
		a, b := set.Tokens[i-1], set.Tokens[i]
		less := a.KeyID < b.KeyID || (a.KeyID == b.KeyID && a.Hex < b.Hex)
		assert.True(t, less, "tokens out of order at %d", i)
	}

	assert.Contains(t, set.Tokens, Token{
		KeyID: "k-2024",
		Hex:   "1de4fe99c25ef4cc42124d309b79a9e5d1949975d04282f77a4119cb23ee2e8b",
	})
}

func TestDeriveDeterministic(t *testing.T) {
	keys := []Key{{ID: "k1", Secret: vectorKey1}}
	tuples := []string{"NAME=A|DOB=1970-01-01", "NAME=B|DOB=1970-01-01"}
	assert.Equal(t, Derive(tuples, keys), Derive(tuples, keys))
}

func TestDeriveDedup(t *testing.T) {
	keys := []Key{{ID: "k1", Secret: vectorKey1}}
	set := Derive([]string{"NAME=X", "NAME=X"}, keys)
	assert.Len(t, set.Tokens, 1)
}

func TestDeriveEmpty(t *testing.T) {
	set := Derive(nil, []Key{{ID: "k1", Secret: vectorKey1}})
	assert.Equal(t, SchemaID, set.SchemaID)
	assert.Empty(t, set.Tokens)
}

func TestIntersect(t *testing.T) {
	keys := []Key{{ID: "k1", Secret: vectorKey1}}
	a := Derive([]string{"NAME=A", "NAME=SHARED"}, keys)
	b := Derive([]string{"NAME=B", "NAME=SHARED"}, keys)

	got, err := Intersect(a, b)
	require.NoError(t, err)
	require.Len(t, got.Tokens, 1)
	assert.Equal(t, Compute(vectorKey1, "NAME=SHARED"), got.Tokens[0].Hex)
}

func TestIntersectSchemaMismatch(t *testing.T) {
	a := Set{SchemaID: "v1"}
	b := Set{SchemaID: "v2"}
	_, err := Intersect(a, b)
	require.Error(t, err)
	var sm *SchemaMismatchError
	assert.ErrorAs(t, err, &sm)
}
