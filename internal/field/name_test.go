package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func variantMap(s Set) map[Label]string {
	m := make(map[Label]string, len(s))
	for _, v := range s {
		if _, ok := m[v.Label]; !ok {
			m[v.Label] = v.Value
		}
	}
	return m
}

func TestNormalizeNameBasic(t *testing.T) {
	set := NormalizeName("John Ronald Reuel Tolkien", nil)
	m := variantMap(set)

	assert.Equal(t, "JOHN RONALD REUEL TOLKIEN", m[NameFull])
	assert.Equal(t, "JOHN TOLKIEN", m[NameGivenFamily])
	assert.Equal(t, "JRR TOLKIEN", m[NameInitialsFamily])
	assert.Equal(t, "J TOLKIEN", m[NameGivenInitialFamily])
	_, hasSuffix := m[NameGivenFamilySuffix]
	assert.False(t, hasSuffix)
}

// An honorific followed by exactly one token is never dropped: the
// remaining token alone cannot carry the identity.
func TestNormalizeNameHonorificEdge(t *testing.T) {
	m := variantMap(NormalizeName("Mr Smith", nil))
	assert.Equal(t, "MR SMITH", m[NameFull])
	assert.Equal(t, "MR SMITH", m[NameGivenFamily])

	m = variantMap(NormalizeName("Mr. John Smith", nil))
	assert.Equal(t, "JOHN SMITH", m[NameFull])
}

func TestNormalizeNameHonorifics(t *testing.T) {
	tests := []struct {
		in   string
		full string
	}{
		{"Dr. Jane Doe", "JANE DOE"},
		{"PROF Alan Turing", "ALAN TURING"},
		{"Madam Ada Lovelace", "ADA LOVELACE"},
		{"Sir Smith", "SIR SMITH"}, // two tokens, kept
		{"Mister John Smith", "MISTER JOHN SMITH"}, // not in the fixed set
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m := variantMap(NormalizeName(tt.in, nil))
			assert.Equal(t, tt.full, m[NameFull])
		})
	}
}

func TestNormalizeNameSuffixRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		suffix string
	}{
		{"abbreviated", "John Tolkien Sr.", "SR"},
		{"spelled_out", "John Tolkien Senior", "SR"},
		{"junior", "John Tolkien Jr", "JR"},
		{"comma_set_off", "John Tolkien, Jr.", "JR"},
		{"comma_set_off_spelled", "John Tolkien, Senior", "SR"},
		{"comma_family_first", "Tolkien, Jr. John", "JR"},
		{"comma_suffix_last", "Tolkien, John Jr.", "JR"},
		{"roman", "John Tolkien III", "III"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := variantMap(NormalizeName(tt.in, nil))
			require.Equal(t, "JOHN TOLKIEN", m[NameFull])
			assert.Equal(t, "JOHN TOLKIEN "+tt.suffix, m[NameGivenFamilySuffix])
		})
	}
}

// The two common spellings of a heavily-initialed name must overlap on
// at least one variant value; the collapsed-initials form is the
// bridge.
func TestNormalizeNameCrossRepresentation(t *testing.T) {
	packed := NormalizeName("MR. JRR Tolkien", nil)
	spelled := NormalizeName("J. R. R. Tolkien", nil)

	packedVals := map[string]bool{}
	for _, v := range packed {
		packedVals[v.Value] = true
	}

	var shared []string
	for _, v := range spelled {
		if packedVals[v.Value] {
			shared = append(shared, v.Value)
		}
	}
	require.NotEmpty(t, shared, "packed=%v spelled=%v", packed, spelled)
	assert.Contains(t, shared, "JRR TOLKIEN")
}

func TestNormalizeNameCollapsedInitials(t *testing.T) {
	m := variantMap(NormalizeName("J. R. R. Tolkien", nil))
	assert.Equal(t, "JRR TOLKIEN", m[NameCollapsedInitials])

	// No adjacent single-letter tokens: variant not emitted.
	_, ok := variantMap(NormalizeName("John Smith", nil))[NameCollapsedInitials]
	assert.False(t, ok)

	// Interior run collapses, surrounding tokens survive.
	m = variantMap(NormalizeName("John R R Smith", nil))
	assert.Equal(t, "JOHN RR SMITH", m[NameCollapsedInitials])
}

func TestNormalizeNameSingleToken(t *testing.T) {
	set := NormalizeName("Tolkien", nil)
	m := variantMap(set)
	assert.Equal(t, "TOLKIEN", m[NameFull])
	assert.Len(t, m, 1, "single token yields only NAME_FULL: %v", set)
}

func TestNormalizeNameEmpty(t *testing.T) {
	assert.Nil(t, NormalizeName("", nil))
	assert.Nil(t, NormalizeName(" . , ", nil))
}

func TestNormalizeNameCommaReorder(t *testing.T) {
	m := variantMap(NormalizeName("Smith, John Q", nil))
	assert.Equal(t, "JOHN Q SMITH", m[NameFull])
	assert.Equal(t, "JOHN SMITH", m[NameGivenFamily])
}

// A comma before the suffix must not change the variant set: both
// spellings of the same name yield identical variants, so they share
// every name tuple.
func TestNormalizeNameCommaSuffixEquivalence(t *testing.T) {
	withComma := NormalizeName("John Tolkien, Jr.", nil)
	without := NormalizeName("John Tolkien Jr.", nil)
	require.Equal(t, without, withComma)

	m := variantMap(withComma)
	assert.Equal(t, "JOHN TOLKIEN", m[NameFull])
	assert.Equal(t, "JOHN TOLKIEN JR", m[NameGivenFamilySuffix])
}

// A single-token head stays family-first even when the tail looks like
// a suffix; stripping it would leave no given name at all.
func TestNormalizeNameSingleTokenFamilyFirst(t *testing.T) {
	m := variantMap(NormalizeName("Smith, V", nil))
	assert.Equal(t, "V SMITH", m[NameFull])
	_, hasSuffix := m[NameGivenFamilySuffix]
	assert.False(t, hasSuffix)
}

func TestNormalizeNameNicknames(t *testing.T) {
	nicks := StaticNicknames{"WILLIAM": {"BILL", "WILL"}}

	set := NormalizeName("William Tolkien", nicks)
	var got []string
	for _, v := range set {
		if v.Label == NameNickFamily {
			got = append(got, v.Value)
		}
	}
	assert.Equal(t, []string{"BILL TOLKIEN", "WILL TOLKIEN"}, got)

	// A provider must not perturb the core catalogue.
	base := NormalizeName("William Tolkien", nil)
	withNick := NormalizeName("William Tolkien", nicks)
	require.True(t, len(withNick) > len(base))
	assert.Equal(t, base, withNick[:len(base)])
}
