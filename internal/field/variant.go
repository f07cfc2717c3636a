package field

// Label identifies one canonical form a normalizer can produce.
//
// Labels are a fixed enumeration per field kind. They never appear in
// rendered tuples (tuples carry only field kinds and values); they
// exist so callers and tests can reason about which rule produced a
// value.
type Label string

// Name variant labels.
const (
	NameFull               Label = "NAME_FULL"
	NameGivenFamily        Label = "NAME_GIVEN_FAMILY"
	NameGivenFamilySuffix  Label = "NAME_GIVEN_FAMILY_SUFFIX"
	NameInitialsFamily     Label = "NAME_INITIALS_FAMILY"
	NameGivenInitialFamily Label = "NAME_GIVEN_INITIAL_FAMILY"
	NameCollapsedInitials  Label = "NAME_COLLAPSED_INITIALS"
	NameNickFamily         Label = "NAME_NICK_FAMILY"
)

// Phone variant labels.
const (
	PhoneE164     Label = "PHONE_E164"
	PhoneNational Label = "PHONE_NATIONAL"
	PhoneLast10   Label = "PHONE_LAST10"
	PhoneLast7    Label = "PHONE_LAST7"
)

// Address variant labels.
const (
	AddrLine1Postal          Label = "ADDR_LINE1_POSTAL"
	AddrLine1CityState       Label = "ADDR_LINE1_CITY_STATE"
	AddrLine1CityStatePostal Label = "ADDR_LINE1_CITY_STATE_POSTAL"
	AddrNoUnit               Label = "ADDR_NO_UNIT"
)

// ID fragment variant labels.
const (
	IDLast4 Label = "ID_LAST4"
	IDLast5 Label = "ID_LAST5"
	IDLast6 Label = "ID_LAST6"
)

// Variant is one (label, canonical value) pair.
type Variant struct {
	Label Label
	Value string
}

// Set is an ordered list of variants. Order is generator declaration
// order, which keeps downstream tuple expansion deterministic without
// any sorting step.
type Set []Variant

// add appends a variant, skipping empty values and exact duplicates.
// First occurrence wins, preserving generator order.
func (s Set) add(label Label, value string) Set {
	if value == "" {
		return s
	}
	for _, v := range s {
		if v.Label == label && v.Value == value {
			return s
		}
	}
	return append(s, Variant{Label: label, Value: value})
}

// Values returns the distinct variant values in declaration order.
func (s Set) Values() []string {
	out := make([]string, 0, len(s))
	seen := make(map[string]bool, len(s))
	for _, v := range s {
		if seen[v.Value] {
			continue
		}
		seen[v.Value] = true
		out = append(out, v.Value)
	}
	return out
}

// Lookup returns the first value recorded under label.
func (s Set) Lookup(label Label) (string, bool) {
	for _, v := range s {
		if v.Label == label {
			return v.Value, true
		}
	}
	return "", false
}
