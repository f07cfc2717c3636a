package tuple

import "strings"

// Kind identifies one tuple field position.
type Kind string

// Field kinds in canonical render order.
const (
	KindName  Kind = "NAME"
	KindDOB   Kind = "DOB"
	KindPhone Kind = "PHONE"
	KindAddr  Kind = "ADDR"
	KindID    Kind = "ID"
)

// kindRank fixes the canonical field order NAME < DOB < PHONE < ADDR < ID.
var kindRank = map[Kind]int{
	KindName:  0,
	KindDOB:   1,
	KindPhone: 2,
	KindAddr:  3,
	KindID:    4,
}

// Field is one (kind, canonical value) element of a tuple.
type Field struct {
	Kind  Kind
	Value string
}

// Tuple is an ordered sequence of fields plus derivation metadata.
// Fields are always held in canonical kind order; missing fields are
// omitted, never rendered empty. Two tuples are equal iff their
// rendered strings are byte-equal.
type Tuple struct {
	Fields []Field

	// Family names the catalogue entry that produced this tuple.
	Family string

	// Weak marks a tuple built without a full DOB. Weak tuples carry
	// elevated false-positive risk and are excluded by default.
	Weak bool
}

// Render produces the canonical KIND=value|KIND=value form.
func (t Tuple) Render() string {
	var b strings.Builder
	for i, f := range t.Fields {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(string(f.Kind))
		b.WriteByte('=')
		b.WriteString(f.Value)
	}
	return b.String()
}
