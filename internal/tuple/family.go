package tuple

// Family is one fixed combination of field kinds. The catalogue below
// is frozen per schema id; changing it requires a new schema id.
type Family struct {
	// Name identifies the family in diagnostics and tests.
	Name string

	// Kinds lists the member kinds in canonical order.
	Kinds []Kind

	// Required families win over optional ones under cap pressure.
	Required bool
}

// idBearing reports whether the family includes an ID fragment. These
// carry higher precision and outrank pure-demographic tuples when the
// cap forces truncation.
func (f Family) idBearing() bool {
	for _, k := range f.Kinds {
		if k == KindID {
			return true
		}
	}
	return false
}

// Catalogue is the fixed tuple family catalogue for schema v1.
// Declaration order is family priority. The id-bearing families apply
// only when the record carries id fragments.
var Catalogue = []Family{
	{Name: "name_dob", Kinds: []Kind{KindName, KindDOB}, Required: true},
	{Name: "phone_dob", Kinds: []Kind{KindDOB, KindPhone}, Required: true},
	{Name: "addr_dob", Kinds: []Kind{KindDOB, KindAddr}, Required: true},
	{Name: "name_dob_phone", Kinds: []Kind{KindName, KindDOB, KindPhone}, Required: true},
	{Name: "name_dob_addr", Kinds: []Kind{KindName, KindDOB, KindAddr}, Required: true},
	{Name: "name_dob_id", Kinds: []Kind{KindName, KindDOB, KindID}},
	{Name: "dob_id", Kinds: []Kind{KindDOB, KindID}},
	{Name: "phone_dob_id", Kinds: []Kind{KindDOB, KindPhone, KindID}},
}
