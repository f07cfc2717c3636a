package tuple

import "sort"

// MaxTuples is the hard expansion cap per record. Combinatorics beyond
// the cap are truncated deterministically, never an error.
const MaxTuples = 256

// Inputs holds the per-kind variant values available for one record.
// Slices carry distinct canonical values in normalizer emission order;
// an empty slice (or empty DOB) means the field is absent from the
// record.
type Inputs struct {
	Name []string

	// DOB is the canonical date string. DOBWeak marks a partial date
	// accepted in weak mode; such tuples are tagged weak like
	// DOB-less ones.
	DOB     string
	DOBWeak bool

	Phone []string
	Addr  []string
	ID    []string
}

func (in Inputs) values(k Kind) []string {
	switch k {
	case KindName:
		return dedup(in.Name)
	case KindDOB:
		if in.DOB == "" {
			return nil
		}
		return []string{in.DOB}
	case KindPhone:
		return dedup(in.Phone)
	case KindAddr:
		return dedup(in.Addr)
	case KindID:
		return dedup(in.ID)
	}
	return nil
}

// candidate pairs a tuple with the ranking data the cap sort needs.
type candidate struct {
	tuple     Tuple
	rendered  string
	familyIdx int
	required  bool
	idBearing bool
}

// Build expands the family catalogue against the available variants and
// returns at most MaxTuples tuples.
//
// A family applies when every member kind (DOB aside) has at least one
// value. When the record has no full DOB, families are emitted in weak
// form (the DOB field omitted or partial, the tuple tagged weak) and
// only if includeWeak is set.
//
// Output order is the truncation priority order, so the result is
// byte-for-byte reproducible whether or not the cap bites.
func Build(in Inputs, includeWeak bool) []Tuple {
	weak := in.DOB == "" || in.DOBWeak

	var cands []candidate
	seen := make(map[string]bool)

	for famIdx, fam := range Catalogue {
		if weak && !includeWeak {
			continue
		}

		kinds := fam.Kinds
		if in.DOB == "" {
			kinds = withoutDOB(kinds)
			if len(kinds) == 0 {
				continue
			}
		}

		vals := make([][]string, len(kinds))
		applicable := true
		for i, k := range kinds {
			vals[i] = in.values(k)
			if len(vals[i]) == 0 {
				applicable = false
				break
			}
		}
		if !applicable {
			continue
		}

		expand(kinds, vals, func(fields []Field) {
			t := Tuple{Fields: fields, Family: fam.Name, Weak: weak}
			r := t.Render()
			if seen[r] {
				// First family to produce a rendering keeps it.
				return
			}
			seen[r] = true
			cands = append(cands, candidate{
				tuple:     t,
				rendered:  r,
				familyIdx: famIdx,
				required:  fam.Required,
				idBearing: fam.idBearing(),
			})
		})
	}

	sortCandidates(cands)
	if len(cands) > MaxTuples {
		cands = cands[:MaxTuples]
	}

	out := make([]Tuple, len(cands))
	for i, c := range cands {
		out[i] = c.tuple
	}
	return out
}

// sortCandidates orders candidates by truncation priority: required
// families first, then non-weak, then id-bearing, then family
// declaration order, then lexical rendered string.
func sortCandidates(cands []candidate) {
	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.required != b.required {
			return a.required
		}
		if a.tuple.Weak != b.tuple.Weak {
			return !a.tuple.Weak
		}
		if a.idBearing != b.idBearing {
			return a.idBearing
		}
		if a.familyIdx != b.familyIdx {
			return a.familyIdx < b.familyIdx
		}
		return a.rendered < b.rendered
	})
}

// expand walks the Cartesian product of vals, emitting fields in the
// declared kind order. kinds in the catalogue are already canonical
// order, so no re-sorting happens per combination.
func expand(kinds []Kind, vals [][]string, emit func([]Field)) {
	idx := make([]int, len(kinds))
	for {
		fields := make([]Field, len(kinds))
		for i, k := range kinds {
			fields[i] = Field{Kind: k, Value: vals[i][idx[i]]}
		}
		emit(fields)

		pos := len(idx) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(vals[pos]) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return
		}
	}
}

func withoutDOB(kinds []Kind) []Kind {
	out := make([]Kind, 0, len(kinds))
	for _, k := range kinds {
		if k != KindDOB {
			out = append(out, k)
		}
	}
	return out
}

func dedup(vals []string) []string {
	out := vals[:0:0]
	seen := make(map[string]bool, len(vals))
	for _, v := range vals {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
