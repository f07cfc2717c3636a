package field

// minIDRunLength is the shortest digit run that yields ID fragments.
const minIDRunLength = 4

// NormalizeIDFragments extracts digit-suffix variants from raw
// identifier strings. Identifier type is always discarded; only the
// digit suffixes participate in matching.
//
// A run is a maximal stretch of digits where punctuation and whitespace
// JOIN adjacent groups and letters BREAK them: "SSN 123-45-6789" is one
// nine-digit run, "AB12 34CD56" is the runs 1234 and 56. Grouped
// formats and packed formats of the same identifier must land on the
// same run or the suffixes never match.
func NormalizeIDFragments(raws []string) Set {
	var set Set
	for _, raw := range raws {
		for _, run := range digitRuns(raw) {
			n := len(run)
			set = set.add(IDLast4, run[n-4:])
			if n >= 5 {
				set = set.add(IDLast5, run[n-5:])
			}
			if n >= 6 {
				set = set.add(IDLast6, run[n-6:])
			}
		}
	}
	return set
}

// digitRuns returns every digit run of length >= minIDRunLength in s,
// in order of appearance.
func digitRuns(s string) []string {
	var runs []string
	var cur []byte
	flush := func() {
		if len(cur) >= minIDRunLength {
			runs = append(runs, string(cur))
		}
		cur = cur[:0]
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			cur = append(cur, byte(r))
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			flush()
		default:
			// Separators join; nothing to do.
		}
	}
	flush()
	return runs
}
