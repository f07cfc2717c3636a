package field

import (
	"fmt"
	"strconv"
	"strings"
)

// Year bounds for DOB validation.
const (
	minDOBYear = 1800
	maxDOBYear = 2100
)

// DOB is a validated date of birth. Canonical keeps the wire form
// (YYYY-MM-DD, or a YYYY / YYYY-MM prefix in weak mode); Weak marks
// partial dates so every tuple built from them can be tagged and
// excluded from high-confidence families.
type DOB struct {
	Canonical string
	Weak      bool
}

// NormalizeDOB strictly parses a YYYY-MM-DD date of birth. Leap years
// are respected; year must lie in [1800, 2100].
//
// When allowPartial is set, YYYY and YYYY-MM inputs are accepted and
// flagged Weak. Anything else fails with an INVALID_DATE field error.
func NormalizeDOB(raw string, allowPartial bool) (DOB, error) {
	s := strings.TrimSpace(raw)

	parts := strings.Split(s, "-")
	switch len(parts) {
	case 3:
		// full date below
	case 1, 2:
		if !allowPartial {
			return DOB{}, newInvalidDate(raw, "expected YYYY-MM-DD")
		}
		return normalizePartialDOB(raw, parts)
	default:
		return DOB{}, newInvalidDate(raw, "expected YYYY-MM-DD")
	}

	year, ok := parseDatePart(parts[0], 4)
	if !ok || year < minDOBYear || year > maxDOBYear {
		return DOB{}, newInvalidDate(raw, fmt.Sprintf("year must be %d-%d", minDOBYear, maxDOBYear))
	}
	month, ok := parseDatePart(parts[1], 2)
	if !ok || month < 1 || month > 12 {
		return DOB{}, newInvalidDate(raw, "month must be 01-12")
	}
	day, ok := parseDatePart(parts[2], 2)
	if !ok || day < 1 || day > daysIn(year, month) {
		return DOB{}, newInvalidDate(raw, fmt.Sprintf("day invalid for %04d-%02d", year, month))
	}

	return DOB{Canonical: s}, nil
}

func normalizePartialDOB(raw string, parts []string) (DOB, error) {
	year, ok := parseDatePart(parts[0], 4)
	if !ok || year < minDOBYear || year > maxDOBYear {
		return DOB{}, newInvalidDate(raw, fmt.Sprintf("year must be %d-%d", minDOBYear, maxDOBYear))
	}
	if len(parts) == 2 {
		month, ok := parseDatePart(parts[1], 2)
		if !ok || month < 1 || month > 12 {
			return DOB{}, newInvalidDate(raw, "month must be 01-12")
		}
		return DOB{Canonical: fmt.Sprintf("%04d-%02d", year, month), Weak: true}, nil
	}
	return DOB{Canonical: fmt.Sprintf("%04d", year), Weak: true}, nil
}

// parseDatePart parses a fixed-width, digits-only date component.
// Width is enforced so "1892-1-3" is rejected rather than silently
// reinterpreted; divergent zero-padding tolerance is exactly the kind
// of drift that breaks cross-implementation matching.
func parseDatePart(s string, width int) (int, bool) {
	if len(s) != width {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func daysIn(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	}
	return 0
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
