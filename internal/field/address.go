package field

import (
	"strings"

	"github.com/emtp-protocol/emtp/internal/canon"
)

// Address is the structured form of one postal address. Callers may
// supply it directly or derive it from a free-form string with
// ParseFreeform.
type Address struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// streetAbbrev folds the fixed bidirectional abbreviation table onto
// its short side. Both directions of each pair land on the same
// canonical token, which is what makes the table "bidirectional":
// STREET and ST render identically.
var streetAbbrev = map[string]string{
	"STREET": "ST", "ST": "ST",
	"AVENUE": "AVE", "AVE": "AVE",
	"ROAD": "RD", "RD": "RD",
	"BOULEVARD": "BLVD", "BLVD": "BLVD",
	"DRIVE": "DR", "DR": "DR",
	"LANE": "LN", "LN": "LN",
	"APARTMENT": "APT", "APT": "APT",
	"SUITE": "STE", "STE": "STE",
}

// unitMarkers open a trailing unit designation on line1. Everything
// from the marker to the end of the line is the unit.
var unitMarkers = map[string]bool{
	"APT": true, "STE": true, "UNIT": true,
}

// addrParts holds the canonicalized sub-fields the variant generators
// run against. line1 is post-abbreviation tokens, with line2 folded in
// (line2 usually carries the unit, and unit stripping must see it).
type addrParts struct {
	line1  []string
	city   string
	state  string
	postal string
}

// NormalizeAddress produces the labeled, pipe-joined variants for one
// structured address. Sub-fields that are missing simply disable the
// variants that need them.
func NormalizeAddress(a Address) Set {
	line1 := expandUnitMarkers(a.Line1)
	line2 := expandUnitMarkers(a.Line2)
	parts := addrParts{
		line1:  abbrevLine1(append(canon.Tokens(line1), canon.Tokens(line2)...)),
		city:   canon.String(a.City),
		state:  canon.String(a.State),
		postal: normalizePostal(a.PostalCode),
	}
	if len(parts.line1) == 0 {
		return nil
	}

	var set Set
	for _, g := range addrGens {
		if v, ok := g.gen(parts); ok {
			set = set.add(g.label, v)
		}
	}
	return set
}

// addrGens is the enumerated variant catalogue for addresses.
var addrGens = []struct {
	label Label
	gen   func(p addrParts) (string, bool)
}{
	{AddrLine1Postal, func(p addrParts) (string, bool) {
		if p.postal == "" {
			return "", false
		}
		return join(p.line1) + "|" + p.postal, true
	}},
	{AddrLine1CityState, func(p addrParts) (string, bool) {
		if p.city == "" || p.state == "" {
			return "", false
		}
		return join(p.line1) + "|" + p.city + "|" + p.state, true
	}},
	{AddrLine1CityStatePostal, func(p addrParts) (string, bool) {
		if p.city == "" || p.state == "" || p.postal == "" {
			return "", false
		}
		return join(p.line1) + "|" + p.city + "|" + p.state + "|" + p.postal, true
	}},
	{AddrNoUnit, func(p addrParts) (string, bool) {
		stripped := stripUnit(p.line1)
		if len(stripped) == len(p.line1) {
			// Nothing stripped; the other variants already cover it.
			return "", false
		}
		switch {
		case p.postal != "":
			return join(stripped) + "|" + p.postal, true
		case p.city != "" && p.state != "":
			return join(stripped) + "|" + p.city + "|" + p.state, true
		default:
			return join(stripped), true
		}
	}},
}

func join(tokens []string) string {
	return strings.Join(tokens, " ")
}

// expandUnitMarkers rewrites the "#4B" unit shorthand to a UNIT marker
// token. This runs before canonicalization, which would otherwise fold
// '#' to a bare space; "#"-style sources must render and strip the same
// way APT/STE/UNIT sources do.
func expandUnitMarkers(s string) string {
	return strings.ReplaceAll(s, "#", " UNIT ")
}

func abbrevLine1(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if short, ok := streetAbbrev[tok]; ok {
			out[i] = short
			continue
		}
		out[i] = tok
	}
	return out
}

// stripUnit drops a trailing unit designation (APT 4B, STE 200, UNIT 7)
// from line1 tokens. The marker must not open the line; a line that IS
// a unit stays intact.
func stripUnit(tokens []string) []string {
	for i := 1; i < len(tokens); i++ {
		if unitMarkers[tokens[i]] {
			return tokens[:i]
		}
	}
	return tokens
}

// normalizePostal reduces a postal code to canonical form with interior
// separators removed. A nine-digit result is assumed to be ZIP+4 and
// truncated to the five-digit ZIP so that +4-bearing and bare sources
// still match.
func normalizePostal(raw string) string {
	joined := strings.Join(canon.Tokens(raw), "")
	if len(joined) == 9 && allDigits(joined) {
		return joined[:5]
	}
	return joined
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseFreeform heuristically splits a free-form address string into
// structured sub-fields. The split is lossy best-effort and never
// authoritative: comma segments, then a postal/state back-scan over the
// last segment. Callers with structured data should pass it directly.
func ParseFreeform(raw string) Address {
	segs := strings.Split(raw, ",")
	for i := range segs {
		segs[i] = strings.TrimSpace(segs[i])
	}
	if len(segs) == 1 {
		return Address{Line1: segs[0]}
	}

	addr := Address{Line1: segs[0]}
	rest := segs[1:]

	last := canon.Tokens(rest[len(rest)-1])
	// Trailing digit tokens are the postal code; ZIP+4 arrives as two
	// tokens once the hyphen folds to a space, so gather them all.
	var postalToks []string
	for n := len(last); n > 0 && allDigits(last[n-1]); n = len(last) {
		postalToks = append([]string{last[n-1]}, postalToks...)
		last = last[:n-1]
	}
	if joined := strings.Join(postalToks, ""); len(joined) >= 4 {
		addr.PostalCode = joined
	}
	if n := len(last); n > 0 && len(last[n-1]) == 2 && !allDigits(last[n-1]) {
		addr.State = last[n-1]
		last = last[:n-1]
	}

	cityParts := append([]string{}, rest[:len(rest)-1]...)
	if len(last) > 0 {
		cityParts = append(cityParts, strings.Join(last, " "))
	}
	addr.City = strings.Join(cityParts, " ")
	return addr
}
