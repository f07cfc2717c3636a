package field

import (
	"strings"

	"github.com/emtp-protocol/emtp/internal/canon"
)

// honorifics are dropped from the front of a name, but only when more
// than one token would remain: an honorific followed by a single token
// is kept, because stripping it would destroy the identifier ("Mr
// Smith" stays "MR SMITH").
var honorifics = map[string]bool{
	"MR": true, "MRS": true, "MS": true, "MISS": true,
	"DR": true, "PROF": true, "REV": true, "SIR": true, "MADAM": true,
}

// suffixes maps recognized generational suffix tokens to their
// canonical abbreviation.
var suffixes = map[string]string{
	"JR": "JR", "JUNIOR": "JR",
	"SR": "SR", "SENIOR": "SR",
	"I": "I", "II": "II", "III": "III",
	"IV": "IV", "V": "V", "VI": "VI",
}

// nameParts is the decomposition the variant generators run against.
// tokens holds every remaining token in given-to-family order, with the
// honorific and suffix already removed.
type nameParts struct {
	tokens []string
	suffix string
}

func (p nameParts) given() string {
	if len(p.tokens) == 0 {
		return ""
	}
	return p.tokens[0]
}

func (p nameParts) family() string {
	if len(p.tokens) == 0 {
		return ""
	}
	return p.tokens[len(p.tokens)-1]
}

// nonFamily returns every token except the family token.
func (p nameParts) nonFamily() []string {
	if len(p.tokens) < 2 {
		return nil
	}
	return p.tokens[:len(p.tokens)-1]
}

// NormalizeName produces the labeled canonical variants for a raw
// personal name. It takes the raw string rather than a canonicalized
// one because the family-first comma format ("Tolkien, Jr. John") is
// unrecoverable once commas fold to spaces; a single comma pre-pass
// runs before canonicalization and everything downstream sees only the
// canonical alphabet.
//
// nick may be nil; when present it contributes NAME_NICK_FAMILY
// variants and nothing else, so enabling it never alters the core
// variant set.
func NormalizeName(raw string, nick NicknameProvider) Set {
	parts := parseName(raw)
	if len(parts.tokens) == 0 {
		return nil
	}

	var set Set
	for _, g := range nameGens {
		if v, ok := g.gen(parts); ok {
			set = set.add(g.label, v)
		}
	}

	if nick != nil && len(parts.tokens) >= 2 {
		for _, alt := range nick.Nicknames(parts.given()) {
			alt = canon.String(alt)
			if alt == "" || alt == parts.given() {
				continue
			}
			set = set.add(NameNickFamily, alt+" "+parts.family())
		}
	}

	return set
}

// parseName splits raw into ordered tokens plus a detached suffix.
//
// A comma usually marks a family-first segment ("Tolkien, John"), with
// a suffix tolerated at either end of the tail ("Tolkien, Jr. John" and
// "Tolkien, John Jr" both work). The exception is a tail that is
// nothing but a suffix after a multi-token head: "John Tolkien, Jr." is
// an ordered name with a comma-set-off suffix, not a reordering. A
// single-token head still reads family-first so "Smith, V" keeps V as
// the given name. Without a comma the suffix is only recognized at the
// very end.
func parseName(raw string) nameParts {
	var tokens []string
	var suffix string

	if head, tail, found := strings.Cut(raw, ","); found {
		familyToks := canon.Tokens(head)
		givenToks := canon.Tokens(tail)
		if s, ok := soleSuffix(givenToks); ok && len(familyToks) >= 2 {
			tokens = familyToks
			suffix = s
		} else {
			givenToks, suffix = cutSuffix(givenToks)
			tokens = append(givenToks, familyToks...)
		}
	} else {
		tokens = canon.Tokens(raw)
		if len(tokens) >= 2 {
			if s, ok := suffixes[tokens[len(tokens)-1]]; ok {
				suffix = s
				tokens = tokens[:len(tokens)-1]
			}
		}
	}

	// Honorific drop. The check runs against what would remain: a
	// lone token after the honorific survives untouched.
	if len(tokens) >= 3 && honorifics[tokens[0]] {
		tokens = tokens[1:]
	}

	return nameParts{tokens: tokens, suffix: suffix}
}

// soleSuffix reports whether toks is exactly one recognized suffix
// token.
func soleSuffix(toks []string) (string, bool) {
	if len(toks) != 1 {
		return "", false
	}
	s, ok := suffixes[toks[0]]
	return s, ok
}

// cutSuffix removes a suffix token from the front or back of toks.
// Front position covers "Family, Suffix Given"; back covers
// "Family, Given Suffix". A lone suffix-shaped token is left in place
// so "Smith, V" still yields a usable name.
func cutSuffix(toks []string) ([]string, string) {
	if len(toks) < 2 {
		return toks, ""
	}
	if s, ok := suffixes[toks[0]]; ok {
		return toks[1:], s
	}
	if s, ok := suffixes[toks[len(toks)-1]]; ok {
		return toks[:len(toks)-1], s
	}
	return toks, ""
}

// nameGen is one entry of the fixed variant pipeline.
type nameGen struct {
	label Label
	gen   func(p nameParts) (string, bool)
}

// nameGens is the enumerated variant catalogue for names. Declaration
// order is the emission order.
var nameGens = []nameGen{
	{NameFull, func(p nameParts) (string, bool) {
		return strings.Join(p.tokens, " "), len(p.tokens) > 0
	}},
	{NameGivenFamily, func(p nameParts) (string, bool) {
		if len(p.tokens) < 2 {
			return "", false
		}
		return p.given() + " " + p.family(), true
	}},
	{NameGivenFamilySuffix, func(p nameParts) (string, bool) {
		if p.suffix == "" || len(p.tokens) < 2 {
			return "", false
		}
		return p.given() + " " + p.family() + " " + p.suffix, true
	}},
	{NameInitialsFamily, func(p nameParts) (string, bool) {
		nf := p.nonFamily()
		if len(nf) == 0 {
			return "", false
		}
		var initials strings.Builder
		for _, tok := range nf {
			initials.WriteByte(tok[0])
		}
		return initials.String() + " " + p.family(), true
	}},
	{NameGivenInitialFamily, func(p nameParts) (string, bool) {
		if len(p.tokens) < 2 {
			return "", false
		}
		return p.given()[:1] + " " + p.family(), true
	}},
	{NameCollapsedInitials, func(p nameParts) (string, bool) {
		collapsed := collapseInitialRuns(p.tokens)
		full := strings.Join(p.tokens, " ")
		if collapsed == full {
			return "", false
		}
		return collapsed, true
	}},
}

// collapseInitialRuns merges adjacent single-letter tokens into one run
// ("J R R TOLKIEN" -> "JRR TOLKIEN"). This bridges sources that spell
// initials out against sources that pack them.
func collapseInitialRuns(tokens []string) string {
	var out []string
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			out = append(out, run.String())
			run.Reset()
		}
	}
	for _, tok := range tokens {
		if len(tok) == 1 {
			run.WriteString(tok)
			continue
		}
		flush()
		out = append(out, tok)
	}
	flush()
	return strings.Join(out, " ")
}
