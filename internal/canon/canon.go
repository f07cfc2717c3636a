package canon

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// String reduces s to the canonical alphabet: uppercase ASCII letters,
// digits, and single interior spaces. It is total; empty input yields
// empty output, and no input can fail.
//
// The single pass below performs steps 2-6 of the reduction; NFKD
// decomposition (step 1) happens up front so that marks exist as
// standalone runes when they are dropped.
func String(s string) string {
	if s == "" {
		return ""
	}

	decomposed := norm.NFKD.String(s)

	var b strings.Builder
	b.Grow(len(decomposed))

	pendingSpace := false
	wrote := false
	for _, r := range decomposed {
		if unicode.IsMark(r) {
			continue
		}
		if r >= 'a' && r <= 'z' {
			r = r - 'a' + 'A'
		}
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			if pendingSpace && wrote {
				b.WriteByte(' ')
			}
			pendingSpace = false
			wrote = true
			b.WriteRune(r)
			continue
		}
		// Everything else folds to a space; collapsing and trimming
		// fall out of deferring the write until the next keeper.
		pendingSpace = true
	}

	return b.String()
}

// Tokens canonicalizes s and splits it on single spaces. The result
// never contains empty tokens.
func Tokens(s string) []string {
	c := String(s)
	if c == "" {
		return nil
	}
	return strings.Split(c, " ")
}
