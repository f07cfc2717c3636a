package field

import "strings"

// DefaultCountryCode is assumed for bare 10-digit national numbers when
// the engine is not configured otherwise.
const DefaultCountryCode = "1"

// PhoneOptions configures the phone normalizer.
type PhoneOptions struct {
	// CountryCode is prepended to 10-digit national numbers for the
	// E.164 variant. Empty means DefaultCountryCode.
	CountryCode string

	// EmitLast7 enables the PHONE_LAST7 variant. Seven digits collide
	// across area codes, so this is off by default.
	EmitLast7 bool
}

// NormalizePhone produces the labeled variants for one raw phone
// number. Numbers that strip to fewer than 10 digits produce no
// variants (with EmitLast7 as the documented exception at >= 7);
// a short phone is not an error, it simply contributes nothing.
func NormalizePhone(raw string, opts PhoneOptions) Set {
	digits := digitsOnly(raw)
	cc := opts.CountryCode
	if cc == "" {
		cc = DefaultCountryCode
	}

	var national string
	switch {
	case len(digits) == 11 && digits[0] == '1':
		// NANP country prefix carried in the input.
		cc = "1"
		national = digits[1:]
	case len(digits) == 10:
		national = digits
	}

	var set Set
	if national != "" {
		set = set.add(PhoneE164, "+"+cc+national)
		set = set.add(PhoneNational, national)
	}
	if len(digits) >= 10 {
		set = set.add(PhoneLast10, digits[len(digits)-10:])
	}
	if opts.EmitLast7 && len(digits) >= 7 {
		set = set.add(PhoneLast7, digits[len(digits)-7:])
	}
	return set
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
