// Package field implements the EMTP field normalizers.
//
// Each normalizer consumes one raw field value and produces a small set
// of labeled canonical variants (a Set). The catalogue of labels is a
// fixed enumeration per field kind, and each normalizer is a
// table-driven pipeline of enumerated generators, so the set of strings
// any input can produce is statically enumerable.
//
// Variant values use the canonical alphabet from the canon package,
// with two mandated exceptions: DOB stays in YYYY-MM-DD form, and phone
// variants are digit-only or +-prefixed E.164. Address variants join
// their sub-fields with a pipe.
//
// Normalizers here are deliberately built without third-party phone or
// address libraries: the variant rules ARE the interoperability
// contract, and any library that ships its own versioned metadata would
// let two correct deployments silently diverge.
package field
