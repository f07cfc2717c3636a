// Package tuple assembles canonical field variants into rendered tuple
// strings according to the fixed family catalogue.
//
// Tuples are the HMAC input of the protocol, so everything here is
// interoperability surface: the field order (NAME < DOB < PHONE < ADDR
// < ID), the KIND=value|KIND=value rendering, the family catalogue, and
// the deterministic truncation order at the 256-tuple cap. None of it
// may vary between implementations sharing a schema id.
//
// The cap truncation is reproducible by construction: candidates are
// ranked required-before-optional, strong-before-weak,
// id-bearing-before-demographic, then family declaration order, then
// lexical rendered string. Truncation changes the output set, so an
// unstable order here would silently destroy matchability.
package tuple
