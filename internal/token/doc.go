// Package token derives the final match tokens from rendered tuple
// strings.
//
// Each token is HMAC-SHA256 over "EMTP|v1|" + tuple under one manifest
// key, hex-encoded lowercase. The domain prefix, the schema id inside
// it, and the 64-char lowercase hex output are wire-level constants:
// together with the tuple rendering they are the entire
// interoperability contract of the protocol.
//
// Token sets from different schema ids must never be mixed; Intersect
// enforces that for the one set operation callers commonly need.
package token
