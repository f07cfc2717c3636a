package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// SchemaID versions the tuple-family catalogue and the rendering rules.
// Any change to either requires a new schema id; implementations refuse
// to mix tokens across schema ids.
const SchemaID = "v1"

// domainPrefix is the literal domain-separation prefix prepended to
// every HMAC message. It prevents cross-protocol reuse of tokens
// computed under shared keys.
const domainPrefix = "EMTP|" + SchemaID + "|"

// Key is the key material the generator consumes: an identifier plus
// raw secret bytes. The package treats the secret as opaque and never
// copies it anywhere observable.
type Key struct {
	ID     string
	Secret []byte
}

// Token is one derived match token.
type Token struct {
	KeyID string `json:"kid" yaml:"kid"`
	Hex   string `json:"token" yaml:"token"`
}

// Set is the deduplicated token output for one record. Tokens are held
// sorted by (key id, hex) so equal sets are byte-equal when serialized;
// set semantics are unaffected.
type Set struct {
	SchemaID string  `json:"schema_id" yaml:"schema_id"`
	Tokens   []Token `json:"tokens" yaml:"tokens"`
}

// Compute derives a single token hex string for one rendered tuple
// under one secret.
func Compute(secret []byte, renderedTuple string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(domainPrefix))
	mac.Write([]byte(renderedTuple))
	return hex.EncodeToString(mac.Sum(nil))
}

// Derive computes the full token set: every surviving tuple under every
// active key, deduplicated and sorted.
func Derive(renderedTuples []string, keys []Key) Set {
	out := Set{SchemaID: SchemaID}
	seen := make(map[Token]bool, len(renderedTuples)*len(keys))
	for _, k := range keys {
		for _, t := range renderedTuples {
			tok := Token{KeyID: k.ID, Hex: Compute(k.Secret, t)}
			if seen[tok] {
				continue
			}
			seen[tok] = true
			out.Tokens = append(out.Tokens, tok)
		}
	}
	sortTokens(out.Tokens)
	return out
}

// SchemaMismatchError reports an attempt to combine token sets from
// different schema ids.
type SchemaMismatchError struct {
	A, B string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("SCHEMA_MISMATCH: cannot mix token sets across schema ids (%q vs %q)", e.A, e.B)
}

// Intersect returns the tokens present in both sets. Whether the
// resulting overlap constitutes a "match" is the caller's policy; this
// only does the set arithmetic, and refuses mismatched schema ids.
func Intersect(a, b Set) (Set, error) {
	if a.SchemaID != b.SchemaID {
		return Set{}, &SchemaMismatchError{A: a.SchemaID, B: b.SchemaID}
	}
	inA := make(map[Token]bool, len(a.Tokens))
	for _, t := range a.Tokens {
		inA[t] = true
	}
	out := Set{SchemaID: a.SchemaID}
	seen := make(map[Token]bool)
	for _, t := range b.Tokens {
		if inA[t] && !seen[t] {
			seen[t] = true
			out.Tokens = append(out.Tokens, t)
		}
	}
	sortTokens(out.Tokens)
	return out, nil
}

func sortTokens(toks []Token) {
	sort.Slice(toks, func(i, j int) bool {
		if toks[i].KeyID != toks[j].KeyID {
			return toks[i].KeyID < toks[j].KeyID
		}
		return toks[i].Hex < toks[j].Hex
	})
}
