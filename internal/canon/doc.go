// Package canon implements the EMTP string canonicalizer.
//
// Every field normalizer reduces its input to the canonical alphabet
// through this package before producing variants. The reduction is the
// foundation of cross-implementation bit-exactness: two engines that
// disagree here produce disjoint token sets with no error anywhere.
//
// The canonical alphabet is uppercase ASCII letters, ASCII digits, and
// single spaces. The reduction steps run in a fixed order:
//
//  1. Unicode-decompose to NFKD
//  2. drop combining marks
//  3. uppercase ASCII letters
//  4. fold every other character to a space
//  5. collapse consecutive spaces
//  6. trim leading/trailing spaces
//
// Mark stripping must precede uppercasing and punctuation folding, or
// composed characters that decompose into letter+mark pairs would fold
// differently depending on how the source happened to encode them.
//
// This package imports nothing internal. All other internal packages
// may import it.
package canon
