package keyring

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// KeyLength is the required raw key size in bytes.
const KeyLength = 32

// AlgorithmHMACSHA256 is the only algorithm this engine accepts.
const AlgorithmHMACSHA256 = "hmac-sha256"

// Entry is one decoded, validated key manifest entry. Entries are
// immutable once decoded; the engine treats Secret as an opaque byte
// string.
type Entry struct {
	KID       string
	Secret    []byte
	NotBefore time.Time
	NotAfter  time.Time
}

// wireEntry is the manifest wire form of one key entry. YAML tags
// double for JSON input since yaml.v3 parses JSON documents.
type wireEntry struct {
	KID       string `yaml:"kid"`
	KeyB64    string `yaml:"key_b64"`
	Algorithm string `yaml:"algorithm"`
	NotBefore string `yaml:"not_before"`
	NotAfter  string `yaml:"not_after"`
}

// ManifestError reports a manifest validation failure. All manifest
// errors are local and non-retryable; the manifest itself must be
// fixed.
type ManifestError struct {
	// Code identifies the error category.
	Code string

	// KID identifies the offending entry when known.
	KID string

	// Message is a human-readable description.
	Message string
}

const (
	// ErrCodeInvalidKeyLength indicates a decoded key != 32 bytes.
	ErrCodeInvalidKeyLength = "INVALID_KEY_LENGTH"

	// ErrCodeUnsupportedAlgorithm indicates a non-hmac-sha256 entry.
	ErrCodeUnsupportedAlgorithm = "UNSUPPORTED_ALGORITHM"

	// ErrCodeMalformedManifest indicates undecodable structure,
	// base64, timestamps, or an inverted validity window.
	ErrCodeMalformedManifest = "MALFORMED_MANIFEST"
)

// Error implements the error interface.
func (e *ManifestError) Error() string {
	if e.KID != "" {
		return fmt.Sprintf("%s: %s (kid=%s)", e.Code, e.Message, e.KID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidKeyLength reports whether err is an INVALID_KEY_LENGTH
// manifest error. Uses errors.As to handle wrapped errors.
func IsInvalidKeyLength(err error) bool {
	var me *ManifestError
	if errors.As(err, &me) {
		return me.Code == ErrCodeInvalidKeyLength
	}
	return false
}

// DecodeManifest parses a manifest document (YAML or JSON) into
// validated entries, preserving manifest order. The first invalid entry
// fails the whole decode: a partially-trusted manifest is worse than no
// manifest.
func DecodeManifest(data []byte) ([]Entry, error) {
	var wire []wireEntry
	if err := yaml.Unmarshal(data, &wire); err != nil {
		return nil, &ManifestError{
			Code:    ErrCodeMalformedManifest,
			Message: fmt.Sprintf("cannot parse manifest: %v", err),
		}
	}

	entries := make([]Entry, 0, len(wire))
	for i, w := range wire {
		e, err := decodeEntry(i, w)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func decodeEntry(idx int, w wireEntry) (Entry, error) {
	if w.KID == "" {
		return Entry{}, &ManifestError{
			Code:    ErrCodeMalformedManifest,
			Message: fmt.Sprintf("entry %d: missing kid", idx),
		}
	}
	if w.Algorithm != AlgorithmHMACSHA256 {
		return Entry{}, &ManifestError{
			Code:    ErrCodeUnsupportedAlgorithm,
			KID:     w.KID,
			Message: fmt.Sprintf("algorithm %q not supported", w.Algorithm),
		}
	}

	secret, err := base64.StdEncoding.DecodeString(w.KeyB64)
	if err != nil {
		return Entry{}, &ManifestError{
			Code:    ErrCodeMalformedManifest,
			KID:     w.KID,
			Message: fmt.Sprintf("key_b64 is not valid base64: %v", err),
		}
	}
	if len(secret) != KeyLength {
		return Entry{}, &ManifestError{
			Code:    ErrCodeInvalidKeyLength,
			KID:     w.KID,
			Message: fmt.Sprintf("key is %d bytes, want %d", len(secret), KeyLength),
		}
	}

	notBefore, err := time.Parse(time.RFC3339, w.NotBefore)
	if err != nil {
		return Entry{}, &ManifestError{
			Code:    ErrCodeMalformedManifest,
			KID:     w.KID,
			Message: fmt.Sprintf("not_before is not RFC 3339: %v", err),
		}
	}
	notAfter, err := time.Parse(time.RFC3339, w.NotAfter)
	if err != nil {
		return Entry{}, &ManifestError{
			Code:    ErrCodeMalformedManifest,
			KID:     w.KID,
			Message: fmt.Sprintf("not_after is not RFC 3339: %v", err),
		}
	}
	if notAfter.Before(notBefore) {
		return Entry{}, &ManifestError{
			Code:    ErrCodeMalformedManifest,
			KID:     w.KID,
			Message: "validity window is inverted",
		}
	}

	return Entry{
		KID:       w.KID,
		Secret:    secret,
		NotBefore: notBefore,
		NotAfter:  notAfter,
	}, nil
}
