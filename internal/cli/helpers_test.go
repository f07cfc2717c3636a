package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Published test vector key: 32 bytes of 0x0b, kid test-key-1.
const testManifestYAML = `- kid: test-key-1
  key_b64: CwsLCwsLCwsLCwsLCwsLCwsLCwsLCwsLCwsLCwsLCws=
  algorithm: hmac-sha256
  not_before: "2025-01-01T00:00:00Z"
  not_after: "2026-01-01T00:00:00Z"
`

const testRecordYAML = `full_name: JRR Tolkien
dob: "1892-01-03"
`

// Token hexes for the record above under the test key, sorted.
const (
	tolkienTokenA = "1de4fe99c25ef4cc42124d309b79a9e5d1949975d04282f77a4119cb23ee2e8b"
	tolkienTokenB = "71c4c31846410e17111ae85892b6f177f264c52493dfd3b8c07d5f4ffa61f0a8"
)

// refTimeArg sits inside the test key's validity window.
const refTimeArg = "2025-06-15T12:00:00Z"

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
