package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRecordYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "record.yaml", testRecordYAML)

	rec, err := LoadRecord(path)
	require.NoError(t, err)
	assert.Equal(t, "JRR Tolkien", rec.FullName)
	assert.Equal(t, "1892-01-03", rec.DOB)
}

func TestLoadRecordJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "record.json",
		`{"full_name": "John Smith", "phones": ["(212) 555-0100"]}`)

	rec, err := LoadRecord(path)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", rec.FullName)
	assert.Equal(t, []string{"(212) 555-0100"}, rec.Phones)
}

func TestLoadRecordMalformed(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "record.yaml", "full_name: [unclosed\n")

	_, err := LoadRecord(path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestLoadManifestValid(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "keys.yaml", testManifestYAML)

	entries, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "test-key-1", entries[0].KID)
	assert.Len(t, entries[0].Secret, 32)
}

func TestLoadTokenSetPlain(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "tokens.yaml", tokenSetYAML(tolkienTokenA))

	set, err := LoadTokenSet(path)
	require.NoError(t, err)
	assert.Equal(t, "v1", set.SchemaID)
	require.Len(t, set.Tokens, 1)
	assert.Equal(t, tolkienTokenA, set.Tokens[0].Hex)
}
