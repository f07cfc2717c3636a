package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emtp-protocol/emtp/internal/engine"
	"github.com/emtp-protocol/emtp/internal/keyring"
	"github.com/emtp-protocol/emtp/internal/token"
)

// LoadRecord reads an input record file (YAML or JSON).
func LoadRecord(path string) (engine.InputRecord, error) {
	var rec engine.InputRecord
	data, err := os.ReadFile(path)
	if err != nil {
		return rec, WrapExitError(ExitCommandError, "cannot read record file", err)
	}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return rec, WrapExitError(ExitCommandError, fmt.Sprintf("cannot parse record %s", path), err)
	}
	return rec, nil
}

// LoadManifest reads and validates a key manifest file (YAML or JSON).
func LoadManifest(path string) ([]keyring.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "cannot read key manifest", err)
	}
	entries, err := keyring.DecodeManifest(data)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("invalid key manifest %s", path), err)
	}
	return entries, nil
}

// LoadTokenSet reads a previously derived token set file.
func LoadTokenSet(path string) (token.Set, error) {
	var set token.Set
	data, err := os.ReadFile(path)
	if err != nil {
		return set, WrapExitError(ExitCommandError, "cannot read token set", err)
	}
	if err := yaml.Unmarshal(data, &set); err != nil {
		return set, WrapExitError(ExitCommandError, fmt.Sprintf("cannot parse token set %s", path), err)
	}
	if set.SchemaID != "" {
		return set, nil
	}

	// Tolerate the derive command's JSON envelope so its output files
	// feed straight into match.
	var envelope struct {
		Data struct {
			SchemaID string        `yaml:"schema_id"`
			Tokens   []token.Token `yaml:"tokens"`
		} `yaml:"data"`
	}
	if err := yaml.Unmarshal(data, &envelope); err == nil && envelope.Data.SchemaID != "" {
		return token.Set{SchemaID: envelope.Data.SchemaID, Tokens: envelope.Data.Tokens}, nil
	}
	return set, WrapExitError(ExitCommandError, fmt.Sprintf("token set %s has no schema_id", path), nil)
}
