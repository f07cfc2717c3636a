package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/emtp-protocol/emtp/internal/engine"
	"github.com/emtp-protocol/emtp/internal/testutil"
	"github.com/emtp-protocol/emtp/internal/token"
)

// Vector is one end-to-end derivation scenario.
type Vector struct {
	Name    string
	Record  engine.InputRecord
	Options []engine.Option
}

// Snapshot is the canonical serialization compared against a golden
// file. Tuples appear in engine output order (truncation priority
// order); tokens are the sorted set under testutil.TestKey at
// testutil.RefTime.
type Snapshot struct {
	Name     string        `json:"name"`
	SchemaID string        `json:"schema_id"`
	Tuples   []string      `json:"tuples"`
	Tokens   []token.Token `json:"tokens"`
}

// Run executes a vector and builds its snapshot.
func Run(v *Vector) (*Snapshot, error) {
	eng := engine.New(v.Options...)

	tuples, err := eng.Expand(v.Record)
	if err != nil {
		return nil, err
	}
	rendered := make([]string, len(tuples))
	for i, t := range tuples {
		rendered[i] = t.Render()
	}

	set, err := eng.DeriveAt(v.Record, testutil.Manifest(), testutil.RefTime)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Name:     v.Name,
		SchemaID: set.SchemaID,
		Tuples:   rendered,
		Tokens:   set.Tokens,
	}, nil
}

// RunWithGolden executes a vector and compares its snapshot against
// testdata/golden/{vector.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, v *Vector) error {
	t.Helper()

	snap, err := Run(v)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, v.Name, data)
	return nil
}
