package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/emtp-protocol/emtp/internal/engine"
	"github.com/emtp-protocol/emtp/internal/token"
)

// DeriveOptions holds flags for the derive command.
type DeriveOptions struct {
	RecordPath string
	KeysPath   string
	At         string
	Country    string
	Weak       bool
	PartialDOB bool
	PhoneLast7 bool
}

// DeriveResult is the derive command's output payload. RunID is a
// fresh correlation id per invocation; it is not part of the token
// derivation and two runs over the same input differ only here.
type DeriveResult struct {
	RunID    string        `json:"run_id"`
	At       string        `json:"at"`
	SchemaID string        `json:"schema_id"`
	Tokens   []token.Token `json:"tokens"`
}

// NewDeriveCommand creates the derive command: record file + key
// manifest in, token set out.
func NewDeriveCommand(root *RootOptions) *cobra.Command {
	opts := &DeriveOptions{}

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive the token set for one record",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.RecordPath, "record", "", "record file (YAML or JSON)")
	cmd.Flags().StringVar(&opts.KeysPath, "keys", "", "key manifest file (YAML or JSON)")
	cmd.Flags().StringVar(&opts.At, "at", "", "reference time, RFC 3339 (default: now)")
	cmd.Flags().StringVar(&opts.Country, "country", "", "default country code for bare national phone numbers")
	cmd.Flags().BoolVar(&opts.Weak, "weak", false, "emit weak (DOB-less/partial-DOB) tuples")
	cmd.Flags().BoolVar(&opts.PartialDOB, "partial-dob", false, "accept YYYY and YYYY-MM dates of birth")
	cmd.Flags().BoolVar(&opts.PhoneLast7, "phone-last7", false, "emit the high-collision PHONE_LAST7 variant")
	_ = cmd.MarkFlagRequired("record")
	_ = cmd.MarkFlagRequired("keys")

	return cmd
}

func runDerive(cmd *cobra.Command, root *RootOptions, opts *DeriveOptions) error {
	rec, err := LoadRecord(opts.RecordPath)
	if err != nil {
		return err
	}
	manifest, err := LoadManifest(opts.KeysPath)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if opts.At != "" {
		now, err = time.Parse(time.RFC3339, opts.At)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --at time", err)
		}
	}

	var engineOpts []engine.Option
	if opts.Country != "" {
		engineOpts = append(engineOpts, engine.WithCountryCode(opts.Country))
	}
	if opts.Weak {
		engineOpts = append(engineOpts, engine.WithWeakTuples())
	}
	if opts.PartialDOB {
		engineOpts = append(engineOpts, engine.WithPartialDOB())
	}
	if opts.PhoneLast7 {
		engineOpts = append(engineOpts, engine.WithPhoneLast7())
	}

	set, err := engine.New(engineOpts...).DeriveAt(rec, manifest, now)
	if err != nil {
		return WrapExitError(ExitFailure, "derivation failed", err)
	}

	result := DeriveResult{
		RunID:    uuid.NewString(),
		At:       now.Format(time.RFC3339),
		SchemaID: set.SchemaID,
		Tokens:   set.Tokens,
	}

	var text strings.Builder
	fmt.Fprintf(&text, "schema %s, %d tokens (run %s)\n", result.SchemaID, len(result.Tokens), result.RunID)
	for _, tok := range result.Tokens {
		fmt.Fprintf(&text, "%s %s\n", tok.KeyID, tok.Hex)
	}

	f := &OutputFormatter{Format: root.Format, Writer: cmd.OutOrStdout()}
	return f.Success(result, strings.TrimRight(text.String(), "\n"))
}
