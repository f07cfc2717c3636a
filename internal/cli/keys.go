package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/emtp-protocol/emtp/internal/keyring"
)

// KeysResult is the keys command's output payload.
type KeysResult struct {
	At      string      `json:"at"`
	Entries []KeyStatus `json:"entries"`
	Active  int         `json:"active"`
}

// KeyStatus describes one manifest entry at the reference time.
type KeyStatus struct {
	KID       string `json:"kid"`
	NotBefore string `json:"not_before"`
	NotAfter  string `json:"not_after"`
	Active    bool   `json:"active"`
}

// NewKeysCommand creates the keys command: validate a manifest and
// report which entries are active at a reference time.
func NewKeysCommand(root *RootOptions) *cobra.Command {
	var keysPath, at string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Validate a key manifest and show the active epoch",
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := LoadManifest(keysPath)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			if at != "" {
				now, err = time.Parse(time.RFC3339, at)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid --at time", err)
				}
			}

			result := KeysResult{At: now.Format(time.RFC3339)}
			var text strings.Builder
			for _, e := range manifest {
				active := !now.Before(e.NotBefore) && !now.After(e.NotAfter)
				if active {
					result.Active++
				}
				result.Entries = append(result.Entries, KeyStatus{
					KID:       e.KID,
					NotBefore: e.NotBefore.Format(time.RFC3339),
					NotAfter:  e.NotAfter.Format(time.RFC3339),
					Active:    active,
				})
				marker := " "
				if active {
					marker = "*"
				}
				fmt.Fprintf(&text, "%s %s  %s .. %s\n", marker, e.KID,
					e.NotBefore.Format(time.RFC3339), e.NotAfter.Format(time.RFC3339))
			}
			fmt.Fprintf(&text, "%d of %d active at %s", result.Active, len(manifest), result.At)

			f := &OutputFormatter{Format: root.Format, Writer: cmd.OutOrStdout()}
			if err := f.Success(result, text.String()); err != nil {
				return err
			}
			if result.Active == 0 {
				return WrapExitError(ExitFailure, "no active keys", &keyring.NoActiveKeysError{At: now, ManifestSize: len(manifest)})
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&keysPath, "keys", "", "key manifest file (YAML or JSON)")
	cmd.Flags().StringVar(&at, "at", "", "reference time, RFC 3339 (default: now)")
	_ = cmd.MarkFlagRequired("keys")

	return cmd
}
