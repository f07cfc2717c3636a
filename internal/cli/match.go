package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emtp-protocol/emtp/internal/token"
)

// MatchResult is the match command's output payload.
type MatchResult struct {
	SchemaID string        `json:"schema_id"`
	Left     int           `json:"left"`
	Right    int           `json:"right"`
	Shared   []token.Token `json:"shared"`
}

// NewMatchCommand creates the match command: intersect two previously
// derived token sets. Exit code distinguishes overlap (0) from none (1).
func NewMatchCommand(root *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <left> <right>",
		Short: "Intersect two derived token sets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := LoadTokenSet(args[0])
			if err != nil {
				return err
			}
			right, err := LoadTokenSet(args[1])
			if err != nil {
				return err
			}

			shared, err := token.Intersect(left, right)
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot compare token sets", err)
			}

			result := MatchResult{
				SchemaID: left.SchemaID,
				Left:     len(left.Tokens),
				Right:    len(right.Tokens),
				Shared:   shared.Tokens,
			}

			var text strings.Builder
			fmt.Fprintf(&text, "%d shared of %d vs %d (schema %s)", len(shared.Tokens), result.Left, result.Right, result.SchemaID)
			for _, tok := range shared.Tokens {
				fmt.Fprintf(&text, "\n%s %s", tok.KeyID, tok.Hex)
			}

			f := &OutputFormatter{Format: root.Format, Writer: cmd.OutOrStdout()}
			if err := f.Success(result, text.String()); err != nil {
				return err
			}
			if len(shared.Tokens) == 0 {
				return WrapExitError(ExitFailure, "no shared tokens", nil)
			}
			return nil
		},
	}

	return cmd
}
