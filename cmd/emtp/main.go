// Command emtp derives and compares ephemeral match tokens from
// personal-identifier records.
package main

import (
	"os"

	"github.com/emtp-protocol/emtp/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
