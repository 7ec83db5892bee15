package completion_helper

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// DefaultFlagComplete lists the flags of the current command for shell
// completion, one per line with its dashes.
func DefaultFlagComplete(_ context.Context, cmd *cli.Command) {
	w := cmd.Root().Writer
	for _, f := range cmd.Flags {
		for _, name := range f.Names() {
			prefix := "--"
			if len(name) == 1 {
				prefix = "-"
			}
			_, _ = fmt.Fprintln(w, prefix+name)
		}
	}
}
