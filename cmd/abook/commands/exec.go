package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// exec <command line...>: run a single address book command and exit.
func execCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command line...>",
		Short: "Run a single address book command non-interactively",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := appCtx.Logic.Execute(strings.Join(args, " "))
			if shown, ok := res.Shown(); ok {
				for i, p := range shown {
					fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, p)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Feedback)
			return res.Err
		},
	}
}
