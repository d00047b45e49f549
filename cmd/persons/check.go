package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [path]",
		Short: "Report persons that have required fields unset",
		Long: `Loads the persons defined in path, a file or a directory, and lists every
person that is not complete along with the fields it is missing. Exits with a
non-zero status when any person is incomplete.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := load(cmd, flags, pathArg(args))
			if err != nil {
				return err
			}

			incomplete := c.Incomplete()
			for _, e := range incomplete {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s:%d) is missing: %s\n", e.ID(), e.File, e.Line, strings.Join(e.Entity.GetMissing(), ", "))
			}

			if len(incomplete) > 0 {
				return fmt.Errorf("%d of %d entries are incomplete", len(incomplete), len(c.Entries))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d entries complete\n", len(c.Entries))

			return nil
		},
	}
}
