package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the dnkit release version, overridable at link time with
// -ldflags "-X main.Version=...".
var Version = "dev"

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dnkit version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dnkit %s\n", Version)
		},
	}
}
