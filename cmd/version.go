package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hisamafahri/lagon/internal/build"
)

// NewVersionCommand returns the command to get the b64 version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Return the b64 version",
		Long:  "Return the b64 version.",
		RunE:  version,
		Args:  cobra.NoArgs,
	}
}

// print out the built version
func version(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "b64 version %s date %s commit %s\n", build.Version, build.Date, build.Commit)
	return err
}
