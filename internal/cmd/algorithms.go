package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dendrascience/djsum/digest"
)

// NewAlgorithmsCmd creates the algorithms subcommand, which lists every
// supported hash algorithm and its digest width.
func NewAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported hash algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, a := range digest.Algorithms() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d-bit\n", a, a.Size()*8)
			}
		},
	}
}
