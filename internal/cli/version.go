package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/termbridge-labs/termbridge/internal/branding"
	"github.com/termbridge-labs/termbridge/internal/protocol"
)

func addVersionCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", branding.CLIName(), buildVersion)
			fmt.Fprintf(out, "  protocol: %s\n", protocol.Version)
			fmt.Fprintf(out, "  commit:   %s\n", buildCommit)
			fmt.Fprintf(out, "  built:    %s\n", buildDate)
		},
	}
	root.AddCommand(cmd)
}
