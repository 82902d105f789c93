package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/nslist/pkg/core/version"
)

func newVersionCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// no config needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version.String())
				return
			}
			fmt.Fprintf(out, "nslist v%s\n", version.CLI)
			fmt.Fprintf(out, "  Foundation: %s\n", version.Foundation)
			fmt.Fprintf(out, "  Git Commit: %s\n", version.GitCommit)
			fmt.Fprintf(out, "  Build Date: %s\n", version.BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print a single line")
	return cmd
}
