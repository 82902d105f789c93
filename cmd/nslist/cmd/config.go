package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/nslist/foundation/core/config"
	"github.com/msto63/nslist/internal/report"
)

func newConfigCommand(opts *options) *cobra.Command {
	var showPaths bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showPaths {
				for _, path := range config.ListPossibleConfigFiles(config.DefaultDiscoveryOptions()) {
					fmt.Fprintln(out, path)
				}
				return nil
			}
			if src := opts.cfg.Source(); src != "" {
				fmt.Fprintln(out, report.SubtitleStyle.Render("# loaded from "+src))
			}
			_, err := out.Write([]byte(opts.cfg.String()))
			return err
		},
	}

	cmd.Flags().BoolVar(&showPaths, "paths", false, "list the paths searched for a config file")
	return cmd
}
