package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/nslist/foundation/core/log"
	"github.com/msto63/nslist/internal/report"
	"github.com/msto63/nslist/internal/runner"
	"github.com/msto63/nslist/internal/script"
)

func newRunCommand(opts *options) *cobra.Command {
	var strict, stopOnFailure bool

	cmd := &cobra.Command{
		Use:   "run <script>...",
		Short: "Run operation scripts",
		Long: `Runs YAML or TOML operation scripts against the configured list.

Example script:
  name: assign-and-reject
  seed: [1, 2, 3]
  steps:
    - {op: assign, index: 1, value: 4, want: [1, 4, 3]}
    - {op: assign, index: 0, value: null, expect: NULL_ARGUMENT}

Examples:
  nslist run scripts/basic.yaml
  nslist run --variant specialized --strict scripts/*.yaml
  nslist run -f json scripts/batch.toml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("strict") {
				opts.cfg.Runner.Strict = strict
			}
			if cmd.Flags().Changed("stop-on-failure") {
				opts.cfg.Runner.StopOnFailure = stopOnFailure
			}

			format, err := opts.reportFormat()
			if err != nil {
				return err
			}

			scripts := make([]*script.Script, 0, len(args))
			var loadErrs []error
			for _, path := range args {
				s, err := script.Load(path)
				if err != nil {
					opts.logger.LogError(err)
					loadErrs = append(loadErrs, err)
					continue
				}
				scripts = append(scripts, s)
			}
			if len(loadErrs) > 0 {
				return errors.Join(loadErrs...)
			}

			opts.logger.Info("running scripts", mdwlog.Field("scripts", scriptNames(scripts)))

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
			defer stop()

			results, runErr := runner.New(opts.cfg, opts.logger).RunAll(ctx, scripts)
			if err := report.Write(cmd.OutOrStdout(), results, format); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when a step misses its expectation")
	cmd.Flags().BoolVar(&stopOnFailure, "stop-on-failure", false, "skip the remaining steps of a script after a failure")
	return cmd
}

// commandContext returns the command's context or a background context
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func scriptNames(scripts []*script.Script) []string {
	names := make([]string, len(scripts))
	for i, s := range scripts {
		names[i] = s.Name
	}
	return names
}
