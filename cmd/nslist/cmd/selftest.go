package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/nslist/foundation/core/error"
	mdwlog "github.com/msto63/nslist/foundation/core/log"
	"github.com/msto63/nslist/internal/report"
	"github.com/msto63/nslist/internal/runner"
)

func newSelftestCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in scenarios against every list variant",
		Long: `Runs the reference scenarios against the decorator over an array
and a linked backing (each plain and synchronized) and against the
specialized array list. Exits non-zero if any variant misbehaves.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.reportFormat()
			if err != nil {
				return err
			}

			cfg := *opts.cfg
			cfg.Runner.Strict = true
			cfg.Runner.StopOnFailure = false
			r := runner.New(&cfg, opts.logger)

			ctx := commandContext(cmd)
			var (
				results []*runner.Result
				errs    []error
			)
			for _, lc := range runner.Combinations(cfg.List.InitialCapacity) {
				for _, s := range runner.Scenarios() {
					res, err := r.RunWith(ctx, lc, s)
					results = append(results, res)
					if err != nil {
						errs = append(errs, err)
					}
				}
			}

			if err := report.Write(cmd.OutOrStdout(), results, format); err != nil {
				return err
			}
			if err := errors.Join(errs...); err != nil {
				opts.logger.ErrorWithErr("selftest failed", err, mdwlog.Int("failures", len(errs)))
				return mdwerror.Wrap(err, "selftest failed").
					WithCode(mdwerror.CodeExpectationFailed).
					WithOperation("selftest").
					WithDetail("failures", len(errs))
			}
			opts.logger.Info("selftest passed", mdwlog.Int("runs", len(results)))
			return nil
		},
	}
}
