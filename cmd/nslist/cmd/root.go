package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/nslist/foundation/core/config"
	mdwlog "github.com/msto63/nslist/foundation/core/log"
	"github.com/msto63/nslist/internal/report"
	"github.com/msto63/nslist/pkg/core/version"
)

// options holds the persistent flags and what they resolve to
type options struct {
	cfgFile string
	verbose bool
	variant string
	backing string
	format  string

	cfg    *config.Config
	logger *mdwlog.Logger
}

// NewRootCommand builds the nslist command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "nslist",
		Short: "nslist - null-safe ordered sequences",
		Long: `nslist runs operation scripts against null-safe lists and checks
that absent values are rejected before positions are checked.

Variants:
  decorator    - guards an existing sequence (array or linked backing)
  specialized  - an array list that owns its storage`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default: discovered nslist.toml/.yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every step")
	flags.StringVar(&opts.variant, "variant", "", "list variant (decorator, specialized)")
	flags.StringVar(&opts.backing, "backing", "", "decorator backing (array, linked)")
	flags.StringVarP(&opts.format, "format", "f", "text", "report format (text, json)")

	rootCmd.AddCommand(
		newRunCommand(opts),
		newSelftestCommand(opts),
		newConfigCommand(opts),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute runs the root command and prints a failure to stderr
func Execute() error {
	rootCmd := NewRootCommand()
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, report.RenderError(err.Error()))
}

// setup loads the configuration, applies flag overrides and builds the logger
func (o *options) setup(logOutput io.Writer) error {
	var (
		cfg *config.Config
		err error
	)
	if o.cfgFile != "" {
		cfg, err = config.Load(o.cfgFile)
	} else {
		cfg, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return err
	}

	if o.variant != "" {
		cfg.List.Variant = o.variant
	}
	if o.backing != "" {
		cfg.List.Backing = o.backing
	}
	if o.verbose {
		cfg.General.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Validate has accepted both values
	level, _ := mdwlog.ParseLevel(cfg.General.LogLevel)
	format, _ := mdwlog.ParseFormat(cfg.General.LogFormat)

	o.cfg = cfg
	o.logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: logOutput,
		Name:   cfg.General.Name,
	}).WithFields(mdwlog.Fields{
		"version":     version.CLI,
		"environment": cfg.General.Environment,
	})

	if src := cfg.Source(); src != "" {
		o.logger.Debug("configuration loaded", mdwlog.String("source", src))
	}
	return nil
}

func (o *options) reportFormat() (report.Format, error) {
	return report.ParseFormat(o.format)
}
