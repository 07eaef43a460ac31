package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enumq",
		Short: "Query JSON and YAML documents with a lazy LINQ pipeline",
		Long: `enumq reads JSON or YAML documents and runs them through the enumkit query pipeline.

Every document is a source: sequences are array-like, mappings are keyed objects
enumerated as key/value pairs, and any other value is a single element.

Quick Start:
  enumq query data.yaml               List the elements of every document
  enumq query --distinct -            Deduplicate the elements read from stdin
  enumq classify data.yaml            Show the source kind of every document`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          badArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetOut(a.errOut)
			_ = cmd.Usage()
			return ErrBadRequest.F("a command is required")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg, a.errOut)
			if err != nil {
				return err
			}
			a.log = log.With().Str("run_id", uuid.NewString()).Logger()
			a.log.Debug().
				Str("command", cmd.Name()).
				Str("config_file", a.config.ConfigFileUsed()).
				Msg("starting")
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return ErrBadRequest.Wrap(err)
	})

	flags := cmd.PersistentFlags()
	flags.String(flagConfig, defaultConfigFile, "config file, ENUMQ_CONFIG works too")
	flags.StringP(flagLogLevel, "l", "warn", "log level (debug, info, warn, error)")
	flags.String(flagLogFormat, "console", "log format (console, json)")

	cmd.AddCommand(a.queryCmd(), a.classifyCmd())
	return cmd
}
