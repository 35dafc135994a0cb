package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"flatland/internal/app"
	"flatland/internal/render"
)

var (
	cfg    = app.DefaultConfig()
	appCtx *app.App
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) error {
	root := newRoot(stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(stderr, render.Error(err))
	}
	return err
}

func newRoot(stdout, stderr io.Writer) *cobra.Command {
	cfg = app.FromEnv(app.DefaultConfig())

	root := &cobra.Command{
		Use:           "flatland [file]",
		Short:         "Measure the ground covered by flatlanders' shadows",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			cfg.LogOutput = stderr
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = app.New(w, stdout)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Run()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&cfg.Input, "input", "i", cfg.Input, `input file ("-" for stdin)`)
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error (env FLATLAND_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus metrics here after the run (env FLATLAND_METRICS_FILE)")
	root.Flags().BoolVar(&cfg.JSON, "json", false, "print a JSON summary instead of the bare total")

	root.AddCommand(fingerprintCmd(), generateCmd(stdout), versionCmd(stdout))
	return root
}
