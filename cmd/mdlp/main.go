// Command mdlp discretizes numeric columns of a CSV or .npy dataset
// against a class column and applies, renders and plots the result.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
	"github.com/YuminosukeSato/mdlp/pkg/log"
)

var logLevel string
var logFormat string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "mdlp",
		Short:             "Supervised entropy-based discretization of numeric attributes",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}

	root.PersistentFlags().StringVarP(&logLevel, "log-level", "", "info", "Logging level: debug, info, warn or error")
	root.PersistentFlags().StringVarP(&logFormat, "log-format", "", "pretty", "Logging format: pretty, json or cloud")

	root.AddCommand(FitCommand())
	root.AddCommand(ApplyCommand())
	root.AddCommand(RenderCommand())
	root.AddCommand(PlotCommand())
	return root
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	w := cmd.ErrOrStderr()

	switch logFormat {
	case "pretty":
		log.SetProvider(log.NewZerologProvider(zerolog.ConsoleWriter{Out: w}, level))
	case "json":
		log.SetProvider(log.NewZerologProvider(w, level))
	case "cloud":
		log.SetupLogger(w, level)
	default:
		return errors.NewValidationError("log-format", "must be pretty, json or cloud", logFormat)
	}
	return nil
}
