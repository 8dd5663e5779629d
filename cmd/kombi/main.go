package main

import (
	"os"

	"github.com/dhamidi/kombinator/parse"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// debugVerbosity is the commonlog verbosity at which Debug messages pass.
const debugVerbosity = 2

type globalFlags struct {
	trace     bool
	verbosity int
	logPath   string
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:           "kombi",
		Short:         "Parse and check JSON documents with parser combinators",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(flags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flags.trace, "trace", false, "log every parser invocation")
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&flags.logPath, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

func configureLogging(flags globalFlags) {
	verbosity := flags.verbosity
	if flags.trace {
		verbosity = max(verbosity, debugVerbosity)
		parse.SetTracer(parse.NewLogTracer(nil))
	}
	var path *string
	if flags.logPath != "" {
		path = &flags.logPath
	}
	commonlog.Configure(verbosity, path)
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("kombi:", err)
		os.Exit(1)
	}
}
