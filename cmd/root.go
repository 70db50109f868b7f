package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/replcalc/internal/logger"
	"github.com/itsmostafa/replcalc/internal/version"
	"github.com/spf13/cobra"
)

var noColor bool
var debugPatterns string

var debugLog = logger.New("cmd:root")

var rootCmd = &cobra.Command{
	Use:   "replcalc",
	Short: "Interactive REPL calculator",
	Long: `replcalc is an interactive calculator. Enter two numbers separated by an
operator (+, -, *, /) with spaces between each component, for example "3 + 3".
Type 'exit' to quit.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetPatterns(debugPatterns)
		debugLog.Printf("running %s with args %q", cmd.Name(), args)
	},
	RunE: runREPL,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("replcalc %s\n", version.String()))

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&debugPatterns, "debug", "", `Write debug logs to stderr for matching namespaces (e.g. "*", "loop:*")`)
	rootCmd.PersistentFlags().Lookup("debug").NoOptDefVal = "*"
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
