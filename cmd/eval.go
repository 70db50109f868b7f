package cmd

import (
	"fmt"
	"strings"

	"github.com/itsmostafa/replcalc/internal/loop"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <number> <operator> <number>",
	Short: "Evaluate a single calculation",
	Long: `Evaluate one calculation and print its result, then exit.

Arguments are joined with spaces, so both "eval 3 + 3" and "eval '3 + 3'" work.
Use "--" before a negative first operand: "eval -- -3 * 2".`,
	Example: `  replcalc eval 30 / 10
  replcalc eval "4 * 3"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := loop.EvaluateLine(strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), loop.FormatResult(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
