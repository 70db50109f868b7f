package cmd

import (
	"os"

	"github.com/itsmostafa/replcalc/internal/loop"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runREPL starts the interactive loop on the command's input and output
func runREPL(cmd *cobra.Command, args []string) error {
	input, err := newLineReader(cmd)
	if err != nil {
		return err
	}

	return loop.Run(loop.Config{
		Input:   input,
		Output:  cmd.OutOrStdout(),
		NoColor: noColor,
	})
}

// newLineReader uses the line editor on an interactive terminal and a buffered
// stream reader for pipes, files and tests
func newLineReader(cmd *cobra.Command) (loop.LineReader, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		debugLog.Print("stdin is a terminal, enabling line editing")
		return loop.NewTerminalReader(loop.Prompt)
	}
	return loop.NewStreamReader(in, cmd.OutOrStdout(), loop.Prompt), nil
}
