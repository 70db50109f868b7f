// Package loop implements the calculator's read-evaluate-print loop.
package loop

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/itsmostafa/replcalc/internal/logger"
)

const (
	// ExitKeyword ends the session; matched case-insensitively
	ExitKeyword = "exit"
	// Prompt is shown before every line of input
	Prompt = "Please enter a calculation: "
)

var log = logger.New("loop:repl")

// Config holds the loop configuration
type Config struct {
	Input   LineReader
	Output  io.Writer
	NoColor bool
}

// Run executes the interactive loop until the exit keyword is entered or
// input ends. Malformed lines are reported and never end the loop.
func Run(cfg Config) error {
	// Default output to stdout
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Input == nil {
		cfg.Input = NewStreamReader(os.Stdin, cfg.Output, Prompt)
	}
	defer cfg.Input.Close()

	out := newPrinter(cfg.Output, cfg.NoColor)
	out.Banner()

	state := StateRunning
	for state == StateRunning {
		line, err := cfg.Input.ReadLine()
		switch {
		case err == nil:
			state = handleLine(line, out)
		case isEndOfInput(err):
			log.Printf("input ended: %v", err)
			state = StateTerminated
		default:
			return fmt.Errorf("failed to read input: %w", err)
		}
	}

	log.Printf("session %s", state)
	return nil
}

// handleLine evaluates one line of input and returns the next state
func handleLine(line string, out *printer) State {
	line = strings.TrimSpace(line)

	if strings.EqualFold(line, ExitKeyword) {
		out.Exit()
		return StateTerminated
	}

	result, err := EvaluateLine(line)
	if err != nil {
		log.Printf("rejected %q: %v", line, err)
		out.Error(err)
		return StateRunning
	}

	log.Printf("evaluated %q = %v", line, result)
	out.Result(result)
	return StateRunning
}
