package loop

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader supplies one line of user input per call.
// ReadLine returns io.EOF once input is exhausted.
type LineReader interface {
	// ReadLine shows the prompt and blocks until a line is entered
	ReadLine() (string, error)

	// Close releases the underlying input
	Close() error
}

// StreamReader reads lines from any io.Reader, writing the prompt to w
// before each read. It is used when stdin is not a terminal. Lines have no
// length limit.
type StreamReader struct {
	r      *bufio.Reader
	w      io.Writer
	prompt string
}

// NewStreamReader creates a StreamReader over r
func NewStreamReader(r io.Reader, w io.Writer, prompt string) *StreamReader {
	return &StreamReader{
		r:      bufio.NewReader(r),
		w:      w,
		prompt: prompt,
	}
}

// ReadLine writes the prompt and returns the next line without its line ending.
// A final line without a newline is returned before io.EOF.
func (s *StreamReader) ReadLine() (string, error) {
	fmt.Fprint(s.w, s.prompt)

	line, err := s.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Close is a no-op; the caller owns the underlying reader
func (s *StreamReader) Close() error {
	return nil
}

// TerminalReader reads lines from an interactive terminal with line editing.
// History is disabled so nothing carries over between prompts.
type TerminalReader struct {
	rl *readline.Instance
}

// NewTerminalReader creates a TerminalReader on the process's stdin and stdout
func NewTerminalReader(prompt string) (*TerminalReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 prompt,
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start line editor: %w", err)
	}
	return &TerminalReader{rl: rl}, nil
}

// ReadLine returns the next edited line.
// Ctrl-C yields readline.ErrInterrupt and Ctrl-D yields io.EOF.
func (t *TerminalReader) ReadLine() (string, error) {
	return t.rl.Readline()
}

// Close restores the terminal
func (t *TerminalReader) Close() error {
	return t.rl.Close()
}

// isEndOfInput reports whether err means the user closed or interrupted input
func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt)
}
