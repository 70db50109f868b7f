package loop

import "fmt"

// State represents where the interactive session is in its lifecycle
type State int

const (
	// StateRunning keeps prompting for input
	StateRunning State = iota
	// StateTerminated is terminal; the loop returns
	StateTerminated
)

// String returns the state name for display and debug logs
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
