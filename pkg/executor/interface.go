package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	// ExecuteWithInput runs the command with input on its stdin
	ExecuteWithInput(ctx context.Context, input string, name string, args ...string) (string, error)
	// LookPath reports whether name resolves to an executable on PATH
	LookPath(name string) bool
}
