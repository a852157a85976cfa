package executor

import (
	"context"
	"os"
	"os/exec"
)

// DefaultElevateCommand is the command prepended when elevation is required.
const DefaultElevateCommand = "sudo"

// Executor runs an external command and waits for it to finish. The installer
// services depend on this interface so tests can record spawned commands
// instead of executing them.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) error
}

// System executes commands via os/exec with the standard streams attached,
// so the vendor installer can drive its own console interaction.
type System struct{}

// Run starts the command and blocks until it exits.
func (System) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// Elevated wraps another Executor and prefixes every command with an
// elevation command such as sudo.
type Elevated struct {
	next    Executor
	command string
}

// NewElevated returns next wrapped with the given elevation command. An empty
// command falls back to DefaultElevateCommand.
func NewElevated(next Executor, command string) *Elevated {
	if command == "" {
		command = DefaultElevateCommand
	}

	return &Elevated{next: next, command: command}
}

// Run executes the elevation command with the original command appended as
// its arguments.
func (e *Elevated) Run(ctx context.Context, name string, args ...string) error {
	elevatedArgs := make([]string, 0, len(args)+1)
	elevatedArgs = append(elevatedArgs, name)
	elevatedArgs = append(elevatedArgs, args...)

	return e.next.Run(ctx, e.command, elevatedArgs...)
}

// ForPlatform returns base wrapped with elevation when needed is true,
// otherwise base unchanged.
func ForPlatform(base Executor, command string, needed bool) Executor {
	if !needed {
		return base
	}

	return NewElevated(base, command)
}
