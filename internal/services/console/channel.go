package console

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// Channel delivers a text command to the managed server and returns its
// captured text output. Implementations must honor ctx cancellation.
type Channel interface {
	Send(ctx context.Context, command string) (string, error)
}

// ExecChannel sends commands by running a configured argv prefix with the
// command appended (e.g. docker exec <container> rcon-cli <command words>).
type ExecChannel struct {
	argv []string
}

// NewExecChannel creates an ExecChannel. argv must contain at least the
// binary to run.
func NewExecChannel(argv []string) *ExecChannel {
	return &ExecChannel{argv: argv}
}

var _ Channel = (*ExecChannel)(nil)

// Send runs the configured command, preferring standard output over error
// output when both were written. The returned string carries whatever was
// captured even when err is non-nil.
func (c *ExecChannel) Send(ctx context.Context, command string) (string, error) {
	args := append([]string{}, c.argv[1:]...)
	args = append(args, strings.Fields(command)...)

	cmd := exec.CommandContext(ctx, c.argv[0], args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	out := stdout.String()
	if strings.TrimSpace(out) == "" {
		out = stderr.String()
	}
	return out, err
}
