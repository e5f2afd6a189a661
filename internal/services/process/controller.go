package process

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Controller starts, stops, and inspects the managed server process. The
// control plane never supervises the process itself; it delegates to the
// container runtime.
type Controller interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Status(ctx context.Context) (string, error)
}

// DockerController drives the managed server's container via the docker CLI
type DockerController struct {
	container string
}

// NewDockerController creates a controller for the named container
func NewDockerController(container string) *DockerController {
	return &DockerController{container: container}
}

var _ Controller = (*DockerController)(nil)

// Start starts the container
func (c *DockerController) Start(ctx context.Context) error {
	return c.run(ctx, "start", c.container)
}

// Stop stops the container
func (c *DockerController) Stop(ctx context.Context) error {
	return c.run(ctx, "stop", c.container)
}

// Status returns the container's status line, or "stopped" when docker
// reports nothing for it
func (c *DockerController) Status(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "docker", "ps",
		"-f", "name="+c.container, "--format", "{{.Status}}")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("docker ps: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	status := strings.TrimSpace(stdout.String())
	if status == "" {
		status = "stopped"
	}
	return status, nil
}

func (c *DockerController) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "docker", args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("docker %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
