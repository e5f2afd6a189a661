package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/craftdeck/craftdeck/internal/services/console"
)

// FakeChannel is a deterministic command channel for testing. Responses are
// scripted per exact command; unscripted commands get the default output.
type FakeChannel struct {
	mu            sync.Mutex
	responses     map[string]string
	defaultOutput string
	err           error
	delay         time.Duration
	sent          []string
}

// Ensure FakeChannel implements Channel
var _ console.Channel = (*FakeChannel)(nil)

// NewFakeChannel creates a FakeChannel whose default output is empty
func NewFakeChannel() *FakeChannel {
	return &FakeChannel{
		responses: make(map[string]string),
	}
}

// Respond scripts the output for an exact command
func (c *FakeChannel) Respond(command, output string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses[command] = output
}

// SetDefault sets the output for unscripted commands
func (c *FakeChannel) SetDefault(output string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaultOutput = output
}

// FailWith makes every Send return err alongside the scripted output
func (c *FakeChannel) FailWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

// SetDelay makes every Send take d, respecting context cancellation
func (c *FakeChannel) SetDelay(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delay = d
}

// Sent returns the commands sent so far
func (c *FakeChannel) Sent() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string{}, c.sent...)
}

// Send implements console.Channel
func (c *FakeChannel) Send(ctx context.Context, command string) (string, error) {
	c.mu.Lock()
	c.sent = append(c.sent, command)
	output, ok := c.responses[command]
	if !ok {
		output = c.defaultOutput
	}
	err := c.err
	delay := c.delay
	c.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	return output, err
}
