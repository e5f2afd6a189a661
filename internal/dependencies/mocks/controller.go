package mocks

import (
	"context"
	"sync"

	"github.com/craftdeck/craftdeck/internal/services/process"
)

// FakeController is a scripted process controller for testing
type FakeController struct {
	mu sync.Mutex

	// StatusText is returned by Status
	StatusText string
	// Err, when set, is returned by every call
	Err error

	starts int
	stops  int
}

// Ensure FakeController implements Controller
var _ process.Controller = (*FakeController)(nil)

// NewFakeController creates a FakeController reporting a running server
func NewFakeController() *FakeController {
	return &FakeController{StatusText: "Up 2 hours"}
}

// Start implements process.Controller
func (c *FakeController) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.starts++
	return c.Err
}

// Stop implements process.Controller
func (c *FakeController) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stops++
	return c.Err
}

// Status implements process.Controller
func (c *FakeController) Status(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.StatusText, c.Err
}

// Starts returns how many times Start was called
func (c *FakeController) Starts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.starts
}

// Stops returns how many times Stop was called
func (c *FakeController) Stops() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stops
}
