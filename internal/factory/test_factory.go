package factory

import (
	"time"

	"github.com/craftdeck/craftdeck/internal/dependencies/mocks"
	"github.com/craftdeck/craftdeck/internal/services/auth"
	"github.com/craftdeck/craftdeck/internal/services/console"
	"github.com/craftdeck/craftdeck/internal/services/process"
	"github.com/craftdeck/craftdeck/internal/storage/memory"
	"github.com/craftdeck/craftdeck/internal/testutil"
)

// TestRootKey is the root secret used by test apps
const TestRootKey = "test-root-key-0123456789"

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock      *mocks.MockClock
	FakeChannel    *mocks.FakeChannel
	FakeController *mocks.FakeController
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	fakeChannel := mocks.NewFakeChannel()
	fakeController := mocks.NewFakeController()

	app := newWithDependencies(
		store,
		mockClock,
		fakeChannel,
		fakeController,
		auth.Config{RootKey: TestRootKey},
		console.DefaultConfig(),
		process.Config{},
		testutil.NopLogger(),
	)

	return &TestApp{
		App:            app,
		MockClock:      mockClock,
		FakeChannel:    fakeChannel,
		FakeController: fakeController,
	}
}
