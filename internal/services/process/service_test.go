package process_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftdeck/craftdeck/internal/dependencies/mocks"
	"github.com/craftdeck/craftdeck/internal/services/process"
	"github.com/craftdeck/craftdeck/internal/testutil"
)

func newService(t *testing.T, logFile string) (*process.Service, *mocks.FakeController) {
	t.Helper()
	controller := mocks.NewFakeController()
	svc := process.New(controller, process.Config{LogFile: logFile}, testutil.NopLogger())
	return svc, controller
}

func TestStartDelegatesToController(t *testing.T) {
	svc, controller := newService(t, "")

	require.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, 1, controller.Starts())
}

func TestStopDelegatesToController(t *testing.T) {
	svc, controller := newService(t, "")

	require.NoError(t, svc.Stop(context.Background()))
	assert.Equal(t, 1, controller.Stops())
}

func TestStatusReturnsControllerText(t *testing.T) {
	svc, _ := newService(t, "")

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Up 2 hours", status)
}

func TestLogsMissingFileIsEmpty(t *testing.T) {
	svc, _ := newService(t, filepath.Join(t.TempDir(), "latest.log"))

	logs, err := svc.Logs(10)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestLogsReturnsTail(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "latest.log")
	require.NoError(t, os.WriteFile(logFile, []byte("one\ntwo\nthree\nfour\n"), 0o644))

	svc, _ := newService(t, logFile)

	logs, err := svc.Logs(2)
	require.NoError(t, err)
	assert.Equal(t, "three\nfour", logs)
}

func TestLogsShorterThanRequested(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "latest.log")
	require.NoError(t, os.WriteFile(logFile, []byte("only line\n"), 0o644))

	svc, _ := newService(t, logFile)

	logs, err := svc.Logs(100)
	require.NoError(t, err)
	assert.Equal(t, "only line", logs)
}

func TestLogsNonPositiveCountUsesDefault(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "latest.log")
	require.NoError(t, os.WriteFile(logFile, []byte("line\n"), 0o644))

	svc, _ := newService(t, logFile)

	logs, err := svc.Logs(0)
	require.NoError(t, err)
	assert.Equal(t, "line", logs)
}
