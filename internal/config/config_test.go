package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CRAFTDECK_ROOT_KEY", "a-sufficiently-long-root-key")

	cfg, errs := Load("")
	require.Empty(t, errs)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultStorageType, cfg.StorageType)
	assert.Equal(t, DefaultContainer, cfg.Container)
	assert.Equal(t, DefaultCommandTimeout, cfg.CommandTimeout)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Equal(t, []string{"docker", "exec", "mc-server", "rcon-cli"}, cfg.CommandArgv)
}

func TestLoadMissingRootKey(t *testing.T) {
	t.Setenv("CRAFTDECK_ROOT_KEY", "")

	_, errs := Load("")
	assert.Contains(t, errs, ErrMissingRootKey)
}

func TestLoadShortRootKey(t *testing.T) {
	t.Setenv("CRAFTDECK_ROOT_KEY", "short")

	_, errs := Load("")
	assert.Contains(t, errs, ErrShortRootKey)
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("CRAFTDECK_ROOT_KEY", "a-sufficiently-long-root-key")

	path := writeConfigFile(t, `
host: 127.0.0.1
port: 9090
container: my-server
command_timeout: 5s
`)

	cfg, errs := Load(path)
	require.Empty(t, errs)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "my-server", cfg.Container)
	assert.Equal(t, 5*time.Second, cfg.CommandTimeout)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("CRAFTDECK_ROOT_KEY", "a-sufficiently-long-root-key")
	t.Setenv("CRAFTDECK_PORT", "7070")

	path := writeConfigFile(t, "port: 9090\n")

	cfg, errs := Load(path)
	require.Empty(t, errs)
	assert.Equal(t, 7070, cfg.Port)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("CRAFTDECK_ROOT_KEY", "a-sufficiently-long-root-key")
	t.Setenv("CRAFTDECK_PORT", "not-a-port")

	_, errs := Load("")
	assert.Contains(t, errs, ErrInvalidPort)
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("CRAFTDECK_ROOT_KEY", "a-sufficiently-long-root-key")
	t.Setenv("CRAFTDECK_COMMAND_TIMEOUT", "soon")

	_, errs := Load("")
	assert.Contains(t, errs, ErrInvalidTimeout)
}

func TestLoadRedisRequiresURL(t *testing.T) {
	t.Setenv("CRAFTDECK_ROOT_KEY", "a-sufficiently-long-root-key")
	t.Setenv("CRAFTDECK_STORAGE_TYPE", "redis")

	_, errs := Load("")
	assert.Contains(t, errs, ErrMissingRedisURL)
}

func TestLoadRedisWithURL(t *testing.T) {
	t.Setenv("CRAFTDECK_ROOT_KEY", "a-sufficiently-long-root-key")
	t.Setenv("CRAFTDECK_STORAGE_TYPE", "redis")
	t.Setenv("CRAFTDECK_REDIS_URL", "redis://localhost:6379")

	cfg, errs := Load("")
	require.Empty(t, errs)
	assert.Equal(t, "redis", cfg.StorageType)
}

func TestLoadUnknownStorageType(t *testing.T) {
	t.Setenv("CRAFTDECK_ROOT_KEY", "a-sufficiently-long-root-key")
	t.Setenv("CRAFTDECK_STORAGE_TYPE", "postgres")

	_, errs := Load("")
	assert.Contains(t, errs, ErrInvalidStorage)
}

func TestCommandArgvFromEnv(t *testing.T) {
	t.Setenv("CRAFTDECK_ROOT_KEY", "a-sufficiently-long-root-key")
	t.Setenv("CRAFTDECK_COMMAND_ARGV", "rcon-cli --host mc")

	cfg, errs := Load("")
	require.Empty(t, errs)
	assert.Equal(t, []string{"rcon-cli", "--host", "mc"}, cfg.CommandArgv)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, errs := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NotEmpty(t, errs)
}

func TestAddr(t *testing.T) {
	cfg := &Config{Host: "0.0.0.0", Port: 8080}
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}
