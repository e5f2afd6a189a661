// Package config provides configuration loading and validation for the
// control-plane server. It uses koanf to merge an optional YAML file with
// environment-variable overrides; environment variables win.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration values for the server
type Config struct {
	// Server settings
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	// RootKey is the root secret. Required; never stored.
	RootKey string `koanf:"root_key"`

	// Storage
	StorageType string `koanf:"storage_type"` // "memory" or "redis"
	RedisURL    string `koanf:"redis_url"`

	// Managed server
	Container      string        `koanf:"container"`       // container name for start/stop/status
	CommandArgv    []string      `koanf:"command_argv"`    // argv prefix for console commands
	CommandTimeout time.Duration `koanf:"command_timeout"` // bound on one console command
	LogFile        string        `koanf:"log_file"`        // managed server's latest.log
}

// Configuration validation errors
var (
	ErrMissingRootKey  = errors.New("CRAFTDECK_ROOT_KEY is required")
	ErrInvalidPort     = errors.New("CRAFTDECK_PORT must be a valid integer")
	ErrMissingRedisURL = errors.New("CRAFTDECK_REDIS_URL is required when storage_type is redis")
	ErrInvalidStorage  = errors.New("storage_type must be 'memory' or 'redis'")
	ErrShortRootKey    = errors.New("root key must be at least 16 characters")
	ErrInvalidTimeout  = errors.New("CRAFTDECK_COMMAND_TIMEOUT must be a valid duration")
)

// Default values for non-secret configuration
const (
	DefaultPort           = 8080
	DefaultStorageType    = "memory"
	DefaultContainer      = "mc-server"
	DefaultCommandTimeout = 10 * time.Second
	DefaultLogFile        = "/mc-data/logs/latest.log"

	minRootKeyLength = 16
)

// Load reads configuration from an optional YAML file and CRAFTDECK_*
// environment variables, env taking precedence. Returns the config and a
// slice of validation errors (empty if valid).
func Load(configFilePath string) (*Config, []error) {
	k := koanf.New(".")
	var loadErrs []error

	if configFilePath != "" {
		if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
			return nil, []error{fmt.Errorf("failed to load config file %s: %w", configFilePath, err)}
		}
	}

	cfg := &Config{
		Host:           stringValue(k, "host", "CRAFTDECK_HOST", ""),
		RootKey:        stringValue(k, "root_key", "CRAFTDECK_ROOT_KEY", ""),
		StorageType:    stringValue(k, "storage_type", "CRAFTDECK_STORAGE_TYPE", DefaultStorageType),
		RedisURL:       stringValue(k, "redis_url", "CRAFTDECK_REDIS_URL", ""),
		Container:      stringValue(k, "container", "CRAFTDECK_CONTAINER", DefaultContainer),
		LogFile:        stringValue(k, "log_file", "CRAFTDECK_LOG_FILE", DefaultLogFile),
		CommandTimeout: DefaultCommandTimeout,
	}

	port, err := intValue(k, "port", "CRAFTDECK_PORT", DefaultPort)
	if err != nil {
		loadErrs = append(loadErrs, ErrInvalidPort)
	}
	cfg.Port = port

	timeout, err := durationValue(k, "command_timeout", "CRAFTDECK_COMMAND_TIMEOUT", DefaultCommandTimeout)
	if err != nil {
		loadErrs = append(loadErrs, ErrInvalidTimeout)
	}
	cfg.CommandTimeout = timeout

	cfg.CommandArgv = argvValue(k, "command_argv", "CRAFTDECK_COMMAND_ARGV", cfg.Container)

	loadErrs = append(loadErrs, cfg.validate()...)
	return cfg, loadErrs
}

func (c *Config) validate() []error {
	var errs []error

	if c.RootKey == "" {
		errs = append(errs, ErrMissingRootKey)
	} else if len(c.RootKey) < minRootKeyLength {
		errs = append(errs, ErrShortRootKey)
	}

	switch c.StorageType {
	case "memory":
	case "redis":
		if c.RedisURL == "" {
			errs = append(errs, ErrMissingRedisURL)
		}
	default:
		errs = append(errs, ErrInvalidStorage)
	}

	return errs
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func stringValue(k *koanf.Koanf, key, env, def string) string {
	if val := os.Getenv(env); val != "" {
		return val
	}
	if k.Exists(key) {
		return k.String(key)
	}
	return def
}

func intValue(k *koanf.Koanf, key, env string, def int) (int, error) {
	if val := os.Getenv(env); val != "" {
		return strconv.Atoi(val)
	}
	if k.Exists(key) {
		return k.Int(key), nil
	}
	return def, nil
}

func durationValue(k *koanf.Koanf, key, env string, def time.Duration) (time.Duration, error) {
	if val := os.Getenv(env); val != "" {
		return time.ParseDuration(val)
	}
	if k.Exists(key) {
		return k.Duration(key), nil
	}
	return def, nil
}

// argvValue resolves the console command argv prefix. The env form is
// whitespace-separated; the default shells into the managed container's
// rcon client.
func argvValue(k *koanf.Koanf, key, env, container string) []string {
	if val := os.Getenv(env); val != "" {
		return strings.Fields(val)
	}
	if k.Exists(key) {
		if argv := k.Strings(key); len(argv) > 0 {
			return argv
		}
	}
	return []string{"docker", "exec", container, "rcon-cli"}
}
