// Package config handles configuration loading, validation, and management for keyquery.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"keyquery/internal/logging"
	"keyquery/pkg/keyquery"
)

// Version is the current configuration schema version.
const Version = 1

// Config holds the complete keyquery configuration.
type Config struct {
	// Version is the configuration schema version.
	Version int `toml:"version" json:"version" yaml:"version"`

	// Input controls how key state is collected.
	Input InputConfig `toml:"input" json:"input" yaml:"input"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`

	// Watch configures the watch command.
	Watch WatchConfig `toml:"watch" json:"watch" yaml:"watch"`
}

// InputConfig controls the key state backend.
type InputConfig struct {
	// PollIntervalMs is the device drain cadence of event-stream backends.
	PollIntervalMs int `toml:"poll_interval_ms" json:"poll_interval_ms" yaml:"poll_interval_ms"`

	// KeyboardsOnly skips devices that do not look like keyboards.
	KeyboardsOnly bool `toml:"keyboards_only" json:"keyboards_only" yaml:"keyboards_only"`

	// Hotplug follows devices attached after startup.
	Hotplug bool `toml:"hotplug" json:"hotplug" yaml:"hotplug"`

	// DeviceDir overrides the evdev node directory. Empty means /dev/input.
	DeviceDir string `toml:"device_dir" json:"device_dir" yaml:"device_dir"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level      string `toml:"level" json:"level" yaml:"level"`
	Format     string `toml:"format" json:"format" yaml:"format"`
	Output     string `toml:"output" json:"output" yaml:"output"`
	FilePath   string `toml:"file_path" json:"file_path" yaml:"file_path"`
	MaxSizeMB  int    `toml:"max_size_mb" json:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" json:"max_backups" yaml:"max_backups"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	// Keys limits the printed keys. Empty means every key.
	Keys []string `toml:"keys" json:"keys" yaml:"keys"`

	// QueryIntervalMs is how often the command queries key state.
	QueryIntervalMs int `toml:"query_interval_ms" json:"query_interval_ms" yaml:"query_interval_ms"`

	// ExitKey ends the command when pressed. Empty disables it.
	ExitKey string `toml:"exit_key" json:"exit_key" yaml:"exit_key"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: Version,
		Input: InputConfig{
			PollIntervalMs: 5,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     "stderr",
			FilePath:   filepath.Join(PlatformLogDir(), "keyquery.log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Watch: WatchConfig{
			Keys:            []string{},
			QueryIntervalMs: 50,
			ExitKey:         "esc",
		},
	}
}

// ConfigPath returns the default configuration file path.
func ConfigPath() string {
	return filepath.Join(PlatformConfigDir(), "config.toml")
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	return ValidateConfig(c)
}

// ApplyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables are prefixed with KEYQUERY_ and use underscores.
// Unparseable numbers and booleans are ignored.
func (c *Config) ApplyEnvOverrides() {
	// Input overrides
	if v, ok := envInt("KEYQUERY_POLL_INTERVAL_MS"); ok {
		c.Input.PollIntervalMs = v
	}
	if v, ok := envBool("KEYQUERY_KEYBOARDS_ONLY"); ok {
		c.Input.KeyboardsOnly = v
	}
	if v, ok := envBool("KEYQUERY_HOTPLUG"); ok {
		c.Input.Hotplug = v
	}
	if v := os.Getenv("KEYQUERY_DEVICE_DIR"); v != "" {
		c.Input.DeviceDir = v
	}

	// Logging overrides
	if v := os.Getenv("KEYQUERY_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("KEYQUERY_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("KEYQUERY_LOG_OUTPUT"); v != "" {
		c.Logging.Output = v
	}
	if v := os.Getenv("KEYQUERY_LOG_PATH"); v != "" {
		c.Logging.FilePath = v
	}

	// Watch overrides
	if v := os.Getenv("KEYQUERY_WATCH_KEYS"); v != "" {
		c.Watch.Keys = splitList(v)
	}
	if v, ok := os.LookupEnv("KEYQUERY_EXIT_KEY"); ok {
		c.Watch.ExitKey = v
	}
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}

func envBool(name string) (bool, bool) {
	v := os.Getenv(name)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	return b, err == nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Watch.Keys = append([]string{}, c.Watch.Keys...)
	return &clone
}

// PollInterval returns Input.PollIntervalMs as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Input.PollIntervalMs) * time.Millisecond
}

// QueryInterval returns Watch.QueryIntervalMs as a duration.
func (c *Config) QueryInterval() time.Duration {
	return time.Duration(c.Watch.QueryIntervalMs) * time.Millisecond
}

// HandlerOptions converts the input section into handler options.
func (c *Config) HandlerOptions() []keyquery.Option {
	return []keyquery.Option{
		keyquery.WithPollInterval(c.PollInterval()),
		keyquery.WithKeyboardsOnly(c.Input.KeyboardsOnly),
		keyquery.WithHotplug(c.Input.Hotplug),
		keyquery.WithDeviceDir(c.Input.DeviceDir),
	}
}

// WatchKeys resolves Watch.Keys. An empty list yields every key.
func (c *Config) WatchKeys() ([]keyquery.KeyCode, error) {
	if len(c.Watch.Keys) == 0 {
		return keyquery.AllKeyCodes(), nil
	}
	keys := make([]keyquery.KeyCode, 0, len(c.Watch.Keys))
	for _, name := range c.Watch.Keys {
		k, err := keyquery.ParseKeyCode(name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// ExitKey resolves Watch.ExitKey. ok is false when no exit key is set.
func (c *Config) ExitKey() (key keyquery.KeyCode, ok bool, err error) {
	if strings.TrimSpace(c.Watch.ExitKey) == "" {
		return 0, false, nil
	}
	key, err = keyquery.ParseKeyCode(c.Watch.ExitKey)
	if err != nil {
		return 0, false, err
	}
	return key, true, nil
}

// LoggingConfig converts the logging section for the logging package.
// Invalid level or format strings fall back to info and text; Validate
// reports them.
func (c *Config) LoggingConfig() *logging.Config {
	lc := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Logging.Level); err == nil {
		lc.Level = level
	}
	if format, err := logging.ParseFormat(c.Logging.Format); err == nil {
		lc.Format = format
	}
	if c.Logging.Output != "" {
		lc.Output = c.Logging.Output
	}
	if c.Logging.FilePath != "" {
		lc.FilePath = c.Logging.FilePath
	}
	if c.Logging.MaxSizeMB > 0 {
		lc.MaxSize = int64(c.Logging.MaxSizeMB)
	}
	lc.MaxBackups = c.Logging.MaxBackups
	return lc
}
