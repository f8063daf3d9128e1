package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyquery/internal/logging"
	"keyquery/pkg/keyquery"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, Version, cfg.Version)
	assert.Equal(t, 5*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, 50*time.Millisecond, cfg.QueryInterval())
	assert.False(t, cfg.Input.Hotplug)
	assert.False(t, cfg.Input.KeyboardsOnly)
	assert.Equal(t, "esc", cfg.Watch.ExitKey)
	assert.True(t, strings.HasSuffix(cfg.Logging.FilePath, "keyquery.log"))
}

func TestConfigPath(t *testing.T) {
	t.Setenv("KEYQUERY_CONFIG_DIR", "/opt/kq")
	assert.Equal(t, filepath.Join("/opt/kq", "config.toml"), ConfigPath())
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Version = 9
	cfg.Input.PollIntervalMs = 0
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"
	cfg.Logging.Output = "file"
	cfg.Logging.FilePath = ""
	cfg.Watch.Keys = []string{"esc", "hyper"}
	cfg.Watch.ExitKey = "nope"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.ElementsMatch(t, []string{
		"version",
		"input.poll_interval_ms",
		"logging.level",
		"logging.format",
		"logging.file_path",
		"watch.keys[1]",
		"watch.exit_key",
	}, verrs.Fields())
}

func TestValidateEmptyExitKeyAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Watch.ExitKey = ""
	assert.NoError(t, cfg.Validate())

	_, ok, err := cfg.ExitKey()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("KEYQUERY_POLL_INTERVAL_MS", "2")
	t.Setenv("KEYQUERY_KEYBOARDS_ONLY", "true")
	t.Setenv("KEYQUERY_HOTPLUG", "1")
	t.Setenv("KEYQUERY_DEVICE_DIR", "/tmp/input")
	t.Setenv("KEYQUERY_LOG_LEVEL", "debug")
	t.Setenv("KEYQUERY_LOG_FORMAT", "json")
	t.Setenv("KEYQUERY_WATCH_KEYS", "w, a ,s,d")
	t.Setenv("KEYQUERY_EXIT_KEY", "")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, 2, cfg.Input.PollIntervalMs)
	assert.True(t, cfg.Input.KeyboardsOnly)
	assert.True(t, cfg.Input.Hotplug)
	assert.Equal(t, "/tmp/input", cfg.Input.DeviceDir)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{"w", "a", "s", "d"}, cfg.Watch.Keys)
	assert.Equal(t, "", cfg.Watch.ExitKey)
}

func TestApplyEnvOverridesIgnoresGarbage(t *testing.T) {
	t.Setenv("KEYQUERY_POLL_INTERVAL_MS", "fast")
	t.Setenv("KEYQUERY_HOTPLUG", "maybe")

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, 5, cfg.Input.PollIntervalMs)
	assert.False(t, cfg.Input.Hotplug)
}

func TestClone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Watch.Keys = []string{"a"}

	clone := cfg.Clone()
	clone.Watch.Keys[0] = "b"
	clone.Input.Hotplug = true

	assert.Equal(t, []string{"a"}, cfg.Watch.Keys)
	assert.False(t, cfg.Input.Hotplug)
}

func TestWatchKeys(t *testing.T) {
	cfg := DefaultConfig()

	keys, err := cfg.WatchKeys()
	require.NoError(t, err)
	assert.Len(t, keys, keyquery.NumKeyCodes)

	cfg.Watch.Keys = []string{"space", "KeyEsc"}
	keys, err = cfg.WatchKeys()
	require.NoError(t, err)
	assert.Equal(t, []keyquery.KeyCode{keyquery.KeySpace, keyquery.KeyEsc}, keys)

	exit, ok, err := cfg.ExitKey()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, keyquery.KeyEsc, exit)
}

func TestHandlerOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input.PollIntervalMs = 3
	cfg.Input.Hotplug = true
	cfg.Input.DeviceDir = "/tmp/dev"

	var got keyquery.Config
	for _, opt := range cfg.HandlerOptions() {
		opt(&got)
	}
	assert.Equal(t, 3*time.Millisecond, got.PollInterval)
	assert.True(t, got.Hotplug)
	assert.False(t, got.KeyboardsOnly)
	assert.Equal(t, "/tmp/dev", got.DeviceDir)
}

func TestLoggingConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "warn"
	cfg.Logging.Format = "json"
	cfg.Logging.Output = "file"
	cfg.Logging.FilePath = "/var/log/kq.log"
	cfg.Logging.MaxSizeMB = 7
	cfg.Logging.MaxBackups = 1

	lc := cfg.LoggingConfig()
	assert.Equal(t, logging.LevelWarn, lc.Level)
	assert.Equal(t, logging.FormatJSON, lc.Format)
	assert.Equal(t, "file", lc.Output)
	assert.Equal(t, "/var/log/kq.log", lc.FilePath)
	assert.EqualValues(t, 7, lc.MaxSize)
	assert.Equal(t, 1, lc.MaxBackups)
}

func TestPlatformDirs(t *testing.T) {
	t.Setenv("KEYQUERY_CONFIG_DIR", "")
	assert.True(t, strings.Contains(PlatformConfigDir(), "keyquery"))
	assert.True(t, strings.Contains(PlatformLogDir(), "keyquery"))
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KEYQUERY_CONFIG_DIR", dir)
	t.Chdir(t.TempDir())

	assert.Equal(t, "", FindConfigFile())

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o600))
	assert.Equal(t, path, FindConfigFile())
}
