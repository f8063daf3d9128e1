package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// PlatformConfigDir returns the platform-specific config directory.
//
// Platform paths:
//   - macOS:   ~/Library/Application Support/keyquery/
//   - Linux:   $XDG_CONFIG_HOME/keyquery/ or ~/.config/keyquery/
//   - Windows: %APPDATA%\keyquery\
//
// KEYQUERY_CONFIG_DIR overrides all of them.
func PlatformConfigDir() string {
	if dir := os.Getenv("KEYQUERY_CONFIG_DIR"); dir != "" {
		return dir
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Application Support", "keyquery")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "keyquery")
		}
		return fallbackDir()
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "keyquery")
		}
		return filepath.Join(homeDir(), ".config", "keyquery")
	}
}

// PlatformLogDir returns the platform-specific log directory.
//
// Platform paths:
//   - macOS:   ~/Library/Logs/keyquery/
//   - Linux:   $XDG_STATE_HOME/keyquery/ or ~/.local/state/keyquery/
//   - Windows: %LOCALAPPDATA%\keyquery\logs\
func PlatformLogDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Logs", "keyquery")
	case "windows":
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, "keyquery", "logs")
		}
		return filepath.Join(fallbackDir(), "logs")
	default:
		if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
			return filepath.Join(xdg, "keyquery")
		}
		return filepath.Join(homeDir(), ".local", "state", "keyquery")
	}
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return os.TempDir()
}

func fallbackDir() string {
	return filepath.Join(homeDir(), ".keyquery")
}

// SupportedConfigFormats returns the list of supported config file formats.
func SupportedConfigFormats() []string {
	return []string{"toml", "json", "yaml", "yml"}
}

// FindConfigFile searches the current directory, then the config
// directory, for config.<ext>. It returns "" when none exists.
func FindConfigFile() string {
	for _, dir := range []string{".", PlatformConfigDir()} {
		for _, ext := range SupportedConfigFormats() {
			path := filepath.Join(dir, "config."+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}
