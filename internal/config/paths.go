package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName    = "smartthermo"
	configFile = "config.yaml"

	// ConfigPathEnvVar overrides the configuration file location when no
	// path is given on the command line.
	ConfigPathEnvVar = "SMARTTHERMO_CONFIG"

	// DefaultPath is used when neither a flag nor the environment names a file.
	// It is relative to the working directory.
	DefaultPath = configFile
)

// ResolvePath picks the configuration file to use: the explicit value if set,
// then SMARTTHERMO_CONFIG, then config.yaml in the working directory.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(ConfigPathEnvVar); env != "" {
		return env
	}
	return DefaultPath
}

// GetConfigDir returns the per-user configuration directory:
//   - Windows: %LOCALAPPDATA%\smartthermo
//   - elsewhere: $XDG_CONFIG_HOME/smartthermo, falling back to
//     $HOME/.config/smartthermo (macOS included)
func GetConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		base, err := windowsAppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, appName), nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", appName), nil
}

func windowsAppDataDir() (string, error) {
	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		return localAppData, nil
	}
	if userProfile := os.Getenv("USERPROFILE"); userProfile != "" {
		return filepath.Join(userProfile, "AppData", "Local"), nil
	}
	return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
}

// GetConfigPath returns the full path to the per-user configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// EnsureConfigDir creates the per-user configuration directory with
// user-only permissions if it doesn't exist.
func EnsureConfigDir() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// UserConfigPath returns the per-user configuration file path, creating its
// directory first so that a default file can be bootstrapped there.
func UserConfigPath() (string, error) {
	if err := EnsureConfigDir(); err != nil {
		return "", err
	}
	return GetConfigPath()
}
