// Package defaults resolves the platform data directory and the well-known
// paths inside it.
//
// Platform paths:
//
//	macOS:   ~/Library/Application Support/AntigravityManager/
//	Windows: %AppData%\AntigravityManager\
//	Linux:   ~/.config/antigravity-manager/
//
// Override with the ANTIGRAVITY_DATA_DIR environment variable.
package defaults

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DataDir returns the platform-appropriate data directory.
// Set ANTIGRAVITY_DATA_DIR to override.
func DataDir() (string, error) {
	if dir := os.Getenv("ANTIGRAVITY_DATA_DIR"); dir != "" {
		return dir, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}

	// Linux: lowercase per XDG convention
	// macOS/Windows: title case per platform convention
	if runtime.GOOS == "linux" {
		return filepath.Join(configDir, "antigravity-manager"), nil
	}
	return filepath.Join(configDir, "AntigravityManager"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}

// ConfigPath returns the location of the JSON config file.
func ConfigPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DBPath returns the location of the app database.
func DBPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "data", "antigravity.db"), nil
}
