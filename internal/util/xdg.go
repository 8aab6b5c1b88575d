package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName names the XDG data subdirectory.
const AppName = "swatches"

// GetXDGDataDir returns the XDG data directory for swatches.
// It respects XDG_DATA_HOME if set, otherwise falls back to ~/.local/share/swatches
func GetXDGDataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, AppName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".local", "share", AppName), nil
}
