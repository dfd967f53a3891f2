package utils

import (
	"errors"
	"fmt"
	"os"
	"path"
)

// ErrUserInitiatedExit signals a clean, intentional exit such as printing
// help or version output.
var ErrUserInitiatedExit = errors.New("user initiated exit")

// GetCabConfigDir returns the path to the cab configuration directory.
// The directory is located inside the user's configuration directory
// as <UserConfigDir>/.cab, unless overridden by CAB_CONFIG_HOME.
func GetCabConfigDir() (string, error) {
	if cabConfigHome := os.Getenv("CAB_CONFIG_HOME"); cabConfigHome != "" {
		return cabConfigHome, nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return path.Join(cfg, ".cab"), nil
}

// ReturnNonDefault returns whichever of a or b that isn't the default
// value, erroring if both are set.
func ReturnNonDefault[T comparable](a, b, defaultVal T) (T, error) {
	if a != defaultVal && b != defaultVal {
		return defaultVal, errors.New("values are mutually exclusive")
	}
	if a != defaultVal {
		return a, nil
	}
	if b != defaultVal {
		return b, nil
	}
	return defaultVal, nil
}
