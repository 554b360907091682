// Package paths locates the directories lists reads configuration from.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// GlobalConfigFileName is the name of the per-user config file.
const GlobalConfigFileName = "config.toml"

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return home, nil
}

// ConfigDir returns the per-user config directory, ~/.config/lists.
func ConfigDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return ConfigDirIn(home), nil
}

// ConfigDirIn returns the config directory under the given home directory.
func ConfigDirIn(home string) string {
	return filepath.Join(home, ".config", "lists")
}

// GlobalConfigPath returns the path of the per-user config file.
func GlobalConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, GlobalConfigFileName), nil
}

// WorkingDir returns the current working directory.
func WorkingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}
