package config

import (
	"os"
	"path/filepath"
)

const (
	appName  = "linkage"
	fileName = "config.toml"

	// EnvPath overrides the settings file location.
	EnvPath = "LINKAGE_CONFIG"
)

// Path resolves the settings file location. An explicit path wins, then
// $LINKAGE_CONFIG, then the XDG config directory (~/.config/linkage/config.toml).
func Path(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}
