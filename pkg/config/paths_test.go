package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathExplicit(t *testing.T) {
	t.Setenv(EnvPath, "/from/env.toml")

	got, err := Path("/explicit.toml")
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	if got != "/explicit.toml" {
		t.Errorf("Path() = %q, want explicit path", got)
	}
}

func TestPathEnv(t *testing.T) {
	t.Setenv(EnvPath, "/from/env.toml")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	got, err := Path("")
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	if got != "/from/env.toml" {
		t.Errorf("Path() = %q, want %q", got, "/from/env.toml")
	}
}

func TestPathXDG(t *testing.T) {
	t.Setenv(EnvPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	got, err := Path("")
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	want := filepath.Join("/tmp/custom-config", appName, fileName)
	if got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestPathHome(t *testing.T) {
	t.Setenv(EnvPath, "")
	t.Setenv("XDG_CONFIG_HOME", "")

	got, err := Path("")
	if err != nil {
		t.Fatalf("Path() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".config", appName, fileName)
	if got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
