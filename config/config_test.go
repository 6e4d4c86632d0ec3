package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Debug {
		t.Error("debug enabled by default")
	}
	if cfg.MessageTimeout.Duration != 5*time.Second {
		t.Errorf("MessageTimeout = %v, want 5s", cfg.MessageTimeout.Duration)
	}
	if cfg.HelpMessage != DefaultHelpMessage {
		t.Errorf("HelpMessage = %q", cfg.HelpMessage)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
debug = true
log_file = "/tmp/reader.log"
message_timeout = "1500ms"

[keys]
ctrl_q = "none"
q = "quit"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if !cfg.Debug {
		t.Error("debug not set")
	}
	if cfg.LogFile != "/tmp/reader.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.MessageTimeout.Duration != 1500*time.Millisecond {
		t.Errorf("MessageTimeout = %v", cfg.MessageTimeout.Duration)
	}
	// Unset keys keep defaults
	if cfg.HelpMessage != DefaultHelpMessage {
		t.Errorf("HelpMessage = %q", cfg.HelpMessage)
	}
	if cfg.Keys["ctrl_q"] != "none" || cfg.Keys["q"] != "quit" {
		t.Errorf("Keys = %v", cfg.Keys)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{"unknown key", "colour = \"red\"\n", "unknown keys: colour"},
		{"syntax", "debug = \n", "load config"},
		{"bad duration", "message_timeout = \"soon\"\n", "load config"},
		{"negative duration", "message_timeout = \"-1s\"\n", "load config"},
		{"wrong type", "debug = \"yes\"\n", "load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error = %v, want containing %q", err, tt.contains)
			}
		})
	}
}

func TestLoad_MissingExplicit(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoad_MissingDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HelpMessage != DefaultHelpMessage {
		t.Error("expected defaults")
	}
}

func TestLoad_DefaultLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	path, err := DefaultPath()
	if err != nil {
		t.Skipf("no config dir on this platform: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("help_message = \"press ctrl-q\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HelpMessage != "press ctrl-q" {
		t.Errorf("HelpMessage = %q", cfg.HelpMessage)
	}
}
