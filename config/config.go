// Package config loads the viewer's TOML configuration file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	AppName            = "vi-reader"
	configFileName     = "config.toml"
	logFileName        = "vi-reader.log"
	DefaultHelpMessage = "HELP: Ctrl-Q = quit"
)

// Config is the decoded configuration file
type Config struct {
	Debug          bool              `toml:"debug"`
	LogFile        string            `toml:"log_file"`
	MessageTimeout Duration          `toml:"message_timeout"`
	HelpMessage    string            `toml:"help_message"`
	Keys           map[string]string `toml:"keys"`
}

// Duration decodes Go duration strings ("5s", "1500ms")
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("duration must be positive: %q", text)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		MessageTimeout: Duration{5 * time.Second},
		HelpMessage:    DefaultHelpMessage,
		Keys:           map[string]string{},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/vi-reader/config.toml or equivalent
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, AppName, configFileName), nil
}

// DefaultLogPath returns <UserCacheDir>/vi-reader/vi-reader.log, falling back to the temp dir
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, AppName, logFileName)
}

// Load reads the configuration
// An empty path selects the default location, where a missing file yields defaults
// An explicit path must exist
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			log.Printf("config: %v, using defaults", err)
			return Default(), nil
		}
		path = p
	}

	cfg, err := LoadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			log.Printf("config: no file at %s, using defaults", path)
			return Default(), nil
		}
		return nil, err
	}
	log.Printf("config: loaded %s", path)
	return cfg, nil
}

// LoadFile decodes path over the defaults
// Unknown keys are an error
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Keys == nil {
		cfg.Keys = map[string]string{}
	}
	return cfg, nil
}
