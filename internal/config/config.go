// Package config loads tsequiv settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Mode string

const (
	ModeExec Mode = "exec"
	ModeGoja Mode = "goja"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = ".tsequiv.yaml"

type Config struct {
	Node         string        `yaml:"node"`
	Mode         Mode          `yaml:"mode"`
	ModulePaths  []string      `yaml:"module_paths"`
	Bundle       string        `yaml:"bundle"`
	Timeout      time.Duration `yaml:"timeout"`
	MaxFileSize  int64         `yaml:"max_file_size"`
	Workers      int           `yaml:"workers"`
	TSExtensions []string      `yaml:"ts_extensions"`
	Preflight    *bool         `yaml:"preflight"`
}

func Default() Config {
	preflight := true
	return Config{
		Node:         "node",
		Mode:         ModeExec,
		Timeout:      30 * time.Second,
		MaxFileSize:  10 * 1024 * 1024,
		Workers:      runtime.GOMAXPROCS(0),
		TSExtensions: []string{".tsx", ".ts"},
		Preflight:    &preflight,
	}
}

// Load reads path over the defaults. A missing DefaultFile is not an error;
// any other missing path is.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Mode != ModeExec && c.Mode != ModeGoja {
		return fmt.Errorf("invalid mode %q: want %q or %q", c.Mode, ModeExec, ModeGoja)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout %s", c.Timeout)
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("invalid max_file_size %d", c.MaxFileSize)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("invalid workers %d", c.Workers)
	}
	if len(c.TSExtensions) == 0 {
		return errors.New("ts_extensions must not be empty")
	}
	for _, ext := range c.TSExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("invalid ts extension %q", ext)
		}
	}
	if slices.Contains(c.TSExtensions, ".js") {
		return errors.New("ts_extensions must not contain .js")
	}
	return nil
}

func (c Config) PreflightEnabled() bool {
	return c.Preflight == nil || *c.Preflight
}
