package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configEnv = "GOLET_CONFIG"

// Config holds the settings read from the YAML config file. Command line
// flags take precedence over it.
type Config struct {
	Prelude     bool   `yaml:"prelude"`
	Builtins    bool   `yaml:"builtins"`
	Color       string `yaml:"color"`
	HistoryFile string `yaml:"history_file"`
	Trace       bool   `yaml:"trace"`
	DumpAST     bool   `yaml:"dump_ast"`
}

func DefaultConfig() Config {
	return Config{
		Prelude:     true,
		Builtins:    true,
		Color:       "auto",
		HistoryFile: "~/.golet_history",
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".golet.yaml")
}

// LoadConfig reads the config file at path. An empty path means the default
// location, which is allowed to be missing.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Color {
	case "auto", "always", "never":
		return nil
	}
	return errors.Errorf("invalid color %q: want auto, always or never", c.Color)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
