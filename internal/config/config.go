package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for strclear. Fields
// are pointers so unset values can be told apart from explicit zeros when
// layering CLI > local > global.
type FileConfig struct {
	Threads    *int    `yaml:"threads"`
	ClearChar  *string `yaml:"clear_char"`
	TextOnly   *bool   `yaml:"text_only"`
	BinaryOnly *bool   `yaml:"binary_only"`
	Paths      *bool   `yaml:"paths"`
	Verbose    *bool   `yaml:"verbose"`
	Table      *bool   `yaml:"table"`
	Journal    *string `yaml:"journal"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches the working directory for a repo-local config file.
// It supports .strclear.yml/.yaml and strclear.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".strclear.yml", ".strclear.yaml", "strclear.yml", "strclear.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "strclear", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
