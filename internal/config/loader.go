package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileNames are the project file names, in lookup order.
var FileNames = []string{"derive.yaml", "derive.yml", "derive.toml"}

// Find walks up from startDir looking for a project file.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", false, nil
}

// Load finds and loads the project file above startDir. Without one it
// returns Default().
func Load(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}

	if !ok {
		return Default(), nil
	}

	return LoadFile(path)
}

// LoadFile loads and parses a project file; the format follows the extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var c *Config

	if filepath.Ext(path) == ".toml" {
		c, err = ParseTOML(data)
	} else {
		c, err = ParseYAML(data)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c.Path = path

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// ParseYAML parses YAML data into a Config. Unknown keys are rejected.
func ParseYAML(data []byte) (*Config, error) {
	var c Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

// ParseTOML parses TOML data into a Config. Unknown keys are rejected.
func ParseTOML(data []byte) (*Config, error) {
	var c Config

	meta, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}

	applyDefaults(&c)

	return &c, nil
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteFile writes a Config to path as YAML.
func WriteFile(c *Config, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
