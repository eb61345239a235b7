package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// ParseFile loads a configuration manifest from a file. The file extension
// is used to determine the format (JSON or YAML). Omitted fields keep their
// defaults.
func ParseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ParseJSON(data)
	case ".yml", ".yaml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// ParseFiles loads a sequence of manifests, later files overriding earlier
// ones field by field. Fields no file sets keep their defaults.
func ParseFiles(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no manifest files given")
	}
	cfg := Default()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".json":
			err = json.Unmarshal(data, cfg)
		case ".yml", ".yaml":
			err = yaml.UnmarshalWithOptions(data, cfg, yaml.Strict())
		default:
			return nil, fmt.Errorf("unsupported file extension: %s", ext)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		// Fold shorthand keys per layer, so a later file's canonical key
		// overrides an earlier file's shorthand and vice versa.
		cfg.normalize()
	}
	return cfg, nil
}

// ParseYAML loads a configuration manifest from YAML. Unknown keys are
// rejected.
func ParseYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

// ParseJSON loads a configuration manifest from JSON.
func ParseJSON(data []byte) (*Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

// normalize folds the niw/niv shorthand keys into the core box fields.
func (c *Config) normalize() {
	if c.BoxSizes.Niw != nil {
		c.BoxSizes.NiwCore = *c.BoxSizes.Niw
		c.BoxSizes.Niw = nil
	}
	if c.BoxSizes.Niv != nil {
		c.BoxSizes.NivCore = *c.BoxSizes.Niv
		c.BoxSizes.Niv = nil
	}
}

// Save writes a configuration manifest to a file. The file extension is
// used to determine the format (JSON or YAML).
func (c *Config) Save(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return c.SaveJSON(path)
	case ".yml", ".yaml":
		return c.SaveYAML(path)
	default:
		return fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// SaveYAML writes a configuration manifest to a YAML file.
func (c *Config) SaveYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SaveJSON writes a configuration manifest to a JSON file.
func (c *Config) SaveJSON(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Write writes the configuration to a writer in YAML format.
func (c *Config) Write(w io.Writer) error {
	return yaml.NewEncoder(w).Encode(c)
}
