package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds the sweep defaults fixed at build time
type Config struct {
	TargetSuffix string   `yaml:"target_suffix" json:"target_suffix"` // Deletion-eligibility filter, matched case-sensitively
	Keep         []string `yaml:"keep" json:"keep"`                   // Filenames exempt from deletion
}

var (
	errNoSuffix  = errors.New("target_suffix must not be empty")
	errSeparator = errors.New("keep entry must be a plain filename")
)

// Default decodes the embedded defaults document
func Default() (*Config, error) {
	return Parse(bytes.NewReader(defaultsYAML))
}

// Parse decodes and validates a defaults document
func Parse(r io.Reader) (*Config, error) {
	cfg, err := decode(r)
	if err != nil {
		return nil, err
	}
	if err := cfg.validateAndDefault(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(r io.Reader) (*Config, error) {
	cfg := &Config{}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

func (c *Config) validateAndDefault() error {
	if c.TargetSuffix == "" {
		return errNoSuffix
	}

	// Blank names can never match a directory entry
	kept := make([]string, 0, len(c.Keep))
	for _, name := range c.Keep {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%w: %s", errSeparator, name)
		}
		kept = append(kept, name)
	}
	c.Keep = kept

	return nil
}
