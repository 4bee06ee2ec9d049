package agent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes an agent: which grammar dialect it speaks, what kind of
// agent to construct, and the seed document its chains start from.
type Config struct {
	MDL     string `yaml:"mdl"`     // grammar dialect identifier, e.g. "0.0.1"
	Kind    string `yaml:"kind"`    // registry key of the agent implementation
	ID      string `yaml:"id"`      // configuration id, not the instance id
	Variant string `yaml:"variant"` // named variation of the same kind
	Init    string `yaml:"init"`    // seed moment document in canonical text form
}

// LoadConfig reads and parses a YAML agent configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML configuration bytes.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Kind == "" {
		return Config{}, fmt.Errorf("config missing kind")
	}
	return cfg, nil
}
