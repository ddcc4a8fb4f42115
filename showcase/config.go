package showcase

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config selects which panels a run executes.
type Config struct {
	Panels []string `yaml:"panels"`
}

// LoadConfig reads a YAML panel-selection file and validates every name
// against the registry.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if len(cfg.Panels) == 0 {
		return nil, fmt.Errorf("config %s selects no panels", path)
	}

	for _, name := range cfg.Panels {
		if _, ok := Lookup(name); !ok {
			return nil, fmt.Errorf("config %s: unknown panel %q", path, name)
		}
	}

	return &cfg, nil
}
