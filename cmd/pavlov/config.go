package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the demo runner settings loadable from a YAML file.
type config struct {
	// Scope selects verb resolution: "scoped" (default) or "global".
	Scope string `yaml:"scope"`
	// Color toggles terminal color output.
	Color bool `yaml:"color"`
}

func defaultConfig() config {
	return config{Scope: "scoped", Color: true}
}

// loadConfig reads the config file at path. A missing file at the default
// path is fine; an explicitly requested file must exist.
func loadConfig(path string, explicit bool) (config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	switch cfg.Scope {
	case "", "scoped", "global":
	default:
		return cfg, fmt.Errorf("invalid scope %q: want scoped or global", cfg.Scope)
	}
	return cfg, nil
}
