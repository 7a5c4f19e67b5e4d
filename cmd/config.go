package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"valuefmt/sources"
)

// Config is the content of a .valuefmt.yaml project file
type Config struct {
	Contexts []string         `yaml:"contexts"`
	Sources  []sources.Source `yaml:"sources"`
}

func loadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(config.Sources) == 0 {
		return nil, fmt.Errorf("no sources found in %s", path)
	}
	return &config, nil
}
