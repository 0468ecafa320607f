package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Output string `yaml:"output"` // markdown file written after a run
	} `yaml:"app"`

	Search struct {
		Host     string            `yaml:"host"`
		Keywords string            `yaml:"keywords"`
		Headers  map[string]string `yaml:"headers"`
		// display name -> geoId, e.g. "Portugal" -> "100364837"
		Locations map[string]string `yaml:"locations"`
	} `yaml:"search"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
