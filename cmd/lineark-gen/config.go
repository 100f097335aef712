package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

const configFile = "lineark-gen.yml"

// config is the optional lineark-gen.yml file. Every field is a default;
// command-line flags override it.
type config struct {
	Endpoint string `yaml:"endpoint"`
	TokenEnv string `yaml:"token_env"`
	Package  string `yaml:"package"`
	Out      string `yaml:"out"`
}

// loadConfig reads the config file if present. A missing or unreadable
// file yields the zero config; a present but malformed file also yields
// the zero config rather than blocking flag-only use.
func loadConfig(path string) config {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config{}
	}
	return cfg
}

func (c config) endpointOr(def string) string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return def
}

func (c config) packageOr(def string) string {
	if c.Package != "" {
		return c.Package
	}
	return def
}
