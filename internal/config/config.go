package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains the logging environment and the options of the regex generator.
// Defaults reproduce the declaration the original tldRegex tooling emitted.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"TLDREGEX_ENVIRONMENT" env-default:"production" yaml:"environment"`

	// Generator contains the options of the regex literal generator
	Generator struct {
		// VarName is the identifier the generated regex is assigned to
		VarName string `env:"TLDREGEX_VAR_NAME" env-default:"tldRegex" yaml:"varName"`
		// Width is the maximum escaped width of a single string literal chunk
		Width int `env:"TLDREGEX_WIDTH" env-default:"70" yaml:"width"`
		// Format selects the target language of the declaration (js or go)
		Format string `env:"TLDREGEX_FORMAT" env-default:"js" yaml:"format"`
		// Package is the package clause used by the go format
		Package string `env:"TLDREGEX_PACKAGE" env-default:"tlds" yaml:"package"`
		// ASCII escapes every non-ASCII character in js output
		ASCII bool `env:"TLDREGEX_ASCII" env-default:"false" yaml:"ascii"`
		// RejectEmpty fails instead of emitting \.()$ when no entry survives filtering
		RejectEmpty bool `env:"TLDREGEX_REJECT_EMPTY" env-default:"false" yaml:"rejectEmpty"`
	} `yaml:"generator"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
// An empty path reads the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
