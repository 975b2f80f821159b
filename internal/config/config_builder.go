package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configBuilder accumulates configuration layers in priority order and
// merges them in build. Errors from individual layers are joined so that
// every broken source is reported at once.
type configBuilder struct {
	configs []*StructuredConfig
	flags   *StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	layers := b.configs
	if b.flags != nil {
		layers = append(layers, b.flags)
	}

	config := new(StructuredConfig)
	for _, cfg := range layers {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// withDotEnv loads a .env file into the process environment. The path comes
// from flags, then DOTENV, then the default ".env". Call withFlags first
// for the -env flag to take effect.
func (b *configBuilder) withDotEnv() *configBuilder {
	path := DefaultDotEnvPath
	if envPath := os.Getenv("DOTENV"); envPath != "" {
		path = envPath
	}
	if b.flags != nil && b.flags.DotEnvPath != "" {
		path = b.flags.DotEnvPath
	}

	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withFlags parses args and keeps the result as the highest priority layer,
// regardless of the order in which other layers are added.
func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flags
	return b
}

// withJSON loads the JSON file named by the highest priority layer that
// specifies one. The JSON layer sits above env and below flags.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}
	if b.flags != nil && b.flags.JSONFilePath != "" {
		jsonPath = b.flags.JSONFilePath
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}
