package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig is the configuration of the bookctl command-line client.
// Values come from BOOKCTL_* environment variables (optionally via a .env
// file) and may be overridden by command-line flags.
type ClientConfig struct {
	// Adapter holds settings for the HTTP adapter talking to the server.
	Adapter Adapter `envPrefix:"BOOKCTL_"`
}

// Adapter holds connection settings for the outbound HTTP adapter.
type Adapter struct {
	// BaseURL is the server root, e.g. "http://localhost:8080".
	// Env: BOOKCTL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Token is a previously issued bearer token.
	// Env: BOOKCTL_TOKEN
	Token string `env:"TOKEN"`

	// Locale is sent as the Accept-Language header.
	// Env: BOOKCTL_LOCALE
	Locale string `env:"LOCALE"`

	// RequestTimeout bounds every request made by the adapter.
	// Env: BOOKCTL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client defaults.
const (
	DefaultClientBaseURL = "http://localhost:8080"
	DefaultClientTimeout = 10 * time.Second
)

// GetClientConfig loads the client configuration from defaults, an optional
// .env file and the environment, then applies overrides (typically built from
// cobra flags). Zero fields in overrides are ignored.
func GetClientConfig(overrides ClientConfig) (*ClientConfig, error) {
	if err := loadDotEnv(DefaultDotEnvPath); err != nil {
		return nil, err
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	cfg := &ClientConfig{
		Adapter: Adapter{
			BaseURL:        DefaultClientBaseURL,
			RequestTimeout: DefaultClientTimeout,
		},
	}
	for _, layer := range []*ClientConfig{envCfg, &overrides} {
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
