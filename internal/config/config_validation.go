// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with the offending detail.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and positive duration are required", ErrInvalidAppConfigs)
	}

	if cfg.RateLimit.Capacity <= 0 || cfg.RateLimit.RefillTokens <= 0 || cfg.RateLimit.RefillInterval <= 0 {
		return fmt.Errorf("%w: capacity, refill tokens and interval must be positive", ErrInvalidRateLimitConfigs)
	}
	if cfg.RateLimit.MaxClients < 0 {
		return fmt.Errorf("%w: max clients must not be negative", ErrInvalidRateLimitConfigs)
	}

	if cfg.Locale.Default == "" {
		return fmt.Errorf("%w: default locale is required", ErrInvalidLocaleConfigs)
	}
	if len(cfg.Locale.Supported) > 0 && !slices.Contains(cfg.Locale.Supported, cfg.Locale.Default) {
		return fmt.Errorf("%w: default locale %q is not supported", ErrInvalidLocaleConfigs, cfg.Locale.Default)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: dsn is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
