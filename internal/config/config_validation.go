// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// defaultTokenDuration is applied when no token lifetime is configured.
// Matches the 30-day window the browser client expects.
const defaultTokenDuration = 30 * 24 * time.Hour

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup and fills in defaults
// for optional fields.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = "itemvault"
	}

	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}

	return nil
}
