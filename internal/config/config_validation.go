// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Supported values of DB.Driver.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// MinPasswordHashCost is the lowest bcrypt cost the server accepts.
const MinPasswordHashCost = 10

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Env != EnvDevelopment && cfg.App.Env != EnvProduction {
		return fmt.Errorf("%w: unknown env %q", ErrInvalidAppConfigs, cfg.App.Env)
	}
	if cfg.App.ClientURL == "" || cfg.App.EmailDomain == "" {
		return fmt.Errorf("%w: client url and email domain are required", ErrInvalidAppConfigs)
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.PasswordHashCost < MinPasswordHashCost || cfg.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be in [%d, %d]",
			ErrInvalidAuthConfigs, MinPasswordHashCost, bcrypt.MaxCost)
	}
	if cfg.Auth.SignupTokenTTL <= 0 || cfg.Auth.ResetTokenTTL <= 0 {
		return fmt.Errorf("%w: pending token ttls must be positive", ErrInvalidAuthConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.RateLimit.Requests > 0 && cfg.Server.RateLimit.Window <= 0 {
		return fmt.Errorf("%w: rate limit window must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.MailAPIAddress != "" && (cfg.Adapter.MailFrom == "" || cfg.Adapter.RequestTimeout <= 0) {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.TokenPurgeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
