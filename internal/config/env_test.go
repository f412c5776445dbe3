// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_ENV":          "production",
		"APP_VERSION":      "1.2.3",
		"APP_CLIENT_URL":   "https://blogs.example",
		"APP_EMAIL_DOMAIN": "example.edu",

		"AUTH_TOKEN_SIGN_KEY":     "jwt_secret",
		"AUTH_TOKEN_ISSUER":       "test_issuer",
		"AUTH_TOKEN_DURATION":     "24h",
		"AUTH_COOKIE_DURATION":    "48h",
		"AUTH_SIGNUP_TOKEN_TTL":   "12h",
		"AUTH_RESET_TOKEN_TTL":    "10m",
		"AUTH_PASSWORD_HASH_COST": "11",

		"STORAGE_DB_DRIVER":       "sqlite3",
		"STORAGE_DB_DATABASE_URI": "file:blog.db",

		"SERVER_ADDRESS":             "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":     "30s",
		"SERVER_RATE_LIMIT_REQUESTS": "100",
		"SERVER_RATE_LIMIT_WINDOW":   "1h",
		"SERVER_RATE_LIMIT_BURST":    "5",

		"ADAPTER_MAIL_API_ADDRESS": "https://mail.example",
		"ADAPTER_MAIL_API_KEY":     "key",
		"ADAPTER_MAIL_FROM":        "noreply@example.edu",
		"ADAPTER_REQUEST_TIMEOUT":  "5s",

		"WORKERS_TOKEN_PURGE_INTERVAL": "15m",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "https://blogs.example", cfg.App.ClientURL)
	assert.Equal(t, "example.edu", cfg.App.EmailDomain)

	assert.Equal(t, "jwt_secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 48*time.Hour, cfg.Auth.CookieDuration)
	assert.Equal(t, 12*time.Hour, cfg.Auth.SignupTokenTTL)
	assert.Equal(t, 10*time.Minute, cfg.Auth.ResetTokenTTL)
	assert.Equal(t, 11, cfg.Auth.PasswordHashCost)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:blog.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, RateLimit{Requests: 100, Window: time.Hour, Burst: 5}, cfg.Server.RateLimit)

	assert.Equal(t, "https://mail.example", cfg.Adapter.MailAPIAddress)
	assert.Equal(t, "key", cfg.Adapter.MailAPIKey)
	assert.Equal(t, "noreply@example.edu", cfg.Adapter.MailFrom)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 15*time.Minute, cfg.Workers.TokenPurgeInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "jwt_secret")
	t.Setenv("SERVER_ADDRESS", "localhost:8080")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "jwt_secret", cfg.Auth.TokenSignKey)
	assert.Empty(t, cfg.Auth.TokenIssuer)
	assert.Zero(t, cfg.Auth.TokenDuration)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidInt(t *testing.T) {
	t.Setenv("AUTH_PASSWORD_HASH_COST", "twelve")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
