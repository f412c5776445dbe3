package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case keys and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		Env         string `json:"env"`
		Version     string `json:"version"`
		ClientURL   string `json:"client_url"`
		EmailDomain string `json:"email_domain"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		CookieDuration   Duration `json:"cookie_duration"`
		SignupTokenTTL   Duration `json:"signup_token_ttl"`
		ResetTokenTTL    Duration `json:"reset_token_ttl"`
		PasswordHashCost int      `json:"password_hash_cost"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		RateLimit       struct {
			Requests int      `json:"requests"`
			Window   Duration `json:"window"`
			Burst    int      `json:"burst"`
		} `json:"rate_limit,omitempty"`
	} `json:"server,omitempty"`

	Adapter struct {
		MailAPIAddress string   `json:"mail_api_address"`
		MailAPIKey     string   `json:"mail_api_key"`
		MailFrom       string   `json:"mail_from"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		TokenPurgeInterval Duration `json:"token_purge_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Env:         jsonCfg.App.Env,
			Version:     jsonCfg.App.Version,
			ClientURL:   jsonCfg.App.ClientURL,
			EmailDomain: jsonCfg.App.EmailDomain,
		},
		Auth: Auth{
			TokenSignKey:     jsonCfg.Auth.TokenSignKey,
			TokenIssuer:      jsonCfg.Auth.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.Auth.TokenDuration),
			CookieDuration:   time.Duration(jsonCfg.Auth.CookieDuration),
			SignupTokenTTL:   time.Duration(jsonCfg.Auth.SignupTokenTTL),
			ResetTokenTTL:    time.Duration(jsonCfg.Auth.ResetTokenTTL),
			PasswordHashCost: jsonCfg.Auth.PasswordHashCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			RateLimit: RateLimit{
				Requests: jsonCfg.Server.RateLimit.Requests,
				Window:   time.Duration(jsonCfg.Server.RateLimit.Window),
				Burst:    jsonCfg.Server.RateLimit.Burst,
			},
		},
		Adapter: Adapter{
			MailAPIAddress: jsonCfg.Adapter.MailAPIAddress,
			MailAPIKey:     jsonCfg.Adapter.MailAPIKey,
			MailFrom:       jsonCfg.Adapter.MailFrom,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			TokenPurgeInterval: time.Duration(jsonCfg.Workers.TokenPurgeInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
