// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	Store struct {
		Driver      string `envconfig:"STORE_DRIVER" default:"memory"`
		DatabaseURL string `envconfig:"DATABASE_URL"`
		SQLitePath  string `envconfig:"SQLITE_PATH" default:"ledger.db"`
	}

	Ledger struct {
		ListenAddr string        `envconfig:"LEDGER_LISTEN_ADDR" default:":50051"`
		LockWait   time.Duration `envconfig:"LEDGER_LOCK_WAIT" default:"5s"`
	}

	Report struct {
		ListenAddr string `envconfig:"REPORT_LISTEN_ADDR" default:":50052"`
	}

	Notify struct {
		WebhookURL string `envconfig:"NOTIFY_WEBHOOK_URL"`
	}

	// TLS is optional. When CertFile and KeyFile are both set the gRPC
	// servers serve over TLS; setting CAFile additionally requires client
	// certificates.
	TLS struct {
		CertFile string `envconfig:"TLS_CERT_FILE"`
		KeyFile  string `envconfig:"TLS_KEY_FILE"`
		CAFile   string `envconfig:"TLS_CA_FILE"`
	}
}

// TLSEnabled reports whether the servers should terminate TLS themselves.
func (c *Config) TLSEnabled() bool {
	return c.TLS.CertFile != "" || c.TLS.KeyFile != ""
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration is coherent for the selected store
// driver and environment.
func (c *Config) Validate() error {
	var missing []string

	switch c.Store.Driver {
	case "memory":
		// The memory driver loses all state on restart.
		if c.Environment == "production" {
			return errors.New("STORE_DRIVER memory cannot be used when APP_ENV is production")
		}
	case "sqlite":
		if c.Store.SQLitePath == "" {
			missing = append(missing, "SQLITE_PATH")
		}
	case "postgres":
		if c.Store.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q (want memory, sqlite or postgres)", c.Store.Driver)
	}

	if c.TLSEnabled() {
		if c.TLS.CertFile == "" {
			missing = append(missing, "TLS_CERT_FILE")
		}
		if c.TLS.KeyFile == "" {
			missing = append(missing, "TLS_KEY_FILE")
		}
	}

	if len(missing) > 0 {
		return errors.New("missing required environment variables: " + strings.Join(missing, ", "))
	}

	return nil
}
