package app

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/grantstore/pkg/configx"
)

type Config struct {
	DatabaseFile string `env:"AUTH_DATABASE_FILE" envDefault:"oauth.db"`
	PepperFile   string `env:"AUTH_PEPPER_FILE" envDefault:"pepper"`
	Port         int    `env:"PORT" envDefault:"8080"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
	AccessTokenTTL       time.Duration `env:"AUTH_ACCESS_TOKEN_TTL" envDefault:"1h"`

	// Client registry credentials. An empty AdminUser disables the check.
	AdminUser string `env:"AUTH_ADMIN_USER"`
	AdminPass string `env:"AUTH_ADMIN_PASS"`

	// Headers the authenticating reverse proxy sets on authorize requests.
	ResourceOwnerHeader     string `env:"AUTH_RESOURCE_OWNER_HEADER" envDefault:"X-Remote-User"`
	ResourceOwnerNameHeader string `env:"AUTH_RESOURCE_OWNER_NAME_HEADER" envDefault:"X-Remote-User-Display-Name"`

	// Bearer tokens on /v1/approvals need one of these scopes. Empty admits
	// any live token.
	ApprovalsScopes []string `env:"AUTH_APPROVALS_SCOPES" envSeparator:","`
}

// LoadConfig reads Config from the environment and an optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := configx.Load(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.AccessTokenTTL < time.Second {
		return Config{}, fmt.Errorf("AUTH_ACCESS_TOKEN_TTL must be at least 1s, got %s", cfg.AccessTokenTTL)
	}
	return cfg, nil
}

// DSN is the modernc.org/sqlite connection string for DatabaseFile. Write
// transactions take the lock up front so concurrent redemptions queue on
// busy_timeout instead of failing on upgrade.
func (c Config) DSN() string {
	return "file:" + c.DatabaseFile +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"
}
