package app

import (
	"time"

	"github.com/aussiebroadwan/grantstore/pkg/configx"
)

type Config struct {
	DatabaseFile string `env:"VOOT_DATABASE_FILE" envDefault:"voot.db"`
	Port         int    `env:"PORT" envDefault:"8081"`

	// Basic auth for the API; an empty BasicUser leaves it open.
	BasicUser   string `env:"VOOT_BASIC_USER"`
	BasicPass   string `env:"VOOT_BASIC_PASS"`
	ServiceName string `env:"VOOT_SERVICE_NAME" envDefault:"VOOT Provider"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := configx.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the modernc.org/sqlite connection string for DatabaseFile.
func (c Config) DSN() string {
	return "file:" + c.DatabaseFile + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}
