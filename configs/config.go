package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultSessionSecret ships for local use only; main warns when it is left in place.
const DefaultSessionSecret = "mysecretkey"

type Config struct {
	Port     string `env:"PORT" envDefault:"9000"`
	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBSource string `env:"DB_SOURCE" envDefault:"cafe.db"`

	SessionSecret string        `env:"SESSION_SECRET" envDefault:"mysecretkey"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	SessionCookie string        `env:"SESSION_COOKIE" envDefault:"cafestaff_session"`
	CookieSecure  bool          `env:"COOKIE_SECURE" envDefault:"false"`

	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	PageSize    int      `env:"PAGE_SIZE" envDefault:"20"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"cafestaff"`

	Seed SeedConfig
}

// SeedConfig describes the first staff account and optional demo data.
type SeedConfig struct {
	StaffName     string `env:"STAFF_NAME" envDefault:"Admin"`
	StaffLogin    string `env:"STAFF_LOGIN"`
	StaffEmail    string `env:"STAFF_EMAIL"`
	StaffPassword string `env:"STAFF_PASSWORD"`
	Demo          bool   `env:"SEED_DEMO" envDefault:"false"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "sqlite", "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET must not be empty")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.PageSize <= 0 || c.PageSize > 100 {
		c.PageSize = 20
	}
	return nil
}

// UsesDefaultSecret reports whether the session key was left at the shipped value.
func (c *Config) UsesDefaultSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
}
