package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Session backends.
const (
	SessionMemory = "memory"
	SessionRedis  = "redis"
)

type Config struct {
	Port            string        `env:"PORT,             default=3000"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Store   StoreConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Session SessionConfig
	Seed    SeedConfig
}

type StoreConfig struct {
	Driver string `env:"STORE_DRIVER, default=sqlite"`
	// SQLDSN is a file path or URI for sqlite and a connection string for postgres.
	SQLDSN string `env:"SQL_DSN,      default=file:moodrecipes.db"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=mood_recipes"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SessionConfig struct {
	Backend      string `env:"SESSION_BACKEND,       default=memory"`
	CookieName   string `env:"SESSION_COOKIE,        default=mood_session"`
	CookieSecure bool   `env:"SESSION_COOKIE_SECURE, default=false"`
}

// SeedConfig controls startup data. Accounts with an empty email or password
// are skipped.
type SeedConfig struct {
	Recipes       bool   `env:"SEED_RECIPES,        default=true"`
	AdminEmail    string `env:"SEED_ADMIN_EMAIL"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD"`
	UserEmail     string `env:"SEED_USER_EMAIL"`
	UserPassword  string `env:"SEED_USER_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom reads configuration through lookuper and validates it.
func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	cfg.Session.Backend = strings.ToLower(strings.TrimSpace(cfg.Session.Backend))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite, DriverPostgres, DriverMongo:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	switch c.Session.Backend {
	case SessionMemory, SessionRedis:
	default:
		return fmt.Errorf("unknown SESSION_BACKEND %q", c.Session.Backend)
	}
	if c.Store.Driver == DriverPostgres && !strings.Contains(c.Store.SQLDSN, "://") && !strings.Contains(c.Store.SQLDSN, "=") {
		return fmt.Errorf("SQL_DSN %q is not a postgres connection string", c.Store.SQLDSN)
	}
	if strings.TrimSpace(c.Session.CookieName) == "" {
		return fmt.Errorf("SESSION_COOKIE must not be empty")
	}
	return nil
}

// Development reports whether the service runs in a local development setup.
func (c *Config) Development() bool {
	return strings.EqualFold(c.Env, "development")
}
