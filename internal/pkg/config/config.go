package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Persistence modes.
const (
	PersistNone  = "none"
	PersistFile  = "file"
	PersistMongo = "mongo"
)

// Seed sources.
const (
	SeedFile  = "file"
	SeedMongo = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=3005"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	DataDir    string        `env:"DATA_DIR,    default=data"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=10m"`

	Persist PersistConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type PersistConfig struct {
	Mode    string `env:"PERSIST_MODE,    default=none"`
	Workers int    `env:"PERSIST_WORKERS, default=2"`
	Seed    string `env:"SEED_SOURCE,     default=file"`
}

// MongoConfig is optional: an empty URI disables Mongo entirely.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=commerce"`
}

// RedisConfig is optional: an empty address disables idempotency keys.
type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR"`
	DB             int           `env:"REDIS_DB,        default=0"`
	Timeout        time.Duration `env:"REDIS_TIMEOUT,   default=5s"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=1h"`
}

// IsDevelopment reports whether the service runs with development defaults
// such as pretty console logs.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads .env when present, then configuration from environment
// variables using go-envconfig.
func Load() *Config {
	_ = godotenv.Load(".env")

	cfg, err := Process(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// Process decodes and validates configuration from l.
func Process(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Persist.Mode {
	case PersistNone, PersistFile:
	case PersistMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("PERSIST_MODE=mongo requires MONGO_URI")
		}
	default:
		return fmt.Errorf("unknown PERSIST_MODE %q", c.Persist.Mode)
	}

	switch c.Persist.Seed {
	case SeedFile:
	case SeedMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("SEED_SOURCE=mongo requires MONGO_URI")
		}
	default:
		return fmt.Errorf("unknown SEED_SOURCE %q", c.Persist.Seed)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	return nil
}
