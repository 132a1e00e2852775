package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Backend names accepted by SESSION_STORE and CATALOG_STORE.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// DevJWTSecret signs tokens in development when JWT_SECRET is unset.
const DevJWTSecret = "shopverse-dev-secret"

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Auth     AuthConfig
	Catalog  CatalogConfig
	Checkout CheckoutConfig
	Session  SessionConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type AuthConfig struct {
	AdminEmail string        `env:"ADMIN_EMAIL, default=admin@shopverse.com"`
	Delay      time.Duration `env:"AUTH_DELAY,  default=800ms"`
}

type CatalogConfig struct {
	Store    string `env:"CATALOG_STORE, default=memory"`
	PageSize int    `env:"PAGE_SIZE,     default=8"`
}

type CheckoutConfig struct {
	Delay          time.Duration `env:"CHECKOUT_DELAY,  default=1500ms"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
}

type SessionConfig struct {
	Store   string        `env:"SESSION_STORE,    default=memory"`
	IdleTTL time.Duration `env:"SESSION_IDLE_TTL, default=30m"`
	// TTL bounds how long persisted session state survives in Redis.
	TTL time.Duration `env:"SESSION_TTL, default=720h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=shopverse"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig,
// falling back to a local .env file for unset keys.
func Load() *Config {
	dotenv, err := ReadDotEnv(".env")
	if err != nil {
		panic(fmt.Sprintf("config: failed to read .env: %v", err))
	}
	lookuper := envconfig.MultiLookuper(envconfig.OsLookuper(), envconfig.MapLookuper(dotenv))

	cfg, err := LoadWith(context.Background(), lookuper)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// ReadDotEnv parses the given env files. Missing files are skipped.
func ReadDotEnv(paths ...string) (map[string]string, error) {
	out := map[string]string{}
	for _, p := range paths {
		values, err := godotenv.Read(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		for k, v := range values {
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	}
	return out, nil
}

// LoadWith processes configuration from lookuper and validates it.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		if !c.IsDevelopment() {
			return errors.New("JWT_SECRET is required outside development")
		}
		c.JWTSecret = DevJWTSecret
	}
	if c.Session.Store != BackendMemory && c.Session.Store != BackendRedis {
		return fmt.Errorf("SESSION_STORE must be %q or %q, got %q", BackendMemory, BackendRedis, c.Session.Store)
	}
	if c.Catalog.Store != BackendMemory && c.Catalog.Store != BackendMongo {
		return fmt.Errorf("CATALOG_STORE must be %q or %q, got %q", BackendMemory, BackendMongo, c.Catalog.Store)
	}
	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.Catalog.PageSize)
	}
	if c.Auth.Delay < 0 || c.Checkout.Delay < 0 {
		return errors.New("AUTH_DELAY and CHECKOUT_DELAY must not be negative")
	}
	return nil
}
