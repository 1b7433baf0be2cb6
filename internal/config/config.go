package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	CatalogStatic   = "static"
	CatalogPostgres = "postgres"

	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Addr            string        `env:"ACOUSTIC_SHOP_ADDR" envDefault:":8080"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	RabbitMQURI     string        `env:"RABBITMQ_URI"`
	OrderQueue      string        `env:"ORDER_QUEUE" envDefault:"orders"`
	JWTSecret       string        `env:"JWT_SECRET"`
	CatalogSource   string        `env:"CATALOG_SOURCE" envDefault:"static"`
	CartStorage     string        `env:"CART_STORAGE" envDefault:"memory"`
	CartSQLitePath  string        `env:"CART_SQLITE_PATH" envDefault:"acoustic-cart.db"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"10m"`
	CheckoutDelay   time.Duration `env:"CHECKOUT_DELAY" envDefault:"1500ms"`
	ContactDelay    time.Duration `env:"CONTACT_DELAY" envDefault:"1000ms"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"720h"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.CatalogSource = strings.ToLower(strings.TrimSpace(cfg.CatalogSource))
	cfg.CartStorage = strings.ToLower(strings.TrimSpace(cfg.CartStorage))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.JWTSecret) == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}

	switch c.CatalogSource {
	case CatalogStatic:
	case CatalogPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("CATALOG_SOURCE=postgres requires DATABASE_URL"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource))
	}

	switch c.CartStorage {
	case StorageMemory:
	case StorageSQLite:
		if strings.TrimSpace(c.CartSQLitePath) == "" {
			errs = append(errs, errors.New("CART_STORAGE=sqlite requires CART_SQLITE_PATH"))
		}
	case StoragePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("CART_STORAGE=postgres requires DATABASE_URL"))
		}
	case StorageRedis:
		if c.RedisAddr == "" {
			errs = append(errs, errors.New("CART_STORAGE=redis requires REDIS_ADDR"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CART_STORAGE %q", c.CartStorage))
	}

	if c.RabbitMQURI != "" && strings.TrimSpace(c.OrderQueue) == "" {
		errs = append(errs, errors.New("ORDER_QUEUE must not be empty when RABBITMQ_URI is set"))
	}
	if c.CheckoutDelay < 0 || c.ContactDelay < 0 {
		errs = append(errs, errors.New("delays must not be negative"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	return errors.Join(errs...)
}

// NeedsPostgres reports whether any configured backend talks to Postgres.
func (c Config) NeedsPostgres() bool {
	return c.CatalogSource == CatalogPostgres || c.CartStorage == StoragePostgres
}

func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
