package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds application configuration
type Config struct {
	// Server
	Env      string `env:"ENV" envDefault:"development"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL"`

	// Database
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"stockfolio"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"stockfolio"`
	DBName     string `env:"DB_NAME" envDefault:"stockfolio"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// Pipeline endpoints (stock and price ingestion). Empty disables them.
	PipelineAPIKey string `env:"PIPELINE_API_KEY"`

	// Latest-price cache. Empty address disables it.
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	PriceCacheTTL time.Duration `env:"PRICE_CACHE_TTL" envDefault:"5m"`

	// Trade events. No brokers disables publishing.
	KafkaBrokers    []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTradeTopic string   `env:"KAFKA_TRADE_TOPIC" envDefault:"portfolio-trades"`

	// Periodic portfolio snapshots. Zero disables the job.
	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL"`

	// Balance given to the wallet row when it is first created.
	WalletInitialBalance decimal.Decimal `env:"WALLET_INITIAL_BALANCE" envDefault:"0"`
}

var appConfig *Config

// Load loads configuration from the environment, reading a .env file first
// when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.WalletInitialBalance.IsNegative() {
		return nil, fmt.Errorf("WALLET_INITIAL_BALANCE must not be negative, got %s", cfg.WalletInitialBalance)
	}

	appConfig = &cfg
	return appConfig, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// PostgresURL returns the URL form of the database DSN used by golang-migrate.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}
