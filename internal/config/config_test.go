package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "portfolio-trades", cfg.KafkaTradeTopic)
	assert.Equal(t, 5*time.Minute, cfg.PriceCacheTTL)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Zero(t, cfg.SnapshotInterval)
	assert.True(t, cfg.WalletInitialBalance.IsZero())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("SNAPSHOT_INTERVAL", "1h")
	t.Setenv("WALLET_INITIAL_BALANCE", "1000.50")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, time.Hour, cfg.SnapshotInterval)
	assert.True(t, decimal.RequireFromString("1000.50").Equal(cfg.WalletInitialBalance))
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoad_RejectsNegativeInitialBalance(t *testing.T) {
	t.Setenv("WALLET_INITIAL_BALANCE", "-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestPostgresURL(t *testing.T) {
	cfg := &Config{
		DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "5433", DBName: "folio", DBSSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5433/folio?sslmode=disable", cfg.PostgresURL())
}
