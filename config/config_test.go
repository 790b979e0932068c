package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()
	assert.Equal(t, ":8083", cfg.Server.GRPCPort)
	assert.Equal(t, "omnipos_purchase", cfg.Postgres.DBName)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Redis.Enabled)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("GRPC_PORT", "9000")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "25")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

	cfg := LoadEnv()
	assert.Equal(t, "9000", cfg.Server.GRPCPort)
	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}
