package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Http.Port)
	assert.Equal(t, "8091", cfg.Grpc.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 3*time.Second, cfg.Redis.Timeout)
	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, "catalog-admin-events", cfg.Kafka.Topic)
	assert.Equal(t, 256, cfg.Outbox.BufferSize)
	assert.Equal(t, IDStrategyTimestamp, cfg.Admin.IDStrategy)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("ADMIN_ID_STRATEGY", "UUID")
	t.Setenv("WRITE_TIMEOUT", "7s")

	cfg, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Http.Port)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, IDStrategyUUID, cfg.Admin.IDStrategy)
	assert.Equal(t, 7*time.Second, cfg.Redis.Timeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"HTTP_READ_TIMEOUT":  "soon",
		"REDIS_DB_ID":        "zero",
		"OUTBOX_BUFFER_SIZE": "0",
		"ADMIN_ID_STRATEGY":  "random",
		"KAFKA_PARTITIONS":   "three",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load(logger.NewNopLogger())
			assert.Error(t, err)
		})
	}
}

func TestParseIntEnv(t *testing.T) {
	t.Setenv("SOME_INT", "nope")
	_, err := parseIntEnv("SOME_INT", 1)
	assert.ErrorIs(t, err, e.ErrIncorrectEnvVariable)

	v, err := parseIntEnv("MISSING_INT", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}
