package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roshambo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("NODE_ID", "")
	t.Setenv("REDIS_ADDR", "")
	path := writeConfig(t, "node:\n  id: alpha\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "alpha", cfg.Node.ID)
	assert.Equal(t, "roshambo:alpha:", cfg.Node.KeyPrefix)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, TransportRedis, cfg.Transport.Kind)
	assert.Equal(t, 100, cfg.Leaderboard.Size)
	assert.Equal(t, 24*time.Hour, cfg.Inbox.DedupTTL)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.Postgres.Enabled)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_KAFKA_BROKER", "kafka:9092")
	t.Setenv("NODE_ID", "")
	path := writeConfig(t, `
node:
  id: beta
transport:
  kind: kafka
kafka:
  brokers: ["${TEST_KAFKA_BROKER}"]
leaderboard:
  size: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, TransportKafka, cfg.Transport.Kind)
	assert.Equal(t, 10, cfg.Leaderboard.Size)
}

func TestLoadNodeIDFromEnvironment(t *testing.T) {
	t.Setenv("NODE_ID", "gamma")
	t.Setenv(EnvConfigPath, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gamma", cfg.Node.ID)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Setenv("NODE_ID", "")

	_, err := Load(writeConfig(t, "transport:\n  kind: redis\n"))
	assert.Error(t, err, "missing node id")

	_, err = Load(writeConfig(t, "node:\n  id: a\ntransport:\n  kind: pigeon\n"))
	assert.Error(t, err, "unknown transport")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPostgresConnectionString(t *testing.T) {
	cfg := DefaultConfig("a")
	cfg.Postgres.User = "u"
	cfg.Postgres.Password = "p"
	cfg.Postgres.Database = "games"

	assert.Equal(t, "postgres://u:p@localhost:5432/games?sslmode=disable", cfg.Postgres.ConnectionString())
}
