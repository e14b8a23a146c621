package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/roshambo/internal/common/logger"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "ROSHAMBO_CONFIG"

// Transport kinds
const (
	TransportMemory = "memory"
	TransportRedis  = "redis"
	TransportKafka  = "kafka"
)

// Config represents the node configuration
type Config struct {
	Node        NodeConfig        `yaml:"node"`
	Redis       RedisConfig       `yaml:"redis"`
	Transport   TransportConfig   `yaml:"transport"`
	Kafka       KafkaConfig       `yaml:"kafka"`
	Postgres    PostgresConfig    `yaml:"postgres"`
	HTTP        HTTPConfig        `yaml:"http"`
	Log         logger.Config     `yaml:"log"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Inbox       InboxConfig       `yaml:"inbox"`
}

// NodeConfig identifies this process on the network
type NodeConfig struct {
	ID string `yaml:"id"`

	// KeyPrefix namespaces every redis key this node owns
	KeyPrefix string `yaml:"key_prefix"`
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr         string        `yaml:"addr"`
	Password     string        `yaml:"password"`
	DB           int           `yaml:"db"`
	PoolSize     int           `yaml:"pool_size"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// TransportConfig selects how envelopes travel between nodes
type TransportConfig struct {
	Kind string `yaml:"kind"`

	// PollTimeout bounds each blocking read of the redis inbox
	PollTimeout time.Duration `yaml:"poll_timeout"`
}

// KafkaConfig holds Kafka connection configuration
type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`

	// GroupPrefix is joined with the node id so every node reads the full topic
	GroupPrefix string `yaml:"group_prefix"`
}

// PostgresConfig holds the optional game archive connection
type PostgresConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	User           string `yaml:"user"`
	Password       string `yaml:"password"`
	Database       string `yaml:"database"`
	SSLMode        string `yaml:"ssl_mode"`
	MaxConnections int32  `yaml:"max_connections"`
}

// ConnectionString returns the PostgreSQL connection string
func (c *PostgresConfig) ConnectionString() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslMode,
	)
}

// HTTPConfig holds the query server configuration
type HTTPConfig struct {
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// LeaderboardConfig holds leaderboard-specific configuration
type LeaderboardConfig struct {
	Size int `yaml:"size"`
}

// InboxConfig controls inbound envelope handling
type InboxConfig struct {
	// DedupTTL is how long a seen envelope id is remembered
	DedupTTL time.Duration `yaml:"dedup_ttl"`

	// Buffer is the capacity of the node's inbox channel
	Buffer int `yaml:"buffer"`
}

// Load reads an optional .env file, then the YAML file at path, then applies
// defaults. An empty path falls back to $ROSHAMBO_CONFIG; when neither is set
// only defaults and the environment are used.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		data = []byte(os.ExpandEnv(string(data)))

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv lets a handful of variables override the file
func (c *Config) applyEnv() {
	if v := os.Getenv("NODE_ID"); v != "" {
		c.Node.ID = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Node.KeyPrefix == "" && c.Node.ID != "" {
		c.Node.KeyPrefix = "roshambo:" + c.Node.ID + ":"
	}

	// Redis defaults
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 10
	}
	if c.Redis.DialTimeout == 0 {
		c.Redis.DialTimeout = 5 * time.Second
	}
	if c.Redis.ReadTimeout == 0 {
		c.Redis.ReadTimeout = 3 * time.Second
	}
	if c.Redis.WriteTimeout == 0 {
		c.Redis.WriteTimeout = 3 * time.Second
	}

	if c.Transport.Kind == "" {
		c.Transport.Kind = TransportRedis
	}
	if c.Transport.PollTimeout == 0 {
		c.Transport.PollTimeout = time.Second
	}

	// Kafka defaults
	if len(c.Kafka.Brokers) == 0 {
		c.Kafka.Brokers = []string{"localhost:9092"}
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "roshambo-envelopes"
	}
	if c.Kafka.GroupPrefix == "" {
		c.Kafka.GroupPrefix = "roshambo-"
	}

	// PostgreSQL defaults
	if c.Postgres.Host == "" {
		c.Postgres.Host = "localhost"
	}
	if c.Postgres.Port == 0 {
		c.Postgres.Port = 5432
	}
	if c.Postgres.MaxConnections == 0 {
		c.Postgres.MaxConnections = 5
	}

	// HTTP defaults
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.ReadTimeout == 0 {
		c.HTTP.ReadTimeout = 5 * time.Second
	}
	if c.HTTP.WriteTimeout == 0 {
		c.HTTP.WriteTimeout = 10 * time.Second
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}

	if c.Leaderboard.Size == 0 {
		c.Leaderboard.Size = 100
	}

	if c.Inbox.DedupTTL == 0 {
		c.Inbox.DedupTTL = 24 * time.Hour
	}
	if c.Inbox.Buffer == 0 {
		c.Inbox.Buffer = 64
	}
}

// Validate reports configuration that cannot run
func (c *Config) Validate() error {
	if c.Node.ID == "" {
		return errors.New("node.id is required")
	}

	switch c.Transport.Kind {
	case TransportMemory, TransportRedis, TransportKafka:
	default:
		return fmt.Errorf("unknown transport kind %q", c.Transport.Kind)
	}

	if c.Leaderboard.Size < 0 {
		return errors.New("leaderboard.size cannot be negative")
	}

	return nil
}

// DefaultConfig returns a configuration with all defaults for nodeID
func DefaultConfig(nodeID string) *Config {
	cfg := &Config{Node: NodeConfig{ID: nodeID}}
	cfg.applyDefaults()
	return cfg
}
