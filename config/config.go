package config

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
)

const ConfigFilePath = "./config.yaml"

// KafkaBatchTimeout bounds how long a synchronous publish waits to fill a batch.
const KafkaBatchTimeout = 10 * time.Millisecond

const (
	ModeCLI        = "cli"
	ModeHTTP       = "http"
	ModeAggregator = "aggregator"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
}

type RedisConfig struct {
	Host string
	Port int
}

type KafkaConfig struct {
	Broker  string
	Topic   string
	GroupID string
}

type Config struct {
	Mode      string
	HTTPPort  int
	LogLevel  string
	SeedDemo  bool
	QRBaseURL string
	Database  DatabaseConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
}

func (c Config) String() string {
	return fmt.Sprintf(
		"[CONFIG: Mode: %s | HTTPPort: %d | LogLevel: %s | SeedDemo: %t | DB: %t | Redis: %t | Kafka: %t]",
		c.Mode, c.HTTPPort, c.LogLevel, c.SeedDemo,
		c.DatabaseEnabled(), c.RedisEnabled(), c.KafkaEnabled(),
	)
}

func (c Config) DatabaseEnabled() bool { return c.Database.Host != "" }
func (c Config) RedisEnabled() bool    { return c.Redis.Host != "" }
func (c Config) KafkaEnabled() bool    { return c.Kafka.Broker != "" }

// Load reads .env, then config.yaml when present, and lets environment
// variables override both.
func Load() (*Config, error) {
	return LoadFile(ConfigFilePath)
}

func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = godotenv.Load(".env")
	v.AutomaticEnv()

	v.SetDefault("mode", ModeCLI)
	v.SetDefault("http.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("seed.demo", true)
	v.SetDefault("qr.base_url", "http://localhost:8080")
	v.SetDefault("db.port", 5432)
	v.SetDefault("redis.port", 6379)
	v.SetDefault("kafka.topic", "restaurant-events")
	v.SetDefault("kafka.group_id", "bookkeeping-aggregator")

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	bindings := map[string]string{
		"mode":           "MODE",
		"http.port":      "HTTP_PORT",
		"log.level":      "LOG_LEVEL",
		"seed.demo":      "SEED_DEMO",
		"qr.base_url":    "QR_BASE_URL",
		"db.host":        "DB_HOST",
		"db.port":        "DB_PORT",
		"db.name":        "DB_NAME",
		"db.user":        "DB_USER",
		"db.password":    "DB_PASSWORD",
		"redis.host":     "REDIS_HOST",
		"redis.port":     "REDIS_PORT",
		"kafka.broker":   "KAFKA_BROKER",
		"kafka.topic":    "KAFKA_TOPIC",
		"kafka.group_id": "KAFKA_GROUP_ID",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.Wrapf(err, "bind %s", env)
		}
	}

	cfg := &Config{
		Mode:      strings.ToLower(v.GetString("mode")),
		HTTPPort:  v.GetInt("http.port"),
		LogLevel:  v.GetString("log.level"),
		SeedDemo:  v.GetBool("seed.demo"),
		QRBaseURL: strings.TrimRight(v.GetString("qr.base_url"), "/"),
		Database: DatabaseConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			Name:     v.GetString("db.name"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
		},
		Redis: RedisConfig{
			Host: v.GetString("redis.host"),
			Port: v.GetInt("redis.port"),
		},
		Kafka: KafkaConfig{
			Broker:  v.GetString("kafka.broker"),
			Topic:   v.GetString("kafka.topic"),
			GroupID: v.GetString("kafka.group_id"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeCLI, ModeHTTP:
	case ModeAggregator:
		if !c.KafkaEnabled() || !c.RedisEnabled() {
			return errors.New("aggregator mode requires KAFKA_BROKER and REDIS_HOST")
		}
	default:
		return errors.Errorf("unknown mode %q", c.Mode)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return errors.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	return nil
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name)
}

func (c Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func OpenPostgres(ctx context.Context, cfg *Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)
	return db, nil
}

func OpenRedis(ctx context.Context, cfg *Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr()})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, "failed to connect to redis")
	}
	return client, nil
}

func NewKafkaReader(cfg *Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Kafka.Broker},
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
}

func NewKafkaWriter(cfg *Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Kafka.Broker),
		Topic:                  cfg.Kafka.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           KafkaBatchTimeout,
		AllowAutoTopicCreation: true,
	}
}
