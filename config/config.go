package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr     string `koanf:"addr"`
	LogLevel string `koanf:"log_level"`
	LogFile  string `koanf:"log_file"`

	StoreBackend string `koanf:"store_backend"`

	DBHost     string `koanf:"db_host"`
	DBPort     string `koanf:"db_port"`
	DBName     string `koanf:"db_name"`
	DBUser     string `koanf:"db_user"`
	DBPassword string `koanf:"db_password"`
	DBSSLMode  string `koanf:"db_sslmode"`

	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password"`
	RedisDB       int    `koanf:"redis_db"`
	RedisPrefix   string `koanf:"redis_prefix"`

	// KafkaBrokers is a comma separated list; empty disables event publishing.
	KafkaBrokers string `koanf:"kafka_brokers"`
	KafkaTopic   string `koanf:"kafka_topic"`

	PublicBaseURL string `koanf:"public_base_url"`
	CORSOrigins   string `koanf:"cors_origins"`

	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

func Default() *Config {
	return &Config{
		Addr:            ":8000",
		LogLevel:        "info",
		StoreBackend:    BackendMemory,
		DBHost:          "localhost",
		DBPort:          "5432",
		DBName:          "menu",
		DBUser:          "postgres",
		DBSSLMode:       "disable",
		RedisAddr:       "localhost:6379",
		RedisPrefix:     "menu:",
		KafkaTopic:      "menu-events",
		PublicBaseURL:   "http://localhost:8000",
		CORSOrigins:     "*",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load layers defaults, an optional YAML file named by MENU_CONFIG, and
// MENU_* environment variables, in that order. A .env file in the working
// directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")

	if path := os.Getenv("MENU_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	envProvider := env.Provider("MENU_", ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "menu_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch c.StoreBackend {
	case BackendMemory, BackendPostgres, BackendRedis:
	default:
		return fmt.Errorf("%w: unknown store_backend %q", ErrInvalidConfig, c.StoreBackend)
	}
	if c.StoreBackend == BackendPostgres && c.DBHost == "" {
		return fmt.Errorf("%w: db_host is required for the postgres backend", ErrInvalidConfig)
	}
	if c.StoreBackend == BackendRedis && c.RedisAddr == "" {
		return fmt.Errorf("%w: redis_addr is required for the redis backend", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=" + c.DBSSLMode
}

func (c *Config) Brokers() []string {
	return splitList(c.KafkaBrokers)
}

func (c *Config) AllowedOrigins() []string {
	return splitList(c.CORSOrigins)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func MustInitPostgres(cfg *Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		fatal("Failed to connect to database", err)
	}

	if err = db.Ping(); err != nil {
		fatal("Failed to ping database", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		fatal("Failed to connect to Redis", err)
	}

	return client
}

// NewKafkaWriter returns nil when no brokers are configured.
func NewKafkaWriter(cfg *Config) *kafka.Writer {
	brokers := cfg.Brokers()
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.Hash{},
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
