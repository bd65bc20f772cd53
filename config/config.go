package config

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"

	SeedReset  = "reset"
	SeedEnsure = "ensure"
	SeedOff    = "off"
)

type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"pos-svc"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	PublicBaseURL   string        `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	CORSOrigins     []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
	SeedMode        string        `env:"SEED_MODE" envDefault:"reset"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DB    DBConfig    `envPrefix:"DB_"`
	Redis RedisConfig `envPrefix:"REDIS_"`
	Kafka KafkaConfig `envPrefix:"KAFKA_"`
	Log   LogConfig   `envPrefix:"LOG_"`
}

type DBConfig struct {
	Driver   string `env:"DRIVER" envDefault:"postgres"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	Name     string `env:"NAME" envDefault:"pos"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
	// Path is the database file used by the sqlite3 driver.
	Path string `env:"PATH" envDefault:"pos.db"`

	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"1h"`
}

type RedisConfig struct {
	// Addr left empty disables idempotency keys on order creation.
	Addr           string        `env:"ADDR"`
	Password       string        `env:"PASSWORD"`
	DB             int           `env:"DB" envDefault:"0"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`
}

type KafkaConfig struct {
	// Brokers left empty disables order event publishing.
	Brokers     []string `env:"BROKERS" envSeparator:","`
	OrdersTopic string   `env:"ORDERS_TOPIC" envDefault:"orders"`
}

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	switch c.SeedMode {
	case SeedReset, SeedEnsure, SeedOff:
	default:
		return fmt.Errorf("unsupported SEED_MODE %q", c.SeedMode)
	}
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	return nil
}

// DSN builds the data source name for the configured driver.
func (c DBConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path + "?_foreign_keys=on"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// OpenDatabase opens and pings the relational store and applies pool settings.
func OpenDatabase(ctx context.Context, c DBConfig) (*sql.DB, error) {
	db, err := sql.Open(c.Driver, c.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	db.SetConnMaxLifetime(c.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// NewRedisClient returns nil when no address is configured.
func NewRedisClient(ctx context.Context, c RedisConfig) (*redis.Client, error) {
	if c.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewKafkaWriter returns nil when no brokers are configured.
func NewKafkaWriter(c KafkaConfig) *kafka.Writer {
	if len(c.Brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.Brokers...),
		Topic:                  c.OrdersTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
