package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "pos-svc", cfg.ServiceName)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, SeedReset, cfg.SeedMode)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORSOrigins)
	assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SEED_MODE", "ensure")
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_PATH", "/tmp/pos-test.db")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, SeedEnsure, cfg.SeedMode)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "/tmp/pos-test.db?_foreign_keys=on", cfg.DB.DSN())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.DB.Driver = "mysql" }, wantErr: "DB_DRIVER"},
		{name: "unknown seed mode", mutate: func(c *Config) { c.SeedMode = "sometimes" }, wantErr: "SEED_MODE"},
		{name: "empty address", mutate: func(c *Config) { c.HTTPAddr = " " }, wantErr: "HTTP_ADDR"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cfg := Config{HTTPAddr: ":8080", SeedMode: SeedReset, DB: DBConfig{Driver: DriverPostgres}}
			testCase.mutate(&cfg)

			err := cfg.Validate()
			if testCase.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, testCase.wantErr)
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	c := DBConfig{Driver: DriverPostgres, Host: "db", Port: 5433, User: "pos", Password: "secret", Name: "pos", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=pos password=secret dbname=pos sslmode=disable", c.DSN())
}

func TestOpenDatabaseSQLite(t *testing.T) {
	c := DBConfig{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "pos.db"), MaxOpenConns: 2, MaxIdleConns: 1, ConnMaxLifetime: time.Minute}

	db, err := OpenDatabase(context.Background(), c)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 2, db.Stats().MaxOpenConnections)
}

func TestOptionalClientsDisabled(t *testing.T) {
	client, err := NewRedisClient(context.Background(), RedisConfig{})
	assert.NoError(t, err)
	assert.Nil(t, client)
	assert.Nil(t, NewKafkaWriter(KafkaConfig{}))

	writer := NewKafkaWriter(KafkaConfig{Brokers: []string{"localhost:9092"}, OrdersTopic: "orders"})
	require.NotNil(t, writer)
	assert.Equal(t, "orders", writer.Topic)
}
