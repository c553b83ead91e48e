package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("HRIS_AUTH_JWT_SECRET", "0123456789abcdef-secret")
	t.Setenv("HRIS_SERVER_PORT", "8081")
	t.Setenv("HRIS_KAFKA_BROKERS", "k1:9092, k2:9092")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "0123456789abcdef-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 3*time.Second, cfg.Kafka.PollInterval)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "am-hris", cfg.Otel.ServiceName)
	assert.Contains(t, cfg.Database.DSN(), "dbname=am_hris")
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte(`
server:
  port: 9000
auth:
  jwt_secret: yaml-secret-0123456789
  access_token_ttl: 2h
calendar:
  timezone: Asia/Jakarta
`)
	require.NoError(t, os.WriteFile(path, body, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.Auth.AccessTokenTTL)

	loc, err := cfg.Calendar.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", loc.String())
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("HRIS_AUTH_JWT_SECRET", "")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server:   ServerConfig{Port: 3000},
		Database: DatabaseConfig{Host: "db", Name: "hris"},
		Kafka:    KafkaConfig{Brokers: []string{"k:9092"}},
		Auth:     AuthConfig{JWTSecret: "0123456789abcdef", AccessTokenTTL: time.Hour},
	}
	require.NoError(t, valid.Validate())

	short := valid
	short.Auth.JWTSecret = "short"
	assert.Error(t, short.Validate())

	badPort := valid
	badPort.Server.Port = 70000
	assert.Error(t, badPort.Validate())

	noBrokers := valid
	noBrokers.Kafka.Brokers = nil
	assert.Error(t, noBrokers.Validate())

	badZone := valid
	badZone.Calendar.Timezone = "Mars/Olympus"
	assert.Error(t, badZone.Validate())
}
