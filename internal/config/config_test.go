package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("REPOSITORY_DRIVER", "Postgres")
	t.Setenv("EXPORT_URL_EXPIRY_SEC", "60")
	t.Setenv("APP_HOST", "promocodes.local:8080")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, DriverPostgres, cfg.RepositoryDriver)
	assert.Equal(t, time.Minute, cfg.ExportURLExpiry)
	assert.Equal(t, "promocodes.local:8080", cfg.AppHost)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REPOSITORY_DRIVER", "")
	t.Setenv("MINIO_ENDPOINT", "")
	t.Setenv("DB_AUTO_MIGRATE", "")
	t.Setenv("APP_HOST", "")

	cfg := Load()

	assert.Equal(t, DriverMemory, cfg.RepositoryDriver)
	assert.False(t, cfg.MinIO.Enabled())
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 15*time.Minute, cfg.ExportURLExpiry)
	assert.Equal(t, "localhost:8080", cfg.AppHost)
}

func TestAppConfig_Location(t *testing.T) {
	cfg := &AppConfig{Timezone: "UTC"}
	assert.Equal(t, "UTC", cfg.Location().String())

	cfg.Timezone = "Not/AZone"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
