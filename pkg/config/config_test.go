package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "rustock", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, int32(4), cfg.DB.MaxConns)
	assert.Equal(t, 3, cfg.Login.MaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.Login.Lockout())
	assert.Equal(t, 5, cfg.Report.LowStockThreshold)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DB_MAX_CONNS", "8")
	v.Set("REDIS_ADDR", "localhost:6379")
	v.Set("LOGIN_MAX_ATTEMPTS", 5)
	v.Set("HTTP_PORT", "abc") // inválido → default

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, int32(8), cfg.DB.MaxConns)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 5, cfg.Login.MaxAttempts)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestFromViper_IntentosInvalidos(t *testing.T) {
	v := viper.New()
	v.Set("LOGIN_MAX_ATTEMPTS", 0)
	_, err := fromViper(v)
	assert.Error(t, err)
}

// DATABASE_URL tiene prioridad; si no, el DSN escapa caracteres especiales.
func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss:w/rd", DBName: "rustock", SSLMode: "disable"}
	dsn := c.ConnectionString()
	assert.Contains(t, dsn, "postgres://u:p%40ss%3Aw%2Frd@db:5432/rustock")
	assert.Contains(t, dsn, "sslmode=disable")

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
