package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8000", c.HTTPAddr)
	assert.Equal(t, 64, c.Workers)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, c.AllowedOrigins)
	assert.Equal(t, "HS256", c.JWTAlgorithm)
	assert.Equal(t, 30*time.Minute, c.TokenTTL)
	assert.True(t, c.MigrateOnStart)
	assert.Empty(t, c.JWTSecret)
	assert.Empty(t, c.DatabaseDSN)
}

func TestApplyEnv_Overlay(t *testing.T) {
	env := map[string]string{
		"PORT":                 "9090",
		"DB_DSN":               "postgres://vet@db/vet",
		"JWT_SECRET":           "s3cret",
		"JWT_ALGORITHM":        "HS512",
		"JWT_TTL":              "2h",
		"WORKERS":              "4",
		"REQUEST_TIMEOUT":      "5s",
		"CORS_ALLOWED_ORIGINS": "http://a.test, http://b.test,",
		"DB_MIGRATE":           "false",
		"ACCESS_LOG_PATH":      "/var/log/vet/access.log",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	var c Config
	c.LoadDefaults()
	require.NoError(t, c.applyEnv(lookup))

	assert.Equal(t, ":9090", c.HTTPAddr)
	assert.Equal(t, "postgres://vet@db/vet", c.DatabaseDSN)
	assert.Equal(t, "s3cret", c.JWTSecret)
	assert.Equal(t, "HS512", c.JWTAlgorithm)
	assert.Equal(t, 2*time.Hour, c.TokenTTL)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.AllowedOrigins)
	assert.False(t, c.MigrateOnStart)
	assert.Equal(t, "/var/log/vet/access.log", c.AccessLogPath)
	assert.NoError(t, c.Validate())
}

func TestApplyEnv_BadNumber(t *testing.T) {
	var c Config
	c.LoadDefaults()
	err := c.applyEnv(func(k string) (string, bool) {
		if k == "WORKERS" {
			return "many", true
		}
		return "", false
	})
	assert.ErrorContains(t, err, "WORKERS")
}

func TestParseFlags_OverridesEnv(t *testing.T) {
	var c Config
	c.LoadDefaults()
	c.JWTSecret = "from-env"

	require.NoError(t, c.parseFlags([]string{"-a", "127.0.0.1:8001", "-s", "from-flag", "-t", "1m", "-w", "2"}))

	assert.Equal(t, "127.0.0.1:8001", c.HTTPAddr)
	assert.Equal(t, "from-flag", c.JWTSecret)
	assert.Equal(t, time.Minute, c.TokenTTL)
	assert.Equal(t, 2, c.Workers)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		var c Config
		c.LoadDefaults()
		c.JWTSecret = "secret"
		return c
	}

	c := base()
	assert.NoError(t, c.Validate())

	c = base()
	c.JWTSecret = " "
	assert.ErrorContains(t, c.Validate(), "JWT_SECRET")

	c = base()
	c.JWTAlgorithm = "RS256"
	assert.ErrorContains(t, c.Validate(), "JWT_ALGORITHM")

	c = base()
	c.TokenTTL = 0
	assert.ErrorContains(t, c.Validate(), "JWT_TTL")
}
