package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SESSION_TIMEOUT", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 3600, cfg.SessionTimeout)
	assert.NotEmpty(t, cfg.DatabaseURL)
	assert.NotEmpty(t, cfg.RedisURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SESSION_TIMEOUT", "120")
	t.Setenv("TWILIO_FROM_NUMBER", "+15550001111")

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, 120, cfg.SessionTimeout)
	assert.Equal(t, "+15550001111", cfg.TwilioFromNumber)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("SESSION_TIMEOUT", "not-a-number")

	cfg := Load()

	assert.Equal(t, 3600, cfg.SessionTimeout)
}
