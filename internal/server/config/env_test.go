package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv_OverridesPresentVarsOnly(t *testing.T) {
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("TOKEN_VALIDITY_SECONDS", "120")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 120*time.Second, cfg.TokenValidityDuration)
	// untouched vars keep defaults
	assert.Equal(t, ":8080", cfg.EndpointAddr)
}

func Test_parseEnv_InvalidIntIsError(t *testing.T) {
	t.Setenv("TOKEN_VALIDITY_SECONDS", "not-a-number")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Error(t, parseEnv(cfg))
}
